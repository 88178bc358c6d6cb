package email

// AppointmentConfirmationRequest is the payload for the appointment
// confirmation composer.
type AppointmentConfirmationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// ContactConfirmationRequest is the payload for the contact confirmation composer.
type ContactConfirmationRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Content is a fully composed (but unsent) email payload. No delivery
// provider is integrated; callers log or return it.
type Content struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
