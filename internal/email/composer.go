// Package email composes the confirmation emails returned by the
// notification endpoints. Bodies are rendered to HTML and handed back to the
// caller; nothing is dispatched.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/innovaedu/portal/internal/config"
)

// Composer renders confirmation email payloads.
type Composer interface {
	AppointmentConfirmation(req AppointmentConfirmationRequest) (*Content, error)
	ContactConfirmation(req ContactConfirmationRequest) (*Content, error)
}

type composer struct {
	cfg config.NotifyConfig
}

// NewComposer creates a Composer using the configured sender identity.
func NewComposer(cfg config.NotifyConfig) Composer {
	return &composer{cfg: cfg}
}

const messagePreviewLimit = 200

var (
	appointmentTmpl = template.Must(template.New("appointment").Parse(appointmentBody))
	contactTmpl     = template.Must(template.New("contact").Parse(contactBody))
)

// AppointmentConfirmation composes the booking confirmation email.
func (c *composer) AppointmentConfirmation(req AppointmentConfirmationRequest) (*Content, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment date %q: %w", req.Date, err)
	}

	var body bytes.Buffer
	err = appointmentTmpl.Execute(&body, map[string]string{
		"Name":        req.Name,
		"Date":        date.Format("Monday, January 2, 2006"),
		"TimeSlot":    req.TimeSlot,
		"ReplyTo":     c.cfg.ReplyTo,
		"OfficePhone": c.cfg.OfficePhone,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering appointment confirmation: %w", err)
	}

	return &Content{
		To:      req.Email,
		From:    c.cfg.FromAddress,
		Subject: "Appointment Confirmation - Innova Education Consultancy",
		HTML:    body.String(),
	}, nil
}

// ContactConfirmation composes the we-received-your-message email.
func (c *composer) ContactConfirmation(req ContactConfirmationRequest) (*Content, error) {
	preview := req.Message
	if len(preview) > messagePreviewLimit {
		preview = preview[:messagePreviewLimit] + "..."
	}

	var body bytes.Buffer
	err := contactTmpl.Execute(&body, map[string]string{
		"Name":        req.Name,
		"Preview":     preview,
		"OfficePhone": c.cfg.OfficePhone,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering contact confirmation: %w", err)
	}

	return &Content{
		To:      req.Email,
		From:    c.cfg.FromAddress,
		Subject: "We Received Your Message - Innova Education Consultancy",
		HTML:    body.String(),
	}, nil
}

const appointmentBody = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #1e3a8a; color: white; padding: 20px; text-align: center;">
    <h1>Appointment Confirmed!</h1>
  </div>

  <div style="padding: 30px; background-color: #f8fafc;">
    <h2 style="color: #1e3a8a;">Dear {{.Name}},</h2>

    <p>Thank you for booking a consultation with Innova Education Consultancy!</p>

    <div style="background-color: white; padding: 20px; border-radius: 8px; border-left: 4px solid #eab308;">
      <h3 style="color: #1e3a8a; margin-top: 0;">Appointment Details:</h3>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.TimeSlot}}</p>
      <p><strong>Duration:</strong> 30 minutes</p>
      <p><strong>Type:</strong> Free Consultation</p>
    </div>

    <h3 style="color: #1e3a8a;">What to Expect:</h3>
    <ul>
      <li>Personalized education pathway discussion</li>
      <li>University and country recommendations</li>
      <li>Scholarship opportunities guidance</li>
      <li>Visa and application process overview</li>
      <li>Next steps planning</li>
    </ul>

    <p>Our expert counselor will contact you at the scheduled time. Please ensure you're available at the provided phone number.</p>

    <p>If you need to reschedule or have any questions, please don't hesitate to contact us at <a href="mailto:{{.ReplyTo}}">{{.ReplyTo}}</a> or call us at {{.OfficePhone}}.</p>

    <p style="margin-top: 30px;">Best regards,<br>
    <strong>The Innova Education Team</strong></p>
  </div>

  <div style="background-color: #1e3a8a; color: white; padding: 15px; text-align: center; font-size: 12px;">
    <p>Innova Education Consultancy - Your Gateway to Global Education</p>
    <p>123 Education Street, City, State 12345 | {{.OfficePhone}}</p>
  </div>
</div>`

const contactBody = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #1e3a8a; color: white; padding: 20px; text-align: center;">
    <h1>Thank You for Contacting Us!</h1>
  </div>

  <div style="padding: 30px; background-color: #f8fafc;">
    <h2 style="color: #1e3a8a;">Dear {{.Name}},</h2>

    <p>Thank you for reaching out to Innova Education Consultancy! We have received your message and appreciate your interest in our services.</p>

    <div style="background-color: white; padding: 20px; border-radius: 8px; border-left: 4px solid #eab308;">
      <h3 style="color: #1e3a8a; margin-top: 0;">Your Message:</h3>
      <p style="font-style: italic; color: #4b5563;">"{{.Preview}}"</p>
    </div>

    <h3 style="color: #1e3a8a;">What's Next?</h3>
    <ul>
      <li>Our expert counselors will review your inquiry</li>
      <li>We'll respond within 24 hours during business days</li>
      <li>You'll receive personalized guidance for your education goals</li>
      <li>We may suggest a free consultation call if appropriate</li>
    </ul>

    <p>In the meantime, feel free to explore our website to learn more about:</p>
    <ul>
      <li><strong>Countries We Serve:</strong> Discover education opportunities worldwide</li>
      <li><strong>Success Stories:</strong> Read about students we've helped achieve their dreams</li>
      <li><strong>Testimonials:</strong> See what our clients say about our services</li>
    </ul>

    <p>If you have any urgent questions, please don't hesitate to call us at {{.OfficePhone}} during our office hours (Monday-Friday: 9 AM - 6 PM, Saturday: 10 AM - 4 PM).</p>

    <p style="margin-top: 30px;">Best regards,<br>
    <strong>The Innova Education Team</strong></p>
  </div>

  <div style="background-color: #1e3a8a; color: white; padding: 15px; text-align: center; font-size: 12px;">
    <p>Innova Education Consultancy - Your Gateway to Global Education</p>
    <p>123 Education Street, City, State 12345 | {{.OfficePhone}}</p>
  </div>
</div>`
