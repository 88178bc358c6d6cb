package email

import (
	"strings"
	"testing"

	"github.com/innovaedu/portal/internal/config"
)

func testComposer() Composer {
	return NewComposer(config.NotifyConfig{
		FromAddress: "Innova Education <noreply@innovaedu.com>",
		ReplyTo:     "info@innovaedu.com",
		OfficePhone: "+1 (555) 123-4567",
	})
}

func TestAppointmentConfirmation(t *testing.T) {
	c := testComposer()

	content, err := c.AppointmentConfirmation(AppointmentConfirmationRequest{
		Name:     "Amina Yusuf",
		Email:    "amina@example.com",
		Date:     "2026-09-15",
		TimeSlot: "10:00 AM",
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if content.To != "amina@example.com" {
		t.Errorf("expected recipient amina@example.com, got %s", content.To)
	}
	if content.From != "Innova Education <noreply@innovaedu.com>" {
		t.Errorf("unexpected from address: %s", content.From)
	}
	if content.Subject != "Appointment Confirmation - Innova Education Consultancy" {
		t.Errorf("unexpected subject: %s", content.Subject)
	}
	for _, want := range []string{
		"Dear Amina Yusuf",
		"Tuesday, September 15, 2026",
		"10:00 AM",
		"info@innovaedu.com",
		"+1 (555) 123-4567",
	} {
		if !strings.Contains(content.HTML, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestAppointmentConfirmation_RejectsBadDate(t *testing.T) {
	c := testComposer()

	_, err := c.AppointmentConfirmation(AppointmentConfirmationRequest{
		Name:     "Amina",
		Email:    "amina@example.com",
		Date:     "September 15",
		TimeSlot: "10:00 AM",
	})
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestAppointmentConfirmation_EscapesHTML(t *testing.T) {
	c := testComposer()

	content, err := c.AppointmentConfirmation(AppointmentConfirmationRequest{
		Name:     "<script>alert(1)</script>",
		Email:    "x@example.com",
		Date:     "2026-09-15",
		TimeSlot: "10:00 AM",
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if strings.Contains(content.HTML, "<script>") {
		t.Error("expected name to be HTML-escaped")
	}
}

func TestContactConfirmation(t *testing.T) {
	c := testComposer()

	content, err := c.ContactConfirmation(ContactConfirmationRequest{
		Name:    "Rahim Chowdhury",
		Email:   "rahim@example.com",
		Message: "What are my options for studying in Canada?",
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if content.Subject != "We Received Your Message - Innova Education Consultancy" {
		t.Errorf("unexpected subject: %s", content.Subject)
	}
	if !strings.Contains(content.HTML, "What are my options for studying in Canada?") {
		t.Error("expected full message in preview")
	}
}

func TestContactConfirmation_TruncatesLongMessages(t *testing.T) {
	c := testComposer()

	long := strings.Repeat("a", 300)
	content, err := c.ContactConfirmation(ContactConfirmationRequest{
		Name:    "Rahim",
		Email:   "rahim@example.com",
		Message: long,
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if strings.Contains(content.HTML, long) {
		t.Error("expected preview to be truncated")
	}
	if !strings.Contains(content.HTML, strings.Repeat("a", 200)+"...") {
		t.Error("expected 200-character preview with ellipsis")
	}
}
