package models

import "testing"

func TestAppointmentTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{AppointmentPending, AppointmentConfirmed, true},
		{AppointmentPending, AppointmentCancelled, true},
		{AppointmentPending, AppointmentCompleted, false},
		{AppointmentConfirmed, AppointmentCompleted, true},
		{AppointmentConfirmed, AppointmentCancelled, true},
		{AppointmentConfirmed, AppointmentPending, false},
		{AppointmentCompleted, AppointmentCancelled, false},
		{AppointmentCancelled, AppointmentConfirmed, false},
	}
	for _, tc := range cases {
		a := Appointment{Status: tc.from}
		if got := a.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestMessageTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{MessageUnread, MessageRead, true},
		{MessageUnread, MessageReplied, false},
		{MessageRead, MessageReplied, true},
		{MessageRead, MessageUnread, false},
		{MessageReplied, MessageRead, false},
	}
	for _, tc := range cases {
		m := ContactMessage{Status: tc.from}
		if got := m.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestValidStatuses(t *testing.T) {
	if !ValidAppointmentStatus(AppointmentPending) {
		t.Error("pending should be a valid appointment status")
	}
	if ValidAppointmentStatus("postponed") {
		t.Error("postponed should not be a valid appointment status")
	}
	if !ValidMessageStatus(MessageReplied) {
		t.Error("replied should be a valid message status")
	}
	if ValidMessageStatus("archived") {
		t.Error("archived should not be a valid message status")
	}
}
