package utils

import (
	"testing"
	"time"
)

func TestTicketRoundTrip(t *testing.T) {
	m, err := NewManager("ticket-signing-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	ticket, err := m.NewTicket("sess-42", time.Minute)
	if err != nil {
		t.Fatalf("NewTicket: %v", err)
	}

	sessionID, err := m.ParseTicket(ticket)
	if err != nil {
		t.Fatalf("ParseTicket: %v", err)
	}
	if sessionID != "sess-42" {
		t.Fatalf("expected sess-42, got %q", sessionID)
	}
}

func TestTicketExpired(t *testing.T) {
	m, _ := NewManager("ticket-signing-key")

	ticket, err := m.NewTicket("sess-42", -time.Minute)
	if err != nil {
		t.Fatalf("NewTicket: %v", err)
	}

	if _, err := m.ParseTicket(ticket); err == nil {
		t.Fatalf("expected expired ticket to fail")
	}
}

func TestTicketWrongKey(t *testing.T) {
	issuer, _ := NewManager("key-one")
	verifier, _ := NewManager("key-two")

	ticket, err := issuer.NewTicket("sess-42", time.Minute)
	if err != nil {
		t.Fatalf("NewTicket: %v", err)
	}

	if _, err := verifier.ParseTicket(ticket); err == nil {
		t.Fatalf("expected forged ticket to fail")
	}
}

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestNewSessionID(t *testing.T) {
	a, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}
	b, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID: %v", err)
	}

	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatalf("expected distinct ids")
	}
}
