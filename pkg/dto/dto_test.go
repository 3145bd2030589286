package dto

import (
	"testing"
	"time"
)

func TestAwardRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request AwardRequest
		wantErr bool
	}{
		{name: "one star", request: AwardRequest{Email: "dev@example.com", Stars: 1}},
		{name: "three stars", request: AwardRequest{Email: "dev@example.com", Stars: 3}},
		{name: "zero stars", request: AwardRequest{Email: "dev@example.com", Stars: 0}, wantErr: true},
		{name: "four stars", request: AwardRequest{Email: "dev@example.com", Stars: 4}, wantErr: true},
		{name: "negative stars", request: AwardRequest{Email: "dev@example.com", Stars: -1}, wantErr: true},
		{name: "missing email", request: AwardRequest{Stars: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if (err != nil) != tt.wantErr {
				t.Errorf("IsValid() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionActionRequest_IsValid(t *testing.T) {
	for _, action := range []string{SessionActionStart, SessionActionBreakStart, SessionActionBreakEnd, SessionActionEnd} {
		if err := (SessionActionRequest{Action: action}).IsValid(); err != nil {
			t.Errorf("action %q rejected: %v", action, err)
		}
	}

	for _, action := range []string{"", "pause", "START"} {
		if err := (SessionActionRequest{Action: action}).IsValid(); err == nil {
			t.Errorf("action %q accepted", action)
		}
	}
}

func TestRegister_IsValid(t *testing.T) {
	if err := (Register{Email: "dev@example.com", Password: "pass"}).IsValid(); err != nil {
		t.Errorf("valid register rejected: %v", err)
	}
	if err := (Register{Email: "  ", Password: "pass"}).IsValid(); err == nil {
		t.Error("blank email accepted")
	}
	if err := (Register{Email: "dev@example.com"}).IsValid(); err == nil {
		t.Error("missing password accepted")
	}
}

func TestParseDeadline(t *testing.T) {
	full, err := ParseDeadline("2025-03-10T17:00:00Z")
	if err != nil {
		t.Fatalf("RFC 3339 deadline: %v", err)
	}
	if want := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC); !full.Equal(want) {
		t.Errorf("parsed %v, want %v", full, want)
	}

	bare, err := ParseDeadline("2025-03-10")
	if err != nil {
		t.Fatalf("bare date deadline: %v", err)
	}
	if want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC); !bare.Equal(want) {
		t.Errorf("parsed %v, want %v", bare, want)
	}

	if _, err := ParseDeadline("next tuesday"); err == nil {
		t.Error("garbage deadline accepted")
	}
}
