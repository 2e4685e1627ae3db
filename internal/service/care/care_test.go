package care

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
)

// stubSmartID resolves exactly one known code to one patient.
type stubSmartID struct {
	code    string
	patient uuid.UUID
}

func (s stubSmartID) Validate(code string) error {
	if len(code) != 6 {
		return smartid.ErrInvalidCode
	}
	return nil
}

func (s stubSmartID) Resolve(_ context.Context, code string) (uuid.UUID, error) {
	if code != s.code {
		return uuid.Nil, smartid.ErrNotFound
	}
	return s.patient, nil
}

func (s stubSmartID) Ensure(context.Context, uuid.UUID, string) error { return nil }
func (s stubSmartID) GenerateUnique(context.Context) (string, error)  { return s.code, nil }

func TestLinkRejectsBadCodes(t *testing.T) {
	patientID := uuid.New()
	caregiverID := uuid.New()
	svc := New(nil, stubSmartID{code: "123456", patient: patientID}, nil, nil)

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"malformed code", "12", smartid.ErrInvalidCode},
		{"unmatched code", "654321", smartid.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := svc.Link(context.Background(), caregiverID, tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Link(%q) error = %v, want %v", tt.code, err, tt.wantErr)
			}
			if w != nil {
				t.Errorf("Link(%q) created a relationship, want none", tt.code)
			}
		})
	}
}

func TestLinkRejectsOwnCode(t *testing.T) {
	patientID := uuid.New()
	svc := New(nil, stubSmartID{code: "123456", patient: patientID}, nil, nil)

	// The caregiver is the patient the code resolves to.
	w, err := svc.Link(context.Background(), patientID, "123456")
	if !errors.Is(err, ErrCannotWatchSelf) {
		t.Errorf("Link() error = %v, want ErrCannotWatchSelf", err)
	}
	if w != nil {
		t.Error("Link() created a relationship, want none")
	}
}

func TestPatientDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		profileName string
		want        string
	}{
		{"profile name is denormalized", "สมศรี", "สมศรี"},
		{"empty name falls back to placeholder", "", fallbackPatientName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := patientDisplayName(tt.profileName); got != tt.want {
				t.Errorf("patientDisplayName(%q) = %q, want %q", tt.profileName, got, tt.want)
			}
		})
	}
}
