package healthlog

import "testing"

func f(v float64) *float64 { return &v }

func TestValidateReadings(t *testing.T) {
	tests := []struct {
		name    string
		req     AddRequest
		wantErr error
	}{
		{"bp complete", AddRequest{Type: TypeBP, Sys: f(120), Dia: f(80)}, nil},
		{"bp missing dia", AddRequest{Type: TypeBP, Sys: f(120)}, ErrMissingReadings},
		{"sugar complete", AddRequest{Type: TypeSugar, Sugar: f(95)}, nil},
		{"sugar missing", AddRequest{Type: TypeSugar}, ErrMissingReadings},
		{"weight complete", AddRequest{Type: TypeWeight, Weight: f(62.5)}, nil},
		{"lab partial panel", AddRequest{Type: TypeLab, HbA1c: f(6.1)}, nil},
		{"lab empty panel", AddRequest{Type: TypeLab}, ErrMissingReadings},
		{"unknown type", AddRequest{Type: "pulse"}, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateReadings(tt.req); err != tt.wantErr {
				t.Errorf("validateReadings() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range []string{TypeBP, TypeSugar, TypeWeight, TypeLab} {
		if !validType(typ) {
			t.Errorf("validType(%q) = false, want true", typ)
		}
	}
	if validType("") || validType("bp ") {
		t.Error("validType accepted malformed input")
	}
}
