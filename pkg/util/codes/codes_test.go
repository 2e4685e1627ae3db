package codes

import (
	"testing"
)

func TestGenerateSmartID(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateSmartID(SmartIDLength)
		if err != nil {
			t.Fatalf("GenerateSmartID() error = %v", err)
		}
		if len(code) != SmartIDLength {
			t.Fatalf("GenerateSmartID() length = %d, want %d (code %q)", len(code), SmartIDLength, code)
		}
		if !IsNumeric(code) {
			t.Fatalf("GenerateSmartID() = %q, want digits only", code)
		}
		if code[0] == '0' {
			t.Fatalf("GenerateSmartID() = %q, leading digit must be non-zero", code)
		}
	}
}

func TestGenerateSmartIDRejectsShortLength(t *testing.T) {
	if _, err := GenerateSmartID(1); err != ErrInvalidLength {
		t.Errorf("GenerateSmartID(1) error = %v, want ErrInvalidLength", err)
	}
}

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(TokenByteLength)
	if err != nil {
		t.Fatalf("GenerateSecureToken() error = %v", err)
	}
	if len(tok) != TokenByteLength*2 {
		t.Errorf("GenerateSecureToken() length = %d, want %d", len(tok), TokenByteLength*2)
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "123456", "123456"},
		{"dashed", "123-456", "123456"},
		{"spaced", " 123 456 ", "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.expected {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
	}{
		{"123456", true},
		{"", false},
		{"12a456", false},
		{"๑๒๓๔๕๖", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.in); got != tt.expected {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
