package family

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
		wantErr  bool
	}{
		{"empty allowed", "", "", false},
		{"local thai mobile", "0812345678", "+66812345678", false},
		{"already e164", "+66812345678", "+66812345678", false},
		{"garbage", "not-a-number", "", true},
		{"too short", "081", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.in)
			if tt.wantErr {
				if err != ErrInvalidPhone {
					t.Fatalf("normalizePhone(%q) error = %v, want ErrInvalidPhone", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePhone(%q) error = %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
