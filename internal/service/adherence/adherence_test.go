package adherence

import (
	"reflect"
	"testing"
)

func TestToggleMed(t *testing.T) {
	tests := []struct {
		name     string
		taken    []string
		medID    string
		expected []string
	}{
		{"add to empty", []string{}, "m1", []string{"m1"}},
		{"add to existing", []string{"m1"}, "m2", []string{"m1", "m2"}},
		{"remove only entry", []string{"m1"}, "m1", []string{}},
		{"remove middle preserves order", []string{"m1", "m2", "m3"}, "m2", []string{"m1", "m3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toggleMed(tt.taken, tt.medID)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("toggleMed(%v, %q) = %v, want %v", tt.taken, tt.medID, got, tt.expected)
			}
		})
	}
}

func TestToggleMedIsInvolution(t *testing.T) {
	start := []string{"m1", "m2"}
	twice := toggleMed(toggleMed(start, "m3"), "m3")
	if !reflect.DeepEqual(twice, start) {
		t.Errorf("toggling twice = %v, want %v", twice, start)
	}
}
