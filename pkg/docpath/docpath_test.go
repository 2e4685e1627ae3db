package docpath

import "testing"

func TestCollection(t *testing.T) {
	tests := []struct {
		name       string
		partition  string
		patientID  string
		collection string
		expected   string
	}{
		{"medications", "carelink", "abc-123", CollectionMedications, "carelink/users/abc-123/medications"},
		{"profile", "carelink", "abc-123", CollectionProfile, "carelink/users/abc-123/profile"},
		{"custom partition", "staging", "u1", CollectionHealthLogs, "staging/users/u1/health_logs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collection(tt.partition, tt.patientID, tt.collection)
			if got != tt.expected {
				t.Errorf("Collection() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	got := Document("carelink", "u1", CollectionAppointments, "a9")
	want := "carelink/users/u1/appointments/a9"
	if got != want {
		t.Errorf("Document() = %q, want %q", got, want)
	}
}

func TestUserDoc(t *testing.T) {
	if got := UserDoc("u1"); got != "users/u1" {
		t.Errorf("UserDoc() = %q, want %q", got, "users/u1")
	}
}

func TestSmartIDEntry(t *testing.T) {
	if got := SmartIDEntry("e7"); got != "public_smart_ids/e7" {
		t.Errorf("SmartIDEntry() = %q, want %q", got, "public_smart_ids/e7")
	}
}

func TestSubject(t *testing.T) {
	got := CollectionSubject("carelink", "u1", CollectionFamily)
	want := "carelink.users.u1.family_members"
	if got != want {
		t.Errorf("CollectionSubject() = %q, want %q", got, want)
	}
}

func TestPatientCollectionsCount(t *testing.T) {
	// One live subscription per sub-collection; the attach fan-out is six.
	if len(PatientCollections) != 6 {
		t.Errorf("PatientCollections has %d entries, want 6", len(PatientCollections))
	}
}
