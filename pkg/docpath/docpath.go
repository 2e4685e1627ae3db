// Package docpath builds the document path scheme shared with the mobile and
// web clients. Paths are stable identifiers: patient-scoped collections live
// under "{partition}/users/{patientID}/{collection}", per-user role documents
// at "users/{userID}", and the public smart-ID index at
// "public_smart_ids/{entryID}". NATS subjects are derived from paths by
// swapping the separator, so the two schemes stay in lockstep.
package docpath

import "strings"

const (
	// PublicSmartIDs is the fixed collection holding the public code index.
	PublicSmartIDs = "public_smart_ids"

	// UsersSegment is the segment under which per-patient collections nest.
	UsersSegment = "users"
)

// Patient-scoped collection names. These are wire-visible and must not change.
const (
	CollectionProfile      = "profile"
	CollectionMedications  = "medications"
	CollectionAdherence    = "daily_logs"
	CollectionHealthLogs   = "health_logs"
	CollectionAppointments = "appointments"
	CollectionFamily       = "family_members"
)

// PatientCollections lists every sub-collection the sync layer attaches to,
// in attach order.
var PatientCollections = []string{
	CollectionProfile,
	CollectionMedications,
	CollectionAdherence,
	CollectionHealthLogs,
	CollectionAppointments,
	CollectionFamily,
}

// Collection returns the path of one patient-scoped collection, e.g.
// "carelink/users/9f3c.../medications".
func Collection(partition, patientID, collection string) string {
	return partition + "/" + UsersSegment + "/" + patientID + "/" + collection
}

// Document returns the path of a single document inside a patient-scoped
// collection.
func Document(partition, patientID, collection, docID string) string {
	return Collection(partition, patientID, collection) + "/" + docID
}

// UserDoc returns the path of a per-user role document. These sit directly
// under "users/", not beneath the partition.
func UserDoc(userID string) string {
	return UsersSegment + "/" + userID
}

// SmartIDEntry returns the path of one public index entry.
func SmartIDEntry(entryID string) string {
	return PublicSmartIDs + "/" + entryID
}

// Subject converts a document path into a NATS subject.
func Subject(path string) string {
	return strings.ReplaceAll(path, "/", ".")
}

// CollectionSubject is shorthand for Subject(Collection(...)).
func CollectionSubject(partition, patientID, collection string) string {
	return Subject(Collection(partition, patientID, collection))
}
