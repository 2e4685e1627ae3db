// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdherenceLog is the predicate function for adherencelog builders.
type AdherenceLog func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// FamilyMember is the predicate function for familymember builders.
type FamilyMember func(*sql.Selector)

// HealthLog is the predicate function for healthlog builders.
type HealthLog func(*sql.Selector)

// Medication is the predicate function for medication builders.
type Medication func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// SmartIDEntry is the predicate function for smartidentry builders.
type SmartIDEntry func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WatchRelationship is the predicate function for watchrelationship builders.
type WatchRelationship func(*sql.Selector)
