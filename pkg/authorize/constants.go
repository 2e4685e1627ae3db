package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Patient-owned records
	ResourceProfile      Resource = "profile"
	ResourceMedication   Resource = "medication"
	ResourceDailyLog     Resource = "daily_log"
	ResourceHealthLog    Resource = "health_log"
	ResourceAppointment  Resource = "appointment"
	ResourceFamilyMember Resource = "family_member"
	ResourceExport       Resource = "export"
	ResourceStream       Resource = "stream"

	// Caregiver linking
	ResourceWatch   Resource = "watch"
	ResourceSmartID Resource = "smart_id"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceProfile: {}, ResourceMedication: {}, ResourceDailyLog: {},
	ResourceHealthLog: {}, ResourceAppointment: {}, ResourceFamilyMember: {},
	ResourceExport: {}, ResourceStream: {},
	ResourceWatch: {}, ResourceSmartID: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// PatientResources are the record types living under one patient's identifier.
// Owners get full CRUD on all of them; caregiver viewers get read/list only.
var PatientResources = []Resource{
	ResourceProfile,
	ResourceMedication,
	ResourceDailyLog,
	ResourceHealthLog,
	ResourceAppointment,
	ResourceFamilyMember,
	ResourceExport,
	ResourceStream,
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Patient-domain roles (domain = user:<uuid> of the patient)
	RolePatientOwner    Role = "role:patient:owner"
	RoleCaregiverViewer Role = "role:caregiver:viewer"

	// Private user scope (domain = user:<uuid> of the subject itself)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin:   {},
	RolePatientOwner:    {},
	RoleCaregiverViewer: {},
	RoleUserSelf:        {},
}

// Thai display names
var RoleDisplayNamesTH = map[Role]string{
	RoleSysSuperAdmin:   "ผู้ดูแลระบบ",
	RolePatientOwner:    "ผู้ป่วย",
	RoleCaregiverViewer: "ผู้ดูแล",
	RoleUserSelf:        "เจ้าของบัญชี",
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain returns the private domain of one user. Patient record
// permissions are always granted inside the patient's user domain, so a
// caregiver's viewer role lives in the watched patient's domain, not their own.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Policy types
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the subject side of a grouping policy (a user ID string).
type GroupSubject string

// PermissionPolicy is one p-rule: role, domain, object, action, effect.
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
