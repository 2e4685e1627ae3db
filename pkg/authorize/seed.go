package authorize

import (
	"context"
	"log/slog"
)

// crudActions are the concrete actions the HTTP layer enforces. The casbin
// matcher compares actions with keyMatch, so every action a route checks
// must be seeded literally; there is no umbrella action.
var crudActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList}

func grantAll(role Role, res Resource) []PermissionPolicy {
	out := make([]PermissionPolicy, 0, len(crudActions))
	for _, act := range crudActions {
		out = append(out, PermissionPolicy{role, WildcardDomain, res, act, EffectAllow})
	}
	return out
}

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Policies attach to roles with a wildcard domain; the grouping policy that
// ties a user to a role carries the concrete patient domain, so a caregiver's
// viewer grant is scoped to exactly one watched patient.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Patient owner: full control over every record type in their domain.
	for _, res := range []Resource{
		ResourceProfile,
		ResourceMedication,
		ResourceDailyLog,
		ResourceHealthLog,
		ResourceAppointment,
		ResourceFamilyMember,
	} {
		policies = append(policies, grantAll(RolePatientOwner, res)...)
	}
	policies = append(policies,
		PermissionPolicy{RolePatientOwner, WildcardDomain, ResourceExport, ActionRead, EffectAllow},
		PermissionPolicy{RolePatientOwner, WildcardDomain, ResourceStream, ActionRead, EffectAllow},
	)

	// UserSelf: control over own account-scoped resources.
	for _, res := range []Resource{ResourceUser, ResourceAuthSession, ResourceWatch} {
		policies = append(policies, grantAll(RoleUserSelf, res)...)
	}
	policies = append(policies,
		PermissionPolicy{RoleUserSelf, WildcardDomain, ResourceSmartID, ActionRead, EffectAllow},
	)

	policies = append(policies, []PermissionPolicy{
		// Caregiver viewer: read-only on the watched patient's records.
		// Knowing a patient's code grants remote monitoring, never mutation.
		{RoleCaregiverViewer, WildcardDomain, ResourceProfile, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceMedication, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceMedication, ActionList, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceDailyLog, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceDailyLog, ActionList, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceHealthLog, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceHealthLog, ActionList, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceAppointment, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceAppointment, ActionList, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceFamilyMember, ActionRead, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceFamilyMember, ActionList, EffectAllow},
		{RoleCaregiverViewer, WildcardDomain, ResourceStream, ActionRead, EffectAllow},
	}...)

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleUserSelf, UserDomain(userID))
	return err
}

// AssignPatientOwnerRole makes a user the owner of their own patient domain.
// Call this when a user selects the patient role.
func AssignPatientOwnerRole(ctx context.Context, auth IAuthorization, patientID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(patientID), RolePatientOwner, UserDomain(patientID))
	return err
}

// AssignCaregiverViewerRole grants a caregiver read-only access to one
// patient's domain. Call this when the linking workflow succeeds.
func AssignCaregiverViewerRole(ctx context.Context, auth IAuthorization, caregiverID, patientID string) error {
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(caregiverID), RoleCaregiverViewer, UserDomain(patientID))
	return err
}

// RemoveCaregiverViewerRole revokes a caregiver's access after unlinking.
func RemoveCaregiverViewerRole(ctx context.Context, auth IAuthorization, caregiverID, patientID string) error {
	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(caregiverID), RoleCaregiverViewer, UserDomain(patientID))
	return err
}
