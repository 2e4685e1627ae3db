package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/google/uuid"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	tmpDir := t.TempDir()

	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func seededAuth(t *testing.T) IAuthorization {
	t.Helper()

	auth, err := NewAuthorization(createTestEnforcer(t))
	if err != nil {
		t.Fatalf("NewAuthorization() error = %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("SeedDefaultPolicies() error = %v", err)
	}
	return auth
}

func TestPatientOwnerCanManageOwnRecords(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	patientID := uuid.NewString()
	if err := AssignPatientOwnerRole(ctx, auth, patientID); err != nil {
		t.Fatalf("AssignPatientOwnerRole() error = %v", err)
	}

	domain := UserDomain(patientID)
	subject := GroupSubject(patientID)

	for _, res := range []Resource{
		ResourceProfile,
		ResourceMedication,
		ResourceDailyLog,
		ResourceHealthLog,
		ResourceAppointment,
		ResourceFamilyMember,
	} {
		for _, act := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList} {
			allowed, err := auth.Enforce(ctx, subject, domain, res, act)
			if err != nil {
				t.Fatalf("Enforce(%s, %s) error = %v", res, act, err)
			}
			if !allowed {
				t.Errorf("owner should be allowed %s on %s", act, res)
			}
		}
	}

	for _, res := range []Resource{ResourceExport, ResourceStream} {
		allowed, err := auth.Enforce(ctx, subject, domain, res, ActionRead)
		if err != nil {
			t.Fatalf("Enforce(%s, read) error = %v", res, err)
		}
		if !allowed {
			t.Errorf("owner should be allowed to read %s", res)
		}
	}
}

func TestCaregiverViewerIsReadOnly(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	patientID := uuid.NewString()
	caregiverID := uuid.NewString()

	if err := AssignCaregiverViewerRole(ctx, auth, caregiverID, patientID); err != nil {
		t.Fatalf("AssignCaregiverViewerRole() error = %v", err)
	}

	domain := UserDomain(patientID)
	subject := GroupSubject(caregiverID)

	allowed, err := auth.Enforce(ctx, subject, domain, ResourceMedication, ActionRead)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if !allowed {
		t.Error("caregiver should be allowed to read watched patient's medications")
	}

	for _, act := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		allowed, err := auth.Enforce(ctx, subject, domain, ResourceMedication, act)
		if err != nil {
			t.Fatalf("Enforce(%s) error = %v", act, err)
		}
		if allowed {
			t.Errorf("caregiver must not be allowed to %s medications", act)
		}
	}
}

func TestCaregiverHasNoAccessToUnlinkedPatient(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	watched := uuid.NewString()
	other := uuid.NewString()
	caregiverID := uuid.NewString()

	if err := AssignCaregiverViewerRole(ctx, auth, caregiverID, watched); err != nil {
		t.Fatalf("AssignCaregiverViewerRole() error = %v", err)
	}

	allowed, err := auth.Enforce(ctx, GroupSubject(caregiverID), UserDomain(other), ResourceHealthLog, ActionRead)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if allowed {
		t.Error("caregiver must not see a patient they never linked")
	}
}

func TestUnlinkRevokesAccess(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	patientID := uuid.NewString()
	caregiverID := uuid.NewString()

	if err := AssignCaregiverViewerRole(ctx, auth, caregiverID, patientID); err != nil {
		t.Fatalf("AssignCaregiverViewerRole() error = %v", err)
	}
	if err := RemoveCaregiverViewerRole(ctx, auth, caregiverID, patientID); err != nil {
		t.Fatalf("RemoveCaregiverViewerRole() error = %v", err)
	}

	allowed, err := auth.Enforce(ctx, GroupSubject(caregiverID), UserDomain(patientID), ResourceProfile, ActionRead)
	if err != nil {
		t.Fatalf("Enforce() error = %v", err)
	}
	if allowed {
		t.Error("unlinked caregiver must lose read access")
	}
}

func TestMustEnforceReturnsErrForbidden(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	err := auth.MustEnforce(ctx, GroupSubject(uuid.NewString()), UserDomain(uuid.NewString()), ResourceProfile, ActionRead)
	if err != ErrForbidden {
		t.Errorf("MustEnforce() = %v, want ErrForbidden", err)
	}
}

func TestEnforceRejectsUnknownResource(t *testing.T) {
	ctx := context.Background()
	auth := seededAuth(t)

	_, err := auth.Enforce(ctx, GroupSubject(uuid.NewString()), DomainSys, Resource("bogus"), ActionRead)
	if err == nil {
		t.Error("Enforce() with unknown resource should error")
	}
}
