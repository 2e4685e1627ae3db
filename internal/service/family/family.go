package family

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entfam "github.com/Warinthorn/carelink_backend/internal/repo/familymember"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// defaultRegion is used when a contact number has no country prefix.
const defaultRegion = "TH"

const (
	RelationChild      = "child"
	RelationGrandchild = "grandchild"
	RelationCaregiver  = "caregiver"
)

var validRelations = map[string]bool{
	RelationChild:      true,
	RelationGrandchild: true,
	RelationCaregiver:  true,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name     string
	Phone    string
	Relation string
}

type UpdateRequest struct {
	Name     *string
	Phone    *string
	Relation *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*repo.FamilyMember, error)
	Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.FamilyMember, error)
	Update(ctx context.Context, patientID, memberID uuid.UUID, req UpdateRequest) (*repo.FamilyMember, error)
	Delete(ctx context.Context, patientID, memberID uuid.UUID) error
}

type familyService struct {
	db     *repo.Client
	events *events.Publisher
}

func New(db *repo.Client, pub *events.Publisher) Service {
	return &familyService{db: db, events: pub}
}

func (s *familyService) List(ctx context.Context, patientID uuid.UUID) ([]*repo.FamilyMember, error) {
	members, err := s.db.FamilyMember.Query().
		Where(entfam.PatientID(patientID)).
		Order(entfam.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	return members, nil
}

func (s *familyService) Create(ctx context.Context, patientID uuid.UUID, req CreateRequest) (*repo.FamilyMember, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameMissing
	}
	if !validRelations[req.Relation] {
		return nil, ErrInvalidRelation
	}
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	m, err := s.db.FamilyMember.Create().
		SetPatientID(patientID).
		SetName(req.Name).
		SetPhone(phone).
		SetRelation(entfam.Relation(req.Relation)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create family member: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionFamily, m.ID.String())
	return m, nil
}

func (s *familyService) Update(ctx context.Context, patientID, memberID uuid.UUID, req UpdateRequest) (*repo.FamilyMember, error) {
	m, err := s.get(ctx, patientID, memberID)
	if err != nil {
		return nil, err
	}

	upd := s.db.FamilyMember.UpdateOne(m)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameMissing
		}
		upd = upd.SetName(name)
	}
	if req.Relation != nil {
		if !validRelations[*req.Relation] {
			return nil, ErrInvalidRelation
		}
		upd = upd.SetRelation(entfam.Relation(*req.Relation))
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(phone)
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update family member: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionFamily, m.ID.String())
	return m, nil
}

func (s *familyService) Delete(ctx context.Context, patientID, memberID uuid.UUID) error {
	m, err := s.get(ctx, patientID, memberID)
	if err != nil {
		return err
	}

	if err := s.db.FamilyMember.DeleteOne(m).Exec(ctx); err != nil {
		return fmt.Errorf("delete family member: %w", err)
	}

	s.events.CollectionChanged(patientID.String(), docpath.CollectionFamily, memberID.String())
	return nil
}

func (s *familyService) get(ctx context.Context, patientID, memberID uuid.UUID) (*repo.FamilyMember, error) {
	m, err := s.db.FamilyMember.Query().
		Where(entfam.ID(memberID), entfam.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query family member: %w", err)
	}
	return m, nil
}

// normalizePhone validates a contact number and stores it in E.164 form.
// Empty is allowed; not every family member entry carries a number.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
