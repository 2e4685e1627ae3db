package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entuser "github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/pkg/authorize"
)

const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	// SelectRole commits a fresh account to one side of the app. The choice
	// is permanent; patients additionally get their owner grant so the
	// record surfaces open up immediately.
	SelectRole(ctx context.Context, userID uuid.UUID, role string) (*repo.User, error)
}

type userService struct {
	db        *repo.Client
	authorize authorize.IAuthorization
	events    *events.Publisher
}

func New(db *repo.Client, authz authorize.IAuthorization, pub *events.Publisher) Service {
	return &userService{
		db:        db,
		authorize: authz,
		events:    pub,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (s *userService) SelectRole(ctx context.Context, userID uuid.UUID, role string) (*repo.User, error) {
	if role != RolePatient && role != RoleCaregiver {
		return nil, ErrInvalidRole
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Role != nil {
		return nil, ErrRoleAlreadySet
	}

	u, err = s.db.User.UpdateOne(u).SetRole(entuser.Role(role)).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}

	if err := authorize.AssignUserSelfRole(ctx, s.authorize, userID.String()); err != nil {
		return nil, fmt.Errorf("assign self role: %w", err)
	}
	if role == RolePatient {
		if err := authorize.AssignPatientOwnerRole(ctx, s.authorize, userID.String()); err != nil {
			return nil, fmt.Errorf("assign owner role: %w", err)
		}
	}

	s.events.UserDocChanged(userID.String())

	return u, nil
}
