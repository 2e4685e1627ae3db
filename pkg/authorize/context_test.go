package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/pkg/reqctx"
)

// testClaims implements reqctx.AuthClaims for testing.
type testClaims struct {
	userID uuid.UUID
}

func (c *testClaims) GetUserID() uuid.UUID     { return c.userID }
func (c *testClaims) GetSessionID() *uuid.UUID { return nil }
func (c *testClaims) GetTokenType() string     { return "access" }
func (c *testClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &testClaims{userID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name:     "no claims in context",
			setupCtx: context.Background,
			wantErr:  true,
		},
		{
			name: "nil user id",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &testClaims{userID: uuid.Nil})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := SubjectFromContext(tt.setupCtx())
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubjectFromContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && subject != tt.wantSubject {
				t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
			}
		})
	}
}

func TestDomainFromContext(t *testing.T) {
	userID := uuid.New()
	ctx := reqctx.WithClaims(context.Background(), &testClaims{userID: userID})

	domain, err := DomainFromContext(ctx)
	if err != nil {
		t.Fatalf("DomainFromContext() error = %v", err)
	}
	if domain != UserDomain(userID.String()) {
		t.Errorf("DomainFromContext() = %q, want %q", domain, UserDomain(userID.String()))
	}
}
