package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entuser "github.com/Warinthorn/carelink_backend/internal/repo/user"
	"github.com/Warinthorn/carelink_backend/pkg/email"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
	"github.com/Warinthorn/carelink_backend/pkg/util/codes"
	"github.com/Warinthorn/carelink_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyVerify returns the Redis key for an email verification token.
func redisKeyVerify(token string) string { return "verify:" + token }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	VerifyEmail(ctx context.Context, token string) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db         *repo.Client
	rdb        *redis.Client
	mailer     *email.Client
	paseto     *pasetotoken.Manager
	cfg        *config.Config
	hashParams *password.Params
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:         db,
		rdb:        rdb,
		mailer:     mailer,
		paseto:     paseto,
		cfg:        cfg,
		hashParams: hashParamsFromConfig(cfg),
	}
}

func hashParamsFromConfig(cfg *config.Config) *password.Params {
	hc := password.FromCentralConfig(cfg.Password)
	if hc.MemoryKiB == 0 {
		hc = password.DefaultConfig()
	}
	return hc.ToParams()
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	passHash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetEmailVerified(false)
	if req.Name != "" {
		q = q.SetName(req.Name)
	}

	u, err := q.Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return s.sendVerificationEmail(ctx, u)
}

// ---------------------------------------------------------------------------
// VerifyEmail
// ---------------------------------------------------------------------------

func (s *authService) VerifyEmail(ctx context.Context, token string) (*AuthTokens, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrVerifyTokenInvalid
	}

	uidStr, err := s.rdb.Get(ctx, redisKeyVerify(token)).Result()
	if err == redis.Nil {
		return nil, ErrVerifyTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("redis get verify token: %w", err)
	}

	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return nil, ErrVerifyTokenInvalid
	}

	// Token is single-use
	s.rdb.Del(ctx, redisKeyVerify(token))

	u, err := s.db.User.UpdateOneID(uid).SetEmailVerified(true).Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVerifyTokenInvalid
		}
		return nil, fmt.Errorf("update email_verified: %w", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	upd := s.db.User.UpdateOne(u).SetLastLoginAt(time.Now())

	// Transparent hash upgrade when argon2 parameters change.
	if password.NeedsRehashWithParams(u.PasswordHash, s.hashParams) {
		if newHash, err := password.HashWithParams(req.Password, s.hashParams); err == nil {
			upd.SetPasswordHash(newHash)
		}
	}

	if _, err := upd.Save(ctx); err != nil {
		slog.Warn("failed to record login", "user_id", u.ID, "error", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendVerificationEmail(ctx context.Context, u *repo.User) error {
	token, err := codes.GenerateVerificationToken()
	if err != nil {
		return fmt.Errorf("generate verification token: %w", err)
	}

	verifyTTL := time.Duration(s.cfg.Authentication.VerifyTTLMinutes) * time.Minute
	if verifyTTL <= 0 {
		verifyTTL = 24 * time.Hour
	}

	if err := s.rdb.Set(ctx, redisKeyVerify(token), u.ID.String(), verifyTTL).Err(); err != nil {
		return fmt.Errorf("store verification token: %w", err)
	}

	var name string
	if u.Name != nil {
		name = *u.Name
	}
	msg := email.BuildVerificationEmail(email.VerificationEmailData{
		Name:            name,
		Email:           u.Email,
		VerificationURL: fmt.Sprintf("https://%s/verify?token=%s", s.cfg.Server.Domain, token),
	})
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Log but don't fail — mail failure shouldn't block registration
		slog.Warn("failed to send verification email", "user_id", u.ID, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
