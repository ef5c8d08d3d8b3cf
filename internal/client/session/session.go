// Package session keeps the persisted session credential of the client.
//
// The credential is an opaque bearer token stored in the local metadata
// table under KeyToken, the same name the browser client used for local
// storage. Its presence means the user is authenticated. When the token
// happens to be a JWT its claims are decoded, without verification, for
// display only; the backend is the only party that checks it.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/snsclone/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/snsclone/internal/common"
	"github.com/dmitrijs2005/snsclone/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	KeyToken = "localJWT"
	KeyEmail = "email"
)

// Claims are the parts of the access token the client cares about.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Session is the in-memory mirror of the stored credential. Load must be
// called once at start; Save and Clear write through to the database.
type Session struct {
	db *sql.DB

	mu     sync.RWMutex
	token  string
	email  string
	claims *Claims
}

func New(db *sql.DB) *Session {
	return &Session{db: db}
}

func (s *Session) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load reads the stored credential.
func (s *Session) Load(ctx context.Context) error {
	vals, err := s.repo(s.db).List(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	token, email := string(vals[KeyToken]), string(vals[KeyEmail])

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.email, s.claims = "", "", nil
	if token == "" {
		return nil
	}
	s.token, s.email, s.claims = token, email, decodeClaims(token)
	return nil
}

// Save persists token and email in one transaction and makes them current.
// An empty token is refused.
func (s *Session) Save(ctx context.Context, token, email string) error {
	if token == "" {
		return fmt.Errorf("save session: %w", common.ErrInvalidToken)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, KeyEmail, []byte(email))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.token, s.email, s.claims = token, email, decodeClaims(token)
	s.mu.Unlock()
	return nil
}

// Clear removes the stored session. Clearing an anonymous session is a no-op.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.token, s.email, s.claims = "", "", nil
	s.mu.Unlock()
	return nil
}

// Token returns the current credential or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// UserID is the user_id claim of the current token, if it carries one.
func (s *Session) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil || s.claims.UserID == 0 {
		return 0, false
	}
	return s.claims.UserID, true
}

// ExpiresAt is the exp claim of the current token.
func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil || s.claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.claims.ExpiresAt.Time, true
}

// decodeClaims returns nil for tokens that are not JWTs.
func decodeClaims(token string) *Claims {
	c, err := ParseClaims(token)
	if err != nil {
		return nil
	}
	return c
}

// ParseClaims decodes a JWT without checking its signature.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	return claims, nil
}
