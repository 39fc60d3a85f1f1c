package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// accessClaims matches the claims the backend puts in access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Token is the client's view of an access token. The signature is not
// checked here: the backend verifies every request, the client only needs
// the learner identity and expiry.
type Token struct {
	Raw       string
	LearnerID uuid.UUID
	Role      string
	Issuer    string
	ExpiresAt time.Time // zero when the token carries no expiry
}

// ParseToken decodes an access token. Errors wrap domain.ErrUnauthorized.
func ParseToken(raw string) (*Token, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	learnerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject UUID: %w", domain.ErrUnauthorized, err)
	}

	tok := &Token{
		Raw:       raw,
		LearnerID: learnerID,
		Role:      claims.Role,
		Issuer:    claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		tok.ExpiresAt = claims.ExpiresAt.Time
	}
	return tok, nil
}

// Expired reports whether the token is past its expiry at now.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// TimeLeft returns the remaining validity, or 0 when expired or unbounded.
func (t *Token) TimeLeft(now time.Time) time.Duration {
	if t.ExpiresAt.IsZero() || t.Expired(now) {
		return 0
	}
	return t.ExpiresAt.Sub(now)
}
