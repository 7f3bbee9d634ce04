package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the payload carried by the session cookie.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager constructs a manager with the given secret and token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token whose subject is the session id.
func (m *TokenManager) Issue(sessionID string) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("session secret must not be empty")
	}
	if sessionID == "" {
		return "", errors.New("session id must not be empty")
	}

	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies the token signature and returns the session id together
// with the time the token was issued.
func (m *TokenManager) Parse(token string) (string, time.Time, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", time.Time{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", time.Time{}, errors.New("invalid session claims")
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	return claims.Subject, issuedAt, nil
}

// NeedsRenewal reports whether a token issued at issuedAt has used up half
// of its lifetime. Renewing such tokens on use makes the session expire
// after a period of inactivity rather than a fixed time after it started.
func (m *TokenManager) NeedsRenewal(issuedAt time.Time) bool {
	return issuedAt.IsZero() || m.now().Sub(issuedAt) >= m.ttl/2
}
