package identity

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints and verifies the local HS256 session tokens handed to a
// portal after the simulated login. The signing key lives only in memory, so
// tokens do not survive a restart; the session is memory-only and resets
// with the process.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer creates an issuer with a freshly generated in-memory key.
func NewTokenIssuer(ttl time.Duration) (*TokenIssuer, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenIssuer{key: key, ttl: ttl, now: time.Now}, nil
}

// SetClock overrides the issuer's clock. Test hook.
func (t *TokenIssuer) SetClock(now func() time.Time) { t.now = now }

// Issue signs a session token for u.
func (t *TokenIssuer) Issue(u User) (string, error) {
	if !u.Role.Valid() {
		return "", fmt.Errorf("invalid role: %s", u.Role)
	}
	now := t.now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"name": u.FullName(),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the subject id and role.
func (t *TokenIssuer) Verify(token string) (string, Role, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil {
		return "", "", fmt.Errorf("parse session token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid session token")
	}
	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := Role(roleStr)
	if sub == "" || !role.Valid() {
		return "", "", fmt.Errorf("malformed session claims")
	}
	return sub, role, nil
}
