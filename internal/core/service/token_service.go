package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayhub/hotel-booking/internal/core/domain"
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

// tokenClaims is the JWT payload: subject is the account email, user_id and
// user_role are custom claims.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"user_role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. The key and
// lifetime are fixed at construction and read-only afterwards, so concurrent
// use needs no synchronisation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue builds and signs a token for the given identity.
func (s *TokenService) Issue(email, role, userID string) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry. Every failure mode, whether a
// malformed token, a bad signature, or expiry, is collapsed into
// domain.ErrInvalidToken so callers learn nothing about which check failed.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	out := &ports.TokenClaims{
		Email:  claims.Subject,
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
