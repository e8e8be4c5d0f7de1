package services

import (
	"errors"
	"fmt"
	"time"

	"scorecast/models"
	"scorecast/store"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService struct {
	store  *store.Store
	secret []byte
	ttl    time.Duration
}

func NewAuthService(st *store.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		store:  st,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Claims is the payload carried by a signed token.
type Claims struct {
	UserID   int         `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// PublicUser is the user info safe to return to clients: no password, no
// running total.
type PublicUser struct {
	ID       int         `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Authenticate checks the credentials against the user collection (exact,
// case-sensitive match) and issues a signed token with the user's identity
// and role. Returns ErrInvalidCredentials when no user matches.
func (s *AuthService) Authenticate(username, password string) (*AuthResult, error) {
	user, err := s.store.UserByCredentials(username, password)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResult{
		Token: signed,
		User: PublicUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// VerifyToken returns the claims carried by the token, or nil if the token
// is expired, malformed or signed with the wrong key. It never returns an
// error: callers treat nil uniformly as "unauthenticated".
func (s *AuthService) VerifyToken(tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}
