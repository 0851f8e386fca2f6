package auth

import (
	"errors"
	"time"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the stateless HS256 session tokens.
// It is the only owner of the signing secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token carrying username as the subject plus issued-at and
// expiry claims. Extra claims are merged first, so they cannot shadow the
// reserved ones.
func (s *TokenService) Issue(username string, extra map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}

	now := time.Now()
	claims["sub"] = username
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the subject username.
// Expired tokens fail with domain.ErrTokenExpired; everything else that is
// wrong with a token maps to domain.ErrTokenInvalid.
func (s *TokenService) Validate(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	return subject(token)
}

// ExtractUsername decodes the subject claim without verifying the
// signature or expiry. Logout uses it to identify whose stored token to
// clear; it is never an authentication decision.
func (s *TokenService) ExtractUsername(raw string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return "", domain.ErrTokenInvalid
	}
	return subject(token)
}

func subject(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", domain.ErrTokenInvalid
	}
	return username, nil
}
