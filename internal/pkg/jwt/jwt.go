package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Service struct {
	secret        []byte
	refreshSecret []byte
	ttl           time.Duration
	refreshTTL    time.Duration
}

type Claims struct {
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	CompanyID *int64 `json:"company_id,omitempty"`
	jwtlib.RegisteredClaims
}

func New(secret, refreshSecret string, ttl, refreshTTL time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		ttl:           ttl,
		refreshTTL:    refreshTTL,
	}
}

func (s *Service) GenerateToken(userID int64, role string, companyID *int64) (string, error) {
	return s.generate(userID, role, companyID, s.secret, s.ttl)
}

func (s *Service) GenerateRefreshToken(userID int64, role string, companyID *int64) (string, error) {
	return s.generate(userID, role, companyID, s.refreshSecret, s.refreshTTL)
}

func (s *Service) generate(userID int64, role string, companyID *int64, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Role:      role,
		CompanyID: companyID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	return s.validate(tokenStr, s.secret)
}

func (s *Service) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return s.validate(tokenStr, s.refreshSecret)
}

func (s *Service) validate(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
