package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "gearguard/pkg/errors"
)

type JwtCustomClaims struct {
	UserID         uint64 `json:"userId"`
	Role           string `json:"role"`
	IsRefreshToken bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(userID uint64, role string) (access string, refresh string, err error)
	ValidateToken(tokenString string) (*JwtCustomClaims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}

type jwtService struct {
	secretKey       string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenExp:  accessTokenExp,
		refreshTokenExp: refreshTokenExp,
	}
}

func (s *jwtService) GenerateTokens(userID uint64, role string) (string, string, error) {
	now := time.Now()

	sign := func(isRefresh bool, ttl time.Duration) (string, error) {
		claims := &JwtCustomClaims{
			UserID:         userID,
			Role:           role,
			IsRefreshToken: isRefresh,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(s.secretKey))
	}

	access, err := sign(false, s.accessTokenExp)
	if err != nil {
		return "", "", err
	}
	refresh, err := sign(true, s.refreshTokenExp)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	return claims, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration  { return s.accessTokenExp }
func (s *jwtService) RefreshTokenTTL() time.Duration { return s.refreshTokenExp }
