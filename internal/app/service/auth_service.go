package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const (
	bcryptCost = 10
	tokenTTL   = 7 * 24 * time.Hour
)

var ErrMissingSecret = errors.New("jwt secret is not configured")

type AuthService struct {
	secret []byte
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *AuthService) IssueToken(userID uint64, email string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) VerifyToken(token string) (domain.Identity, error) {
	if len(s.secret) == 0 {
		return domain.Identity{}, ErrMissingSecret
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{UserID: uint64(userID), Email: email}, nil
}
