package ports

import "tasktrack/internal/core/domain"

type AuthService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(userID uint64, email string) (string, error)
	VerifyToken(token string) (domain.Identity, error)
}
