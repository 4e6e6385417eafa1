package domain

import "time"

type User struct {
	ID        uint64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID uint64
	Email  string
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}
