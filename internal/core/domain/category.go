package domain

import "time"

type Category struct {
	ID        uint64
	Name      string
	UserID    uint64
	CreatedAt time.Time
}
