package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Account is a registered principal holding a credit balance.
// PasswordHash is nil for accounts created through an external identity
// provider.
type Account struct {
	ID           string
	Email        string
	PasswordHash *string
	Credits      int
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
