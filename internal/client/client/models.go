package client

import "time"

type User struct {
	ID      string
	Email   string
	Credits int
	Role    string
}

type Post struct {
	ID          string
	UserID      string
	Content     string
	CreditsUsed int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreditEntry is one line of the account's credit journal. Kind is "debit"
// or "refund".
type CreditEntry struct {
	ID           string
	PostID       string
	Kind         string
	Amount       int
	BalanceAfter int
	CreatedAt    time.Time
}

// Session is what the server hands back on register or login.
type Session struct {
	Token string
	User  User
}
