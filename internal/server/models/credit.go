package models

import "time"

type CreditKind string

const (
	CreditDebit  CreditKind = "debit"
	CreditRefund CreditKind = "refund"
)

// CreditEntry is an append-only journal row for a balance change.
type CreditEntry struct {
	ID           string
	AccountID    string
	PostID       string
	Kind         CreditKind
	Amount       int
	BalanceAfter int
	CreatedAt    time.Time
}
