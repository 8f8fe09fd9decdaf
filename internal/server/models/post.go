package models

import "time"

// Post is a piece of content paid for with CreditsUsed credits of its owner.
// CreditsUsed never changes after creation and is refunded on delete.
type Post struct {
	ID          string
	OwnerID     string
	Content     string
	CreditsUsed int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
