package model

import "time"

const (
	TableName  = "quote_tokens"
	EntityName = "quote_token"

	FieldID        = "id"
	FieldQuoteID   = "quote_id"
	FieldToken     = "token"
	FieldEmail     = "email"
	FieldExpiresAt = "expires_at"
	FieldUsedAt    = "used_at"
	FieldCreatedAt = "created_at"
)

// QuoteToken is a single-use account-linking token. Rows are immutable except
// for the used_at stamp set on consumption.
type QuoteToken struct {
	ID        string     `db:"id"`
	QuoteID   string     `db:"quote_id"`
	Token     string     `db:"token"`
	Email     string     `db:"email"`
	ExpiresAt time.Time  `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Usable reports whether the token can still be redeemed at the given instant.
func (t *QuoteToken) Usable(now time.Time) bool {
	return t.ID != "" && t.UsedAt == nil && t.ExpiresAt.After(now)
}
