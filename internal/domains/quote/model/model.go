package model

import (
	"time"

	"github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
)

const (
	TableName  = "quotes"
	EntityName = "quote"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldContactName    = "contact_name"
	FieldContactEmail   = "contact_email"
	FieldContactPhone   = "contact_phone"
	FieldDestination    = "destination"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldBudgetRange    = "budget_range"
	FieldDurationDays   = "duration_days"
	FieldParticipants   = "participants"
	FieldNotes          = "notes"
	FieldStatus         = "status"
	FieldQuotedPrice    = "quoted_price"
	FieldQuotedCurrency = "quoted_currency"
	FieldAdminNotes     = "admin_notes"
)

// Quote is a trip-quote request. UserID stays nil until the requester links an
// account through a quote token, and is never cleared once set.
type Quote struct {
	ID             string     `db:"id"`
	UserID         *string    `db:"user_id"`
	ContactName    string     `db:"contact_name"`
	ContactEmail   string     `db:"contact_email"`
	ContactPhone   *string    `db:"contact_phone"`
	Destination    string     `db:"destination"`
	StartDate      *time.Time `db:"start_date"`
	EndDate        *time.Time `db:"end_date"`
	DurationDays   int        `db:"duration_days"`
	Participants   int        `db:"participants"`
	BudgetRange    *string    `db:"budget_range"`
	Notes          *string    `db:"notes"`
	Status         string     `db:"status"`
	QuotedPrice    *float64   `db:"quoted_price"`
	QuotedCurrency *string    `db:"quoted_currency"`
	AdminNotes     *string    `db:"admin_notes"`
	model.Metadata
}
