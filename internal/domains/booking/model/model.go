package model

import (
	"time"

	"github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldTourID       = "tour_id"
	FieldQuoteID      = "quote_id"
	FieldStartDate    = "start_date"
	FieldParticipants = "participants"
	FieldTotalPrice   = "total_price"
	FieldCurrency     = "currency"
	FieldStatus       = "status"
	FieldPaymentState = "payment_state"
	FieldNotes        = "notes"
)

// Booking is a confirmed-trip record. Exactly one of TourID and QuoteID is
// set: a booking comes either from the catalog or from an approved quote.
type Booking struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	TourID       *string   `db:"tour_id"`
	QuoteID      *string   `db:"quote_id"`
	StartDate    time.Time `db:"start_date"`
	Participants int       `db:"participants"`
	TotalPrice   float64   `db:"total_price"`
	Currency     string    `db:"currency"`
	Status       string    `db:"status"`
	PaymentState string    `db:"payment_state"`
	Notes        *string   `db:"notes"`
	model.Metadata
}
