package model

import "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID            = "id"
	FieldDestinationID = "destination_id"
	FieldName          = "name"
	FieldDays          = "days"
	FieldPrice         = "price"
	FieldCurrency      = "currency"
	FieldSummary       = "summary"
	FieldItinerary     = "itinerary"
	FieldActive        = "active"
)

type Tour struct {
	ID            string  `db:"id"`
	DestinationID string  `db:"destination_id"`
	Name          string  `db:"name"`
	Days          int     `db:"days"`
	Price         float64 `db:"price"`
	Currency      string  `db:"currency"`
	Summary       string  `db:"summary"`
	Itinerary     string  `db:"itinerary"`
	Active        bool    `db:"active"`
	model.Metadata
}
