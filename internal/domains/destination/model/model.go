package model

import "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"

const (
	TableName  = "destinations"
	EntityName = "destination"

	FieldID          = "id"
	FieldName        = "name"
	FieldCountry     = "country"
	FieldRegion      = "region"
	FieldDescription = "description"
	FieldHeroImage   = "hero_image"
	FieldActive      = "active"
)

type Destination struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Country     string  `db:"country"`
	Region      *string `db:"region"`
	Description string  `db:"description"`
	HeroImage   *string `db:"hero_image"`
	Active      bool    `db:"active"`
	model.Metadata
}
