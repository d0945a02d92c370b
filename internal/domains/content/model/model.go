package model

import "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"

const (
	TableName  = "contents"
	EntityName = "content"

	FieldID    = "id"
	FieldKey   = "key"
	FieldValue = "value"
)

// Content is a site content block: a unique key mapping to an arbitrary JSON
// payload the frontend renders (hero copy, FAQ entries, office hours).
type Content struct {
	ID    string `db:"id"`
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
