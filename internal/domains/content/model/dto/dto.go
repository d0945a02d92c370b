package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/model"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type UpsertContentRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

func (c *UpsertContentRequest) ToModel(key, user string) model.Content {
	return model.Content{
		ID:    uuid.NewString(),
		Key:   key,
		Value: string(c.Value),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ValueUpdate shapes the update map for an existing block.
type ValueUpdate struct {
	Value string `db:"value"`
}

type ContentResponse struct {
	ID    string          `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
	gDto.Metadata
}

func (r *ContentResponse) FromModel(mod model.Content) {
	r.ID = mod.ID
	r.Key = mod.Key
	r.Value = json.RawMessage(mod.Value)
	r.Metadata.FromModel(mod.Metadata)
}

type GetContentsResponse struct {
	Contents []ContentResponse `json:"contents"`
}

func (r *GetContentsResponse) FromModels(models []model.Content) {
	r.Contents = make([]ContentResponse, len(models))
	for i, mod := range models {
		r.Contents[i].FromModel(mod)
	}
}
