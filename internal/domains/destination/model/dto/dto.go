package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type CreateDestinationRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Country     string  `json:"country"     validate:"required,min=2,max=100"`
	Region      *string `json:"region,omitempty"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
}

func (c *CreateDestinationRequest) ToModel(user string) model.Destination {
	return model.Destination{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Country:     c.Country,
		Region:      c.Region,
		Description: c.Description,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDestinationRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,min=2,max=100"`
	Country     string  `db:"country"     json:"country"     validate:"omitempty,min=2,max=100"`
	Region      *string `db:"region"      json:"region"      validate:"omitempty"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=5000"`
	Active      *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type DestinationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Region      *string `json:"region,omitempty"`
	Description string  `json:"description"`
	HeroImage   *string `json:"hero_image,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(mod model.Destination) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Country = mod.Country
	r.Region = mod.Region
	r.Description = mod.Description
	r.HeroImage = mod.HeroImage
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Destinations = make([]DestinationResponse, len(models))
	for i, mod := range models {
		r.Destinations[i].FromModel(mod)
	}
}

type UploadHeroImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadHeroImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}
