package dto

import (
	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type CreateTourRequest struct {
	DestinationID string  `json:"destination_id" validate:"required"`
	Name          string  `json:"name"           validate:"required,min=3,max=150"`
	Days          int     `json:"days"           validate:"required,gt=0"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	Currency      string  `json:"currency"       validate:"omitempty,len=3"`
	Summary       string  `json:"summary"        validate:"omitempty,max=500"`
	Itinerary     string  `json:"itinerary"      validate:"omitempty"`
}

func (c *CreateTourRequest) ToModel(user string) model.Tour {
	currency := c.Currency
	if currency == "" {
		currency = constant.DefaultCurrency
	}

	return model.Tour{
		ID:            uuid.NewString(),
		DestinationID: c.DestinationID,
		Name:          c.Name,
		Days:          c.Days,
		Price:         c.Price,
		Currency:      currency,
		Summary:       c.Summary,
		Itinerary:     c.Itinerary,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTourRequest struct {
	Name      string   `db:"name"      json:"name"      validate:"omitempty,min=3,max=150"`
	Days      *int     `db:"days"      json:"days"      validate:"omitempty,gt=0"`
	Price     *float64 `db:"price"     json:"price"     validate:"omitempty,gt=0"`
	Currency  string   `db:"currency"  json:"currency"  validate:"omitempty,len=3"`
	Summary   string   `db:"summary"   json:"summary"   validate:"omitempty,max=500"`
	Itinerary string   `db:"itinerary" json:"itinerary" validate:"omitempty"`
	Active    *bool    `db:"active"    json:"active"    validate:"omitempty"`
}

type TourResponse struct {
	ID            string  `json:"id"`
	DestinationID string  `json:"destination_id"`
	Name          string  `json:"name"`
	Days          int     `json:"days"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Summary       string  `json:"summary"`
	Itinerary     string  `json:"itinerary"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(mod model.Tour) {
	r.ID = mod.ID
	r.DestinationID = mod.DestinationID
	r.Name = mod.Name
	r.Days = mod.Days
	r.Price = mod.Price
	r.Currency = mod.Currency
	r.Summary = mod.Summary
	r.Itinerary = mod.Itinerary
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
