package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type CreateQuoteRequest struct {
	ContactName  string  `json:"contact_name"            validate:"required,max=100"`
	ContactEmail string  `json:"contact_email"           validate:"required,email,max=100"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	Destination  string  `json:"destination"             validate:"required,max=200"`
	StartDate    string  `json:"start_date"              validate:"omitempty"`
	EndDate      string  `json:"end_date"                validate:"omitempty"`
	DurationDays int     `json:"duration_days"           validate:"required,gt=0"`
	Participants int     `json:"participants"            validate:"required,gt=0"`
	BudgetRange  *string `json:"budget_range,omitempty"  validate:"omitempty,max=100"`
	Notes        *string `json:"notes,omitempty"`
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func (c *CreateQuoteRequest) ToModel(user string) (model.Quote, error) {
	startDate, err := parseDate(c.StartDate)
	if err != nil {
		return model.Quote{}, err
	}

	endDate, err := parseDate(c.EndDate)
	if err != nil {
		return model.Quote{}, err
	}

	return model.Quote{
		ID:           uuid.NewString(),
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Destination:  c.Destination,
		StartDate:    startDate,
		EndDate:      endDate,
		DurationDays: c.DurationDays,
		Participants: c.Participants,
		BudgetRange:  c.BudgetRange,
		Notes:        c.Notes,
		Status:       constant.QuoteStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateQuoteResponse struct {
	ID string `json:"id"`
}

// UpdateStatusRequest moves a quote to any status in the vocabulary. A price is
// required when quoting and must come with an ISO currency code or the USD
// default kicks in.
type UpdateStatusRequest struct {
	Status         string   `db:"status"          json:"status"          validate:"required,oneof=pending reviewing quoted approved rejected"`
	QuotedPrice    *float64 `db:"quoted_price"    json:"quoted_price"    validate:"omitempty,gt=0"`
	QuotedCurrency *string  `db:"quoted_currency" json:"quoted_currency" validate:"omitempty,len=3"`
	AdminNotes     *string  `db:"admin_notes"     json:"admin_notes"     validate:"omitempty,max=2000"`
}

type QuoteResponse struct {
	ID             string   `json:"id"`
	UserID         *string  `json:"user_id,omitempty"`
	ContactName    string   `json:"contact_name"`
	ContactEmail   string   `json:"contact_email"`
	ContactPhone   *string  `json:"contact_phone,omitempty"`
	Destination    string   `json:"destination"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	DurationDays   int      `json:"duration_days"`
	Participants   int      `json:"participants"`
	BudgetRange    *string  `json:"budget_range,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	Status         string   `json:"status"`
	QuotedPrice    *float64 `json:"quoted_price,omitempty"`
	QuotedCurrency *string  `json:"quoted_currency,omitempty"`
	AdminNotes     *string  `json:"admin_notes,omitempty"`
	gDto.Metadata
}

func (r *QuoteResponse) FromModel(mod model.Quote) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.ContactName = mod.ContactName
	r.ContactEmail = mod.ContactEmail
	r.ContactPhone = mod.ContactPhone
	r.Destination = mod.Destination

	if mod.StartDate != nil {
		formatted := mod.StartDate.Format("2006-01-02")
		r.StartDate = &formatted
	}

	if mod.EndDate != nil {
		formatted := mod.EndDate.Format("2006-01-02")
		r.EndDate = &formatted
	}

	r.DurationDays = mod.DurationDays
	r.Participants = mod.Participants
	r.BudgetRange = mod.BudgetRange
	r.Notes = mod.Notes
	r.Status = mod.Status
	r.QuotedPrice = mod.QuotedPrice
	r.QuotedCurrency = mod.QuotedCurrency
	r.AdminNotes = mod.AdminNotes
	r.Metadata.FromModel(mod.Metadata)
}

type GetQuotesResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetQuotesResponse) FromModels(models []model.Quote, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Quotes = make([]QuoteResponse, len(models))
	for i, mod := range models {
		r.Quotes[i].FromModel(mod)
	}
}
