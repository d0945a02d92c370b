package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type CreateBookingRequest struct {
	TourID       *string `json:"tour_id,omitempty"`
	QuoteID      *string `json:"quote_id,omitempty"`
	StartDate    string  `json:"start_date"   validate:"required"`
	Participants int     `json:"participants" validate:"required,gt=0"`
	Notes        *string `json:"notes,omitempty"`
}

func (c *CreateBookingRequest) ToModel(userID string, totalPrice float64, currency string) (model.Booking, error) {
	startDate, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       userID,
		TourID:       c.TourID,
		QuoteID:      c.QuoteID,
		StartDate:    startDate,
		Participants: c.Participants,
		TotalPrice:   totalPrice,
		Currency:     currency,
		Status:       constant.BookingStatusPending,
		PaymentState: constant.PaymentStateUnpaid,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type UpdatePaymentStateRequest struct {
	PaymentState string `db:"payment_state" json:"payment_state" validate:"required,oneof=unpaid deposit_paid fully_paid"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	TourID       *string `json:"tour_id,omitempty"`
	QuoteID      *string `json:"quote_id,omitempty"`
	StartDate    string  `json:"start_date"`
	Participants int     `json:"participants"`
	TotalPrice   float64 `json:"total_price"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	PaymentState string  `json:"payment_state"`
	Notes        *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.TourID = mod.TourID
	r.QuoteID = mod.QuoteID
	r.StartDate = mod.StartDate.Format("2006-01-02")
	r.Participants = mod.Participants
	r.TotalPrice = mod.TotalPrice
	r.Currency = mod.Currency
	r.Status = mod.Status
	r.PaymentState = mod.PaymentState
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
