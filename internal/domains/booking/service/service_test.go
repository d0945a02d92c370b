package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	kafkaMocks "github.com/Reece-Nunez/meridian-travel-sub000/infras/kafka/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel/mocks"
	bookingMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/service"
	quoteMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/mocks"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	tourMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/mocks"
	tourModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model"
	cacheMocks "github.com/Reece-Nunez/meridian-travel-sub000/shared/cache/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	tourRepo  *tourMocks.MockTour
	quoteRepo *quoteMocks.MockQuote
	cache     *cacheMocks.MockRedisCache
	events    *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		tourRepo:  tourMocks.NewMockTour(ctrl),
		quoteRepo: quoteMocks.NewMockQuote(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		events:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.tourRepo, m.quoteRepo, cfg, m.cache, m.events, mocks.NewOtel())

	return svc, m
}

func userContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, userID+"@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

	return ctx
}

func activeTour() tourModel.Tour {
	return tourModel.Tour{
		ID:       "tour-id-123",
		Name:     "Kyoto Highlights",
		Price:    1500,
		Currency: "USD",
		Active:   true,
	}
}

func linkedApprovedQuote(userID string) quoteModel.Quote {
	price := 4200.0
	currency := "USD"

	return quoteModel.Quote{
		ID:             "quote-id-123",
		UserID:         &userID,
		Destination:    "Kyoto",
		Status:         constant.QuoteStatusApproved,
		QuotedPrice:    &price,
		QuotedCurrency: &currency,
	}
}

func allowAsyncCacheAndEvents(m bookingMockSet) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	tourID := "tour-id-123"
	quoteID := "quote-id-123"

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(m bookingMockSet)
		wantErr   bool
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "booking from catalog tour derives price per participant",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				m.tourRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeTour(), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				allowAsyncCacheAndEvents(m)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, 3000.0, res.TotalPrice)
				assert.Equal(t, "USD", res.Currency)
				assert.Equal(t, constant.BookingStatusPending, res.Status)
				assert.Equal(t, constant.PaymentStateUnpaid, res.PaymentState)
			},
		},
		{
			name: "booking from approved quote uses the quoted price",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				QuoteID:      &quoteID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(linkedApprovedQuote("customer-id"), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				allowAsyncCacheAndEvents(m)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, 4200.0, res.TotalPrice)
			},
		},
		{
			name: "both tour and quote is rejected",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				QuoteID:      &quoteID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "neither tour nor quote is rejected",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "missing user identity",
			ctx:  context.Background(),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "inactive tour",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				inactive := activeTour()
				inactive.Active = false

				m.tourRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "quote linked to another account",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				QuoteID:      &quoteID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(linkedApprovedQuote("someone-else"), nil)
			},
			wantErr: true,
		},
		{
			name: "quote not approved",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				QuoteID:      &quoteID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				pending := linkedApprovedQuote("customer-id")
				pending.Status = constant.QuoteStatusPending

				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid start date",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				StartDate:    "01-10-2026",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				m.tourRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeTour(), nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			ctx:  userContext("customer-id"),
			req: dto.CreateBookingRequest{
				TourID:       &tourID,
				StartDate:    "2026-10-01",
				Participants: 2,
			},
			setupMock: func(m bookingMockSet) {
				m.tourRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeTour(), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			result, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.check != nil && err == nil {
				tt.check(t, result)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	owned := model.Booking{
		ID:     "booking-id-123",
		UserID: "customer-id",
		Status: constant.BookingStatusPending,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m bookingMockSet)
		wantErr   bool
	}{
		{
			name: "owner can view the booking",
			ctx:  userContext("customer-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: false,
		},
		{
			name: "admin can view any booking",
			ctx:  context.WithValue(userContext("admin-id"), constant.ContextKeyUserRole, constant.RoleAdmin),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: false,
		},
		{
			name: "other users get not found",
			ctx:  userContext("stranger-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			ctx:  userContext("customer-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			_, err := svc.Get(tt.ctx, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_MyBookings(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m bookingMockSet)
		wantErr   bool
	}{
		{
			name: "lists the caller's bookings",
			ctx:  userContext("customer-id"),
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "booking-id-123", UserID: "customer-id"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "missing user identity",
			ctx:       context.Background(),
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			_, err := svc.MyBookings(tt.ctx, gDto.QueryParams{Limit: 10, Page: 1})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
	}{
		{
			name: "successful status update",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowAsyncCacheAndEvents(m)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			err := svc.UpdateStatus(userContext("admin-id"), dto.UpdateBookingStatusRequest{Status: constant.BookingStatusConfirmed}, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdatePaymentState(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
	}{
		{
			name: "successful payment state update",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowAsyncCacheAndEvents(m)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			err := svc.UpdatePaymentState(userContext("admin-id"), dto.UpdatePaymentStateRequest{PaymentState: constant.PaymentStateDepositPaid}, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
