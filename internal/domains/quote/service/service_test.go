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
	quoteMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/service"
	cacheMocks "github.com/Reece-Nunez/meridian-travel-sub000/shared/cache/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

func operatorContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "operator-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "ops@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

	return ctx
}

func customerContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-id")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "customer@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

	return ctx
}

func newQuoteConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.OperatorEmails = []string{"ops@example.com"}

	return cfg
}

func pendingQuote() model.Quote {
	return model.Quote{
		ID:           "quote-id-123",
		ContactName:  "Jane Traveler",
		ContactEmail: "jane@example.com",
		Destination:  "Kyoto",
		DurationDays: 7,
		Participants: 2,
		Status:       constant.QuoteStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "guest",
			ModifiedBy: "guest",
		},
	}
}

func TestQuoteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quoteMocks.NewMockQuote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newQuoteConfig(), mockCache, mockEvents, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateQuoteRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateQuoteRequest{
				ContactName:  "Jane Traveler",
				ContactEmail: "jane@example.com",
				Destination:  "Kyoto",
				StartDate:    "2026-10-01",
				DurationDays: 7,
				Participants: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid start date",
			req: dto.CreateQuoteRequest{
				ContactName:  "Jane Traveler",
				ContactEmail: "jane@example.com",
				Destination:  "Kyoto",
				StartDate:    "01-10-2026",
				DurationDays: 7,
				Participants: 2,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateQuoteRequest{
				ContactName:  "Jane Traveler",
				ContactEmail: "jane@example.com",
				Destination:  "Kyoto",
				DurationDays: 7,
				Participants: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
			}
		})
	}
}

func TestQuoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quoteMocks.NewMockQuote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newQuoteConfig(), mockCache, mockEvents, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			ctx:  operatorContext(),
			id:   "quote-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  "",
		},
		{
			name: "cache miss, successful get from db",
			ctx:  operatorContext(),
			id:   "quote-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingQuote(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "quote-id-123",
		},
		{
			name: "quote not found",
			ctx:  operatorContext(),
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Quote{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "non-operator is rejected",
			ctx:       customerContext(),
			id:        "quote-id-123",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(tt.ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestQuoteService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quoteMocks.NewMockQuote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newQuoteConfig(), mockCache, mockEvents, mockOtel)

	tests := []struct {
		name       string
		ctx        context.Context
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetQuotesResponse
	}{
		{
			name:   "successful get all",
			ctx:    operatorContext(),
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Quote{pendingQuote()}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantResult: dto.GetQuotesResponse{TotalData: 1, TotalPage: 1},
		},
		{
			name:   "count error",
			ctx:    operatorContext(),
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			ctx:    operatorContext(),
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
		{
			name:      "non-operator is rejected",
			ctx:       customerContext(),
			params:    gDto.QueryParams{Limit: 10, Page: 1},
			filter:    gDto.FilterGroup{},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(tt.ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestQuoteService_MyQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quoteMocks.NewMockQuote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newQuoteConfig(), mockCache, mockEvents, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "lists quotes linked to the caller",
			ctx:  customerContext(),
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				linked := pendingQuote()
				userID := "customer-id"
				linked.UserID = &userID

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Quote{linked}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "missing user identity",
			ctx:       context.Background(),
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.MyQuotes(tt.ctx, gDto.QueryParams{Limit: 10, Page: 1})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := quoteMocks.NewMockQuote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newQuoteConfig(), mockCache, mockEvents, mockOtel)

	price := 4200.0

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateStatusRequest
		id        string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.QuoteResponse)
	}{
		{
			name: "quote with price",
			ctx:  operatorContext(),
			req: dto.UpdateStatusRequest{
				Status:      constant.QuoteStatusQuoted,
				QuotedPrice: &price,
			},
			id: "quote-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingQuote(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, constant.QuoteStatusQuoted, res.Status)
				assert.NotNil(t, res.QuotedCurrency)
				assert.Equal(t, constant.DefaultCurrency, *res.QuotedCurrency)
			},
		},
		{
			name: "quoting without a price is rejected",
			ctx:  operatorContext(),
			req: dto.UpdateStatusRequest{
				Status: constant.QuoteStatusQuoted,
			},
			id:        "quote-id-123",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "non-operator is rejected",
			ctx:  customerContext(),
			req: dto.UpdateStatusRequest{
				Status: constant.QuoteStatusReviewing,
			},
			id:        "quote-id-123",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "quote not found",
			ctx:  operatorContext(),
			req: dto.UpdateStatusRequest{
				Status: constant.QuoteStatusReviewing,
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Quote{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			ctx:  operatorContext(),
			req: dto.UpdateStatusRequest{
				Status: constant.QuoteStatusRejected,
			},
			id: "quote-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingQuote(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UpdateStatus(tt.ctx, tt.req, tt.id)

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
