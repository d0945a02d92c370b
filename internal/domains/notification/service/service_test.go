package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/mailer"
	mailerMocks "github.com/Reece-Nunez/meridian-travel-sub000/infras/mailer/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/notification/service"
	quoteMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/mocks"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	tokenDto "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/model/dto"
	tokenMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/service/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
)

type notifyMocks struct {
	quoteRepo *quoteMocks.MockQuote
	tokens    *tokenMocks.MockQuoteToken
	mail      *mailerMocks.MockClient
}

func newNotifyService(t *testing.T) (service.Notification, notifyMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := notifyMocks{
		quoteRepo: quoteMocks.NewMockQuote(ctrl),
		tokens:    tokenMocks.NewMockQuoteToken(ctrl),
		mail:      mailerMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://meridian.example.com"
	cfg.App.OperatorEmails = []string{"ops@example.com"}
	cfg.Mailer.Sender = "quotes@meridian.example.com"

	return service.New(m.quoteRepo, m.tokens, m.mail, cfg, mocks.NewOtel()), m
}

func operatorContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "ops@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

	return ctx
}

func approvedQuote() quoteModel.Quote {
	price := 4200.0
	currency := "USD"

	return quoteModel.Quote{
		ID:             "quote-id-123",
		ContactName:    "Jane Traveler",
		ContactEmail:   "jane@example.com",
		Destination:    "Kyoto",
		DurationDays:   7,
		Participants:   2,
		Status:         constant.QuoteStatusApproved,
		QuotedPrice:    &price,
		QuotedCurrency: &currency,
	}
}

func TestNotificationService_NotifyApproved(t *testing.T) {
	issued := tokenDto.IssueTokenResult{
		Token:     "fresh-token",
		ExpiresAt: "2026-09-11",
		Persisted: true,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m notifyMocks)
		wantErr   bool
		check     func(t *testing.T, res string)
	}{
		{
			name: "approved quote notified with token links",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedQuote(), nil)

				m.tokens.EXPECT().
					Issue(gomock.Any(), "quote-id-123", "jane@example.com").
					Return(issued, nil)

				m.mail.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg mailer.Message) (mailer.SendResult, error) {
						assert.Equal(t, "jane@example.com", msg.To)
						assert.Contains(t, msg.Subject, "Kyoto")
						assert.Contains(t, msg.HTML, "/signup?quote_token=fresh-token")
						assert.Contains(t, msg.HTML, "/login?quote_token=fresh-token")
						assert.Contains(t, msg.HTML, "$4,200")

						return mailer.SendResult{ID: "msg-id"}, nil
					})
			},
			wantErr: false,
			check: func(t *testing.T, signupLink string) {
				assert.Equal(t, "https://meridian.example.com/signup?quote_token=fresh-token", signupLink)
			},
		},
		{
			name:      "non-operator is rejected",
			ctx:       context.Background(),
			setupMock: func(m notifyMocks) {},
			wantErr:   true,
		},
		{
			name: "quote not found",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(quoteModel.Quote{}, nil)
			},
			wantErr: true,
		},
		{
			name: "quote not yet approved",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				pending := approvedQuote()
				pending.Status = constant.QuoteStatusPending

				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: true,
		},
		{
			name: "approved quote without a price",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				unpriced := approvedQuote()
				unpriced.QuotedPrice = nil

				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unpriced, nil)
			},
			wantErr: true,
		},
		{
			name: "token issue error",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedQuote(), nil)

				m.tokens.EXPECT().
					Issue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tokenDto.IssueTokenResult{}, errors.New("entropy error"))
			},
			wantErr: true,
		},
		{
			name: "provider rejects the send",
			ctx:  operatorContext(),
			setupMock: func(m notifyMocks) {
				m.quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(approvedQuote(), nil)

				m.tokens.EXPECT().
					Issue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(issued, nil)

				m.mail.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(mailer.SendResult{}, &mailer.DeliveryError{StatusCode: 503, Body: "unavailable"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newNotifyService(t)
			tt.setupMock(m)

			result, err := svc.NotifyApproved(tt.ctx, "quote-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
			}

			if tt.check != nil && err == nil {
				tt.check(t, result.SignupLink)
			}
		})
	}
}

func TestNotificationService_DeliveryErrorSurfacesProviderStatus(t *testing.T) {
	svc, m := newNotifyService(t)

	m.quoteRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(approvedQuote(), nil)

	m.tokens.EXPECT().
		Issue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tokenDto.IssueTokenResult{Token: "fresh-token"}, nil)

	m.mail.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(mailer.SendResult{}, &mailer.DeliveryError{StatusCode: 429, Body: "rate limited"})

	_, err := svc.NotifyApproved(operatorContext(), "quote-id-123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
