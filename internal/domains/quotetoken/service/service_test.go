package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel/mocks"
	quoteMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/mocks"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	tokenMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

func newTokenService(t *testing.T) (service.QuoteToken, *tokenMocks.MockQuoteToken, *quoteMocks.MockQuote) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := tokenMocks.NewMockQuoteToken(ctrl)
	mockQuoteRepo := quoteMocks.NewMockQuote(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Quote.TokenTTLDays = 14

	return service.New(mockRepo, mockQuoteRepo, cfg, mockOtel), mockRepo, mockQuoteRepo
}

func usableToken() model.QuoteToken {
	return model.QuoteToken{
		ID:        "token-id-123",
		QuoteID:   "quote-id-123",
		Token:     "a-valid-token",
		Email:     "jane@example.com",
		ExpiresAt: timezone.Now().Add(24 * time.Hour),
		CreatedAt: timezone.Now(),
	}
}

func TestQuoteTokenService_Issue(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(repo *tokenMocks.MockQuoteToken)
		wantPersisted bool
	}{
		{
			name: "token minted and stored",
			setupMock: func(repo *tokenMocks.MockQuoteToken) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPersisted: true,
		},
		{
			name: "storage failure still returns a token",
			setupMock: func(repo *tokenMocks.MockQuoteToken) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantPersisted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newTokenService(t)
			tt.setupMock(mockRepo)

			result, err := svc.Issue(context.Background(), "quote-id-123", "jane@example.com")

			assert.NoError(t, err)
			assert.Len(t, result.Token, 64) // 32 bytes hex-encoded
			assert.NotEmpty(t, result.ExpiresAt)
			assert.Equal(t, tt.wantPersisted, result.Persisted)
		})
	}
}

func TestQuoteTokenService_Validate(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		setupMock   func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote)
		wantErr     error
		wantAnyErr  bool
		wantEmail   string
		wantQuoteID string
	}{
		{
			name:  "valid token resolves to quote summary",
			token: "a-valid-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(usableToken(), nil)

				quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(quoteModel.Quote{
						ID:          "quote-id-123",
						Destination: "Kyoto",
						Status:      constant.QuoteStatusQuoted,
					}, nil)
			},
			wantEmail:   "jane@example.com",
			wantQuoteID: "quote-id-123",
		},
		{
			name:  "unknown token",
			token: "unknown-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.QuoteToken{}, nil)
			},
			wantErr: failure.InvalidTokenError,
		},
		{
			name:  "expired token",
			token: "a-valid-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				expired := usableToken()
				expired.ExpiresAt = timezone.Now().Add(-time.Hour)

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(expired, nil)
			},
			wantErr: failure.InvalidTokenError,
		},
		{
			name:  "spent token",
			token: "a-valid-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				spent := usableToken()
				usedAt := timezone.Now().Add(-time.Minute)
				spent.UsedAt = &usedAt

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(spent, nil)
			},
			wantErr: failure.InvalidTokenError,
		},
		{
			name:  "token points at a deleted quote",
			token: "a-valid-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(usableToken(), nil)

				quoteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(quoteModel.Quote{}, nil)
			},
			wantErr: failure.InvalidTokenError,
		},
		{
			name:  "lookup error",
			token: "a-valid-token",
			setupMock: func(repo *tokenMocks.MockQuoteToken, quoteRepo *quoteMocks.MockQuote) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.QuoteToken{}, errors.New("database error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockQuoteRepo := newTokenService(t)
			tt.setupMock(mockRepo, mockQuoteRepo)

			result, err := svc.Validate(context.Background(), tt.token)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantEmail, result.Email)
				assert.Equal(t, tt.wantQuoteID, result.Quote.ID)
			}
		})
	}
}

func TestQuoteTokenService_Consume(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(repo *tokenMocks.MockQuoteToken)
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "token redeemed",
			setupMock: func(repo *tokenMocks.MockQuoteToken) {
				repo.EXPECT().
					Consume(gomock.Any(), "a-valid-token", "user-id-123").
					Return(true, nil)
			},
		},
		{
			name: "token not redeemable",
			setupMock: func(repo *tokenMocks.MockQuoteToken) {
				repo.EXPECT().
					Consume(gomock.Any(), "a-valid-token", "user-id-123").
					Return(false, nil)
			},
			wantErr: failure.InvalidTokenError,
		},
		{
			name: "repository error",
			setupMock: func(repo *tokenMocks.MockQuoteToken) {
				repo.EXPECT().
					Consume(gomock.Any(), "a-valid-token", "user-id-123").
					Return(false, errors.New("database error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newTokenService(t)
			tt.setupMock(mockRepo)

			err := svc.Consume(context.Background(), "a-valid-token", "user-id-123")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
