package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	quoteRepo "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

const (
	tokenBytes     = 32
	defaultTTLDays = 14
	hoursPerDay    = 24
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

type QuoteToken interface {
	Issue(ctx context.Context, quoteID, email string) (dto.IssueTokenResult, error)
	Validate(ctx context.Context, token string) (dto.ValidateTokenResponse, error)
	Consume(ctx context.Context, token, userID string) error
}

type serviceImpl struct {
	repo      repository.QuoteToken
	quoteRepo quoteRepo.Quote
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.QuoteToken, quoteRepo quoteRepo.Quote, cfg *config.Config, otel otel.Otel) QuoteToken {
	return &serviceImpl{
		repo:      repo,
		quoteRepo: quoteRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) ttl() time.Duration {
	days := s.cfg.Quote.TokenTTLDays
	if days <= 0 {
		days = defaultTTLDays
	}

	return time.Duration(days) * hoursPerDay * time.Hour
}

// Issue mints a 256-bit linking token for the quote. Storage failure is
// tolerated: the email still has to go out, so the caller gets the token back
// with Persisted false and the failure is only logged.
func (s *serviceImpl) Issue(ctx context.Context, quoteID, email string) (res dto.IssueTokenResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw := make([]byte, tokenBytes)
	if _, err = rand.Read(raw); err != nil {
		log.Error().Err(err).Msg("failed to read token entropy")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	now := timezone.Now()
	expiresAt := now.Add(s.ttl())

	res.Token = hex.EncodeToString(raw)
	res.ExpiresAt = timezone.Format(expiresAt, constant.DateFormat)
	res.Persisted = true

	tok := model.QuoteToken{
		ID:        uuid.NewString(),
		QuoteID:   quoteID,
		Token:     res.Token,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	if insertErr := s.repo.Insert(ctx, tok); insertErr != nil {
		log.Error().Err(insertErr).Str("quote_id", quoteID).Msg("failed to persist quote token, continuing unpersisted")
		scope.SetAttribute("token.persisted", false)

		res.Persisted = false
	}

	return res, nil
}

// Validate resolves a token to its quote summary for the signup pre-fill
// screen. Unknown, spent and expired tokens all come back as the same
// invalid-token failure so the endpoint leaks nothing about token state.
func (s *serviceImpl) Validate(ctx context.Context, token string) (res dto.ValidateTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tok, err := s.repo.Get(ctx, tokenFilter(token))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up quote token")

		return res, fmt.Errorf("failed to look up quote token: %w", err)
	}

	if !tok.Usable(timezone.Now()) {
		return res, failure.InvalidTokenError // nolint:wrapcheck
	}

	quote, err := s.quoteRepo.Get(ctx, shared.FilterByID(tok.QuoteID, quoteModel.FieldID, quoteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote for token")

		return res, fmt.Errorf("failed to get quote for token: %w", err)
	}

	if quote.ID == constant.Empty {
		return res, failure.InvalidTokenError // nolint:wrapcheck
	}

	res.Email = tok.Email
	res.Quote.FromModel(quote)

	return res, nil
}

// Consume redeems the token for the given user. The single-use and quote-link
// guarantees live in the repository transaction.
func (s *serviceImpl) Consume(ctx context.Context, token, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConsumeToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	consumed, err := s.repo.Consume(ctx, token, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to consume quote token")

		return fmt.Errorf("failed to consume quote token: %w", err)
	}

	if !consumed {
		return failure.InvalidTokenError // nolint:wrapcheck
	}

	return nil
}

func tokenFilter(token string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldToken,
				Operator: gDto.FilterOperatorEq,
				Value:    token,
				Table:    model.TableName,
			},
		},
	}
}
