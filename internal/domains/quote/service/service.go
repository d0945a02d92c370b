package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/kafka"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/permissions"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

const (
	cacheGetQuote    = "quote:get"
	cacheGetAllQuote = "quote:gets"
	cacheCountQuote  = "quote:count"

	eventQuoteCreated       = "quote.created"
	eventQuoteStatusUpdated = "quote.status_updated"
)

type Quote interface {
	Create(ctx context.Context, req dto.CreateQuoteRequest) (dto.CreateQuoteResponse, error)
	Get(ctx context.Context, id string) (dto.QuoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotesResponse, error)
	MyQuotes(ctx context.Context, req gDto.QueryParams) (dto.GetQuotesResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo   repository.Quote
	cfg    *config.Config
	cache  cache.RedisCache
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Quote, cfg *config.Config, cache cache.RedisCache, events kafka.Client, otel otel.Otel) Quote {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

// operator gates quote management. Role admin always passes; everyone else is
// matched against the configured operator email list.
func (s *serviceImpl) operator(ctx context.Context) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	return permissions.IsOperator(role, email, s.cfg.App.OperatorEmails)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateQuoteRequest) (res dto.CreateQuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := req.ToModel(constant.ContextGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse quote request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid start date: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, quote); err != nil {
		log.Error().Err(err).Msg("failed to create quote")

		return res, fmt.Errorf("failed to create quote: %w", err)
	}

	res.ID = quote.ID

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuote)
		shared.InvalidateCaches(c, s.cache, cacheCountQuote)

		s.publish(c, eventQuoteCreated, quote.ID, quote.Status)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.operator(ctx) {
		return res, failure.Unauthorized("not allowed to view quotes")
	}

	cacheKey := shared.BuildCacheKey(cacheGetQuote, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	quote, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote")

		return res, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == constant.Empty {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	res.FromModel(quote)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.operator(ctx) {
		return res, failure.Unauthorized("not allowed to view quotes")
	}

	return s.getAll(ctx, req, filter)
}

// MyQuotes lists the quotes linked to the calling account.
func (s *serviceImpl) MyQuotes(ctx context.Context, req gDto.QueryParams) (res dto.GetQuotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyQuotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user identity")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.getAll(ctx, req, filter)
}

func (s *serviceImpl) getAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotesResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllQuote, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quotes")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotes")

		return res, fmt.Errorf("failed to count quotes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotes")

		return res, fmt.Errorf("failed to get quotes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountQuote, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotes")

		return res, fmt.Errorf("failed to count quotes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote count to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a quote to any status in the vocabulary. Transitions are
// deliberately unrestricted so operators can walk a quote back after a mistake.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.operator(ctx) {
		return res, failure.Unauthorized("not allowed to manage quotes")
	}

	if req.Status == constant.QuoteStatusQuoted && req.QuotedPrice == nil {
		return res, failure.BadRequestFromString("quoted price is required when quoting") // nolint:wrapcheck
	}

	if req.QuotedPrice != nil && req.QuotedCurrency == nil {
		currency := constant.DefaultCurrency
		req.QuotedCurrency = &currency
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	quote, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote")

		return res, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == constant.Empty {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update quote status")

		return res, fmt.Errorf("failed to update quote status: %w", err)
	}

	quote.Status = req.Status
	if req.QuotedPrice != nil {
		quote.QuotedPrice = req.QuotedPrice
		quote.QuotedCurrency = req.QuotedCurrency
	}

	if req.AdminNotes != nil {
		quote.AdminNotes = req.AdminNotes
	}

	quote.ModifiedAt = timezone.Now()
	quote.ModifiedBy = user

	res.FromModel(quote)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetQuote, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete quote from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuote)
		shared.InvalidateCaches(c, s.cache, cacheCountQuote)

		s.publish(c, eventQuoteStatusUpdated, id, req.Status)
	}()

	return res, nil
}

// publish emits a lifecycle event, fire and forget.
func (s *serviceImpl) publish(ctx context.Context, event, quoteID, status string) {
	payload := map[string]any{
		"event":    event,
		"quote_id": quoteID,
		"status":   status,
		"at":       timezone.Now(),
	}

	if err := s.events.SendMessages(ctx, constant.KafkaTopicQuoteLifecycle, kafka.Message{Key: quoteID, Value: payload}); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish quote lifecycle event")
	}
}
