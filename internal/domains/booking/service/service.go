package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/kafka"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/booking/repository"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	quoteRepo "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/repository"
	tourModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model"
	tourRepo "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventBookingCreated        = "booking.created"
	eventBookingStatusUpdated  = "booking.status_updated"
	eventBookingPaymentUpdated = "booking.payment_updated"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	MyBookings(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	UpdatePaymentState(ctx context.Context, req dto.UpdatePaymentStateRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	tourRepo  tourRepo.Tour
	quoteRepo quoteRepo.Quote
	cfg       *config.Config
	cache     cache.RedisCache
	events    kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	tourRepo tourRepo.Tour,
	quoteRepo quoteRepo.Quote,
	cfg *config.Config,
	cache cache.RedisCache,
	events kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		tourRepo:  tourRepo,
		quoteRepo: quoteRepo,
		cfg:       cfg,
		cache:     cache,
		events:    events,
		otel:      otel,
	}
}

// Create books a trip from either a catalog tour or an approved quote owned by
// the caller. Price is derived server-side, never taken from the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user identity")
	}

	if (req.TourID == nil) == (req.QuoteID == nil) {
		return res, failure.BadRequestFromString("provide exactly one of tour_id or quote_id") // nolint:wrapcheck
	}

	var (
		totalPrice float64
		currency   string
	)

	switch {
	case req.TourID != nil:
		totalPrice, currency, err = s.priceFromTour(ctx, *req.TourID, req.Participants)
	default:
		totalPrice, currency, err = s.priceFromQuote(ctx, *req.QuoteID, userID)
	}

	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(userID, totalPrice, currency)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid start date: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.publish(c, eventBookingCreated, booking.ID, booking.Status)
	}()

	return res, nil
}

func (s *serviceImpl) priceFromTour(ctx context.Context, tourID string, participants int) (float64, string, error) {
	tour, err := s.tourRepo.Get(ctx, shared.FilterByID(tourID, tourModel.FieldID, tourModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour for booking")

		return 0, constant.Empty, fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == constant.Empty || !tour.Active {
		return 0, constant.Empty, failure.BadRequestFromString("tour is not available") // nolint:wrapcheck
	}

	return tour.Price * float64(participants), tour.Currency, nil
}

func (s *serviceImpl) priceFromQuote(ctx context.Context, quoteID, userID string) (float64, string, error) {
	quote, err := s.quoteRepo.Get(ctx, shared.FilterByID(quoteID, quoteModel.FieldID, quoteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote for booking")

		return 0, constant.Empty, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == constant.Empty || quote.UserID == nil || *quote.UserID != userID {
		return 0, constant.Empty, failure.BadRequestFromString("quote is not linked to this account") // nolint:wrapcheck
	}

	if quote.Status != constant.QuoteStatusApproved || quote.QuotedPrice == nil {
		return 0, constant.Empty, failure.InvalidState("quote must be approved with a price before booking") // nolint:wrapcheck
	}

	currency := constant.DefaultCurrency
	if quote.QuotedCurrency != nil {
		currency = *quote.QuotedCurrency
	}

	return *quote.QuotedPrice, currency, nil
}

// Get returns a booking to its owner or to an admin.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if booking.UserID != userID && role != constant.RoleAdmin {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getAll(ctx, req, filter)
}

func (s *serviceImpl) MyBookings(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyBookings")
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

func (s *serviceImpl) getAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.applyUpdate(ctx, shared.TransformFields(req, s.modifier(ctx)), id); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, eventBookingStatusUpdated, id, req.Status)
	}()

	return nil
}

func (s *serviceImpl) UpdatePaymentState(ctx context.Context, req dto.UpdatePaymentStateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentState")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.applyUpdate(ctx, shared.TransformFields(req, s.modifier(ctx)), id); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, eventBookingPaymentUpdated, id, req.PaymentState)
	}()

	return nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, updatedFields map[string]any, id string) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) modifier(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	return user
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) publish(ctx context.Context, event, bookingID, state string) {
	payload := map[string]any{
		"event":      event,
		"booking_id": bookingID,
		"state":      state,
		"at":         timezone.Now(),
	}

	if err := s.events.SendMessages(ctx, constant.KafkaTopicBookingLifecycle, kafka.Message{Key: bookingID, Value: payload}); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking lifecycle event")
	}
}
