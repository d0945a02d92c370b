package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	destinationModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	destinationRepo "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
)

const (
	cacheGetTour    = "tour:get"
	cacheGetAllTour = "tour:gets"
	cacheCountTour  = "tour:count"
)

type Tour interface {
	Create(ctx context.Context, req dto.CreateTourRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetToursResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TourResponse, error)
	Update(ctx context.Context, req dto.UpdateTourRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Tour
	destinationRepo destinationRepo.Destination
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Tour, destinationRepo destinationRepo.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tour {
	return &serviceImpl{
		repo:            repo,
		destinationRepo: destinationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTourRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	destinationExists, err := s.destinationRepo.Exist(ctx, shared.FilterByID(req.DestinationID, destinationModel.FieldID, destinationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if !destinationExists {
		return failure.BadRequestFromString("destination does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create tour")

		return fmt.Errorf("failed to create tour: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTour)
		shared.InvalidateCaches(c, s.cache, cacheCountTour)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetToursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTour, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tours")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tours")

		return res, fmt.Errorf("failed to count tours: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tours")

		return res, fmt.Errorf("failed to get tours: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTour, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tours")

		return total, fmt.Errorf("failed to count tours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTour, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour")

		return res, nil
	}

	tour, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return res, fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == constant.Empty {
		return res, failure.NotFound("tour not found") // nolint:wrapcheck
	}

	res.FromModel(tour)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTourRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tour existence")

		return fmt.Errorf("failed to check tour existence: %w", err)
	}

	if !exist {
		return failure.NotFound("tour not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour")

		return fmt.Errorf("failed to update tour: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tour existence")

		return fmt.Errorf("failed to check tour existence: %w", err)
	}

	if !exist {
		return failure.NotFound("tour not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour")

		return fmt.Errorf("failed to delete tour: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTour, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTour)
		shared.InvalidateCaches(c, s.cache, cacheCountTour)
	}()
}
