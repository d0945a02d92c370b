package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/s3"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

const (
	cacheGetDestination    = "destination:get"
	cacheGetAllDestination = "destination:gets"
	cacheCountDestination  = "destination:count"
)

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DestinationResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadHeroImage(ctx context.Context, req dto.UploadHeroImageRequest, id string) (dto.UploadHeroImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Destination
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Destination {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create destination")

		return fmt.Errorf("failed to create destination: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDestination, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return total, fmt.Errorf("failed to count destinations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDestination, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination")

		return res, nil
	}

	destination, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	res.FromModel(destination)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination existence")

		return fmt.Errorf("failed to check destination existence: %w", err)
	}

	if !exist {
		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination")

		return fmt.Errorf("failed to update destination: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	destination, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination for deletion")

		return fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete destination")

		return fmt.Errorf("failed to delete destination: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if destination.HeroImage != nil {
			s.deleteHeroImage(c, *destination.HeroImage)
		}
	}()

	s.invalidate(ctx, id)

	return nil
}

// UploadHeroImage stores the image in S3 and points the destination at the
// public URL. A previous hero image is removed after the swap.
func (s *serviceImpl) UploadHeroImage(ctx context.Context, req dto.UploadHeroImageRequest, id string) (res dto.UploadHeroImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadHeroImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	destination, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination for image upload")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hero image to S3")

		return res, fmt.Errorf("failed to upload hero image to S3: %w", err)
	}

	update := map[string]any{
		model.FieldHeroImage:     url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to store hero image URL")

		return res, fmt.Errorf("failed to store hero image URL: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if destination.HeroImage != nil {
			s.deleteHeroImage(c, *destination.HeroImage)
		}
	}()

	s.invalidate(ctx, id)

	res.URL = url
	res.FileName = req.Image.Filename

	return res, nil
}

func (s *serviceImpl) deleteHeroImage(ctx context.Context, imageURL string) {
	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
	if objectName == constant.Empty {
		log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete hero image from S3")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDestination, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete destination cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDestination)
		shared.InvalidateCaches(c, s.cache, cacheCountDestination)
	}()
}
