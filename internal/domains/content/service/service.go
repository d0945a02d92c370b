package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/cache"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
)

const (
	cacheGetContent    = "content:get"
	cacheGetAllContent = "content:gets"
)

type Content interface {
	Get(ctx context.Context, key string) (dto.ContentResponse, error)
	GetAll(ctx context.Context) (dto.GetContentsResponse, error)
	Upsert(ctx context.Context, req dto.UpsertContentRequest, key string) error
	Delete(ctx context.Context, key string) error
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContent, key)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content")

		return res, nil
	}

	content, err := s.repo.Get(ctx, keyFilter(key))
	if err != nil {
		log.Error().Err(err).Msg("failed to get content")

		return res, fmt.Errorf("failed to get content: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetContentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllContent, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contents")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldKey, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get contents")

		return res, fmt.Errorf("failed to get contents: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contents to cache")
		}
	}()

	return res, nil
}

// Upsert creates the block on first write and replaces its value afterwards.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertContentRequest, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := keyFilter(key)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check content existence")

		return fmt.Errorf("failed to check content existence: %w", err)
	}

	if exist {
		update := shared.TransformFields(dto.ValueUpdate{Value: string(req.Value)}, user)
		if err = s.repo.Update(ctx, update, filter); err != nil {
			log.Error().Err(err).Msg("failed to update content")

			return fmt.Errorf("failed to update content: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(key, user)); err != nil {
			log.Error().Err(err).Msg("failed to create content")

			return fmt.Errorf("failed to create content: %w", err)
		}
	}

	s.invalidate(ctx, key)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := keyFilter(key)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check content existence")

		return fmt.Errorf("failed to check content existence: %w", err)
	}

	if !exist {
		return failure.NotFound("content not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete content")

		return fmt.Errorf("failed to delete content: %w", err)
	}

	s.invalidate(ctx, key)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, key string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContent, key)); err != nil {
			log.Error().Err(err).Msg("failed to delete content cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllContent)
	}()
}

func keyFilter(key string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKey,
				Operator: gDto.FilterOperatorEq,
				Value:    key,
				Table:    model.TableName,
			},
		},
	}
}
