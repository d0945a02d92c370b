package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel/mocks"
	s3Mocks "github.com/Reece-Nunez/meridian-travel-sub000/infras/s3/mocks"
	destinationMocks "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/service"
	cacheMocks "github.com/Reece-Nunez/meridian-travel-sub000/shared/cache/mocks"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
)

type destinationMockSet struct {
	repo  *destinationMocks.MockDestination
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newDestinationService(t *testing.T) (service.Destination, destinationMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := destinationMockSet{
		repo:  destinationMocks.NewMockDestination(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "meridian-assets"

	return service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3), m
}

func allowCacheInvalidation(m destinationMockSet) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestDestinationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				allowCacheInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, dto.CreateDestinationRequest{Name: "Kyoto", Country: "Japan"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(m destinationMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get all",
			setupMock: func(m destinationMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Destination{{ID: "destination-id-123", Name: "Kyoto", Country: "Japan"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "get all error",
			setupMock: func(m destinationMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestDestinationService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
	}{
		{
			name: "cache miss, successful get from db",
			setupMock: func(m destinationMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "destination-id-123", Name: "Kyoto"}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			setupMock: func(m destinationMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			_, err := svc.Get(context.Background(), "destination-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowCacheInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, dto.UpdateDestinationRequest{Name: "Kyoto Prefecture"}, "destination-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_Delete(t *testing.T) {
	heroImage := "https://meridian-assets.s3.amazonaws.com/destination/kyoto.jpg"

	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
	}{
		{
			name: "deletion removes the hero image from storage",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "destination-id-123", HeroImage: &heroImage}, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), heroImage).
					Return("kyoto.jpg").
					AnyTimes()

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				allowCacheInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "destination not found",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "destination-id-123"}, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), "destination-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationService_UploadHeroImage(t *testing.T) {
	fileHeader := &multipart.FileHeader{Filename: "kyoto.jpg"}

	tests := []struct {
		name      string
		setupMock func(m destinationMockSet)
		wantErr   bool
		wantURL   string
	}{
		{
			name: "successful upload",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "destination-id-123"}, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), "meridian-assets", model.EntityName, gomock.Any(), fileHeader, "kyoto.jpg").
					Return("https://meridian-assets.s3.amazonaws.com/destination/kyoto.jpg", nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowCacheInvalidation(m)
			},
			wantErr: false,
			wantURL: "https://meridian-assets.s3.amazonaws.com/destination/kyoto.jpg",
		},
		{
			name: "destination not found",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{}, nil)
			},
			wantErr: true,
		},
		{
			name: "upload error",
			setupMock: func(m destinationMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Destination{ID: "destination-id-123"}, nil)

				m.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDestinationService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.UploadHeroImage(ctx, dto.UploadHeroImageRequest{Image: fileHeader}, "destination-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, result.URL)
				assert.Equal(t, "kyoto.jpg", result.FileName)
			}
		})
	}
}
