package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/postgres"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	gRepo "github.com/Reece-Nunez/meridian-travel-sub000/shared/repository"
)

type Destination interface {
	Insert(ctx context.Context, model model.Destination) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Destination]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Destination {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
