package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/postgres"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/logger"
	gRepo "github.com/Reece-Nunez/meridian-travel-sub000/shared/repository"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

type QuoteToken interface {
	Insert(ctx context.Context, model model.QuoteToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.QuoteToken, error)
	Consume(ctx context.Context, token, userID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.QuoteToken]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) QuoteToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.QuoteToken](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Consume marks the token used and links its quote to the user in one
// transaction. The conditional update on used_at is the single-use guard:
// under concurrent redemption exactly one caller sees a matched row. The quote
// link is itself conditional on user_id being unset so an already claimed
// quote is never re-linked.
func (repo *repositoryImpl) Consume(ctx context.Context, token, userID string) (consumed bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".quote_token.Consume")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to begin consume transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	now := timezone.Now()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldToken, Operator: gDto.FilterOperatorEq, Value: token},
			gDto.Filter{Field: model.FieldUsedAt, Operator: gDto.FilterIsNull},
			gDto.Filter{Field: model.FieldExpiresAt, Operator: gDto.FilterOperatorGreaterEq, Value: now},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	consumed, err = repo.UpdateCheckedTx(ctx, tx, map[string]any{model.FieldUsedAt: now}, filter)
	if err != nil {
		return false, fmt.Errorf("failed to mark token used: %w", err)
	}

	if !consumed {
		if err = tx.Rollback(); err != nil {
			logger.ErrorWithStack(err)

			return false, fmt.Errorf("failed to rollback consume transaction: %w", err)
		}

		return false, nil
	}

	var quoteID string

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", model.FieldQuoteID, model.TableName, model.FieldToken)
	if err = tx.GetContext(ctx, &quoteID, query, token); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to resolve token quote: %w", err)
	}

	link := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $1 WHERE %s = $3 AND %s IS NULL",
		quoteModel.TableName,
		quoteModel.FieldUserID,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
		quoteModel.FieldID,
		quoteModel.FieldUserID,
	)

	if _, err = tx.ExecContext(ctx, link, userID, now, quoteID); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to link quote to user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to commit consume transaction: %w", err)
	}

	return true, nil
}
