package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"oceanview/infras/otel"
	"oceanview/infras/postgres"
	"oceanview/internal/domains/room/model"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	gRepo "oceanview/shared/repository"
	"oceanview/shared/timezone"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpdateStatusChecked(ctx context.Context, id, fromStatus, toStatus, actor string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatusChecked moves the room status only when it still holds
// fromStatus, reporting false when another writer got there first.
func (repo *repositoryImpl) UpdateStatusChecked(ctx context.Context, id, fromStatus, toStatus, actor string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				// ArgName keeps the guard value from colliding with the SET status arg.
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Value:    fromStatus,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	fields := map[string]any{
		model.FieldStatus:        toStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	affected, err := repo.UpdateChecked(ctx, fields, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}
