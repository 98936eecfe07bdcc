package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"oceanview/infras/otel"
	"oceanview/infras/postgres"
	"oceanview/internal/domains/reservation/model"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	gRepo "oceanview/shared/repository"
	"oceanview/shared/timezone"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]model.Reservation, error)
	FindOverlappingInRange(ctx context.Context, checkIn, checkOut time.Time) ([]model.Reservation, error)
	UpdateStatusChecked(ctx context.Context, id, fromStatus, toStatus string, extra map[string]any, actor string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindOverlapping returns the active reservations whose half-open stay range
// intersects [checkIn, checkOut). Back-to-back stays touching only at the
// boundary date are not returned.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    model.FieldCheckIn,
				Value:    checkOut,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_start",
				Field:    model.FieldCheckOut,
				Value:    checkIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// FindOverlappingInRange returns all active reservations, across every room,
// whose stay intersects [checkIn, checkOut). Used to compute which rooms are
// still open for the range.
func (repo *repositoryImpl) FindOverlappingInRange(ctx context.Context, checkIn, checkOut time.Time) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    model.FieldCheckIn,
				Value:    checkOut,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "range_start",
				Field:    model.FieldCheckOut,
				Value:    checkIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// UpdateStatusChecked transitions the reservation only when it still holds
// fromStatus, carrying any extra fields in the same statement. A false result
// means a concurrent writer moved the reservation first.
func (repo *repositoryImpl) UpdateStatusChecked(ctx context.Context, id, fromStatus, toStatus string, extra map[string]any, actor string) (bool, error) {
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
	for col, value := range extra {
		fields[col] = value
	}

	affected, err := repo.UpdateChecked(ctx, fields, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}
