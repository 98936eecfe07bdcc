package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oceanview/config"
	"oceanview/infras/otel"
	"oceanview/internal/domains/guest/model"
	"oceanview/internal/domains/guest/model/dto"
	"oceanview/internal/domains/guest/repository"
	"oceanview/shared"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	"oceanview/shared/failure"
)

type Guest interface {
	Register(ctx context.Context, req dto.RegisterGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
}

type serviceImpl struct {
	repo repository.Guest
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Register finds the guest by national id or creates a new profile. Returning
// guests get their contact details refreshed from the request.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == constant.Empty {
		actor = constant.DefaultActor
	}

	existing, err := s.repo.GetByNationalID(ctx, req.NationalID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up guest")

		return res, fmt.Errorf("failed to look up guest: %w", err)
	}

	if existing.ID != constant.Empty {
		update := dto.UpdateGuestRequest{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}

		filter := shared.FilterByID(existing.ID, model.FieldID, model.TableName)
		if err = s.repo.Update(ctx, shared.TransformFields(update, actor), filter); err != nil {
			log.Error().Err(err).Msg("failed to refresh guest profile")

			return res, fmt.Errorf("failed to refresh guest profile: %w", err)
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.Address = req.Address

		res.FromModel(existing)

		return res, nil
	}

	guest := req.ToModel(actor)
	if err = s.repo.Insert(ctx, guest); err != nil {
		return res, err
	}

	log.Info().Str("guestID", guest.ID).Msg("registered new guest")

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == constant.Empty {
		actor = constant.DefaultActor
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	return nil
}
