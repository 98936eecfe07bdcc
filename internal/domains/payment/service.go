package payment

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"oceanview/config"
	"oceanview/infras/otel"
	"oceanview/shared/constant"
	"oceanview/shared/failure"
)

// Service fronts the active payment channel. Amounts are validated here so no
// channel ever sees a non-positive charge or refund, and the channel can be
// swapped at runtime without interrupting in-flight calls.
type Service interface {
	Charge(ctx context.Context, amount float64) (Transaction, error)
	Refund(ctx context.Context, transactionID string, amount float64) error
	Describe(ctx context.Context) string
	SetChannel(channel Channel)
	CurrentChannel() string
}

type serviceImpl struct {
	mu      sync.RWMutex
	channel Channel
	otel    otel.Otel
}

func NewService(channel Channel, otel otel.Otel) Service {
	return &serviceImpl{
		channel: channel,
		otel:    otel,
	}
}

// FromConfig builds the configured channel behind a Service.
func FromConfig(conf *config.Config, otel otel.Otel) Service {
	var channel Channel
	if conf.Payment.Channel == ChannelGateway {
		channel = NewGateway(conf.Payment.GatewayBaseURL, conf.Payment.GatewayDeclineRate)
	} else {
		channel = NewPOSTerminal("front-desk-1", conf.Payment.POSDeclineRate)
	}

	log.Info().Str("channel", channel.Name()).Msg("Payment channel initialized")

	return NewService(channel, otel)
}

func (s *serviceImpl) current() Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.channel
}

func (s *serviceImpl) Charge(ctx context.Context, amount float64) (tx Transaction, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Charge")
	defer scope.End()
	defer scope.TraceIfError(err)

	if amount <= 0 {
		return tx, failure.BadRequestFromString("charge amount must be positive") // nolint:wrapcheck
	}

	return s.current().Charge(ctx, amount) //nolint:wrapcheck
}

func (s *serviceImpl) Refund(ctx context.Context, transactionID string, amount float64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	if amount <= 0 {
		return failure.BadRequestFromString("refund amount must be positive") // nolint:wrapcheck
	}

	if transactionID == constant.Empty {
		return failure.BadRequestFromString("transaction id is required") // nolint:wrapcheck
	}

	return s.current().Refund(ctx, transactionID, amount) //nolint:wrapcheck
}

func (s *serviceImpl) Describe(ctx context.Context) string {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Describe")
	defer scope.End()

	return s.current().Describe()
}

func (s *serviceImpl) SetChannel(channel Channel) {
	s.mu.Lock()
	previous := s.channel
	s.channel = channel
	s.mu.Unlock()

	log.Info().Str("from", previous.Name()).Str("to", channel.Name()).Msg("payment channel swapped")
}

func (s *serviceImpl) CurrentChannel() string {
	return s.current().Name()
}
