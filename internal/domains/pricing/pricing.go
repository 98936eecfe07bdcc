package pricing

import (
	"sync"

	"github.com/rs/zerolog/log"

	"oceanview/config"
	"oceanview/shared/failure"
)

const (
	StrategyStandard = "standard"
	StrategySeasonal = "seasonal"
)

// Strategy quotes the total amount for a stay. Implementations must be safe
// for concurrent use, quotes run on every booking request.
type Strategy interface {
	Total(nights int, baseRate float64) float64
	Name() string
}

type standard struct{}

// NewStandard prices a stay as nights times the nightly base rate.
func NewStandard() Strategy {
	return standard{}
}

func (standard) Total(nights int, baseRate float64) float64 {
	return float64(nights) * baseRate
}

func (standard) Name() string {
	return StrategyStandard
}

type Seasonal struct {
	mu         sync.RWMutex
	multiplier float64
}

// NewSeasonal prices a stay as the standard total scaled by a positive
// multiplier. The multiplier can be retuned at runtime as seasons change.
func NewSeasonal(multiplier float64) (*Seasonal, error) {
	if multiplier <= 0 {
		return nil, failure.BadRequestFromString("seasonal multiplier must be positive") // nolint:wrapcheck
	}

	return &Seasonal{multiplier: multiplier}, nil
}

func (s *Seasonal) Total(nights int, baseRate float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return float64(nights) * baseRate * s.multiplier
}

func (s *Seasonal) Name() string {
	return StrategySeasonal
}

func (s *Seasonal) Multiplier() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.multiplier
}

// SetMultiplier retunes the seasonal factor. Quotes already computed keep
// their original total.
func (s *Seasonal) SetMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return failure.BadRequestFromString("seasonal multiplier must be positive") // nolint:wrapcheck
	}

	s.mu.Lock()
	s.multiplier = multiplier
	s.mu.Unlock()

	return nil
}

// FromConfig builds the configured strategy, falling back to standard pricing
// when the configuration is unusable.
func FromConfig(conf *config.Config) Strategy {
	if conf.Pricing.Strategy == StrategySeasonal {
		seasonal, err := NewSeasonal(conf.Pricing.SeasonalMultiplier)
		if err != nil {
			log.Warn().Err(err).Msg("Invalid seasonal multiplier, using standard pricing")

			return NewStandard()
		}

		return seasonal
	}

	return NewStandard()
}
