package pricing_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"oceanview/config"
	"oceanview/internal/domains/pricing"
)

func TestStandard_Total(t *testing.T) {
	strategy := pricing.NewStandard()

	assert.Equal(t, 300.0, strategy.Total(3, 100))
	assert.Equal(t, 0.0, strategy.Total(0, 100))
	assert.Equal(t, pricing.StrategyStandard, strategy.Name())
}

func TestSeasonal_Total(t *testing.T) {
	strategy, err := pricing.NewSeasonal(1.5)
	assert.NoError(t, err)

	assert.InDelta(t, 450.0, strategy.Total(3, 100), 1e-9)
	assert.Equal(t, pricing.StrategySeasonal, strategy.Name())
}

func TestSeasonal_RejectsNonPositiveMultiplier(t *testing.T) {
	_, err := pricing.NewSeasonal(0)
	assert.Error(t, err)

	_, err = pricing.NewSeasonal(-1)
	assert.Error(t, err)

	strategy, err := pricing.NewSeasonal(1.2)
	assert.NoError(t, err)

	assert.Error(t, strategy.SetMultiplier(0))
	assert.InDelta(t, 1.2, strategy.Multiplier(), 1e-9)

	assert.NoError(t, strategy.SetMultiplier(2))
	assert.InDelta(t, 2.0, strategy.Multiplier(), 1e-9)
}

func TestSeasonal_ConcurrentRetune(t *testing.T) {
	strategy, err := pricing.NewSeasonal(1.5)
	assert.NoError(t, err)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_ = strategy.SetMultiplier(2)
		}()

		go func() {
			defer wg.Done()

			total := strategy.Total(2, 100)
			assert.True(t, total == 300 || total == 400)
		}()
	}

	wg.Wait()
}

func TestFromConfig(t *testing.T) {
	conf := &config.Config{}
	conf.Pricing.Strategy = pricing.StrategySeasonal
	conf.Pricing.SeasonalMultiplier = 1.25

	assert.Equal(t, pricing.StrategySeasonal, pricing.FromConfig(conf).Name())

	conf.Pricing.SeasonalMultiplier = 0
	assert.Equal(t, pricing.StrategyStandard, pricing.FromConfig(conf).Name())

	conf.Pricing.Strategy = ""
	assert.Equal(t, pricing.StrategyStandard, pricing.FromConfig(conf).Name())
}
