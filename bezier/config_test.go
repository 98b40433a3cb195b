package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"zero capacity":    func(c *Config) { c.Capacity = 0 },
		"unknown policy":   func(c *Config) { c.Policy = Policy(7) },
		"no marker":        func(c *Config) { c.MarkerSize = 0 },
		"no sample marker": func(c *Config) { c.SampleSize = -1 },
		"step min zero":    func(c *Config) { c.StepMin = 0 },
		"step max above 1": func(c *Config) { c.StepMax = 1.5 },
		"inverted range":   func(c *Config) { c.StepMin, c.StepMax = 0.5, 0.1 },
		"step outside":     func(c *Config) { c.Step = 0.0001 },
		"no delta":         func(c *Config) { c.StepDelta = 0 },
		"unknown mode":     func(c *Config) { c.Mode = Mode(3) },
		"NaN step":         func(c *Config) { c.Step = math.NaN() },
		"NaN step min":     func(c *Config) { c.StepMin = math.NaN() },
		"NaN step max":     func(c *Config) { c.StepMax = math.NaN() },
		"NaN step delta":   func(c *Config) { c.StepDelta = math.NaN() },
		"NaN marker":       func(c *Config) { c.MarkerSize = math.NaN() },
		"NaN sample":       func(c *Config) { c.SampleSize = math.NaN() },
		"infinite marker":  func(c *Config) { c.MarkerSize = math.Inf(1) },
		"infinite delta":   func(c *Config) { c.StepDelta = math.Inf(1) },
		"negative inf min": func(c *Config) { c.StepMin = math.Inf(-1) },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
	}
}

func TestClampStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepMax = 0.999
	assert.Equal(t, 0.001, cfg.ClampStep(0))
	assert.Equal(t, 0.001, cfg.ClampStep(-4))
	assert.Equal(t, 0.5, cfg.ClampStep(0.5))
	assert.Equal(t, 0.999, cfg.ClampStep(1))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Markers")
	require.NoError(t, err)
	assert.Equal(t, Markers, m)
	m, err = ParseMode("polyline")
	require.NoError(t, err)
	assert.Equal(t, Polyline, m)
	_, err = ParseMode("spline")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "markers", Markers.String())
}

func TestColorChannels(t *testing.T) {
	r, g, b, a := Color(0x11223344).RGBA()
	assert.Equal(t, []uint8{0x11, 0x22, 0x33, 0x44}, []uint8{r, g, b, a})
}
