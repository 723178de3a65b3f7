package cigi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedToFloat(t *testing.T) {
	assert.Equal(t, 0.0, FixedToFloat(0))
	assert.Equal(t, 1.0, FixedToFloat(128))
	assert.Equal(t, -1.0, FixedToFloat(-128))
	assert.Equal(t, 0.5, FixedToFloat(64))
	assert.Equal(t, -90.0, FixedToFloat(-11520))
	assert.InDelta(t, 255.99, FixedToFloat(32767), 0.01)
}

func TestFloatToFixedRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.25, -0.25, 1.0 / 128, 45.5, -179.875, 33.3, -0.013} {
		got := FixedToFloat(FloatToFixed(v))
		if math.Abs(got-v) > 1.0/128 {
			t.Errorf("round trip of %v gave %v, off by more than one wire step", v, got)
		}
	}
}

func TestFloatToFixedSaturates(t *testing.T) {
	assert.Equal(t, int16(32767), FloatToFixed(1e6))
	assert.Equal(t, int16(-32768), FloatToFixed(-1e6))
	assert.Equal(t, int16(32767), FloatToFixed(256.0))
}

func TestFloatToFixedRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int16(1), FloatToFixed(0.5/128))
	assert.Equal(t, int16(-1), FloatToFixed(-0.5/128))
	assert.Equal(t, int16(0), FloatToFixed(0.4/128))
}
