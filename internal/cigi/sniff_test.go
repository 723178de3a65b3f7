package cigi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLegacy(t *testing.T) {
	c, ok := Classify(v2IGControl(1))
	require.True(t, ok)
	assert.Equal(t, 2, c.Version)
	assert.Equal(t, binary.BigEndian, c.Order)

	c, ok = Classify(v2StartOfFrame(1))
	require.True(t, ok)
	assert.Equal(t, 2, c.Version)
}

func TestClassifyV3(t *testing.T) {
	c, ok := Classify(v3IGControl(binary.BigEndian, 7))
	require.True(t, ok)
	assert.Equal(t, 3, c.Version)
	assert.Equal(t, 0, c.Minor)
	assert.Equal(t, binary.BigEndian, c.Order)

	c, ok = Classify(v3StartOfFrame(binary.LittleEndian, 7))
	require.True(t, ok)
	assert.Equal(t, 3, c.Version)
	assert.Equal(t, binary.LittleEndian, c.Order)

	c, ok = Classify(v3IGControl32(binary.BigEndian, 3, 7))
	require.True(t, ok)
	assert.Equal(t, 2, c.Minor, "extended leading size marks at least 3.2")
}

func TestClassifyV4(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		c, ok := Classify(v4IGControl(order, 9))
		require.True(t, ok, "order %v", order)
		assert.Equal(t, 4, c.Version)
		assert.Equal(t, order, c.Order)

		c, ok = Classify(v4StartOfFrame(order, 9))
		require.True(t, ok, "order %v", order)
		assert.Equal(t, 4, c.Version)
		assert.Equal(t, order, c.Order)
	}
}

func TestClassifyRejects(t *testing.T) {
	cases := map[string][]byte{
		"empty":           {},
		"too short":       {1, 16},
		"random":          {0xde, 0xad, 0xbe, 0xef, 0x00, 0x00, 0x00, 0x00},
		"bad version":     {1, 16, 9, 0, 0x01, 0, 0x80, 0x00},
		"bad v3 swap":     {1, 16, 3, 0, 0x01, 0, 0x12, 0x34},
		"bad v3 size":     {1, 20, 3, 0, 0x01, 0, 0x80, 0x00},
		"not leading":     {5, 16, 3, 0, 0x01, 0, 0x80, 0x00},
		"bad v4 version":  {0x00, 0x18, 0x00, 0x00, 0x03, 0x00},
		"v4 both nonzero": {0x11, 0x18, 0x00, 0x00, 0x04, 0x00},
	}
	for name, buf := range cases {
		if _, ok := Classify(buf); ok {
			t.Errorf("%s: classified as CIGI", name)
		}
	}
}

func TestClassifyRejectsBadIGMode(t *testing.T) {
	bad := v3IGControl(binary.BigEndian, 1)
	bad[4] = 0x03 // reserved mode value
	_, ok := Classify(bad)
	assert.False(t, ok)

	bad = v4IGControl(binary.BigEndian, 1)
	bad[5] = 0x03
	_, ok = Classify(bad)
	assert.False(t, ok)
}

func TestClassifyRejectsTruncatedLeader(t *testing.T) {
	// Declared size running past the buffer is a non-match, not a fault.
	_, ok := Classify(v3IGControl(binary.BigEndian, 1)[:10])
	assert.False(t, ok)
}

func TestInferV4Order(t *testing.T) {
	order, ok := inferV4Order([]byte{0x00, 0x18})
	require.True(t, ok)
	assert.Equal(t, binary.BigEndian, order)

	order, ok = inferV4Order([]byte{0x18, 0x00})
	require.True(t, ok)
	assert.Equal(t, binary.LittleEndian, order)

	_, ok = inferV4Order([]byte{0x00, 0x00})
	assert.False(t, ok)
	_, ok = inferV4Order([]byte{0x01, 0x18})
	assert.False(t, ok)
}
