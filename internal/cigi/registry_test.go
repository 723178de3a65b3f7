package cigi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownPackets(t *testing.T) {
	e, ok := Lookup(2, packetIDIGControl)
	require.True(t, ok)
	assert.Equal(t, "IG Control", e.Label)
	assert.Equal(t, v2IGControlSize, e.Size)

	e, ok = Lookup(3, 117)
	require.True(t, ok)
	assert.True(t, e.Variable)

	e, ok = Lookup(4, v4PacketIDStartOfFrame)
	require.True(t, ok)
	assert.Equal(t, "Start of Frame", e.Label)

	_, ok = Lookup(3, 200)
	assert.False(t, ok)
}

func TestEntryMinorFallthrough(t *testing.T) {
	e, ok := Lookup(3, packetIDIGControl)
	require.True(t, ok)

	assert.Equal(t, v3IGControlSize, e.SizeFor(0))
	assert.Equal(t, v3IGControlSize32, e.SizeFor(2))
	// No 3.3-specific size: the 3.2 value carries forward.
	assert.Equal(t, v3IGControlSize32, e.SizeFor(3))

	assert.NotNil(t, e.DecoderFor(0))
	assert.NotEqual(t, e.DecoderFor(0), e.DecoderFor(2))
	assert.NotEqual(t, e.DecoderFor(2), e.DecoderFor(3))

	// Entries without variants resolve the same everywhere.
	ent, ok := Lookup(3, 2)
	require.True(t, ok)
	assert.Equal(t, 48, ent.SizeFor(3))
	assert.Equal(t, ent.DecoderFor(0), ent.DecoderFor(3))
}

// Every registered entry must agree with itself: a fixed layout's
// payload size plus the shared header equals the declared packet
// length for every minor revision, and no field tuple reaches outside
// the payload it decodes. The packet tables are hand-typed, so this
// walks all of them.
func TestRegistryTableConsistency(t *testing.T) {
	for version, table := range registries {
		header := headerSizeLegacy
		if version == 4 {
			header = headerSizeV4
		}
		for id, e := range table {
			for _, minor := range []int{0, 2, 3} {
				name := fmt.Sprintf("v%d id 0x%04X (%s) minor %d", version, id, e.Label, minor)
				declared := e.SizeFor(minor)

				switch d := e.DecoderFor(minor).(type) {
				case layout:
					assert.False(t, e.Variable, "%s: fixed layout on a variable entry", name)
					assert.Equal(t, declared, header+d.size,
						"%s: header %d + payload %d != declared %d", name, header, d.size, declared)
					checkLayoutFields(t, name, d.fields, d.size)
				case textDecoder:
					assert.True(t, e.Variable, "%s: text decoder on a fixed entry", name)
					assert.LessOrEqual(t, header+d.prefix.size, declared,
						"%s: prefix overruns the minimum declared size", name)
					checkLayoutFields(t, name, d.prefix.fields, d.prefix.size)
				case recordDecoder:
					assert.True(t, e.Variable, "%s: record decoder on a fixed entry", name)
					assert.LessOrEqual(t, header+d.prefix.size, declared,
						"%s: prefix overruns the minimum declared size", name)
					assert.Positive(t, d.recordSize, "%s: record size", name)
					checkLayoutFields(t, name, d.prefix.fields, d.prefix.size)
					checkLayoutFields(t, name+" record", d.record, d.recordSize)
				default:
					t.Errorf("%s: unexpected decoder %T", name, d)
				}
			}
		}
	}
}

func checkLayoutFields(t *testing.T, name string, fields []field, size int) {
	t.Helper()
	for _, f := range fields {
		if f.Off < 0 || f.Len <= 0 || f.Off+f.Len > size {
			t.Errorf("%s: field %q spans [%d, %d) outside payload size %d",
				name, f.Label, f.Off, f.Off+f.Len, size)
		}
		if f.Kind == KindEnum && f.Enum == nil {
			t.Errorf("%s: enum field %q has no label table", name, f.Label)
		}
	}
}

func TestFallbackLabels(t *testing.T) {
	assert.Equal(t, "User-Defined Data", fallbackLabel(2, 240))
	assert.Equal(t, "Unknown", fallbackLabel(2, 60))
	assert.Equal(t, "User-Defined Data", fallbackLabel(3, 201))
	assert.Equal(t, "User-Defined Data", fallbackLabel(3, 255))
	assert.Equal(t, "Unknown", fallbackLabel(3, 150))
	assert.Equal(t, "Registered Data", fallbackLabel(4, 0x1000))
	assert.Equal(t, "Registered Data", fallbackLabel(4, 0x7FFF))
	assert.Equal(t, "Locally Defined Data", fallbackLabel(4, 0x8000))
	assert.Equal(t, "Unknown", fallbackLabel(4, 0x0200))
}
