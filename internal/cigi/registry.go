package cigi

import "fmt"

// Entry associates one packet id of one protocol version with its
// declared length, field decoder and display label. Entries are
// registered once at init and never mutated afterwards; the per-minor
// variants cover the CIGI 3.2/3.3 layout deltas.
type Entry struct {
	Label string

	// Variable marks self-describing packet types: the declared size
	// from the wire header is authoritative and the decoder's return
	// value is checked against it.
	Variable bool

	// Size is the fixed total packet length including the shared
	// header. For v3 entries Size32/Size33 override it when the
	// negotiated minor version is 2 or 3; zero means "same as Size".
	Size   int
	Size32 int
	Size33 int

	dec   Decoder
	dec32 Decoder
	dec33 Decoder
}

// SizeFor resolves the declared length for a negotiated minor version.
func (e *Entry) SizeFor(minor int) int {
	switch {
	case minor >= 3 && e.Size33 != 0:
		return e.Size33
	case minor >= 2 && e.Size32 != 0:
		return e.Size32
	}
	return e.Size
}

// DecoderFor resolves the field decoder for a negotiated minor version.
func (e *Entry) DecoderFor(minor int) Decoder {
	switch {
	case minor >= 3 && e.dec33 != nil:
		return e.dec33
	case minor >= 2 && e.dec32 != nil:
		return e.dec32
	}
	return e.dec
}

var registries = map[int]map[uint16]*Entry{
	2: {},
	3: {},
	4: {},
}

// register installs a packet-table entry. Duplicate registration is a
// programming error, caught at init.
func register(version int, id uint16, e *Entry) {
	table, ok := registries[version]
	if !ok {
		panic(fmt.Sprintf("cigiscope: no registry for version %d", version))
	}
	if _, dup := table[id]; dup {
		panic(fmt.Sprintf("cigiscope: duplicate packet id %d for version %d", id, version))
	}
	table[id] = e
}

// Lookup resolves a packet id within a version's table.
func Lookup(version int, id uint16) (*Entry, bool) {
	e, ok := registries[version][id]
	return e, ok
}

// fallbackLabel names packets that miss the registry, based on the
// version's reserved id ranges.
func fallbackLabel(version int, id uint16) string {
	switch version {
	case 2:
		if id >= v2UserDefinedMin && id <= v2UserDefinedMax {
			return "User-Defined Data"
		}
	case 3:
		if id >= v3UserDefinedMin && id <= v3UserDefinedMax {
			return "User-Defined Data"
		}
	case 4:
		switch {
		case id >= v4RegisteredMin && id <= v4RegisteredMax:
			return "Registered Data"
		case id >= v4LocalMin && id <= v4LocalMax:
			return "Locally Defined Data"
		}
	}
	return "Unknown"
}
