package cigi

import "encoding/binary"

// Classification is the sniffer's verdict for a candidate buffer.
type Classification struct {
	Version int
	Minor   int // v3 only; 2 when the extended leading-packet size is seen
	Order   binary.ByteOrder
}

// Classify decides whether a buffer is plausibly a CIGI message and,
// if so, under which version and byte order it should be parsed. It is
// a pure predicate: no session state is read or written, and every
// multi-byte access is preceded by a length check so truncated buffers
// classify as a non-match rather than a fault.
func Classify(buf []byte) (Classification, bool) {
	if len(buf) < 3 {
		return Classification{}, false
	}

	if c, ok := classifyLegacy(buf); ok {
		return c, true
	}
	if c, ok := classifyV3(buf); ok {
		return c, true
	}
	return classifyV4(buf)
}

// classifyLegacy matches CIGI 1 and 2, which share the
// [id u8][size u8][version u8] header shape and are always big-endian.
func classifyLegacy(buf []byte) (Classification, bool) {
	id := buf[0]
	size := int(buf[1])
	version := int(buf[2])
	if version != 1 && version != 2 {
		return Classification{}, false
	}

	switch id {
	case packetIDIGControl:
		if size != v1IGControlSize { // 16 for both versions
			return Classification{}, false
		}
		if len(buf) < 5 || !igModeValid(igModeLegacy(buf[4])) {
			return Classification{}, false
		}
	case packetIDStartOfFrame:
		want := v1StartOfFrameSize
		if version == 2 {
			want = v2StartOfFrameSize
		}
		if size != want {
			return Classification{}, false
		}
	default:
		return Classification{}, false
	}

	if size > len(buf) {
		return Classification{}, false
	}
	return Classification{Version: version, Order: binary.BigEndian}, true
}

// classifyV3 matches CIGI 3: the legacy header shape plus a mandatory
// byte-swap magic at offset 6 of the leading packet. The extended
// leading-packet size distinguishes the 3.2+ minor revisions.
func classifyV3(buf []byte) (Classification, bool) {
	if len(buf) < 8 || buf[2] != 3 {
		return Classification{}, false
	}

	id := buf[0]
	size := int(buf[1])
	minor := 0
	switch id {
	case packetIDIGControl:
		switch size {
		case v3IGControlSize:
		case v3IGControlSize32:
			minor = 2
		default:
			return Classification{}, false
		}
		if !igModeValid(igModeV3(buf[4])) {
			return Classification{}, false
		}
	case packetIDStartOfFrame:
		switch size {
		case v3StartOfFrameSize:
		case v3StartOfFrameSize32:
			minor = 2
		default:
			return Classification{}, false
		}
	default:
		return Classification{}, false
	}

	var order binary.ByteOrder
	switch binary.BigEndian.Uint16(buf[6:8]) {
	case byteSwapBigEndian:
		order = binary.BigEndian
	case byteSwapLittleEndian:
		order = binary.LittleEndian
	default:
		return Classification{}, false
	}

	if size > len(buf) {
		return Classification{}, false
	}
	return Classification{Version: 3, Minor: minor, Order: order}, true
}

// classifyV4 matches CIGI 4: [size u16][id u16] with a self-describing
// byte order. The leading packet's size is a small constant, so
// whichever word ordering puts a zero in the size high byte is the
// stream's byte order.
func classifyV4(buf []byte) (Classification, bool) {
	if len(buf) < 6 {
		return Classification{}, false
	}

	order, ok := inferV4Order(buf)
	if !ok {
		return Classification{}, false
	}
	size := int(order.Uint16(buf[0:2]))
	id := order.Uint16(buf[2:4])

	if buf[v4VersionByteOffset] != 4 {
		return Classification{}, false
	}

	switch id {
	case v4PacketIDIGControl:
		if size != v4IGControlSize {
			return Classification{}, false
		}
		if !igModeValid(igModeV4(buf[5])) {
			return Classification{}, false
		}
	case v4PacketIDStartOfFrame:
		if size != v4StartOfFrameSize {
			return Classification{}, false
		}
	default:
		return Classification{}, false
	}

	if size > len(buf) {
		return Classification{}, false
	}
	return Classification{Version: 4, Order: order}, true
}

// inferV4Order picks the byte order that reads the leading size word
// with a zero high byte. Leading packets are well under 256 bytes, so
// exactly one ordering can match a valid stream.
func inferV4Order(buf []byte) (binary.ByteOrder, bool) {
	if len(buf) < 2 {
		return nil, false
	}
	if buf[0] == 0 && buf[1] != 0 {
		return binary.BigEndian, true
	}
	if buf[1] == 0 && buf[0] != 0 {
		return binary.LittleEndian, true
	}
	return nil, false
}
