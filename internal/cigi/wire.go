package cigi

// Wire-format constants shared by the sniffer, the frame walkers and
// the packet tables. CIGI 1-3 packets open with a one-byte packet id
// and a one-byte size; CIGI 4 inverts the pair and widens both fields
// to 16 bits.

const (
	// Shared header sizes, in bytes. Declared packet sizes include
	// these header bytes.
	headerSizeLegacy = 2 // [id u8][size u8], v1-v3
	headerSizeV4     = 4 // [size u16][id u16]

	// CIGI 1/2/3 leading packet ids.
	packetIDIGControl    = 1
	packetIDStartOfFrame = 101

	// CIGI 1.
	v1IGControlSize    = 16
	v1StartOfFrameSize = 12

	// CIGI 2.
	v2IGControlSize    = 16
	v2StartOfFrameSize = 16

	// CIGI 3. The 3.2 minor revision grew both leading packets.
	v3IGControlSize      = 16
	v3IGControlSize32    = 24
	v3StartOfFrameSize   = 16
	v3StartOfFrameSize32 = 24

	// CIGI 3 byte-swap marker at offset 6 of the leading packet, read
	// as a big-endian 16-bit word regardless of the negotiated order.
	byteSwapBigEndian    = 0x8000
	byteSwapLittleEndian = 0x0080

	// CIGI 4. Leading packet ids after endian correction; the major
	// version byte sits at offset 4 of both packet types.
	v4PacketIDIGControl    = 0x0000
	v4PacketIDStartOfFrame = 0xFFFF
	v4IGControlSize        = 24
	v4StartOfFrameSize     = 24
	v4VersionByteOffset    = 4

	// CIGI 4 packet-id ranges.
	v4DefinedMax     = 0x0FFF
	v4RegisteredMin  = 0x1000
	v4RegisteredMax  = 0x7FFF
	v4LocalMin       = 0x8000
	v4LocalMax       = 0xFFFE

	// User-defined id ranges for the legacy versions.
	v2UserDefinedMin = 236
	v2UserDefinedMax = 255
	v3UserDefinedMin = 201
	v3UserDefinedMax = 255
)

// igModeValid reports whether a 2-bit IG mode field carries one of the
// three legal values (Standby/Reset, Operate, Debug).
func igModeValid(mode uint8) bool {
	return mode <= 2
}

// v1/v2 carry the IG mode in the high two bits of byte 4; CIGI 3 moved
// it to the low two bits of the same byte.
func igModeLegacy(b byte) uint8 { return b >> 6 }
func igModeV3(b byte) uint8     { return b & 0x03 }

// CIGI 4 IG Control: mode occupies the low two bits of byte 5, after
// the major-version byte.
func igModeV4(b byte) uint8 { return b & 0x03 }
