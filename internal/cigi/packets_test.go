package cigi

import "encoding/binary"

// Hand-built leading packets shared across the package tests.

func v2IGControl(frame uint32) []byte {
	b := make([]byte, v2IGControlSize)
	b[0] = packetIDIGControl
	b[1] = v2IGControlSize
	b[2] = 2
	b[4] = 0x40 // Operate in the high two bits
	binary.BigEndian.PutUint32(b[8:12], frame)
	return b
}

func v2StartOfFrame(frame uint32) []byte {
	b := make([]byte, v2StartOfFrameSize)
	b[0] = packetIDStartOfFrame
	b[1] = v2StartOfFrameSize
	b[2] = 2
	binary.BigEndian.PutUint32(b[8:12], frame)
	return b
}

func v3IGControl(order binary.ByteOrder, frame uint32) []byte {
	b := make([]byte, v3IGControlSize)
	b[0] = packetIDIGControl
	b[1] = v3IGControlSize
	b[2] = 3
	b[4] = 0x01 // Operate
	swap := uint16(byteSwapBigEndian)
	if order == binary.LittleEndian {
		swap = byteSwapLittleEndian
	}
	binary.BigEndian.PutUint16(b[6:8], swap)
	order.PutUint32(b[8:12], frame)
	return b
}

// v3IGControl32 builds the 24-byte 3.2+ leading packet carrying the
// given minor-version nibble.
func v3IGControl32(order binary.ByteOrder, minor int, frame uint32) []byte {
	b := make([]byte, v3IGControlSize32)
	b[0] = packetIDIGControl
	b[1] = v3IGControlSize32
	b[2] = 3
	b[4] = 0x01 | byte(minor)<<4
	swap := uint16(byteSwapBigEndian)
	if order == binary.LittleEndian {
		swap = byteSwapLittleEndian
	}
	binary.BigEndian.PutUint16(b[6:8], swap)
	order.PutUint32(b[8:12], frame)
	return b
}

func v3StartOfFrame(order binary.ByteOrder, frame uint32) []byte {
	b := make([]byte, v3StartOfFrameSize)
	b[0] = packetIDStartOfFrame
	b[1] = v3StartOfFrameSize
	b[2] = 3
	swap := uint16(byteSwapBigEndian)
	if order == binary.LittleEndian {
		swap = byteSwapLittleEndian
	}
	binary.BigEndian.PutUint16(b[6:8], swap)
	order.PutUint32(b[8:12], frame)
	return b
}

func v4IGControl(order binary.ByteOrder, frame uint32) []byte {
	b := make([]byte, v4IGControlSize)
	order.PutUint16(b[0:2], v4IGControlSize)
	order.PutUint16(b[2:4], v4PacketIDIGControl)
	b[4] = 4
	b[5] = 0x01 // Operate
	order.PutUint32(b[8:12], frame)
	return b
}

func v4StartOfFrame(order binary.ByteOrder, frame uint32) []byte {
	b := make([]byte, v4StartOfFrameSize)
	order.PutUint16(b[0:2], v4StartOfFrameSize)
	order.PutUint16(b[2:4], v4PacketIDStartOfFrame)
	b[4] = 4
	order.PutUint32(b[8:12], frame)
	return b
}

// findField walks one packet subtree for a label, depth first.
func findField(n *Node, label string) *Node {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
		if got := findField(c, label); got != nil {
			return got
		}
	}
	return nil
}
