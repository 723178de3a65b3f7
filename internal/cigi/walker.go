package cigi

import "encoding/binary"

// The frame walkers iterate a message buffer containing back-to-back
// packets. Packet boundaries are determined solely by each packet's
// declared size; the protocol carries no resynchronization marker, so
// a framing fault makes every later offset meaningless and the walkers
// stop hard instead of skipping ahead. Packets decoded before a fault
// stay in the tree.

// walk dispatches a buffer to the walker for the session's negotiated
// version. Unrecognized versions degrade to the generic walker.
func walk(buf []byte, sess *Session, tree *Tree) {
	switch sess.Version() {
	case 2:
		walkV2(buf, sess, tree)
	case 3:
		walkV3(buf, sess, tree)
	case 4:
		walkV4(buf, sess, tree)
	default:
		walkUnknown(buf, tree)
	}
}

// decodeOne runs a packet's field decoder and validates that the
// decoder consumed exactly the declared span. It returns the offset
// just past the packet and false on a framing-integrity fault.
func decodeOne(buf []byte, sess *Session, tree *Tree, start, headerLen, expected int, label string, dec Decoder) (int, bool) {
	node := tree.AddPacket(label, start, expected)
	st := NewSubtree(tree, node, start+headerLen)
	consumed := dec.Decode(sess, buf[start+headerLen:start+expected], st)
	if headerLen+consumed != expected {
		tree.Annotate(SeverityError, start, expected,
			"framing error: %s consumed %d of %d declared bytes", label, headerLen+consumed, expected)
		return start + expected, false
	}
	return start + expected, true
}

// resolve looks up a packet id, falling back to an opaque entry for
// user-defined, registered and unknown ids. The returned expected
// length covers the whole packet including its header.
func resolve(version int, id uint16, declared, minor int) (string, int, Decoder) {
	if e, ok := Lookup(version, id); ok {
		dec := e.DecoderFor(minor)
		if e.Variable {
			return e.Label, declared, dec
		}
		return e.Label, e.SizeFor(minor), dec
	}
	label := fallbackLabel(version, id)
	return label, declared, opaqueDecoder{label: label}
}

// checkSpan validates the declared packet size against the version's
// header minimum and the bytes remaining in the message. A violation
// is a framing fault: annotate and hard-stop.
func checkSpan(tree *Tree, buf []byte, off, declared, headerMin int) bool {
	if declared < headerMin {
		tree.Annotate(SeverityError, off, len(buf)-off,
			"framing error: declared packet size %d smaller than %d-byte header", declared, headerMin)
		return false
	}
	if off+declared > len(buf) {
		tree.Annotate(SeverityError, off, len(buf)-off,
			"framing error: declared packet size %d exceeds %d remaining bytes", declared, len(buf)-off)
		return false
	}
	return true
}

// walkV2 handles CIGI 2: [id u8][size u8] headers, big-endian always.
func walkV2(buf []byte, sess *Session, tree *Tree) {
	off := 0
	for off < len(buf) {
		if len(buf)-off < headerSizeLegacy {
			tree.Annotate(SeverityError, off, len(buf)-off, "framing error: truncated packet header")
			return
		}
		id := uint16(buf[off])
		declared := int(buf[off+1])
		if !checkSpan(tree, buf, off, declared, headerSizeLegacy) {
			return
		}

		// Leading packets carry the authoritative version field in
		// every message of a long-running capture.
		if id == packetIDIGControl || id == packetIDStartOfFrame {
			observeLeaderLegacy(buf[off:], sess)
		}

		label, expected, dec := resolve(2, id, declared, 0)
		if !checkSpan(tree, buf, off, expected, headerSizeLegacy) {
			return
		}
		next, ok := decodeOne(buf, sess, tree, off, headerSizeLegacy, expected, label, dec)
		if !ok {
			return
		}
		off = next
	}
}

// walkV3 handles CIGI 3: legacy header shape, but leading packets
// re-confirm the byte order via the byte-swap marker at offset 6 and
// carry the minor version that selects 3.2/3.3 layout deltas.
func walkV3(buf []byte, sess *Session, tree *Tree) {
	off := 0
	for off < len(buf) {
		if len(buf)-off < headerSizeLegacy {
			tree.Annotate(SeverityError, off, len(buf)-off, "framing error: truncated packet header")
			return
		}
		id := uint16(buf[off])
		declared := int(buf[off+1])
		if !checkSpan(tree, buf, off, declared, headerSizeLegacy) {
			return
		}

		if id == packetIDIGControl || id == packetIDStartOfFrame {
			observeLeaderV3(buf[off:], sess)
		}

		label, expected, dec := resolve(3, id, declared, sess.Minor())
		if !checkSpan(tree, buf, off, expected, headerSizeLegacy) {
			return
		}
		next, ok := decodeOne(buf, sess, tree, off, headerSizeLegacy, expected, label, dec)
		if !ok {
			return
		}
		off = next
	}
}

// walkV4 handles CIGI 4: [size u16][id u16] headers in the session's
// byte order, with per-packet endianness re-inference on leading
// packets.
func walkV4(buf []byte, sess *Session, tree *Tree) {
	off := 0
	for off < len(buf) {
		if len(buf)-off < headerSizeV4 {
			tree.Annotate(SeverityError, off, len(buf)-off, "framing error: truncated packet header")
			return
		}

		order := sess.ByteOrder()
		id := order.Uint16(buf[off+2 : off+4])
		if id == v4PacketIDIGControl || id == v4PacketIDStartOfFrame {
			observeLeaderV4(buf[off:], sess)
			order = sess.ByteOrder()
			id = order.Uint16(buf[off+2 : off+4])
		}
		declared := int(order.Uint16(buf[off : off+2]))
		if !checkSpan(tree, buf, off, declared, headerSizeV4) {
			return
		}

		label, expected, dec := resolve(4, id, declared, 0)
		if !checkSpan(tree, buf, off, expected, headerSizeV4) {
			return
		}
		next, ok := decodeOne(buf, sess, tree, off, headerSizeV4, expected, label, dec)
		if !ok {
			return
		}
		off = next
	}
}

// walkUnknown degrades gracefully for unrecognized versions: decode
// the common 2-byte header per packet and emit the rest as a blob.
// Leading packets additionally surface their inline version byte.
func walkUnknown(buf []byte, tree *Tree) {
	off := 0
	for off < len(buf) {
		if len(buf)-off < headerSizeLegacy {
			tree.Annotate(SeverityError, off, len(buf)-off, "framing error: truncated packet header")
			return
		}
		id := uint16(buf[off])
		declared := int(buf[off+1])
		if !checkSpan(tree, buf, off, declared, headerSizeLegacy) {
			return
		}

		node := tree.AddPacket("Unknown", off, declared)
		st := NewSubtree(tree, node, off)
		st.AddUint("Packet ID", 0, 1, uint64(id))
		st.AddUint("Packet Size", 1, 1, uint64(declared))
		body := headerSizeLegacy
		if (id == packetIDIGControl || id == packetIDStartOfFrame) && declared > headerSizeLegacy {
			st.AddUint("Version", 2, 1, uint64(buf[off+2]))
			body++
		}
		if declared > body {
			st.AddBytes("Data", body, declared-body, buf[off+body:off+declared])
		}
		off += declared
	}
}

// observeLeaderLegacy updates the session from a v1/v2 leading packet,
// which carries the version byte at offset 2 and is always big-endian.
func observeLeaderLegacy(pkt []byte, sess *Session) {
	if len(pkt) < 3 {
		return
	}
	version := int(pkt[2])
	if version != 1 && version != 2 {
		return
	}
	sess.observeLeader(version, 0, binary.BigEndian)
}

// observeLeaderV3 updates the session from a v3 leading packet: the
// byte-swap marker at offset 6 settles the byte order, and on the
// 3.2-extended size the minor-version nibble refines the minor. This
// runs per packet, not once per message.
func observeLeaderV3(pkt []byte, sess *Session) {
	if len(pkt) < 8 || pkt[2] != 3 {
		return
	}
	var order binary.ByteOrder
	switch binary.BigEndian.Uint16(pkt[6:8]) {
	case byteSwapBigEndian:
		order = binary.BigEndian
	case byteSwapLittleEndian:
		order = binary.LittleEndian
	default:
		return
	}

	minor := 0
	size := int(pkt[1])
	extended := (pkt[0] == packetIDIGControl && size == v3IGControlSize32) ||
		(pkt[0] == packetIDStartOfFrame && size == v3StartOfFrameSize32)
	if extended {
		// IG Control carries the minor-version nibble in byte 4,
		// Start of Frame in byte 5.
		nibbleAt := 4
		if pkt[0] == packetIDStartOfFrame {
			nibbleAt = 5
		}
		minor = int(pkt[nibbleAt] >> 4)
		if minor < 2 {
			minor = 2
		}
	}
	sess.observeLeader(3, minor, order)
}

// observeLeaderV4 updates the session from a v4 leading packet using
// the word-order inference on the size field.
func observeLeaderV4(pkt []byte, sess *Session) {
	if len(pkt) < 6 || pkt[v4VersionByteOffset] != 4 {
		return
	}
	order, ok := inferV4Order(pkt)
	if !ok {
		return
	}
	id := order.Uint16(pkt[2:4])
	if id != v4PacketIDIGControl && id != v4PacketIDStartOfFrame {
		return
	}
	sess.observeLeader(4, 0, order)
}
