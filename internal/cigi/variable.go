package cigi

import "fmt"

// Variable-layout packet types are self-describing: the wire header's
// declared size is authoritative and the decoder derives its record
// count or string length from it. The decoders here return the bytes
// they actually consumed; the frame walker holds that against the
// declared size, so a short record tail still surfaces as a framing
// fault. On a payload too small for its own mandatory prefix the
// decoders annotate locally and consume the remainder best-effort.

// textDecoder handles packets with a fixed prefix followed by a
// zero-padded string running to the end of the packet (symbol text,
// IG message).
type textDecoder struct {
	prefix    layout
	textLabel string
}

func (d textDecoder) Decode(sess *Session, payload []byte, st *Subtree) int {
	if len(payload) < d.prefix.size {
		st.Annotate(SeverityError, 0, len(payload),
			"%s: payload %d bytes, need at least %d", d.textLabel, len(payload), d.prefix.size)
		return len(payload)
	}
	d.prefix.Decode(sess, payload, st)
	st.AddString(d.textLabel, d.prefix.size, len(payload)-d.prefix.size,
		trimPadding(payload[d.prefix.size:]))
	return len(payload)
}

// recordDecoder handles packets with a fixed prefix followed by N
// fixed-size records, N derived from the packet's own declared size
// (symbol circles, line/polygon vertices).
type recordDecoder struct {
	prefix      layout
	recordLabel string
	recordSize  int
	record      []field
	maxRecords  int
}

func (d recordDecoder) Decode(sess *Session, payload []byte, st *Subtree) int {
	if len(payload) < d.prefix.size {
		st.Annotate(SeverityError, 0, len(payload),
			"%s list: payload %d bytes, need at least %d", d.recordLabel, len(payload), d.prefix.size)
		return len(payload)
	}
	d.prefix.Decode(sess, payload, st)

	n := (len(payload) - d.prefix.size) / d.recordSize
	if d.maxRecords > 0 && n > d.maxRecords {
		st.Annotate(SeverityWarning, d.prefix.size, len(payload)-d.prefix.size,
			"%s count %d exceeds documented maximum %d", d.recordLabel, n, d.maxRecords)
	}

	order := sess.ByteOrder()
	off := d.prefix.size
	for i := 0; i < n; i++ {
		g := st.Group(fmt.Sprintf("%s %d", d.recordLabel, i+1), off, d.recordSize)
		rec := payload[off : off+d.recordSize]
		for _, f := range d.record {
			decodeField(f, order, rec, g)
		}
		off += d.recordSize
	}
	return off
}
