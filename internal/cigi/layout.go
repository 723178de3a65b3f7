package cigi

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Decoder decodes exactly one packet type's payload into named fields,
// returning the number of payload bytes consumed. The shared packet
// header has already been stripped by the frame walker. Decoders never
// mutate the input and never read past it; validating the consumed
// count against the declared packet size is the walker's job, not the
// decoder's.
type Decoder interface {
	Decode(sess *Session, payload []byte, st *Subtree) int
}

// field is one {offset, width, type} tuple of a fixed layout. Bit
// fields set Mask/Shift and share a byte offset with their siblings.
type field struct {
	Label string
	Off   int
	Len   int
	Kind  FieldKind
	Enum  EnumTable
	True  string
	False string
	Mask  uint64
	Shift uint
}

// layout is a table-driven fixed-layout decoder: a payload size and a
// static sequence of field tuples. It always consumes exactly its
// declared payload size.
type layout struct {
	size   int
	fields []field
}

func (l layout) Decode(sess *Session, payload []byte, st *Subtree) int {
	order := sess.ByteOrder()
	for _, f := range l.fields {
		if f.Off+f.Len > len(payload) {
			st.Annotate(SeverityWarning, f.Off, 0, "field %q truncated", f.Label)
			break
		}
		decodeField(f, order, payload, st)
	}
	return l.size
}

func decodeField(f field, order binary.ByteOrder, payload []byte, st *Subtree) {
	switch f.Kind {
	case KindUint, KindEnum, KindBool:
		v := readUint(order, payload[f.Off:f.Off+f.Len])
		if f.Mask != 0 {
			v = (v & f.Mask) >> f.Shift
		}
		switch f.Kind {
		case KindEnum:
			st.AddEnum(f.Label, f.Off, f.Len, v, f.Enum)
		case KindBool:
			st.AddBool(f.Label, f.Off, f.Len, v != 0, f.True, f.False)
		default:
			st.AddUint(f.Label, f.Off, f.Len, v)
		}
	case KindInt:
		v := readUint(order, payload[f.Off:f.Off+f.Len])
		st.AddInt(f.Label, f.Off, f.Len, signExtend(v, f.Len))
	case KindFloat:
		raw := readUint(order, payload[f.Off:f.Off+f.Len])
		if f.Len == 8 {
			st.AddFloat(f.Label, f.Off, 8, math.Float64frombits(raw))
		} else {
			st.AddFloat(f.Label, f.Off, 4, float64(math.Float32frombits(uint32(raw))))
		}
	case KindFixed:
		raw := readUint(order, payload[f.Off:f.Off+2])
		st.AddFixed(f.Label, f.Off, FixedToFloat(int16(raw)))
	case KindString:
		st.AddString(f.Label, f.Off, f.Len, trimPadding(payload[f.Off:f.Off+f.Len]))
	case KindBytes:
		st.AddBytes(f.Label, f.Off, f.Len, payload[f.Off:f.Off+f.Len])
	}
}

func readUint(order binary.ByteOrder, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	return 0
}

func signExtend(v uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(v<<shift) >> shift
}

func trimPadding(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// opaqueDecoder emits the whole payload as a single data blob. It
// backs user-defined, registered and unknown packet ids.
type opaqueDecoder struct {
	label string
}

func (d opaqueDecoder) Decode(_ *Session, payload []byte, st *Subtree) int {
	st.AddBytes(d.label, 0, len(payload), payload)
	return len(payload)
}
