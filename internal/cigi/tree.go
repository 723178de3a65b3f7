package cigi

import "fmt"

// FieldKind identifies the wire type of a decoded field.
type FieldKind uint8

const (
	KindUint FieldKind = iota
	KindInt
	KindFloat
	KindFixed // 16-bit signed fixed point, rendered as float
	KindBool
	KindEnum
	KindString
	KindBytes
)

// Node is one entry in the decoded field tree: either a packet subtree
// or a single named field. Offset and Length anchor the node to a byte
// range within the dissected message.
type Node struct {
	Label    string
	Kind     FieldKind
	Value    any
	Display  string
	Offset   int
	Length   int
	Children []*Node
}

// Severity classifies an annotation.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "Error"
	}
	return "Warning"
}

// Annotation is an error or warning tied to a byte range of the input.
type Annotation struct {
	Offset   int
	Length   int
	Severity Severity
	Message  string
}

// Tree is the output sink for one dissected message. Every packet that
// decoded before a framing fault remains present even when the fault
// stops processing of the remainder.
type Tree struct {
	Summary string

	// Hidden lookup fields for downstream filtering.
	SrcPort  uint16
	DstPort  uint16
	FrameLen int

	Packets     []*Node
	Annotations []Annotation
}

// AddPacket appends a packet-level subtree spanning [off, off+length).
func (t *Tree) AddPacket(label string, off, length int) *Node {
	n := &Node{Label: label, Kind: KindBytes, Offset: off, Length: length}
	t.Packets = append(t.Packets, n)
	return n
}

// Annotate records an error or warning over a byte range.
func (t *Tree) Annotate(sev Severity, off, length int, format string, args ...any) {
	t.Annotations = append(t.Annotations, Annotation{
		Offset:   off,
		Length:   length,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Faulted reports whether any error-severity annotation was recorded.
func (t *Tree) Faulted() bool {
	for _, a := range t.Annotations {
		if a.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Subtree is the writer handed to field decoders. It binds a packet
// node to the absolute offset of the packet payload so that decoders
// can deal purely in payload-relative offsets.
type Subtree struct {
	tree *Tree
	node *Node
	base int
}

// NewSubtree wraps a node for decoder output. The base offset is the
// absolute position of the first payload byte within the message.
func NewSubtree(t *Tree, n *Node, base int) *Subtree {
	return &Subtree{tree: t, node: n, base: base}
}

func (s *Subtree) add(label string, kind FieldKind, off, length int, value any, display string) *Node {
	n := &Node{
		Label:   label,
		Kind:    kind,
		Value:   value,
		Display: display,
		Offset:  s.base + off,
		Length:  length,
	}
	s.node.Children = append(s.node.Children, n)
	return n
}

// AddUint records an unsigned integer field.
func (s *Subtree) AddUint(label string, off, length int, v uint64) {
	s.add(label, KindUint, off, length, v, fmt.Sprintf("%d", v))
}

// AddInt records a signed integer field.
func (s *Subtree) AddInt(label string, off, length int, v int64) {
	s.add(label, KindInt, off, length, v, fmt.Sprintf("%d", v))
}

// AddFloat records an IEEE float field of 4 or 8 bytes.
func (s *Subtree) AddFloat(label string, off, length int, v float64) {
	s.add(label, KindFloat, off, length, v, fmt.Sprintf("%g", v))
}

// AddFixed records a legacy 16-bit fixed-point field as its float value.
func (s *Subtree) AddFixed(label string, off int, v float64) {
	s.add(label, KindFixed, off, 2, v, fmt.Sprintf("%g", v))
}

// AddBool records a boolean with custom true/false labels.
func (s *Subtree) AddBool(label string, off, length int, v bool, trueLabel, falseLabel string) {
	d := falseLabel
	if v {
		d = trueLabel
	}
	s.add(label, KindBool, off, length, v, d)
}

// AddEnum records an enumerated field, rendering through the label table.
func (s *Subtree) AddEnum(label string, off, length int, v uint64, names EnumTable) {
	s.add(label, KindEnum, off, length, v, names.Format(v))
}

// AddString records a zero-padded string field.
func (s *Subtree) AddString(label string, off, length int, v string) {
	s.add(label, KindString, off, length, v, v)
}

// AddBytes records an opaque byte-blob field.
func (s *Subtree) AddBytes(label string, off, length int, v []byte) {
	s.add(label, KindBytes, off, length, v, fmt.Sprintf("%d bytes", len(v)))
}

// Group appends a nested subtree node spanning a payload-relative
// range, for repeated records inside variable-length packets.
func (s *Subtree) Group(label string, off, length int) *Subtree {
	n := s.add(label, KindBytes, off, length, nil, "")
	return &Subtree{tree: s.tree, node: n, base: s.base + off}
}

// Annotate records a decoder-local annotation at a payload-relative range.
func (s *Subtree) Annotate(sev Severity, off, length int, format string, args ...any) {
	s.tree.Annotate(sev, s.base+off, length, format, args...)
}

// EnumTable maps wire values to display strings.
type EnumTable map[uint64]string

// Format renders a value through the table, falling back to the raw
// number for unlisted values.
func (e EnumTable) Format(v uint64) string {
	if name, ok := e[v]; ok {
		return fmt.Sprintf("%s (%d)", name, v)
	}
	return fmt.Sprintf("Unknown (%d)", v)
}
