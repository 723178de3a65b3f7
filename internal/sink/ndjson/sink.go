// Package ndjson renders dissected messages as newline-delimited JSON,
// one object per message.
package ndjson

import (
	"encoding/json"
	"io"

	"firestige.xyz/cigiscope/internal/cigi"
)

// Sink writes one JSON object per message tree.
type Sink struct {
	w   io.WriteCloser
	enc *json.Encoder
}

// New creates an NDJSON sink over w.
func New(w io.WriteCloser) *Sink {
	return &Sink{w: w, enc: json.NewEncoder(w)}
}

type record struct {
	Summary     string       `json:"summary"`
	SrcPort     uint16       `json:"src_port"`
	DstPort     uint16       `json:"dst_port"`
	FrameLen    int          `json:"frame_len"`
	Packets     []nodeJSON   `json:"packets"`
	Annotations []annotation `json:"annotations,omitempty"`
}

type nodeJSON struct {
	Label    string     `json:"label"`
	Value    any        `json:"value,omitempty"`
	Display  string     `json:"display,omitempty"`
	Offset   int        `json:"offset"`
	Length   int        `json:"length"`
	Children []nodeJSON `json:"children,omitempty"`
}

type annotation struct {
	Severity string `json:"severity"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Message  string `json:"message"`
}

// Write encodes one message tree as a single JSON line.
func (s *Sink) Write(tree *cigi.Tree) error {
	rec := record{
		Summary:  tree.Summary,
		SrcPort:  tree.SrcPort,
		DstPort:  tree.DstPort,
		FrameLen: tree.FrameLen,
		Packets:  make([]nodeJSON, 0, len(tree.Packets)),
	}
	for _, p := range tree.Packets {
		rec.Packets = append(rec.Packets, convertNode(p))
	}
	for _, a := range tree.Annotations {
		rec.Annotations = append(rec.Annotations, annotation{
			Severity: a.Severity.String(),
			Offset:   a.Offset,
			Length:   a.Length,
			Message:  a.Message,
		})
	}
	return s.enc.Encode(rec)
}

// Close releases the underlying writer.
func (s *Sink) Close() error {
	return s.w.Close()
}

func convertNode(n *cigi.Node) nodeJSON {
	out := nodeJSON{
		Label:   n.Label,
		Value:   jsonValue(n.Value),
		Display: n.Display,
		Offset:  n.Offset,
		Length:  n.Length,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, convertNode(c))
	}
	return out
}

// jsonValue keeps byte blobs out of the JSON output; their length is
// already carried by the display string.
func jsonValue(v any) any {
	if _, ok := v.([]byte); ok {
		return nil
	}
	return v
}
