// Package console renders dissected messages as indented field trees,
// one block per message.
package console

import (
	"fmt"
	"io"
	"strings"

	"firestige.xyz/cigiscope/internal/cigi"
)

// Sink writes human-readable field trees to an io.Writer.
type Sink struct {
	w io.WriteCloser
}

// New creates a console sink over w.
func New(w io.WriteCloser) *Sink {
	return &Sink{w: w}
}

// Write renders one message tree. Packets decoded before a framing
// fault are printed along with the fault annotation.
func (s *Sink) Write(tree *cigi.Tree) error {
	var b strings.Builder
	b.WriteString(tree.Summary)
	b.WriteByte('\n')

	for _, p := range tree.Packets {
		writeNode(&b, p, 1)
	}
	for _, a := range tree.Annotations {
		fmt.Fprintf(&b, "  [%s] bytes %d-%d: %s\n", a.Severity, a.Offset, a.Offset+a.Length, a.Message)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(s.w, b.String())
	return err
}

// Close releases the underlying writer.
func (s *Sink) Close() error {
	return s.w.Close()
}

func writeNode(b *strings.Builder, n *cigi.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Display == "" {
		fmt.Fprintf(b, "%s%s\n", indent, n.Label)
	} else {
		fmt.Fprintf(b, "%s%s: %s\n", indent, n.Label, n.Display)
	}
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}
