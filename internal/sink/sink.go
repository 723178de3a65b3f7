// Package sink renders dissected messages to an output destination.
package sink

import (
	"fmt"
	"io"
	"os"

	"firestige.xyz/cigiscope/internal/cigi"
	"firestige.xyz/cigiscope/internal/sink/console"
	"firestige.xyz/cigiscope/internal/sink/ndjson"
)

// Sink consumes one dissected message tree at a time.
type Sink interface {
	Write(tree *cigi.Tree) error
	Close() error
}

// Open builds a sink for the given output format and path. An empty
// path writes to stdout.
func Open(format, path string) (Sink, error) {
	var w io.WriteCloser = nopCloser{os.Stdout}
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("sink: failed to open output file: %w", err)
		}
		w = f
	}

	switch format {
	case "", "tree":
		return console.New(w), nil
	case "ndjson":
		return ndjson.New(w), nil
	}
	w.Close()
	return nil, fmt.Errorf("sink: unknown output format %q", format)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
