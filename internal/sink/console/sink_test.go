package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/cigiscope/internal/cigi"
)

type buffer struct {
	bytes.Buffer
	closed bool
}

func (b *buffer) Close() error {
	b.closed = true
	return nil
}

func sampleTree() *cigi.Tree {
	tree := &cigi.Tree{Summary: "CIGI v3: Host => IG (16 bytes)"}
	pkt := tree.AddPacket("IG Control", 0, 16)
	st := cigi.NewSubtree(tree, pkt, 2)
	st.AddUint("CIGI Version", 0, 1, 3)
	st.AddEnum("IG Mode", 2, 1, 1, cigi.EnumTable{1: "Operate"})
	return tree
}

func TestWriteRendersTree(t *testing.T) {
	var buf buffer
	s := New(&buf)

	require.NoError(t, s.Write(sampleTree()))

	out := buf.String()
	assert.Contains(t, out, "CIGI v3: Host => IG (16 bytes)\n")
	assert.Contains(t, out, "  IG Control\n")
	assert.Contains(t, out, "    CIGI Version: 3\n")
	assert.Contains(t, out, "    IG Mode: Operate (1)\n")
}

func TestWriteRendersAnnotations(t *testing.T) {
	tree := sampleTree()
	tree.Annotate(cigi.SeverityError, 16, 4, "declared packet size 40 overruns message")

	var buf buffer
	s := New(&buf)
	require.NoError(t, s.Write(tree))

	assert.Contains(t, buf.String(), "[Error] bytes 16-20: declared packet size 40 overruns message")
}

func TestCloseReleasesWriter(t *testing.T) {
	var buf buffer
	s := New(&buf)
	require.NoError(t, s.Close())
	assert.True(t, buf.closed)
}
