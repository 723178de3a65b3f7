package ndjson

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/cigiscope/internal/cigi"
)

type buffer struct {
	bytes.Buffer
}

func (b *buffer) Close() error { return nil }

func TestWriteEncodesOneLinePerMessage(t *testing.T) {
	tree := &cigi.Tree{
		Summary:  "CIGI v3: Host => IG (16 bytes)",
		SrcPort:  8004,
		DstPort:  8004,
		FrameLen: 16,
	}
	pkt := tree.AddPacket("IG Control", 0, 16)
	st := cigi.NewSubtree(tree, pkt, 2)
	st.AddUint("CIGI Version", 0, 1, 3)

	var buf buffer
	s := New(&buf)
	require.NoError(t, s.Write(tree))
	require.NoError(t, s.Write(tree))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var rec record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "CIGI v3: Host => IG (16 bytes)", rec.Summary)
	assert.Equal(t, uint16(8004), rec.SrcPort)
	require.Len(t, rec.Packets, 1)
	assert.Equal(t, "IG Control", rec.Packets[0].Label)
	require.Len(t, rec.Packets[0].Children, 1)
	assert.Equal(t, "CIGI Version", rec.Packets[0].Children[0].Label)
}

func TestWriteEncodesAnnotations(t *testing.T) {
	tree := &cigi.Tree{Summary: "CIGI v3: 10.0.0.1 => 10.0.0.2 (8 bytes)"}
	tree.Annotate(cigi.SeverityError, 0, 2, "declared packet size 1 below header minimum")

	var buf buffer
	s := New(&buf)
	require.NoError(t, s.Write(tree))

	var rec record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Len(t, rec.Annotations, 1)
	assert.Equal(t, "Error", rec.Annotations[0].Severity)
	assert.Equal(t, "declared packet size 1 below header minimum", rec.Annotations[0].Message)
}

func TestWriteOmitsByteBlobValues(t *testing.T) {
	tree := &cigi.Tree{Summary: "CIGI v3"}
	pkt := tree.AddPacket("User-Defined Data", 0, 8)
	st := cigi.NewSubtree(tree, pkt, 2)
	st.AddBytes("Data", 0, 6, []byte{1, 2, 3, 4, 5, 6})

	var buf buffer
	s := New(&buf)
	require.NoError(t, s.Write(tree))

	var rec record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Len(t, rec.Packets[0].Children, 1)
	assert.Nil(t, rec.Packets[0].Children[0].Value)
	assert.Equal(t, "6 bytes", rec.Packets[0].Children[0].Display)
}
