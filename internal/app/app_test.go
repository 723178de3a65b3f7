package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/cigiscope/internal/cigi"
	"firestige.xyz/cigiscope/internal/config"
)

type captureSink struct {
	trees []*cigi.Tree
}

func (c *captureSink) Write(tree *cigi.Tree) error {
	c.trees = append(c.trees, tree)
	return nil
}

func (c *captureSink) Close() error { return nil }

// v3 IG Control, big-endian, host frame 1.
func igControlMessage() []byte {
	return []byte{1, 16, 3, 0, 0x01, 0, 0x80, 0x00, 0, 0, 0, 1, 0, 0, 0, 0}
}

func TestPipelineHandleDissects(t *testing.T) {
	out := &captureSink{}
	p := NewPipeline(cigi.Options{}, out, 0)

	msg := cigi.Message{
		Data: igControlMessage(), Src: "10.0.0.1", Dst: "10.0.0.2",
		SrcPort: 8004, DstPort: 8004, Length: 16,
	}
	require.NoError(t, p.Handle(msg))

	require.Len(t, out.trees, 1)
	require.Len(t, out.trees[0].Packets, 1)
	assert.Equal(t, "IG Control", out.trees[0].Packets[0].Label)
}

func TestPipelineHandleDropsNonCIGI(t *testing.T) {
	out := &captureSink{}
	p := NewPipeline(cigi.Options{}, out, 0)

	msg := cigi.Message{Data: []byte("GET / HTTP/1.1\r\n"), Length: 16}
	require.NoError(t, p.Handle(msg))
	assert.Empty(t, out.trees)
}

func TestPipelinePortFilter(t *testing.T) {
	out := &captureSink{}
	p := NewPipeline(cigi.Options{}, out, 8004)

	msg := cigi.Message{
		Data: igControlMessage(), SrcPort: 5000, DstPort: 5001, Length: 16,
	}
	require.NoError(t, p.Handle(msg))
	assert.Empty(t, out.trees)

	msg.DstPort = 8004
	require.NoError(t, p.Handle(msg))
	assert.Len(t, out.trees, 1)
}

func TestPipelineSessionIsDirectionAgnostic(t *testing.T) {
	p := NewPipeline(cigi.Options{}, &captureSink{}, 0)

	hostToIG := cigi.Message{Src: "10.0.0.1", Dst: "10.0.0.2", SrcPort: 8004, DstPort: 8004}
	igToHost := cigi.Message{Src: "10.0.0.2", Dst: "10.0.0.1", SrcPort: 8004, DstPort: 8004}
	other := cigi.Message{Src: "10.0.0.3", Dst: "10.0.0.2", SrcPort: 8004, DstPort: 8004}

	s1 := p.session(hostToIG)
	s2 := p.session(igToHost)
	s3 := p.session(other)

	assert.Same(t, s1, s2)
	assert.NotSame(t, s1, s3)
}

func TestProtocolOptions(t *testing.T) {
	opts, err := protocolOptions(config.ProtocolConfig{Version: "3", ByteOrder: "little"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.ForceVersion)
	assert.Equal(t, cigi.OrderLittle, opts.ForceOrder)

	opts, err = protocolOptions(config.ProtocolConfig{Version: "auto", ByteOrder: "auto"})
	require.NoError(t, err)
	assert.Zero(t, opts.ForceVersion)
	assert.Equal(t, cigi.OrderAuto, opts.ForceOrder)

	_, err = protocolOptions(config.ProtocolConfig{Version: "5"})
	assert.Error(t, err)
	_, err = protocolOptions(config.ProtocolConfig{ByteOrder: "middle"})
	assert.Error(t, err)
}
