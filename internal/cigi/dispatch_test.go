package cigi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchIGControlThenStartOfFrame(t *testing.T) {
	msg := append(v3IGControl(binary.BigEndian, 100), v3StartOfFrame(binary.BigEndian, 99)...)

	d := NewDissector(Options{})
	sess := d.NewSession()
	tree, err := d.Dispatch(Message{Data: msg, Length: len(msg)}, sess)
	require.NoError(t, err)

	assert.Equal(t, 3, sess.Version())
	assert.Equal(t, binary.BigEndian, sess.ByteOrder())
	require.Len(t, tree.Packets, 2)
	assert.Equal(t, "IG Control", tree.Packets[0].Label)
	assert.Equal(t, "Start of Frame", tree.Packets[1].Label)
	assert.False(t, tree.Faulted())

	frame := findField(tree.Packets[0], "Host Frame Number")
	require.NotNil(t, frame)
	assert.Equal(t, uint64(100), frame.Value)
}

func TestDispatchEmptyMessage(t *testing.T) {
	d := NewDissector(Options{})
	_, err := d.Dispatch(Message{}, d.NewSession())
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestDispatchDeclinesNonCIGI(t *testing.T) {
	d := NewDissector(Options{})
	_, err := d.Dispatch(Message{Data: []byte("GET / HTTP/1.1\r\n"), Length: 16}, d.NewSession())
	assert.ErrorIs(t, err, ErrNotCIGI)
}

func TestDispatchSessionCarriesAcrossMessages(t *testing.T) {
	d := NewDissector(Options{})
	sess := d.NewSession()

	_, err := d.Dispatch(Message{Data: v3IGControl(binary.LittleEndian, 1), Length: 16}, sess)
	require.NoError(t, err)

	// A follow-up message with no leading packet still dissects under
	// the negotiated parameters instead of being declined.
	ent := make([]byte, 48)
	ent[0] = 2
	ent[1] = 48
	binary.LittleEndian.PutUint16(ent[2:4], 4)
	tree, err := d.Dispatch(Message{Data: ent, Length: 48}, sess)
	require.NoError(t, err)

	require.Len(t, tree.Packets, 1)
	assert.Equal(t, "Entity Control", tree.Packets[0].Label)
	id := findField(tree.Packets[0], "Entity ID")
	require.NotNil(t, id)
	assert.Equal(t, uint64(4), id.Value)
}

func TestDispatchLeaderRenegotiatesPerMessage(t *testing.T) {
	d := NewDissector(Options{})
	sess := d.NewSession()

	_, err := d.Dispatch(Message{Data: v3IGControl(binary.BigEndian, 1), Length: 16}, sess)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, sess.ByteOrder())

	_, err = d.Dispatch(Message{Data: v3IGControl(binary.LittleEndian, 2), Length: 16}, sess)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, sess.ByteOrder())
}

func TestDispatchForcedVersionSkipsSniffer(t *testing.T) {
	// An unclassifiable buffer still dissects when the operator pinned
	// the version.
	user := []byte{220, 8, 1, 2, 3, 4, 5, 6}
	d := NewDissector(Options{ForceVersion: 3})
	tree, err := d.Dispatch(Message{Data: user, Length: 8}, d.NewSession())
	require.NoError(t, err)
	require.Len(t, tree.Packets, 1)
	assert.Equal(t, "User-Defined Data", tree.Packets[0].Label)
}

func TestDispatchForcedOrderWinsOverMarker(t *testing.T) {
	d := NewDissector(Options{ForceOrder: OrderBig})
	sess := d.NewSession()
	_, err := d.Dispatch(Message{Data: v3IGControl(binary.LittleEndian, 1), Length: 16}, sess)
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, sess.ByteOrder())
}

func TestDispatchSummaryEndpointNames(t *testing.T) {
	d := NewDissector(Options{HostAddress: "10.0.0.1", IGAddress: "10.0.0.2"})
	sess := d.NewSession()
	msg := v3IGControl(binary.BigEndian, 1)
	tree, err := d.Dispatch(Message{
		Data: msg, Src: "10.0.0.1", Dst: "10.0.0.2",
		SrcPort: 8004, DstPort: 8004, Length: len(msg),
	}, sess)
	require.NoError(t, err)
	assert.Equal(t, "CIGI v3: Host => IG (16 bytes)", tree.Summary)
	assert.Equal(t, uint16(8004), tree.SrcPort)
}

func TestDispatchSummaryUnknownEndpoints(t *testing.T) {
	d := NewDissector(Options{})
	sess := d.NewSession()
	msg := v2IGControl(1)
	tree, err := d.Dispatch(Message{Data: msg, Src: "192.168.1.5", Dst: "192.168.1.9", Length: 16}, sess)
	require.NoError(t, err)
	assert.Equal(t, "CIGI v2: 192.168.1.5 => 192.168.1.9 (16 bytes)", tree.Summary)
}

func TestDispatchMidStreamNonLeaderKeepsVersion(t *testing.T) {
	// A v4 message that happens to classify mid-stream must not rewrite
	// an already-negotiated v3 session unless it leads with a control
	// packet; here the v3 session simply keeps walking.
	d := NewDissector(Options{})
	sess := d.NewSession()
	_, err := d.Dispatch(Message{Data: v3IGControl(binary.BigEndian, 1), Length: 16}, sess)
	require.NoError(t, err)

	ent := make([]byte, 48)
	ent[0] = 2
	ent[1] = 48
	_, err = d.Dispatch(Message{Data: ent, Length: 48}, sess)
	require.NoError(t, err)
	assert.Equal(t, 3, sess.Version())
}
