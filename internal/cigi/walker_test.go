package cigi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchBytes(t *testing.T, opts Options, msgs ...[]byte) (*Tree, *Session) {
	t.Helper()
	d := NewDissector(opts)
	sess := d.NewSession()
	var tree *Tree
	for _, m := range msgs {
		var err error
		tree, err = d.Dispatch(Message{Data: m, Length: len(m)}, sess)
		require.NoError(t, err)
	}
	return tree, sess
}

func TestWalkV2Message(t *testing.T) {
	// IG Control followed by a Trajectory Definition.
	traj := make([]byte, 16)
	traj[0] = 10
	traj[1] = 16
	binary.BigEndian.PutUint16(traj[2:4], 42)
	binary.BigEndian.PutUint32(traj[4:8], 0x40A00000) // 5.0f

	msg := append(v2IGControl(3), traj...)
	tree, sess := dispatchBytes(t, Options{}, msg)

	assert.Equal(t, 2, sess.Version())
	require.Len(t, tree.Packets, 2)
	assert.Equal(t, "IG Control", tree.Packets[0].Label)
	assert.Equal(t, "Trajectory Definition", tree.Packets[1].Label)
	assert.False(t, tree.Faulted())

	entity := findField(tree.Packets[1], "Entity ID")
	require.NotNil(t, entity)
	assert.Equal(t, uint64(42), entity.Value)
	accel := findField(tree.Packets[1], "Acceleration")
	require.NotNil(t, accel)
	assert.Equal(t, 5.0, accel.Value)
}

func TestWalkV2FixedPointField(t *testing.T) {
	// Rate Control with a yaw rate of -90 degrees/s on the wire.
	rate := make([]byte, 24)
	rate[0] = 5
	rate[1] = 24
	binary.BigEndian.PutUint16(rate[2:4], 7)
	binary.BigEndian.PutUint16(rate[22:24], 0xD300) // -11520 = -90.0

	msg := append(v2IGControl(1), rate...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 2)
	yaw := findField(tree.Packets[1], "Yaw Rate")
	require.NotNil(t, yaw)
	assert.Equal(t, -90.0, yaw.Value)
}

func TestWalkV3LittleEndian(t *testing.T) {
	le := binary.LittleEndian
	// Entity Control with a little-endian entity id and type.
	ent := make([]byte, 48)
	ent[0] = 2
	ent[1] = 48
	le.PutUint16(ent[2:4], 513)
	ent[4] = 0x01 // Active
	le.PutUint16(ent[8:10], 0x1234)

	msg := append(v3IGControl(le, 5), ent...)
	tree, sess := dispatchBytes(t, Options{}, msg)

	assert.Equal(t, 3, sess.Version())
	assert.Equal(t, le, sess.ByteOrder())
	require.Len(t, tree.Packets, 2)
	assert.False(t, tree.Faulted())

	id := findField(tree.Packets[1], "Entity ID")
	require.NotNil(t, id)
	assert.Equal(t, uint64(513), id.Value)
	typ := findField(tree.Packets[1], "Entity Type")
	require.NotNil(t, typ)
	assert.Equal(t, uint64(0x1234), typ.Value)
}

func TestWalkV3MinorVersionSelectsLayout(t *testing.T) {
	_, sess := dispatchBytes(t, Options{}, v3IGControl32(binary.BigEndian, 3, 1))
	assert.Equal(t, 3, sess.Minor())

	// The 3.2+ IG Control itself decodes under the extended layout.
	tree, _ := dispatchBytes(t, Options{}, v3IGControl32(binary.BigEndian, 3, 1))
	require.Len(t, tree.Packets, 1)
	minor := findField(tree.Packets[0], "Minor Version")
	require.NotNil(t, minor)
	assert.Equal(t, uint64(3), minor.Value)
	assert.NotNil(t, findField(tree.Packets[0], "Last IG Frame Number"))
}

func TestWalkV3UserDefinedFallback(t *testing.T) {
	user := []byte{220, 8, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	msg := append(v3IGControl(binary.BigEndian, 1), user...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 2)
	assert.Equal(t, "User-Defined Data", tree.Packets[1].Label)
	assert.False(t, tree.Faulted())
}

func TestWalkV4BothOrders(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		pos := make([]byte, 48)
		order.PutUint16(pos[0:2], 48)
		order.PutUint16(pos[2:4], 0x0001)
		order.PutUint16(pos[4:6], 77)

		msg := append(v4IGControl(order, 2), pos...)
		tree, sess := dispatchBytes(t, Options{}, msg)

		assert.Equal(t, 4, sess.Version())
		require.Len(t, tree.Packets, 2, "order %v", order)
		assert.Equal(t, "IG Control", tree.Packets[0].Label)
		assert.Equal(t, "Entity Position", tree.Packets[1].Label)
		assert.False(t, tree.Faulted())

		id := findField(tree.Packets[1], "Entity ID")
		require.NotNil(t, id)
		assert.Equal(t, uint64(77), id.Value)
	}
}

func TestWalkV4RangeFallbacks(t *testing.T) {
	order := binary.BigEndian
	build := func(id uint16) []byte {
		p := make([]byte, 8)
		order.PutUint16(p[0:2], 8)
		order.PutUint16(p[2:4], id)
		return p
	}
	msg := v4IGControl(order, 1)
	msg = append(msg, build(0x2000)...)
	msg = append(msg, build(0x9000)...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 3)
	assert.Equal(t, "Registered Data", tree.Packets[1].Label)
	assert.Equal(t, "Locally Defined Data", tree.Packets[2].Label)
}

func TestWalkFaultDeclaredSizeOverrunsBuffer(t *testing.T) {
	short := []byte{2, 48, 0x00, 0x01} // Entity Control claiming 48 with 4 present
	msg := append(v3IGControl(binary.BigEndian, 1), short...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	// The leading packet survives; the fault stops the walk.
	require.Len(t, tree.Packets, 1)
	assert.True(t, tree.Faulted())
}

func TestWalkFaultSizeSmallerThanHeader(t *testing.T) {
	bad := []byte{10, 1, 0, 0}
	msg := append(v3IGControl(binary.BigEndian, 1), bad...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 1)
	assert.True(t, tree.Faulted())
}

func TestWalkFaultWrongFixedSize(t *testing.T) {
	// Trajectory Definition (fixed 24 in v3) declared as 16: the walker
	// holds the registry size against the buffer and faults.
	traj := make([]byte, 16)
	traj[0] = 20
	traj[1] = 16
	msg := append(v3IGControl(binary.BigEndian, 1), traj...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 1)
	assert.True(t, tree.Faulted())
}

func TestWalkStopsHardAfterFault(t *testing.T) {
	// A valid packet after the fault must not be decoded: no resync.
	bad := []byte{10, 1}
	tail := v3StartOfFrame(binary.BigEndian, 9)
	msg := append(v3IGControl(binary.BigEndian, 1), bad...)
	msg = append(msg, tail...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 1)
	assert.True(t, tree.Faulted())
}

func TestWalkVariableTextPacket(t *testing.T) {
	text := "hello ig"
	pkt := make([]byte, 4+len(text))
	pkt[0] = 117
	pkt[1] = byte(len(pkt))
	binary.BigEndian.PutUint16(pkt[2:4], 3)
	copy(pkt[4:], text)

	msg := append(v3IGControl(binary.BigEndian, 1), pkt...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 2)
	assert.Equal(t, "Image Generator Message", tree.Packets[1].Label)
	assert.False(t, tree.Faulted())
	f := findField(tree.Packets[1], "Message")
	require.NotNil(t, f)
	assert.Equal(t, text, f.Value)
}

func TestWalkVariableRecordPacket(t *testing.T) {
	// Symbol Circle Definition with two circles: 2 header + 14 prefix +
	// 2*24 records.
	pkt := make([]byte, 2+14+48)
	pkt[0] = 31
	pkt[1] = byte(len(pkt))
	binary.BigEndian.PutUint16(pkt[2:4], 12)
	binary.BigEndian.PutUint32(pkt[24:28], 0x3F800000) // circle 1 radius 1.0f

	msg := append(v3IGControl(binary.BigEndian, 1), pkt...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	require.Len(t, tree.Packets, 2)
	assert.False(t, tree.Faulted())

	sym := tree.Packets[1]
	assert.NotNil(t, findField(sym, "Circle 1"))
	assert.NotNil(t, findField(sym, "Circle 2"))
	assert.Nil(t, findField(sym, "Circle 3"))
	r := findField(findField(sym, "Circle 1"), "Radius")
	require.NotNil(t, r)
	assert.Equal(t, 1.0, r.Value)
}

func TestWalkVariableRecordShortTailFaults(t *testing.T) {
	// A record list with a ragged 5-byte tail cannot reconcile with the
	// declared size.
	pkt := make([]byte, 2+14+24+5)
	pkt[0] = 31
	pkt[1] = byte(len(pkt))

	msg := append(v3IGControl(binary.BigEndian, 1), pkt...)
	tree, _ := dispatchBytes(t, Options{}, msg)

	assert.True(t, tree.Faulted())
}

func TestWalkUnknownVersionDegrades(t *testing.T) {
	// A forced bogus version exercises the generic walker.
	msg := []byte{1, 8, 7, 0, 0, 0, 0, 0}
	d := NewDissector(Options{ForceVersion: 7})
	tree, err := d.Dispatch(Message{Data: msg, Length: len(msg)}, d.NewSession())
	require.NoError(t, err)

	require.Len(t, tree.Packets, 1)
	assert.Equal(t, "Unknown", tree.Packets[0].Label)
	v := findField(tree.Packets[0], "Version")
	require.NotNil(t, v)
	assert.Equal(t, uint64(7), v.Value)
}
