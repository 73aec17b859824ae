package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumPackets(t *testing.T) {
	cases := map[int64]int{
		1:   3, // ceil(1/128) + 2
		128: 3, // ceil(128/128) + 2
		129: 4, // ceil(129/128) + 2
		256: 4,
		257: 5,
	}
	for size, want := range cases {
		assert.Equal(t, want, NumPackets(size), "NumPackets(%d)", size)
	}
}

func TestNewPacketFlitStructure(t *testing.T) {
	msg := &Message{ID: "m", Size: 128, Priority: 2}
	inst := NewMessageInstance(msg, 0)
	dest := Coordinate{I: 1, J: 1}
	p := NewPacket(0, inst, dest)

	require.Len(t, p.Flits, FlitsPerPacket)
	assert.Equal(t, FlitHead, p.Flits[0].Type)
	for i := 1; i < FlitsPerPacket-1; i++ {
		assert.Equal(t, FlitBody, p.Flits[i].Type, "flit %d", i)
	}
	assert.Equal(t, FlitTail, p.Flits[FlitsPerPacket-1].Type)

	for i, f := range p.Flits {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, dest, f.Destination)
		assert.Equal(t, unmoved, f.Timestamp, "flit %d should start unmoved", i)
	}
	assert.Equal(t, 2, p.Priority)
}

func TestPacketIsFirstIsLast(t *testing.T) {
	msg := &Message{ID: "m", Size: 129} // NumPackets = 4
	inst := NewMessageInstance(msg, 0)

	assert.True(t, inst.Packets[0].IsFirst())
	assert.False(t, inst.Packets[1].IsFirst())
	assert.True(t, inst.Packets[len(inst.Packets)-1].IsLast())
	assert.False(t, inst.Packets[0].IsLast())
}
