package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPortVCAllocatorCyclicSweep(t *testing.T) {
	quantum := []int64{4, 4, 4}
	port := NewInputPort(East, 3, 4, quantum)

	vc := port.VCAllocator(&Packet{Index: 0})
	require.NotNil(t, vc)
	assert.Equal(t, 0, vc.ID)
	assert.True(t, vc.Locked(), "VCAllocator should lock the VC it returns")

	vc2 := port.VCAllocator(&Packet{Index: 1})
	require.NotNil(t, vc2)
	assert.Equal(t, 1, vc2.ID)

	vc3 := port.VCAllocator(&Packet{Index: 2})
	require.NotNil(t, vc3)
	assert.Equal(t, 2, vc3.ID)

	assert.Nil(t, port.VCAllocator(&Packet{Index: 3}), "expected nil once every VC is locked")

	vc.Release()
	vc5 := port.VCAllocator(&Packet{Index: 4})
	require.NotNil(t, vc5)
	assert.Equal(t, 0, vc5.ID, "freed VC 0 should be reallocated")
}

func TestInputPortPriorityVCAllocator(t *testing.T) {
	quantum := []int64{4, 4}
	port := NewInputPort(East, 2, 4, quantum)

	vc := port.PriorityVCAllocator(0, &Packet{Index: 0, Priority: 0}, PreemptionForbid)
	require.NotNil(t, vc)
	assert.Equal(t, 0, vc.ID)

	vc2 := port.PriorityVCAllocator(1, &Packet{Index: 1, Priority: 1}, PreemptionForbid)
	require.NotNil(t, vc2)
	assert.Equal(t, 1, vc2.ID)

	assert.Nil(t, port.PriorityVCAllocator(5, &Packet{Index: 2}, PreemptionForbid), "out-of-range priority should return nil")

	other := &Packet{Index: 3, Priority: 0}
	assert.Nil(t, port.PriorityVCAllocator(0, other, PreemptionForbid), "forbid mode should refuse a locked VC")
}
