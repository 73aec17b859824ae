package sim

// RouterID identifies a router within a NoC's grid. An OutputPort records
// its neighbor by RouterID, but a router reaches its neighbor's input port
// through a direct *InputPort pointer, and a router and its PE point at each
// other: cross-router references are pointers, not integer handles.
type RouterID int

// InputPort is a bank of VCs feeding a router's route-compute/VC-alloc/
// switch-alloc pipeline from one direction.
type InputPort struct {
	Dir Direction
	VCs []*VirtualChannel

	rrCursor int // round-robin sweep position for VCAllocator
}

// NewInputPort builds an input port with nbvc VCs of the given buffer size,
// crediting each VC from its entry in quantum (indexed by VC id).
func NewInputPort(dir Direction, nbvc, vcSize int, quantum []int64) *InputPort {
	p := &InputPort{Dir: dir}
	p.VCs = make([]*VirtualChannel, nbvc)
	for i := 0; i < nbvc; i++ {
		p.VCs[i] = NewVirtualChannel(i, vcSize, quantum[i])
	}
	return p
}

// VCAllocator returns the next free (unlocked) VC by cyclic sweep of the
// bank, allocating it to requester, or nil if all VCs are locked. Used under
// round-robin arbitration.
func (p *InputPort) VCAllocator(requester *Packet) *VirtualChannel {
	n := len(p.VCs)
	for i := 0; i < n; i++ {
		idx := (p.rrCursor + i) % n
		if !p.VCs[idx].Locked() {
			p.rrCursor = (idx + 1) % n
			p.VCs[idx].Allocate(requester)
			return p.VCs[idx]
		}
	}
	return nil
}

// PriorityVCAllocator returns the VC whose id equals the requested priority.
// If that VC is busy with a different packet, it attempts to preempt under
// mode. Returns nil if the VC cannot be granted this cycle, or if prio is
// out of range.
func (p *InputPort) PriorityVCAllocator(prio int, requester *Packet, mode PreemptionMode) *VirtualChannel {
	if prio < 0 || prio >= len(p.VCs) {
		return nil
	}
	vc := p.VCs[prio]
	if vc.Preempt(requester, mode) {
		return vc
	}
	return nil
}

// OutputPort is a router's logical exit toward one direction. For N/S/E/W it
// names the neighbor router to wire into via the NoC; DeadEnd marks an
// edge-of-mesh port that must never be targeted by a valid XY route. The PE
// direction's output is always the local PE and has no downstream VC bank —
// flits are handed directly to the PE's receive buffer.
type OutputPort struct {
	Dir      Direction
	Neighbor RouterID
	DeadEnd  bool
}
