package mesh

import "github.com/noc-sim/noc-sim/sim"

// ProcessingElement sits behind one router, releasing message instances on
// schedule and sinking flits that arrive for it.
type ProcessingElement struct {
	Coord  sim.Coordinate
	router *Router

	// outbox holds instances whose release time has passed but that have
	// not yet finished injecting every packet, oldest first.
	outbox []*outboundInstance

	received int // count of flits ejected here, for diagnostics and tests
}

type outboundInstance struct {
	instance   *sim.MessageInstance
	nextPacket int
}

// NewProcessingElement creates a PE at coord. AttachRouter must be called
// before use.
func NewProcessingElement(coord sim.Coordinate) *ProcessingElement {
	return &ProcessingElement{Coord: coord}
}

// AttachRouter completes the PE/router wiring; router and PE hold mutual
// references (not cyclic across the mesh — each PE belongs to exactly one
// router).
func (pe *ProcessingElement) AttachRouter(r *Router) {
	pe.router = r
	r.AttachPE(pe)
}

// Release enqueues a newly-released message instance for injection,
// beginning with its first packet.
func (pe *ProcessingElement) Release(inst *sim.MessageInstance) {
	pe.outbox = append(pe.outbox, &outboundInstance{instance: inst})
}

// TryInject attempts to inject the next pending packet of the PE's oldest
// outstanding instance. Returns true if a packet was injected, advancing the
// PE to the next packet (or retiring the instance once its last packet is
// injected). The PE retries on a later cycle if injection fails.
func (pe *ProcessingElement) TryInject(now int64) bool {
	if len(pe.outbox) == 0 {
		return false
	}
	head := pe.outbox[0]
	packet := head.instance.Packets[head.nextPacket]

	if !pe.router.ReceiveFromPE(now, packet) {
		return false
	}

	head.nextPacket++
	if head.nextPacket >= len(head.instance.Packets) {
		pe.outbox = pe.outbox[1:]
	}
	return true
}

// Pending reports whether the PE still has packets queued for injection.
func (pe *ProcessingElement) Pending() bool { return len(pe.outbox) > 0 }

// Receive accepts a flit ejected for this PE by its router.
func (pe *ProcessingElement) Receive(flit *sim.Flit) {
	pe.received++
}
