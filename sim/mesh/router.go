package mesh

import (
	"fmt"

	"github.com/noc-sim/noc-sim/sim"
	"github.com/noc-sim/noc-sim/sim/arbitration"
)

// scanOrder fixes the order input ports are swept when building candidate
// queues each cycle: PE first, then the compass directions. Output ports are
// then arbitrated in sim.Directions order (N, S, E, W, PE).
var scanOrder = [5]sim.Direction{sim.PE, sim.North, sim.South, sim.East, sim.West}

// Router runs the per-cycle route-compute / VC-alloc / switch-alloc /
// traversal pipeline for one mesh position.
type Router struct {
	ID    sim.RouterID
	Coord sim.Coordinate

	in  [5]*sim.InputPort  // indexed by Direction
	out [5]*sim.OutputPort // indexed by Direction

	// downstream resolves the input port reached by this router's output in
	// each compass direction. nil for PE (handled by pe directly) and for
	// dead-end mesh edges.
	downstream [5]*sim.InputPort
	pe         *ProcessingElement

	allocator arbitration.Allocator
	priority  bool // true under PRIORITY_PREEMPT, false under RR

	// targets holds, per output direction, the candidate VCs computed this
	// cycle (priority mode) or accumulated across cycles (RR mode, for
	// quantum-aware consecutive sends).
	targets [5][]*sim.VirtualChannel

	// allotted maps an upstream VC currently forwarding a packet to the
	// downstream VC it was granted, per §9's flat allocation table. Cleared
	// when the packet's tail releases the upstream VC.
	allotted map[*sim.VirtualChannel]*sim.VirtualChannel
}

// NewRouter builds a router at coord with nbvc VCs of vcSize capacity per
// input port, crediting each VC from quantum.
func NewRouter(id sim.RouterID, coord sim.Coordinate, nbvc, vcSize int, quantum []int64, allocator arbitration.Allocator, priority bool) *Router {
	r := &Router{
		ID:        id,
		Coord:     coord,
		allocator: allocator,
		priority:  priority,
		allotted:  make(map[*sim.VirtualChannel]*sim.VirtualChannel),
	}
	for _, dir := range sim.Directions {
		r.in[dir] = sim.NewInputPort(dir, nbvc, vcSize, quantum)
		r.out[dir] = &sim.OutputPort{Dir: dir}
	}
	return r
}

func (r *Router) String() string {
	return fmt.Sprintf("Router%s", r.Coord)
}

// InputPort returns the router's input port bank for dir, used by NoC wiring
// and by tests inspecting VC state directly.
func (r *Router) InputPort(dir sim.Direction) *sim.InputPort { return r.in[dir] }

// OutputPort returns the router's logical output descriptor for dir.
func (r *Router) OutputPort(dir sim.Direction) *sim.OutputPort { return r.out[dir] }

// SetDownstream wires this router's dir output to the neighbor's input port,
// called once during NoC construction. A nil port marks a dead end.
func (r *Router) SetDownstream(dir sim.Direction, neighbor sim.RouterID, port *sim.InputPort) {
	r.out[dir].Neighbor = neighbor
	r.out[dir].DeadEnd = port == nil
	r.downstream[dir] = port
}

// AttachPE wires the router's PE direction to its local processing element.
func (r *Router) AttachPE(pe *ProcessingElement) { r.pe = pe }

// routeComputation applies XY (dimension-order) routing: column first, then
// row, then local delivery.
func (r *Router) routeComputation(dest sim.Coordinate) sim.Direction {
	if r.Coord.J > dest.J {
		return sim.West
	}
	if r.Coord.J < dest.J {
		return sim.East
	}
	if r.Coord.I > dest.I {
		return sim.North
	}
	if r.Coord.I < dest.I {
		return sim.South
	}
	return sim.PE
}

// vcTargetOutport appends vc to the candidate queue of the output direction
// its head-of-line flit is routed toward, unless it is already queued there.
func (r *Router) vcTargetOutport(vc *sim.VirtualChannel) {
	head := vc.Peek()
	if head == nil {
		return
	}
	dir := r.routeComputation(head.Destination)
	for _, existing := range r.targets[dir] {
		if existing == vc {
			return
		}
	}
	r.targets[dir] = append(r.targets[dir], vc)
}

// electHighestPriority drops candidates that already moved this cycle, then
// returns the one with the smallest VC id (highest priority). Falls back to
// the unfiltered set if every candidate was filtered out.
func electHighestPriority(candidates []*sim.VirtualChannel, now int64) *sim.VirtualChannel {
	pool := make([]*sim.VirtualChannel, 0, len(candidates))
	for _, vc := range candidates {
		if last := vc.Last(); last != nil && last.Timestamp == now {
			continue
		}
		pool = append(pool, vc)
	}
	if len(pool) == 0 {
		pool = candidates
	}
	best := pool[0]
	for _, vc := range pool[1:] {
		if vc.ID < best.ID {
			best = vc
		}
	}
	return best
}

// reinsert re-queues vc at the head of its output's candidate queue when it
// still has credit and buffered flits, letting consecutive flits of one
// packet pass together up to quantum; otherwise resets its credit for the
// next round. Round-robin only — priority mode clears queues wholesale.
func (r *Router) reinsert(vc *sim.VirtualChannel, dir sim.Direction) {
	if vc.Credit() > 0 && vc.Len() > 0 {
		r.targets[dir] = append([]*sim.VirtualChannel{vc}, r.targets[dir]...)
		return
	}
	vc.ResetCredit()
}

// Step runs one synchronous cycle of the router's pipeline: candidate-queue
// construction, switch arbitration per output, and traversal of the elected
// flit at each contested output.
func (r *Router) Step(now int64) {
	for _, dir := range scanOrder {
		for _, vc := range r.in[dir].VCs {
			r.vcTargetOutport(vc)
		}
	}

	for _, dir := range sim.Directions {
		queue := r.targets[dir]
		if len(queue) == 0 {
			continue
		}
		if r.priority {
			vc := electHighestPriority(queue, now)
			r.targets[dir] = nil
			r.sendFlit(vc, dir, now)
			continue
		}
		vc := queue[0]
		r.targets[dir] = queue[1:]
		r.sendFlit(vc, dir, now)
		r.reinsert(vc, dir)
	}
}

// sendFlit dequeues vc's head-of-line flit and advances it toward dir: to
// the local PE if dir is PE, otherwise across the link to the downstream
// router's input VC bank.
func (r *Router) sendFlit(vc *sim.VirtualChannel, dir sim.Direction, now int64) {
	flit, ok := vc.Dequeue()
	if !ok {
		return
	}
	if flit.MovedThisCycle(now) {
		vc.Restore(flit)
		return
	}

	if dir == sim.PE {
		r.ejectFlit(vc, flit, now)
		return
	}

	switch flit.Type {
	case sim.FlitHead:
		downPort := r.downstream[dir]
		allotted := r.allocator.Allocate(downPort, flit.Packet)
		if allotted == nil {
			vc.Restore(flit)
			return
		}
		allotted.Enqueue(flit)
		flit.Timestamp = now
		r.allotted[vc] = allotted

	case sim.FlitBody:
		allotted := r.allotted[vc]
		if !allotted.Enqueue(flit) {
			vc.Restore(flit)
			return
		}
		flit.Timestamp = now

	case sim.FlitTail:
		allotted := r.allotted[vc]
		if !allotted.Enqueue(flit) {
			vc.Restore(flit)
			return
		}
		delete(r.allotted, vc)
		flit.Timestamp = now
		vc.Release()
	}
	vc.CreditOut()
}

// ejectFlit hands flit to the local PE's receive path, stamping the message
// instance's arrival time on the tail flit of its last packet.
func (r *Router) ejectFlit(vc *sim.VirtualChannel, flit *sim.Flit, now int64) {
	flit.Timestamp = now
	if flit.Type == sim.FlitTail {
		delete(r.allotted, vc)
		vc.Release()
	}
	vc.CreditOut()

	r.pe.Receive(flit)

	if flit.Type == sim.FlitTail && flit.Packet.IsLast() {
		flit.Packet.Instance.SetArrivalTime(now + 1)
	}
}

// priorPacketPending reports whether a packet of the same message instance
// with a lower index than packet is still held by one of this router's own
// input VCs, the ordering constraint PE injection must respect.
func (r *Router) priorPacketPending(packet *sim.Packet) bool {
	for _, dir := range scanOrder {
		for _, vc := range r.in[dir].VCs {
			owner := vc.Owner()
			if owner != nil && owner.Instance == packet.Instance && owner.Index < packet.Index {
				return true
			}
		}
	}
	return false
}

// ReceiveFromPE attempts to inject packet into this router's PE input port.
// Returns false if a prior packet of the same message instance is still
// draining, or if no VC can be granted this cycle; the PE retries later.
func (r *Router) ReceiveFromPE(now int64, packet *sim.Packet) bool {
	if r.priorPacketPending(packet) {
		return false
	}

	peIn := r.in[sim.PE]
	vc := r.allocator.Allocate(peIn, packet)
	if vc == nil {
		return false
	}

	for _, f := range packet.Flits {
		vc.Enqueue(f)
	}
	if packet.IsFirst() {
		packet.Instance.SetDepartTime(now)
	}
	return true
}
