package mesh

import (
	"github.com/noc-sim/noc-sim/sim"
	"github.com/noc-sim/noc-sim/sim/arbitration"
)

// NoC is a dense K x K mesh of routers, each with an attached PE, wired by
// XY-adjacent N/S/E/W links. Routers are addressed by RouterID = i*K+j.
type NoC struct {
	Dimension int
	Config    sim.MeshConfig

	routers []*Router
	pes     []*ProcessingElement
}

// NewNoC builds and wires a Dimension x Dimension mesh per cfg. Edge ports
// (the mesh boundary) are wired to nil downstream, marking dead ends that
// must never be targeted by a valid XY route for an on-mesh destination.
func NewNoC(cfg sim.MeshConfig) (*NoC, error) {
	mode := cfg.PreemptionMode
	alloc := arbitration.New(cfg.Arbitration, mode)
	priority := cfg.Arbitration == "PRIORITY_PREEMPT"

	k := cfg.Dimension
	n := &NoC{Dimension: k, Config: cfg}
	n.routers = make([]*Router, k*k)
	n.pes = make([]*ProcessingElement, k*k)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			id := n.id(i, j)
			coord := sim.Coordinate{I: i, J: j}
			n.routers[id] = NewRouter(sim.RouterID(id), coord, cfg.NumberOfVC, cfg.VCBufferSize, cfg.Quantum, alloc, priority)
			n.pes[id] = NewProcessingElement(coord)
			n.pes[id].AttachRouter(n.routers[id])
		}
	}

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			r := n.routers[n.id(i, j)]
			n.wire(r, sim.North, i-1, j)
			n.wire(r, sim.South, i+1, j)
			n.wire(r, sim.East, i, j+1)
			n.wire(r, sim.West, i, j-1)
		}
	}

	return n, nil
}

func (n *NoC) id(i, j int) int { return i*n.Dimension + j }

func (n *NoC) inBounds(i, j int) bool {
	return i >= 0 && i < n.Dimension && j >= 0 && j < n.Dimension
}

// wire connects r's dir output to the input port of the neighbor at (ni,nj),
// facing the opposite compass direction. Leaves a dead end if out of bounds.
func (n *NoC) wire(r *Router, dir sim.Direction, ni, nj int) {
	if !n.inBounds(ni, nj) {
		r.SetDownstream(dir, sim.RouterID(-1), nil)
		return
	}
	neighbor := n.routers[n.id(ni, nj)]
	r.SetDownstream(dir, neighbor.ID, neighbor.InputPort(dir.Opposite()))
}

// Router returns the router at (i,j).
func (n *NoC) Router(i, j int) *Router { return n.routers[n.id(i, j)] }

// PE returns the processing element at (i,j).
func (n *NoC) PE(i, j int) *ProcessingElement { return n.pes[n.id(i, j)] }

// Routers returns every router in the mesh, in row-major order.
func (n *NoC) Routers() []*Router { return n.routers }

// PEs returns every processing element in the mesh, in row-major order.
func (n *NoC) PEs() []*ProcessingElement { return n.pes }
