// Package latency computes the analytical end-to-end latency bound tabulated
// alongside simulated results. It is a pure offline collaborator: its output
// never feeds back into the simulation.
package latency

import (
	"math"

	"github.com/noc-sim/noc-sim/sim"
)

// Bound computes the analytical latency bound for msg under a mesh with
// nbVC virtual channels per input port and vcSize flits of buffer per VC, per
// spec §4.5: 2*NETWORK_ACCESS_LAT + nL, where nL = networkLatency(nI, oV, nR).
//
//   - nR, the Manhattan routing distance, is the number of hops the head
//     flit must traverse.
//   - nI, the iteration count, is how many waves of packets are needed when
//     the message segments into more packets than there are VCs to carry
//     them concurrently: ceil(packets / nbVC).
//   - oV, the pessimistic VC occupancy, is the worst-case number of cycles
//     a single wave can occupy a VC before the next wave may proceed: a
//     fully-buffered VC draining one flit per cycle, vcSize cycles.
func Bound(msg *sim.Message, nbVC, vcSize int) int64 {
	nR := int64(msg.Src.ManhattanDistance(msg.Dest))
	packets := int64(sim.NumPackets(msg.Size))
	nI := int64(math.Ceil(float64(packets) / float64(nbVC)))
	oV := int64(vcSize)

	nL := networkLatency(nI, oV, nR)
	return 2*sim.NetworkAccessLatency + nL
}

// networkLatency models the routing delay for the first wave plus the
// pessimistic serialization cost of any subsequent waves contending for the
// same VCs.
func networkLatency(nI, oV, nR int64) int64 {
	return nR + nI*oV
}
