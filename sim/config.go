package sim

// MeshConfig groups the NoC-wide parameters parsed from config.yml.
type MeshConfig struct {
	Dimension      int            // K: the mesh is a dense K x K grid (must be > 0)
	NumberOfVC     int            // VCs per input port (must be > 0)
	VCBufferSize   int            // VC_SIZE, flits per VC (must be > 0)
	Arbitration    string         // "RR" or "PRIORITY_PREEMPT"
	Quantum        []int64        // length NumberOfVC, per-VC quantum (must all be > 0)
	PreemptionMode PreemptionMode // resolves the PRIORITY_PREEMPT preemption open question
}

// NetworkAccessLatency is the fixed per-stage access latency used by the
// analytical latency bound (documented implementation constant, default 1
// cycle per stage as specified in §6).
const NetworkAccessLatency = 1
