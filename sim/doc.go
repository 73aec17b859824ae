// Package sim provides the core cycle-accurate simulation engine for a
// 2D-mesh network-on-chip with virtual-channel flow control.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - flit.go, packet.go, message.go: traffic data model (Flit/Packet/Message/MessageInstance)
//   - vc.go: VirtualChannel, the bounded FIFO with credit and allocation lock
//   - port.go: InputPort/OutputPort, banks of VCs wired between routers
//   - config.go: mesh, arbitration and quantum configuration
//
// # Architecture
//
// The sim package defines the data model and per-VC/per-port primitives.
// Orchestration lives in sub-packages:
//   - sim/arbitration/: VC allocator policies (round-robin, priority-preemptive)
//   - sim/mesh/: router pipeline, NoC grid wiring, PE injection/ejection, tick loop
//   - sim/workload/: scenario loading and UUniFast traffic generation
//   - sim/latency/: analytical end-to-end latency bound
//   - sim/trace/: depart/arrival recording and CSV emission
package sim
