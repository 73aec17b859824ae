// Package arbitration provides the VC allocation policies selectable via
// config.yml's noc.arbitration field: weighted round-robin and
// strict-priority preemptive.
package arbitration

import (
	"fmt"

	"github.com/noc-sim/noc-sim/sim"
)

// Allocator grants a downstream VC to a packet requesting one, implementing
// spec §4.1's vc_allocator / priority_vc_allocator. Returns nil when no VC
// can be granted this cycle — the caller restores the head flit and waits.
type Allocator interface {
	Allocate(port *sim.InputPort, requester *sim.Packet) *sim.VirtualChannel
}

// RoundRobin grants the next free VC by cyclic sweep of the input port's
// bank, independent of the requester's priority.
type RoundRobin struct{}

func (RoundRobin) Allocate(port *sim.InputPort, requester *sim.Packet) *sim.VirtualChannel {
	return port.VCAllocator(requester)
}

// PriorityPreemptive grants the VC whose id equals the requester's
// priority class, preempting whichever packet holds that VC when Mode
// allows it.
type PriorityPreemptive struct {
	Mode sim.PreemptionMode
}

func (p PriorityPreemptive) Allocate(port *sim.InputPort, requester *sim.Packet) *sim.VirtualChannel {
	return port.PriorityVCAllocator(requester.Priority, requester, p.Mode)
}

// IsValid reports whether name is a recognized arbitration policy name.
func IsValid(name string) bool {
	switch name {
	case "RR", "PRIORITY_PREEMPT":
		return true
	default:
		return false
	}
}

// New creates an Allocator by name. Valid names: "RR", "PRIORITY_PREEMPT".
// Panics on unrecognized names — callers should validate with IsValid during
// config validation, before construction.
func New(name string, mode sim.PreemptionMode) Allocator {
	switch name {
	case "RR":
		return RoundRobin{}
	case "PRIORITY_PREEMPT":
		return PriorityPreemptive{Mode: mode}
	default:
		panic(fmt.Sprintf("unknown arbitration policy %q", name))
	}
}
