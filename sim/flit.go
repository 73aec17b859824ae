package sim

import "fmt"

// FlitSizeBits and PacketSizeBits are the fixed transport-layer constants
// from the spec: every packet is four 32-bit flits.
const (
	FlitSizeBits   = 32
	PacketSizeBits = 128
	FlitsPerPacket = PacketSizeBits / FlitSizeBits
)

// FlitType tags a flit's position within its packet.
type FlitType int

const (
	FlitHead FlitType = iota
	FlitBody
	FlitTail
)

func (t FlitType) String() string {
	switch t {
	case FlitHead:
		return "head"
	case FlitBody:
		return "body"
	case FlitTail:
		return "tail"
	default:
		return fmt.Sprintf("FlitType(%d)", int(t))
	}
}

// Flit is the atomic transport unit advanced by the router pipeline.
//
// Timestamp records the cycle of the flit's last move and exists solely to
// enforce the one-hop-per-cycle invariant: a flit whose Timestamp equals the
// current cycle is ineligible to move again this cycle.
type Flit struct {
	Index       int // position within the owning packet (0 = head)
	Type        FlitType
	Packet      *Packet
	Destination Coordinate
	Timestamp   int64
}

// unmoved is the sentinel Timestamp for a flit that has never traversed a
// link, distinct from any real cycle number (cycle 0 included).
const unmoved int64 = -1

func newFlit(index int, typ FlitType, packet *Packet, dest Coordinate) *Flit {
	return &Flit{
		Index:       index,
		Type:        typ,
		Packet:      packet,
		Destination: dest,
		Timestamp:   unmoved,
	}
}

// MovedThisCycle reports whether the flit already advanced during cycle now,
// the guard against a flit moving twice within the same synchronous tick.
func (f *Flit) MovedThisCycle(now int64) bool {
	return f.Timestamp == now
}

func (f *Flit) String() string {
	return fmt.Sprintf("Flit(%d-%s) from %s", f.Index, f.Type, f.Packet)
}
