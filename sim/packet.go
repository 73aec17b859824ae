package sim

import (
	"fmt"
	"math"
)

// Packet is a fixed, ordered sequence of flits sharing one VC allocation
// chain — an indivisible routing unit under wormhole flow control.
type Packet struct {
	Index    int // position within the owning message instance (0 = first)
	Instance *MessageInstance
	Priority int // VC class requested under priority-preemptive arbitration
	Flits    []*Flit
}

// NewPacket builds a packet of FlitsPerPacket flits: a head, FlitsPerPacket-2
// body flits, and a tail, all stamped with the given destination.
func NewPacket(index int, instance *MessageInstance, dest Coordinate) *Packet {
	p := &Packet{
		Index:    index,
		Instance: instance,
		Priority: instance.Message.Priority,
	}
	p.Flits = make([]*Flit, FlitsPerPacket)
	for i := 0; i < FlitsPerPacket; i++ {
		typ := FlitBody
		switch i {
		case 0:
			typ = FlitHead
		case FlitsPerPacket - 1:
			typ = FlitTail
		}
		p.Flits[i] = newFlit(i, typ, p, dest)
	}
	return p
}

// NumPackets returns the number of packets a message of the given size (in
// bits) is segmented into: payload packets plus head/tail framing packets.
func NumPackets(sizeBits int64) int {
	return int(math.Ceil(float64(sizeBits)/float64(PacketSizeBits))) + 2
}

func (p *Packet) String() string {
	return fmt.Sprintf("Packet(%d) from Message(%s)", p.Index, p.Instance.Message.ID)
}

// IsFirst reports whether this is the first packet of its message instance,
// whose head flit stamps the instance's depart time on injection.
func (p *Packet) IsFirst() bool {
	return p.Index == 0
}

// IsLast reports whether this is the last packet of its message instance,
// whose tail flit stamps the instance's arrival time on ejection.
func (p *Packet) IsLast() bool {
	return p.Index == len(p.Instance.Packets)-1
}
