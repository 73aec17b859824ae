package sim

import "fmt"

// Message is a periodic real-time traffic flow between one source and one
// destination PE.
type Message struct {
	ID       string
	Period   int64
	Offset   int64
	Deadline int64 // relative to release time
	Size     int64 // bits
	Src      Coordinate
	Dest     Coordinate

	// Priority is the VC class this message's packets request under
	// priority-preemptive arbitration (lower = higher priority). Ignored
	// under round-robin, where VC_alloc picks the next free VC by sweep.
	// Scenario field, defaults to 0 (highest) when unspecified.
	Priority int
}

func (m *Message) String() string {
	return fmt.Sprintf("[id: %s -- size: %d -- period: %d -- offset: %d -- deadline: %d -- src: %s -- dest: %s]",
		m.ID, m.Size, m.Period, m.Offset, m.Deadline, m.Src, m.Dest)
}

// ReleaseTime returns the release cycle of the k-th instance of this message.
func (m *Message) ReleaseTime(k int64) int64 {
	return m.Offset + k*m.Period
}

// MessageInstance is a concrete release of a Message at ReleaseTime, carrying
// its own packets and depart/arrival bookkeeping.
type MessageInstance struct {
	Message *Message
	Index   int64 // k, the k-th release of Message

	ReleaseTime int64
	DepartTime  int64 // cycle the first flit left the source PE; unset sentinel
	ArrivalTime int64 // cycle the last tail flit reached the destination PE; unset sentinel

	Packets []*Packet
}

// unset is the sentinel for depart/arrival times that have not yet occurred.
const unset int64 = -1

// NewMessageInstance builds the k-th release of msg, segmenting it into
// ⌈size/PACKET_SIZE⌉ + 2 packets.
func NewMessageInstance(msg *Message, k int64) *MessageInstance {
	inst := &MessageInstance{
		Message:     msg,
		Index:       k,
		ReleaseTime: msg.ReleaseTime(k),
		DepartTime:  unset,
		ArrivalTime: unset,
	}
	n := NumPackets(msg.Size)
	inst.Packets = make([]*Packet, n)
	for i := 0; i < n; i++ {
		inst.Packets[i] = NewPacket(i, inst, msg.Dest)
	}
	return inst
}

// SetDepartTime stamps the cycle the head flit of the first packet left the
// source PE. A no-op once already set, matching the original's "set depart
// time for the first flit in the first packet" guard.
func (mi *MessageInstance) SetDepartTime(now int64) {
	if mi.DepartTime == unset {
		mi.DepartTime = now
	}
}

// SetArrivalTime stamps the cycle the tail flit of the last packet reached
// the destination PE.
func (mi *MessageInstance) SetArrivalTime(now int64) {
	mi.ArrivalTime = now
}

// Arrived reports whether every packet of this instance has been ejected.
func (mi *MessageInstance) Arrived() bool {
	return mi.ArrivalTime != unset
}

// Latency returns ArrivalTime - DepartTime, or -1 if the instance has not
// fully arrived.
func (mi *MessageInstance) Latency() int64 {
	if mi.DepartTime == unset || mi.ArrivalTime == unset {
		return unset
	}
	return mi.ArrivalTime - mi.DepartTime
}

// DeadlineMet reports whether the instance's latency (measured from release,
// not depart) is within its relative deadline. Returns false if not yet
// arrived.
func (mi *MessageInstance) DeadlineMet() bool {
	if !mi.Arrived() {
		return false
	}
	return mi.ArrivalTime-mi.ReleaseTime <= mi.Message.Deadline
}

func (mi *MessageInstance) String() string {
	return fmt.Sprintf("Message(%s)(instance=%d)", mi.Message.ID, mi.Index)
}
