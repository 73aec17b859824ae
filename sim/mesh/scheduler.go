package mesh

import (
	"github.com/sirupsen/logrus"

	"github.com/noc-sim/noc-sim/sim"
)

// Scheduler drives the global synchronous tick loop: releasing message
// instances at their scheduled time, advancing every router one cycle, and
// detecting the horizon.
type Scheduler struct {
	NoC     *NoC
	Now     int64
	Horizon int64

	releases  map[int64][]*sim.MessageInstance
	instances []*sim.MessageInstance
}

// NewScheduler creates a scheduler over noc, terminating no later than
// horizon cycles.
func NewScheduler(noc *NoC, horizon int64) *Scheduler {
	return &Scheduler{
		NoC:      noc,
		Horizon:  horizon,
		releases: make(map[int64][]*sim.MessageInstance),
	}
}

// ScheduleRelease registers inst to be handed to its source PE at its
// ReleaseTime.
func (s *Scheduler) ScheduleRelease(inst *sim.MessageInstance) {
	s.releases[inst.ReleaseTime] = append(s.releases[inst.ReleaseTime], inst)
	s.instances = append(s.instances, inst)
}

// Run executes the tick loop: (a) release instances whose time has come,
// (b) every PE attempts one packet injection, (c) every router steps once,
// (d) the cycle counter advances. Terminates when every scheduled instance
// has arrived or the horizon elapses.
func (s *Scheduler) Run() []*sim.MessageInstance {
	for s.Now <= s.Horizon {
		if insts, ok := s.releases[s.Now]; ok {
			for _, inst := range insts {
				pe := s.NoC.PE(inst.Message.Src.I, inst.Message.Src.J)
				pe.Release(inst)
			}
		}

		for _, pe := range s.NoC.PEs() {
			if pe.Pending() {
				pe.TryInject(s.Now)
			}
		}

		for _, r := range s.NoC.Routers() {
			r.Step(s.Now)
		}

		if s.allArrived() {
			break
		}
		s.Now++
	}

	if outstanding := s.Outstanding(); len(outstanding) > 0 {
		logrus.Warnf("deadlock suspected: horizon %d reached with %d instance(s) undelivered", s.Horizon, len(outstanding))
		for _, inst := range outstanding {
			logrus.Warnf("  stuck: %s released at %d, never arrived", inst, inst.ReleaseTime)
		}
	}

	return s.instances
}

func (s *Scheduler) allArrived() bool {
	for _, inst := range s.instances {
		if !inst.Arrived() {
			return false
		}
	}
	return true
}

// Outstanding returns every scheduled instance that has not arrived.
func (s *Scheduler) Outstanding() []*sim.MessageInstance {
	var out []*sim.MessageInstance
	for _, inst := range s.instances {
		if !inst.Arrived() {
			out = append(out, inst)
		}
	}
	return out
}
