package workload

import (
	"bytes"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/noc-sim/noc-sim/sim"
)

type rawCoordinate struct {
	I int `yaml:"i"`
	J int `yaml:"j"`
}

type rawMessage struct {
	Period   int64         `yaml:"period"`
	Offset   int64         `yaml:"offset"`
	Size     int64         `yaml:"size"`
	Deadline int64         `yaml:"deadline"`
	Priority int           `yaml:"priority"`
	Src      rawCoordinate `yaml:"src"`
	Dest     rawCoordinate `yaml:"dest"`
}

type rawScenario struct {
	Scenario []rawMessage `yaml:"scenario"`
	Task     int          `yaml:"task"`
	Method   string       `yaml:"method"`
	Load     float64      `yaml:"load"`
}

// LoadScenario reads a scenario.yml, either an explicit message list or a
// task/method/load directive for UUniFast auto-generation. dimension bounds
// coordinate validation (and feeds coordinate generation for auto mode).
func LoadScenario(path string, dimension int, rng *RNG) ([]*sim.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sim.Newf(sim.KindIO, "reading scenario %s: %w", path, err)
	}

	var raw rawScenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, sim.Newf(sim.KindScenarioInvalid, "parsing scenario %s: %w", path, err)
	}

	if len(raw.Scenario) > 0 {
		return explicitMessages(raw.Scenario, dimension)
	}

	if raw.Task > 0 {
		if raw.Method != "UuniFast" {
			return nil, sim.Newf(sim.KindScenarioInvalid, "unknown generation method %q", raw.Method)
		}
		if raw.Load <= 0 || raw.Load > 1 {
			return nil, sim.Newf(sim.KindScenarioInvalid, "load must be in (0,1], got %v", raw.Load)
		}
		return GenerateUUniFast(rng, raw.Task, raw.Load, dimension), nil
	}

	return nil, sim.Newf(sim.KindScenarioInvalid, "scenario %s has neither 'scenario' nor 'task'", path)
}

func explicitMessages(raw []rawMessage, dimension int) ([]*sim.Message, error) {
	messages := make([]*sim.Message, 0, len(raw))
	for count, m := range raw {
		src := sim.Coordinate{I: m.Src.I, J: m.Src.J}
		dest := sim.Coordinate{I: m.Dest.I, J: m.Dest.J}

		if !inBounds(src, dimension) || !inBounds(dest, dimension) {
			return nil, sim.Newf(sim.KindScenarioInvalid, "message %d: coordinates out of a %dx%d mesh", count, dimension, dimension)
		}
		if src == dest {
			return nil, sim.Newf(sim.KindScenarioInvalid, "message %d: src equals dest %s", count, src)
		}
		if m.Size <= 0 {
			return nil, sim.Newf(sim.KindScenarioInvalid, "message %d: size must be positive, got %d", count, m.Size)
		}
		if m.Period <= 0 {
			return nil, sim.Newf(sim.KindScenarioInvalid, "message %d: period must be positive, got %d", count, m.Period)
		}

		messages = append(messages, &sim.Message{
			ID:       strconv.Itoa(count),
			Period:   m.Period,
			Offset:   m.Offset,
			Deadline: m.Deadline,
			Size:     m.Size,
			Src:      src,
			Dest:     dest,
			Priority: m.Priority,
		})
	}
	return messages, nil
}

func inBounds(c sim.Coordinate, dimension int) bool {
	return c.I >= 0 && c.I < dimension && c.J >= 0 && c.J < dimension
}
