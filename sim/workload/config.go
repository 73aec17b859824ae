// Package workload loads NoC and scenario YAML files, generates synthetic
// periodic traffic with UUniFast, and computes the hyperperiod horizon.
package workload

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noc-sim/noc-sim/sim"
	"github.com/noc-sim/noc-sim/sim/arbitration"
)

type rawConfig struct {
	Noc struct {
		Dimension    int    `yaml:"dimension"`
		NumberOfVC   int    `yaml:"numberOfVC"`
		VCBufferSize int    `yaml:"VCBufferSize"`
		Arbitration  string `yaml:"arbitration"`
	} `yaml:"noc"`
	Quantum        map[int]int64 `yaml:"quantum"`
	PreemptionMode string        `yaml:"preemptionMode"`
	Seed           int64         `yaml:"seed"`
}

// LoadConfig reads and validates a config.yml, returning the mesh
// configuration and the scenario RNG seed. Unknown fields are rejected.
func LoadConfig(path string) (sim.MeshConfig, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindIO, "reading config %s: %w", path, err)
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "parsing config %s: %w", path, err)
	}

	if raw.Noc.Dimension <= 0 {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "noc.dimension must be positive, got %d", raw.Noc.Dimension)
	}
	if raw.Noc.NumberOfVC <= 0 {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "noc.numberOfVC must be positive, got %d", raw.Noc.NumberOfVC)
	}
	if raw.Noc.VCBufferSize <= 0 {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "noc.VCBufferSize must be positive, got %d", raw.Noc.VCBufferSize)
	}
	if !arbitration.IsValid(raw.Noc.Arbitration) {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "noc.arbitration %q must be RR or PRIORITY_PREEMPT", raw.Noc.Arbitration)
	}
	if len(raw.Quantum) != raw.Noc.NumberOfVC {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "quantum has %d entries, want %d (one per VC)", len(raw.Quantum), raw.Noc.NumberOfVC)
	}

	quantum := make([]int64, raw.Noc.NumberOfVC)
	for i := 0; i < raw.Noc.NumberOfVC; i++ {
		q, ok := raw.Quantum[i]
		if !ok {
			return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "quantum missing entry for VC %d", i)
		}
		if q <= 0 {
			return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "quantum[%d] must be positive, got %d", i, q)
		}
		quantum[i] = q
	}

	mode, err := sim.ParsePreemptionMode(raw.PreemptionMode)
	if err != nil {
		return sim.MeshConfig{}, 0, sim.Newf(sim.KindConfigInvalid, "config %s: %w", path, err)
	}

	cfg := sim.MeshConfig{
		Dimension:      raw.Noc.Dimension,
		NumberOfVC:     raw.Noc.NumberOfVC,
		VCBufferSize:   raw.Noc.VCBufferSize,
		Arbitration:    raw.Noc.Arbitration,
		Quantum:        quantum,
		PreemptionMode: mode,
	}
	return cfg, raw.Seed, nil
}
