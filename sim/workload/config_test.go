package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noc-sim/noc-sim/sim"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigValid(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
noc:
  dimension: 4
  numberOfVC: 2
  VCBufferSize: 8
  arbitration: RR
quantum:
  0: 4
  1: 6
preemptionMode: forbid
seed: 42
`)
	cfg, seed, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Dimension)
	assert.Equal(t, 2, cfg.NumberOfVC)
	assert.Equal(t, 8, cfg.VCBufferSize)
	assert.Equal(t, "RR", cfg.Arbitration)
	assert.Equal(t, []int64{4, 6}, cfg.Quantum)
	assert.Equal(t, sim.PreemptionForbid, cfg.PreemptionMode)
	assert.EqualValues(t, 42, seed)
}

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
noc:
  dimension: 4
  numberOfVC: 1
  VCBufferSize: 4
  arbitration: RR
  bogusField: true
quantum:
  0: 4
`)
	_, _, err := LoadConfig(path)
	assert.Error(t, err, "expected an error for an unrecognized field")
}

func TestLoadConfigRejectsMissingQuantumEntry(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
noc:
  dimension: 2
  numberOfVC: 2
  VCBufferSize: 4
  arbitration: RR
quantum:
  0: 4
`)
	_, _, err := LoadConfig(path)
	assert.Error(t, err, "expected an error: quantum has 1 entry but numberOfVC is 2")
}

func TestLoadConfigRejectsInvalidArbitration(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
noc:
  dimension: 2
  numberOfVC: 1
  VCBufferSize: 4
  arbitration: BOGUS
quantum:
  0: 4
`)
	_, _, err := LoadConfig(path)
	assert.Error(t, err, "expected an error for an unrecognized arbitration policy")
}

func TestLoadConfigRejectsNonPositiveQuantum(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
noc:
  dimension: 2
  numberOfVC: 1
  VCBufferSize: 4
  arbitration: RR
quantum:
  0: 0
`)
	_, _, err := LoadConfig(path)
	assert.Error(t, err, "expected an error for a non-positive quantum entry")
}
