// Package testutil provides shared test infrastructure: a JSON-driven
// golden dataset of end-to-end mesh scenarios, loaded by the sim/mesh
// package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset is the structure of testdata/goldendataset.json: one entry
// per end-to-end scenario exercised by the mesh simulation.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario describes one mesh configuration and traffic set.
type GoldenScenario struct {
	Name           string          `json:"name"`
	Dimension      int             `json:"dimension"`
	NumberOfVC     int             `json:"number_of_vc"`
	VCBufferSize   int             `json:"vc_buffer_size"`
	Arbitration    string          `json:"arbitration"`
	PreemptionMode string          `json:"preemption_mode"`
	Quantum        []int64         `json:"quantum"`
	Horizon        int64           `json:"horizon"`
	Messages       []GoldenMessage `json:"messages"`
}

// GoldenMessage is one traffic flow in a GoldenScenario.
type GoldenMessage struct {
	ID       string `json:"id"`
	Period   int64  `json:"period"`
	Offset   int64  `json:"offset"`
	Deadline int64  `json:"deadline"`
	Size     int64  `json:"size"`
	Priority int    `json:"priority"`
	SrcI     int    `json:"src_i"`
	SrcJ     int    `json:"src_j"`
	DestI    int    `json:"dest_i"`
	DestJ    int    `json:"dest_j"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/
// -> testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
