package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/noc-sim/noc-sim/sim"
	"github.com/noc-sim/noc-sim/sim/mesh"
	"github.com/noc-sim/noc-sim/sim/trace"
	"github.com/noc-sim/noc-sim/sim/workload"
)

// RunOptions carries CLI overrides of config-file settings.
type RunOptions struct {
	PreemptionOverride string
	SeedOverride       int64
	SeedOverrideSet    bool
}

// RunAll walks inputDir for subdirectories holding a config.yml and
// scenario.yml pair, and runs each as an independent scenario.
func RunAll(inputDir string, opts RunOptions) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return sim.Newf(sim.KindIO, "reading input directory %s: %w", inputDir, err)
	}

	ran := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(inputDir, entry.Name())
		configPath := filepath.Join(dir, "config.yml")
		scenarioPath := filepath.Join(dir, "scenario.yml")
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		if _, err := os.Stat(scenarioPath); err != nil {
			continue
		}

		logrus.Infof("--- scenario %s ---", entry.Name())
		if err := RunScenario(dir, opts); err != nil {
			return err
		}
		ran++
	}

	if ran == 0 {
		return sim.Newf(sim.KindIO, "no scenario subdirectories (config.yml + scenario.yml) found under %s", inputDir)
	}
	return nil
}

// RunScenario loads, simulates, and writes results for the scenario at dir.
func RunScenario(dir string, opts RunOptions) error {
	cfg, seed, err := workload.LoadConfig(filepath.Join(dir, "config.yml"))
	if err != nil {
		return err
	}
	if opts.PreemptionOverride != "" {
		mode, err := sim.ParsePreemptionMode(opts.PreemptionOverride)
		if err != nil {
			return sim.Newf(sim.KindConfigInvalid, "%w", err)
		}
		cfg.PreemptionMode = mode
	}
	if opts.SeedOverrideSet {
		seed = opts.SeedOverride
	}

	logrus.Infof("NoC configuration: dimension=%dx%d vc=%d vc_size=%d arbitration=%s",
		cfg.Dimension, cfg.Dimension, cfg.NumberOfVC, cfg.VCBufferSize, cfg.Arbitration)

	rng := workload.NewRNG(seed)
	messages, err := workload.LoadScenario(filepath.Join(dir, "scenario.yml"), cfg.Dimension, rng)
	if err != nil {
		return err
	}

	if err := trace.WriteAnalysis(filepath.Join(dir, "result_analysis.csv"), messages, cfg.NumberOfVC, cfg.VCBufferSize); err != nil {
		return err
	}

	noc, err := mesh.NewNoC(cfg)
	if err != nil {
		return err
	}

	hyperperiod := workload.Hyperperiod(messages)
	horizon := hyperperiod + maxDeadline(messages)

	scheduler := mesh.NewScheduler(noc, horizon)
	for _, m := range messages {
		for k := int64(0); m.ReleaseTime(k) < hyperperiod; k++ {
			scheduler.ScheduleRelease(sim.NewMessageInstance(m, k))
		}
	}

	instances := scheduler.Run()
	for _, inst := range instances {
		logrus.Debug(trace.Summarize(inst))
	}

	return trace.WriteResults(filepath.Join(dir, "simulation_result.csv"), instances)
}

func maxDeadline(messages []*sim.Message) int64 {
	var max int64
	for _, m := range messages {
		if m.Deadline > max {
			max = m.Deadline
		}
	}
	return max
}
