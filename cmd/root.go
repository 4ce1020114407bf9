package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trustbench/trustbench/sim"
	"github.com/trustbench/trustbench/sim/bench"
	"github.com/trustbench/trustbench/sim/workload"
)

var (
	// CLI flags for the benchmark
	seed         int64  // Master seed; reproduces scenarios, costs, and placements
	runs         int    // Number of independent benchmark trials
	iterations   int    // Iterations per strategy per trial
	scenarioPath string // YAML scenario spec path (overrides --preset)
	preset       string // Built-in scenario preset name
	logLevel     string // Log verbosity level
	outputPath   string // Optional JSON results path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "trustbench",
	Short: "Trust-aware task allocation benchmark for edge environments",
}

// runCmd executes the benchmark using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the allocation benchmark",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := resolveScenario(scenarioPath, preset)
		if err != nil {
			logrus.Fatalf("Scenario configuration error: %v", err)
		}

		logrus.Infof("Starting benchmark: scenario=%q runs=%d iterations=%d seed=%d",
			spec.Name, runs, iterations, seed)
		startTime := time.Now()

		results, err := bench.Run(spec, bench.Options{
			Trials:     runs,
			Iterations: iterations,
			Seed:       seed,
		})
		if err != nil {
			logrus.Fatalf("Benchmark failed: %v", err)
		}

		printSummary(results)
		if outputPath != "" {
			writeResults(results, outputPath)
		}

		logrus.Infof("Benchmark complete in %v.", time.Since(startTime))
	},
}

// scenariosCmd lists the built-in scenario presets
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range workload.PresetNames() {
			spec, _ := workload.Preset(name)
			cmd.Printf("%-10s %s: %d hosts, %d work items, %.0f%% malicious\n",
				name, spec.Domain, spec.Hosts.Count, spec.Items.Count, spec.MaliciousFraction*100)
		}
	},
}

// resolveScenario picks the scenario spec: an explicit YAML file wins over the
// preset name.
func resolveScenario(path, presetName string) (*workload.ScenarioSpec, error) {
	if path != "" {
		return workload.LoadScenarioSpec(path)
	}
	return workload.Preset(presetName)
}

// printSummary logs each strategy's final-iteration means for the headline
// metrics.
func printSummary(results bench.Results) {
	for _, strategy := range sim.AvailableStrategies() {
		series, ok := results[strategy]
		if !ok {
			continue
		}
		completion := series[sim.MetricCompletionRatio+"_mean"]
		malicious := series[sim.MetricMaliciousAccepted+"_mean"]
		honest := series[sim.MetricAvgTrustHonest+"_mean"]
		if len(completion) == 0 {
			continue
		}
		last := len(completion) - 1
		logrus.Infof("%-12s completion=%.3f malicious_accepted=%.3f avg_trust_honest=%.3f",
			strategy, completion[last], malicious[last], honest[last])
	}
}

// writeResults exports the aggregated results as indented JSON.
func writeResults(results bench.Results, path string) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logrus.Fatalf("Error encoding results: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logrus.Fatalf("Error writing results to %s: %v", path, err)
	}
	logrus.Infof("Results written to %s", path)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for scenario, cost, and placement randomness")
	runCmd.Flags().IntVar(&runs, "runs", 5, "Number of independent benchmark trials")
	runCmd.Flags().IntVar(&iterations, "iterations", 50, "Iterations per strategy per trial")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario spec path (overrides --preset)")
	runCmd.Flags().StringVar(&preset, "preset", "edge", "Built-in scenario preset (see 'trustbench scenarios')")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write aggregated results as JSON to this path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}
