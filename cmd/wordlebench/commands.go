// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/jinterlante1206/WordleBench/pkg/logging"
)

// --- Global Command Variables ---
var (
	verbose bool

	// play flags
	playLies      int
	playTarget    string
	playPlatform  string
	playModel     string
	playBaseURL   string
	playBudget    int
	playWordsFile string

	// benchmark flags
	benchConfig    string
	benchOutputDir string
	benchNoStore   bool

	rootCmd = &cobra.Command{
		Use:   "wordlebench",
		Short: "An LLM-assisted Wordle and Fibble solver with a benchmark harness",
		Long: `WordleBench plays Wordle (and Fibble, the variant where one feedback
column lies) with a constraint-propagation solver that consults an LLM
oracle when several candidates remain plausible.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = logging.New(logging.Config{Level: logging.LevelDebug, Service: "cli"})
			}
		},
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play one game with the solver, rendering the board per turn",
		Run:   runPlay, // Defined in cmd_play.go
	}

	benchmarkCmd = &cobra.Command{
		Use:   "benchmark",
		Short: "Run and export multi-game solver benchmarks",
	}

	runBenchmarkCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark described by a scenario YAML file",
		Run:   runBenchmark, // Defined in cmd_benchmark.go
	}

	exportBenchmarkCmd = &cobra.Command{
		Use:   "export [run_id]",
		Short: "Export benchmark results from InfluxDB to CSV",
		Args:  cobra.ExactArgs(1),
		Run:   runBenchExport, // Defined in cmd_benchmark.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playLies, "lies", 0,
		"Number of lies in feedback (0 = plain Wordle, 1 = Fibble)")
	playCmd.Flags().StringVar(&playTarget, "target", "",
		"Fix the hidden target word instead of drawing randomly")
	playCmd.Flags().StringVar(&playPlatform, "platform", "ollama",
		"Oracle platform (ollama, openai, groq, openrouter)")
	playCmd.Flags().StringVar(&playModel, "model", "",
		"Oracle model name (defaults per platform)")
	playCmd.Flags().StringVar(&playBaseURL, "base-url", "",
		"Override the Ollama base URL")
	playCmd.Flags().IntVar(&playBudget, "call-budget", 0,
		"Max oracle calls per turn (default 5)")
	playCmd.Flags().StringVar(&playWordsFile, "words", "",
		"Load the vocabulary from a file instead of the embedded list")

	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.AddCommand(runBenchmarkCmd)
	runBenchmarkCmd.Flags().StringVar(&benchConfig, "config", "",
		"Scenario YAML file (e.g., scenarios/fibble_ollama.yaml)")
	runBenchmarkCmd.Flags().StringVar(&benchOutputDir, "output-dir", "",
		"Directory for the JSON results file (default benchmarks/logs)")
	runBenchmarkCmd.Flags().BoolVar(&benchNoStore, "no-store", false,
		"Skip InfluxDB storage even when INFLUXDB_TOKEN is set")

	benchmarkCmd.AddCommand(exportBenchmarkCmd)
	exportBenchmarkCmd.Flags().String("output", "", "Output CSV file or directory")
}
