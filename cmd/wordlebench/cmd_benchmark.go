package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/spf13/cobra"

	"github.com/jinterlante1206/WordleBench/pkg/ux"
	"github.com/jinterlante1206/WordleBench/services/benchmark"
	"github.com/jinterlante1206/WordleBench/services/llm"
	"github.com/jinterlante1206/WordleBench/services/solver"
)

func runBenchmark(cmd *cobra.Command, _ []string) {
	if benchConfig == "" {
		slog.Error("Please provide a scenario file using --config (e.g., --config scenarios/fibble_ollama.yaml)")
		return
	}

	scenario, err := benchmark.LoadScenario(benchConfig)
	if err != nil {
		slog.Error("Failed to load scenario", "path", benchConfig, "error", err)
		return
	}

	vocab, err := scenario.Vocabulary()
	if err != nil {
		slog.Error("Failed to load vocabulary", "error", err)
		return
	}

	oracle, err := llm.ForPlatform(scenario.Oracle.Platform, scenario.Oracle.BaseURL,
		scenario.Oracle.Model,
		time.Duration(scenario.Oracle.TimeoutSeconds)*time.Second,
		scenario.Oracle.RequestsPerSecond)
	if err != nil {
		slog.Error("Failed to configure oracle", "error", err)
		return
	}

	session, err := solver.NewSession(solver.Config{
		Vocabulary: vocab,
		Starters:   scenario.Starters(),
		MaxGuesses: scenario.Game.MaxGuesses,
		Lies:       scenario.Game.Lies,
		CallBudget: scenario.Oracle.CallBudget,
	}, oracle, logger)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		return
	}

	// InfluxDB storage is best-effort: no token means JSON-file-only.
	var storage benchmark.ResultStorage
	if !benchNoStore {
		influx, err := benchmark.NewInfluxDBStorage()
		if err != nil {
			slog.Warn("InfluxDB storage disabled", "reason", err)
		} else {
			storage = influx
			defer influx.Close()
		}
	}

	runner := benchmark.NewRunner(scenario, session, logger, storage)

	fmt.Printf("\nStarting Benchmark Run\n")
	fmt.Printf("   Scenario:   %s (v%s)\n", scenario.Metadata.ID, scenario.Metadata.Version)
	fmt.Printf("   Platform:   %s\n", scenario.Oracle.Platform)
	fmt.Printf("   Model:      %s\n", scenario.Oracle.Model)
	fmt.Printf("   Games:      %d\n", scenario.Game.Games)
	fmt.Printf("   Lies:       %d\n", scenario.Game.Lies)
	fmt.Println("---------------------------------------------------")

	summary, err := runner.Run(context.Background())
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		return
	}

	printSummary(summary)

	outputDir := benchOutputDir
	if outputDir == "" {
		outputDir = benchmark.DefaultResultsDir
	}
	path, err := summary.WriteJSON(outputDir)
	if err != nil {
		slog.Error("Failed to write results file", "error", err)
		return
	}
	ux.Success(fmt.Sprintf("results saved to %s", path))
}

func printSummary(s *benchmark.Summary) {
	fmt.Println()
	fmt.Println("==================================================")
	fmt.Println("  WORDLEBENCH - FINAL RESULTS")
	fmt.Println("==================================================")
	fmt.Printf("  Run ID:          %s\n", s.RunID)
	fmt.Printf("  Platform:        %s\n", s.Platform)
	fmt.Printf("  Model:           %s\n", s.Model)
	fmt.Printf("  Games:           %d\n", s.NumGames)
	fmt.Printf("  Win Rate:        %.1f%% (%d/%d)\n", s.WinRate*100, s.Wins, s.NumGames)
	fmt.Printf("  Average Tries:   %.2f\n", s.AvgTries)
	fmt.Printf("  Average Latency: %.2fs\n", s.AvgLatency)
	fmt.Printf("  Oracle Calls:    %d\n", s.OracleCalls)
	fmt.Printf("  Good/Bad Ratio:  %.2f\n", s.GoodBadRatio())
	fmt.Println("==================================================")
}

func runBenchExport(cmd *cobra.Command, args []string) {
	runID := args[0]

	outputFlag, _ := cmd.Flags().GetString("output")

	// Default filename
	defaultName := fmt.Sprintf("benchmark_%s.csv", runID)
	var outputFile string

	if outputFlag == "" {
		outputFile = defaultName
	} else {
		// Check if the provided path is an existing directory
		info, err := os.Stat(outputFlag)
		if err == nil && info.IsDir() {
			outputFile = filepath.Join(outputFlag, defaultName)
		} else {
			outputFile = outputFlag
		}
	}

	fmt.Printf("Exporting results for Run ID: %s to %s...\n", runID, outputFile)

	token := os.Getenv("INFLUXDB_TOKEN")
	if token == "" {
		ux.Error("INFLUXDB_TOKEN not set. Benchmark storage was never enabled for this run.")
		return
	}
	url := os.Getenv("INFLUXDB_URL")
	if url == "" {
		url = "http://localhost:8086"
	}
	org := os.Getenv("INFLUXDB_ORG")
	if org == "" {
		org = "wordlebench"
	}
	bucket := os.Getenv("INFLUXDB_BUCKET")
	if bucket == "" {
		bucket = "benchmarks"
	}

	client := influxdb2.NewClient(url, token)
	defer client.Close()

	queryAPI := client.QueryAPI(org)

	// Pivot fields so we get a proper table structure
	query := fmt.Sprintf(`
		from(bucket: "%s")
		  |> range(start: -1y)
		  |> filter(fn: (r) => r["_measurement"] == "%s")
		  |> filter(fn: (r) => r["run_id"] == "%s")
		  |> pivot(rowKey:["_time"], columnKey: ["_field"], valueColumn: "_value")
		  |> sort(columns: ["_time"])
	`, bucket, benchmark.Measurement, runID)

	result, err := queryAPI.Query(context.Background(), query)
	if err != nil {
		slog.Error("InfluxDB query failed", "error", err)
		return
	}

	f, err := os.Create(outputFile)
	if err != nil {
		slog.Error("Failed to create output file", "error", err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close output file", "error", closeErr)
		}
	}()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"Time", "Game", "Target", "Success", "Tries", "Latency_Seconds",
		"Oracle_Calls", "Good_Guesses", "Bad_Guesses", "Completion",
	}
	if err := writer.Write(header); err != nil {
		slog.Error("Failed to write CSV header", "error", err)
		return
	}

	count := 0
	for result.Next() {
		r := result.Record()

		// Helpers for safe value extraction
		getFloat := func(k string) string {
			if v, ok := r.ValueByKey(k).(float64); ok {
				return fmt.Sprintf("%.2f", v)
			}
			return "0.00"
		}
		getInt := func(k string) string {
			if v, ok := r.ValueByKey(k).(int64); ok {
				return fmt.Sprintf("%d", v)
			}
			return "0"
		}
		getString := func(k string) string {
			if v, ok := r.ValueByKey(k).(string); ok {
				return v
			}
			return ""
		}
		getBool := func(k string) string {
			if v, ok := r.ValueByKey(k).(bool); ok {
				return fmt.Sprintf("%t", v)
			}
			return "false"
		}

		row := []string{
			r.Time().Format(time.RFC3339),
			getString("game_id"),
			getString("target"),
			getBool("success"),
			getInt("tries"),
			getFloat("latency_seconds"),
			getInt("oracle_calls"),
			getInt("good_guesses"),
			getInt("bad_guesses"),
			getFloat("completion"),
		}
		if err := writer.Write(row); err != nil {
			slog.Error("Failed to write CSV row", "error", err)
			return
		}
		count++
	}
	if result.Err() != nil {
		slog.Error("InfluxDB result iteration failed", "error", result.Err())
		return
	}

	ux.Success(fmt.Sprintf("exported %d games to %s", count, outputFile))
}
