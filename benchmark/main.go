// Package main provides a performance benchmarking tool for the Radar CLI.
// It measures render times for every builtin preset and artifact format,
// running each case multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - radar binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-dir]
//
//	output-dir: Directory that receives the rendered charts
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Preset      string
	Format      string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	OutputDir   string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Formats     []string
	PresetArgs  map[string][]string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [output-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		OutputDir:   os.Args[1],
		Timeout:     time.Minute,
		NoCacheRuns: 5,
		CacheRuns:   6,
		Formats:     []string{"svg", "png"},
		PresetArgs: map[string][]string{
			"v1": scoreArgs("composition", "noise", "exposure", "dynamic_range", "sharpness", "white_balance"),
			"v2": scoreArgs("composition", "subject", "exposure", "aesthetics", "sharpness", "color"),
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("radar", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// scoreArgs builds a --score flag for each category with a spread of values.
func scoreArgs(keys ...string) []string {
	args := make([]string, 0, len(keys)*2)
	for i, key := range keys {
		args = append(args, "--score", fmt.Sprintf("%s=%d", key, 40+i*10))
	}
	return args
}

// checkPrerequisites verifies that the radar binary exists and the output directory is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("radar"); err != nil {
		return fmt.Errorf("radar binary not found in PATH")
	}
	return os.MkdirAll(config.OutputDir, 0o755)
}

// runBenchmarks executes all benchmark cases across presets and formats
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d presets, %d formats, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.PresetArgs), len(config.Formats), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, preset := range []string{"v1", "v2"} {
		for _, format := range config.Formats {
			results = append(results, runBenchmarkSuite(config, preset, format))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a preset and format
func runBenchmarkSuite(config BenchmarkConfig, preset, format string) BenchmarkResult {
	fmt.Printf("Rendering %s as %s\n", preset, format)

	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, preset, format, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Preset:      preset,
		Format:      format,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark renders a chart multiple times with the given cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, preset, format, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	outputFile := filepath.Join(config.OutputDir, fmt.Sprintf("%s_%s.%s", preset, cacheBackend, format))
	args := []string{
		"render",
		"--preset", preset,
		"--output", format,
		"--output-file", outputFile,
		"--cache-backend", cacheBackend,
	}
	args = append(args, config.PresetArgs[preset]...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		_ = os.Remove(outputFile)
		start := time.Now()

		cmd := exec.Command("radar", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil && isSuccess(outputFile) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks that the render produced a non-empty artifact
func isSuccess(outputFile string) bool {
	info, err := os.Stat(outputFile)
	return err == nil && info.Size() > 0
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/radar_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"preset", "format", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Preset, result.Format, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, format := range []string{"svg", "png"} {
		fmt.Printf("%s Render:\n", format)
		for _, result := range results {
			if result.Format == format {
				fmt.Printf("  %-4s: No-cache: %s, Cold: %s, Warm: %s\n", result.Preset, result.NoCacheTime, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
