// bench - relic corpus report
//
// Encodes every corpus case and compares raw vs encoded sizes, along
// with the run structure the encoder found.
//
// Output: CSV and a stdout summary
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Neumenon/relic/relic"
)

type CaseResult struct {
	Name         string
	RawBytes     int
	EncodedBytes int
	BytesSaved   int
	BytesPct     float64
	Runs         int
	EscapedRuns  int
	LongestRun   int
}

type Manifest struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Cases       []struct {
		Name string `json:"name"`
		File string `json:"file"`
	} `json:"cases"`
}

func main() {
	testdataDir := findTestdata()
	if testdataDir == "" {
		fmt.Fprintln(os.Stderr, "Cannot find relic/testdata/corpus directory")
		os.Exit(1)
	}

	manifestPath := filepath.Join(testdataDir, "manifest.json")
	manifestData, err := os.ReadFile(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot read manifest: %v\n", err)
		os.Exit(1)
	}

	var manifest Manifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot parse manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "relic Corpus Report\n")
	fmt.Fprintf(os.Stderr, "===================\n")
	fmt.Fprintf(os.Stderr, "Corpus: %s (%d cases)\n\n", manifest.Version, len(manifest.Cases))

	var results []CaseResult
	var totalRawBytes, totalEncodedBytes int

	for _, c := range manifest.Cases {
		casePath := filepath.Join(testdataDir, c.File)
		raw, err := os.ReadFile(casePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: %v\n", c.Name, err)
			continue
		}
		text := strings.TrimSuffix(string(raw), "\n")

		encoded, stats, err := relic.EncodeWithStats(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: encode error: %v\n", c.Name, err)
			continue
		}

		// Every reported case must survive the round trip.
		decoded, err := relic.Decode(encoded)
		if err != nil || decoded != text {
			fmt.Fprintf(os.Stderr, "Skip %s: round trip failed: %v\n", c.Name, err)
			continue
		}

		results = append(results, CaseResult{
			Name:         c.Name,
			RawBytes:     stats.OriginalBytes,
			EncodedBytes: stats.EncodedBytes,
			BytesSaved:   stats.BytesSaved,
			BytesPct:     stats.SavingsPercent,
			Runs:         stats.Runs,
			EscapedRuns:  stats.EscapedRuns,
			LongestRun:   stats.LongestRun,
		})

		totalRawBytes += stats.OriginalBytes
		totalEncodedBytes += stats.EncodedBytes
	}

	csvPath := "bench_results.csv"
	csvFile, err := os.Create(csvPath)
	if err == nil {
		writeCSV(csvFile, results)
		csvFile.Close()
		fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
	}

	saved := totalRawBytes - totalEncodedBytes
	pct := 0.0
	if totalRawBytes > 0 {
		pct = float64(saved) / float64(totalRawBytes) * 100.0
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Cases:         %d\n", len(results))
	fmt.Printf("Raw total:     %d bytes\n", totalRawBytes)
	fmt.Printf("Encoded total: %d bytes\n", totalEncodedBytes)
	fmt.Printf("Bytes saved:   %d (%.1f%%)\n", saved, pct)
}

func findTestdata() string {
	// Try relative paths from likely locations
	paths := []string{
		"relic/testdata/corpus",
		"../relic/testdata/corpus",
		"../../relic/testdata/corpus",
		"testdata/corpus",
	}

	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(p, "manifest.json")); err == nil {
			return p
		}
	}

	return ""
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "name,raw_bytes,encoded_bytes,bytes_saved,bytes_pct,runs,escaped_runs,longest_run")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%.1f,%d,%d,%d\n",
			r.Name, r.RawBytes, r.EncodedBytes, r.BytesSaved, r.BytesPct,
			r.Runs, r.EscapedRuns, r.LongestRun)
	}
}
