package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/radar/internal/parquet"
	"golang.org/x/sync/errgroup"
)

// ExecuteHistoryExport writes the chart history to two Parquet files next to outputFile.
func ExecuteHistoryExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized. Set --history-backend to enable it")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no chart history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total chart runs: %d\n", status.TotalRuns)
	fmt.Printf("Total score records: %d\n", status.TotalScores)

	runs, err := store.GetAllChartRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve chart runs: %w", err)
	}

	scores, err := store.GetAllChartScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve chart scores: %w", err)
	}

	parquetRuns := parquet.ConvertChartRunRecords(runs)
	parquetScores := parquet.ConvertChartScoreRecords(scores)

	runsFile := outputFile + ".chart_runs.parquet"
	scoresFile := outputFile + ".chart_scores.parquet"

	var g errgroup.Group
	g.Go(func() error {
		if err := parquet.WriteChartRunsParquet(parquetRuns, runsFile); err != nil {
			return fmt.Errorf("failed to write chart runs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := parquet.WriteChartScoresParquet(parquetScores, scoresFile); err != nil {
			return fmt.Errorf("failed to write chart scores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Exported %d chart runs to: %s\n", len(parquetRuns), runsFile)
	fmt.Printf("Exported %d score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
