package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// Table names for chart history.
const (
	chartRunsTable   = "radar_chart_runs"
	chartScoresTable = "radar_chart_scores"
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, err := openDatabase(backend, connStr, contract.GetHistoryDBFilePath())
	if err != nil {
		return nil, fmt.Errorf("chart history: %w", err)
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// createHistoryTables creates the chart history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{chartRunsTable, getCreateChartRunsQuery(backend)},
		{chartScoresTable, getCreateChartScoresQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateChartRunsQuery returns the CREATE TABLE query for radar_chart_runs.
func getCreateChartRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(chartRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				run_uuid VARCHAR(36) NOT NULL UNIQUE,
				created_at DATETIME(6) NOT NULL,
				preset VARCHAR(100) NOT NULL,
				title VARCHAR(255),
				axis_count INT NOT NULL,
				mean_score DOUBLE NOT NULL,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				run_uuid TEXT NOT NULL UNIQUE,
				created_at TIMESTAMPTZ NOT NULL,
				preset TEXT NOT NULL,
				title TEXT,
				axis_count INT NOT NULL,
				mean_score DOUBLE PRECISION NOT NULL,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_uuid TEXT NOT NULL UNIQUE,
				created_at TEXT NOT NULL,
				preset TEXT NOT NULL,
				title TEXT,
				axis_count INTEGER NOT NULL,
				mean_score REAL NOT NULL,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateChartScoresQuery returns the CREATE TABLE query for radar_chart_scores.
func getCreateChartScoresQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(chartScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				axis_index INT NOT NULL,
				category VARCHAR(255) NOT NULL,
				score DOUBLE NOT NULL,
				x DOUBLE NOT NULL,
				y DOUBLE NOT NULL,
				PRIMARY KEY (run_id, axis_index)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				axis_index INT NOT NULL,
				category TEXT NOT NULL,
				score DOUBLE PRECISION NOT NULL,
				x DOUBLE PRECISION NOT NULL,
				y DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, axis_index)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				axis_index INTEGER NOT NULL,
				category TEXT NOT NULL,
				score REAL NOT NULL,
				x REAL NOT NULL,
				y REAL NOT NULL,
				PRIMARY KEY (run_id, axis_index)
			);
		`, quotedTableName)
	}
}

// RecordChart stores one chart run together with its per-axis scores.
// It returns the run ID and the run UUID.
func (hs *HistoryStoreImpl) RecordChart(record schema.ChartRecord) (int64, string, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, "", nil
	}

	configJSON, err := json.Marshal(record.ConfigParams)
	if err != nil {
		return 0, "", fmt.Errorf("failed to marshal config params: %w", err)
	}

	var title any
	if record.Title != "" {
		title = record.Title
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	runUUID := uuid.NewString()
	layout := record.Layout

	tx, err := hs.db.Begin()
	if err != nil {
		return 0, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runsTable := quoteTableName(chartRunsTable, hs.backend)
	runArgs := []any{
		runUUID, formatTime(createdAt, hs.backend), record.Preset, title,
		len(layout.Markers), layout.MeanScore(), string(configJSON),
	}

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, created_at, preset, title, axis_count, mean_score, config_params)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING run_id`, runsTable)
		err = tx.QueryRow(query, runArgs...).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, created_at, preset, title, axis_count, mean_score, config_params)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, runsTable)
		var result sql.Result
		result, err = tx.Exec(query, runArgs...)
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, "", fmt.Errorf("failed to insert chart run: %w", err)
	}

	scoresQuery := fmt.Sprintf(`INSERT INTO %s (run_id, axis_index, category, score, x, y) VALUES (%s, %s, %s, %s, %s, %s)`,
		append([]any{quoteTableName(chartScoresTable, hs.backend)}, placeholders(hs.backend, 6)...)...)
	stmt, err := tx.Prepare(scoresQuery)
	if err != nil {
		return 0, "", fmt.Errorf("failed to prepare score insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, m := range layout.Markers {
		if _, err := stmt.Exec(runID, m.Index, m.Category, m.Score, m.Point.X, m.Point.Y); err != nil {
			return 0, "", fmt.Errorf("failed to insert score for %s: %w", m.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, "", fmt.Errorf("failed to commit chart run: %w", err)
	}

	return runID, runUUID, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// scanTime reads a time column, parsing the text form SQLite stores.
func (hs *HistoryStoreImpl) scanTime(scan func(dest ...any) error, dest *time.Time, other ...any) error {
	if hs.backend != schema.SQLiteBackend {
		return scan(append(other, dest)...)
	}
	var raw string
	if err := scan(append(other, &raw)...); err != nil {
		return err
	}
	t, err := parseTime(raw)
	if err != nil {
		return fmt.Errorf("failed to parse time %q: %w", raw, err)
	}
	*dest = t
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	runsTable := quoteTableName(chartRunsTable, hs.backend)

	// Get total runs
	if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", runsTable)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run info
		row := hs.db.QueryRow(fmt.Sprintf("SELECT run_id, created_at FROM %s ORDER BY run_id DESC LIMIT 1", runsTable))
		if err := hs.scanTime(row.Scan, &status.LastRunTime, &status.LastRunID); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}

		// Get oldest run time
		row = hs.db.QueryRow(fmt.Sprintf("SELECT created_at FROM %s ORDER BY run_id ASC LIMIT 1", runsTable))
		if err := hs.scanTime(row.Scan, &status.OldestRunTime); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	// Get table sizes
	for _, table := range []string{chartRunsTable, chartScoresTable} {
		var count int64
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend))
		if err := hs.db.QueryRow(countQuery).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalScores = int(status.TableSizes[chartScoresTable])

	return status, nil
}

// GetAllChartRuns retrieves all chart runs from the store.
func (hs *HistoryStoreImpl) GetAllChartRuns() ([]schema.ChartRunRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, run_uuid, preset, title, axis_count, mean_score, config_params, created_at
		FROM %s ORDER BY run_id`, quoteTableName(chartRunsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ChartRunRecord
	for rows.Next() {
		var r schema.ChartRunRecord
		if err := hs.scanTime(rows.Scan, &r.CreatedAt,
			&r.RunID, &r.RunUUID, &r.Preset, &r.Title, &r.AxisCount, &r.MeanScore, &r.ConfigParams); err != nil {
			return nil, fmt.Errorf("failed to scan chart run: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart runs: %w", err)
	}

	return results, nil
}

// GetAllChartScores retrieves all per-axis scores from the store.
func (hs *HistoryStoreImpl) GetAllChartScores() ([]schema.ChartScoreRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, axis_index, category, score, x, y FROM %s ORDER BY run_id, axis_index`,
		quoteTableName(chartScoresTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ChartScoreRecord
	for rows.Next() {
		var r schema.ChartScoreRecord
		if err := rows.Scan(&r.RunID, &r.AxisIndex, &r.Category, &r.Score, &r.X, &r.Y); err != nil {
			return nil, fmt.Errorf("failed to scan chart score: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart scores: %w", err)
	}

	return results, nil
}
