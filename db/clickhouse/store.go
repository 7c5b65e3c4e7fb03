// Package clickhouse provides the estimate archive store.
// Optimized for append-only run history and per-material line analytics
// across many reports and rate-source snapshots.
package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"roadcost/costing"
)

// Config holds ClickHouse connection configuration.
type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Debug    bool
}

// DefaultConfig returns default development configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     9000,
		Database: "roadcost",
		Username: "default",
		Password: "",
		Debug:    false,
	}
}

// Store archives estimation runs in ClickHouse.
type Store struct {
	conn clickhouse.Conn
	cfg  *Config
}

// NewStore connects to ClickHouse.
func NewStore(cfg *Config) (*Store, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: cfg.Debug,
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	return &Store{conn: conn, cfg: cfg}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// EnsureSchema creates the archive tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS estimate_runs (
			run_id         UUID,
			source         String,
			estimated_at   DateTime64(3),
			interventions  UInt32,
			total_cost     Decimal64(2),
			confidence     Float64,
			is_incomplete  UInt8,
			lines_priced   UInt32,
			lines_omitted  UInt32,
			created_at     DateTime DEFAULT now()
		) ENGINE = MergeTree() ORDER BY (estimated_at, run_id)`,

		`CREATE TABLE IF NOT EXISTS estimate_lines (
			run_id        UUID,
			estimate_id   String,
			intervention  String,
			standard      String,
			material_code String,
			description   String,
			quantity      Float64,
			unit          String,
			rate          Decimal64(2),
			cost          Decimal64(2),
			source        String,
			created_at    DateTime DEFAULT now()
		) ENGINE = MergeTree() ORDER BY (run_id, estimate_id, material_code)`,
	}

	for _, q := range ddl {
		if err := s.conn.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to create archive schema: %w", err)
		}
	}
	return nil
}

// InsertRun archives a full estimation run: one run row plus one row
// per priced material line.
func (s *Store) InsertRun(ctx context.Context, result *costing.Result) error {
	err := s.conn.Exec(ctx, `
		INSERT INTO estimate_runs (
			run_id, source, estimated_at, interventions, total_cost,
			confidence, is_incomplete, lines_priced, lines_omitted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		result.RunID,
		string(result.Source),
		result.EstimatedAt,
		uint32(len(result.Estimates)),
		result.TotalCost,
		result.Confidence,
		boolToUInt8(result.IsIncomplete),
		uint32(result.LinesPriced),
		uint32(result.LinesOmitted),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	if len(result.Estimates) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO estimate_lines (
			run_id, estimate_id, intervention, standard, material_code,
			description, quantity, unit, rate, cost, source
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare line batch: %w", err)
	}

	for _, est := range result.Estimates {
		for _, line := range est.Materials {
			err := batch.Append(
				result.RunID,
				est.ID,
				est.Intervention.Type,
				est.Standard,
				line.Entry.Code,
				line.Entry.Description,
				line.Quantity,
				string(line.Entry.Unit),
				line.Entry.Rate,
				line.Cost,
				line.Entry.Source,
			)
			if err != nil {
				return fmt.Errorf("failed to append line: %w", err)
			}
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send line batch: %w", err)
	}
	return nil
}

// RunRecord is one archived run summary.
type RunRecord struct {
	RunID         uuid.UUID       `ch:"run_id"`
	Source        string          `ch:"source"`
	EstimatedAt   time.Time       `ch:"estimated_at"`
	Interventions uint32          `ch:"interventions"`
	TotalCost     decimal.Decimal `ch:"total_cost"`
	Confidence    float64         `ch:"confidence"`
	IsIncomplete  bool            `ch:"-"`
	LinesPriced   uint32          `ch:"lines_priced"`
	LinesOmitted  uint32          `ch:"lines_omitted"`
}

// RecentRuns returns the most recent archived runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(ctx, `
		SELECT run_id, source, estimated_at, interventions, total_cost,
		       confidence, is_incomplete, lines_priced, lines_omitted
		FROM estimate_runs
		ORDER BY estimated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var incomplete uint8
		err := rows.Scan(
			&rec.RunID, &rec.Source, &rec.EstimatedAt, &rec.Interventions,
			&rec.TotalCost, &rec.Confidence, &incomplete,
			&rec.LinesPriced, &rec.LinesOmitted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.IsIncomplete = incomplete == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToUInt8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
