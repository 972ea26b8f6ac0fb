package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
)

// Job is one row of the per-run extract-job ledger.
type Job struct {
	ID           uuid.UUID
	SourcePath   string
	Status       constants.JobStatus
	PanelCount   int
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   *time.Time
}

const createJobsTable = `
CREATE TABLE IF NOT EXISTS extract_jobs (
	id            TEXT PRIMARY KEY,
	source_path   TEXT NOT NULL,
	status        TEXT NOT NULL,
	panel_count   INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT '',
	started_at    TIMESTAMP NOT NULL,
	finished_at   TIMESTAMP
)`

// Open opens (creating if needed) the sqlite ledger at path.
// Use ":memory:" for an ephemeral run.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, createJobsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create extract_jobs: %w", err)
	}
	return db, nil
}

// JobRepository records per-document processing outcomes.
type JobRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewJobRepository(db *sql.DB, logger *slog.Logger) *JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobRepository{db: db, log: logger}
}

// Start inserts a RUNNING row for sourcePath and returns its id.
func (r *JobRepository) Start(ctx context.Context, sourcePath string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extract_jobs (id, source_path, status, started_at) VALUES (?, ?, ?, ?)`,
		id.String(), sourcePath, string(constants.JobStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert job: %w", err)
	}
	r.log.Info("repository.jobs.started", "job_id", id, "source_path", sourcePath)
	return id, nil
}

// FinishSuccess marks a job OK with the number of merged panels.
func (r *JobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, panelCount int) error {
	return r.finish(ctx, id, constants.JobStatusOK, panelCount, "")
}

// FinishFailure marks a job FAILED with its terminal error message.
func (r *JobRepository) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	return r.finish(ctx, id, constants.JobStatusFailed, 0, message)
}

func (r *JobRepository) finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, panelCount int, message string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE extract_jobs SET status = ?, panel_count = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(status), panelCount, message, time.Now().UTC(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish job: %w: no row for id %s", common.ErrNotFound, id)
	}
	r.log.Info("repository.jobs.finished", "job_id", id, "status", status, "panel_count", panelCount)
	return nil
}

// List returns all jobs ordered by start time ascending.
func (r *JobRepository) List(ctx context.Context) ([]Job, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_path, status, panel_count, error_message, started_at, finished_at
		 FROM extract_jobs ORDER BY started_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.log.Warn("repository.jobs.rows_close_error", "error", cerr)
		}
	}()

	var jobs []Job
	for rows.Next() {
		var (
			j        Job
			rawID    string
			status   string
			finished sql.NullTime
		)
		if err := rows.Scan(&rawID, &j.SourcePath, &status, &j.PanelCount, &j.ErrorMessage, &j.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse job id: %w", err)
		}
		j.ID = id
		j.Status = constants.JobStatus(status)
		if finished.Valid {
			t := finished.Time
			j.FinishedAt = &t
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
