package constants

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB). Rows are inserted RUNNING;
// enqueued documents have no ledger row until a worker picks them up.
const (
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOK      JobStatus = "OK"      // document processed, panels persisted
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure (layout analysis or persistence)
)
