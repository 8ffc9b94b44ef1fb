package conversion

import (
	"errors"
	"time"
)

// Status describes where a conversion job is in its lifecycle.
// Transitions only move forward: pending -> processing -> completed|error.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrDuplicateJobID = errors.New("duplicate job id")
)

// Job is the state of one conversion attempt. It is created at submission,
// mutated only by the goroutine that runs the conversion, and read
// concurrently by status pollers.
type Job struct {
	ID            string
	InputPath     string
	RequestedName string
	ProjectRef    string
	Options       Options
	Status        Status
	Progress      int
	Message       string
	CreatedAt     time.Time
	CompletedAt   *time.Time
	ErrorMessage  string
	OutputFile    string
	Stats         map[string]interface{}
	SubmittedBy   string
}

// Terminal reports whether the job has reached a final state.
func (j *Job) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusError
}

// HistoryEntry is an immutable snapshot of a successful conversion, taken at
// completion time. Entries outlive the live job record.
type HistoryEntry struct {
	JobID       string
	OutputFile  string
	PlanType    PlanType
	Projection  string
	SubmittedBy string
	CompletedAt time.Time
	Stats       map[string]interface{}
}
