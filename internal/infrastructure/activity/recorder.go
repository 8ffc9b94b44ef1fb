package activity

import (
	"encoding/json"
	"os"
	"time"

	domain "osmcad/internal/domain/conversion"
)

// Recorder appends completed-conversion events to a line-delimited JSON
// file consumed by the project activity log. It is best-effort: callers
// treat failures as non-fatal.
type Recorder struct {
	Path string
}

func NewRecorder(path string) *Recorder {
	return &Recorder{Path: path}
}

type event struct {
	Event       string    `json:"event"`
	JobID       string    `json:"jobId"`
	OutputFile  string    `json:"outputFile"`
	PlanType    string    `json:"planType"`
	SubmittedBy string    `json:"submittedBy"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// RecordConversion writes one event line for a finished job.
func (r *Recorder) RecordConversion(job domain.Job) error {
	if r.Path == "" {
		return nil
	}

	line, err := json.Marshal(event{
		Event:       "conversion-completed",
		JobID:       job.ID,
		OutputFile:  job.OutputFile,
		PlanType:    string(job.Options.PlanType),
		SubmittedBy: job.SubmittedBy,
		RecordedAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
