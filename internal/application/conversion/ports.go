package conversion

import (
	"context"

	domain "osmcad/internal/domain/conversion"
)

// ArtifactStore is an application port for input validation and output
// artifact bookkeeping.
type ArtifactStore interface {
	InputExists(path string) bool
	OutputPath(fileName, projectRef string) string
	StatsPath(outputPath string) string
	PrepareOutput(outputPath string) error
	OutputSize(outputPath string) (int64, error)
	ReadStats(statsPath string) (map[string]interface{}, error)
}

// InterpreterLocator probes the host for a usable converter runtime.
type InterpreterLocator interface {
	Locate() (string, bool)
}

// Runner executes the external converter. The onOutput callback receives
// each chunk of converter stdout as it arrives. A non-zero exit is returned
// as an error whose text includes the captured stderr.
type Runner interface {
	Run(ctx context.Context, interpreter, inputPath, outputPath, statsPath string, opts domain.Options, onOutput func(chunk string)) error
}

// ActivityRecorder is a best-effort downstream notification sink. Failures
// never change a job's outcome.
type ActivityRecorder interface {
	RecordConversion(job domain.Job) error
}
