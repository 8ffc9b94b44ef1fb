package conversion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "osmcad/internal/domain/conversion"
	"osmcad/internal/metrics"
)

// SubmitRequest carries the validated submission parameters.
type SubmitRequest struct {
	InputPath     string
	RequestedName string
	PlanType      string
	Projection    string
	ProjectRef    string
	SubmittedBy   string
}

// Service owns the conversion job lifecycle: it accepts submissions, runs
// the external converter in the background and answers status polls.
type Service struct {
	registry *Registry
	history  *History
	store    ArtifactStore
	locator  InterpreterLocator
	runner   Runner
	activity ActivityRecorder
	logger   zerolog.Logger

	reapOnce sync.Once
}

// NewService creates the conversion use-case service with injected ports.
func NewService(store ArtifactStore, locator InterpreterLocator, runner Runner, activity ActivityRecorder, logger zerolog.Logger, historyLimit int) *Service {
	return &Service{
		registry: NewRegistry(),
		history:  NewHistory(historyLimit),
		store:    store,
		locator:  locator,
		runner:   runner,
		activity: activity,
		logger:   logger,
	}
}

// Submit validates the request, creates a pending job record and launches
// the conversion in the background. It returns the job id immediately; the
// outcome is only observable through Status.
func (s *Service) Submit(req SubmitRequest) (string, error) {
	if strings.TrimSpace(req.InputPath) == "" {
		return "", errors.New("input file is required")
	}

	plan, err := domain.ParsePlanType(req.PlanType)
	if err != nil {
		return "", fmt.Errorf("invalid plan type %q: %w", req.PlanType, err)
	}

	submittedBy := strings.TrimSpace(req.SubmittedBy)
	if submittedBy == "" {
		submittedBy = "anonymous"
	}

	job := &domain.Job{
		ID:            uuid.NewString(),
		InputPath:     req.InputPath,
		RequestedName: req.RequestedName,
		ProjectRef:    strings.TrimSpace(req.ProjectRef),
		Options:       domain.OptionsForPlan(plan, req.Projection),
		Status:        domain.StatusPending,
		Progress:      0,
		Message:       "Queued",
		CreatedAt:     time.Now(),
		Stats:         map[string]interface{}{},
		SubmittedBy:   submittedBy,
	}

	if err := s.registry.Create(job); err != nil {
		return "", err
	}

	metrics.ConversionsSubmittedTotal.Inc()
	metrics.ActiveConversions.Inc()
	s.logger.Info().Str("job_id", job.ID).Str("plan_type", string(plan)).Str("input", job.InputPath).Msg("Conversion submitted")

	go s.launch(job.ID)
	return job.ID, nil
}

// Status returns a snapshot of a job record.
func (s *Service) Status(id string) (domain.Job, error) {
	return s.registry.Get(id)
}

// ListActive returns snapshots of all pending and processing jobs.
func (s *Service) ListActive() []domain.Job {
	return s.registry.ListActive()
}

// History returns completed conversions, newest first.
func (s *Service) History() []domain.HistoryEntry {
	return s.history.List()
}

// RuntimeAvailable probes for a usable converter runtime.
func (s *Service) RuntimeAvailable() (string, bool) {
	return s.locator.Locate()
}

// launch drives one job through its state machine. It is the only writer of
// the record; every error path parks the job in the error state and stops.
func (s *Service) launch(id string) {
	defer metrics.ActiveConversions.Dec()

	job, err := s.registry.Get(id)
	if err != nil {
		return
	}

	s.update(id, func(j *domain.Job) {
		j.Status = domain.StatusProcessing
		j.Progress = 10
		j.Message = "Starting conversion"
	})

	if !s.store.InputExists(job.InputPath) {
		s.fail(id, fmt.Sprintf("input file not found: %s", job.InputPath))
		return
	}

	interpreter, ok := s.locator.Locate()
	if !ok {
		s.fail(id, "conversion runtime not found")
		return
	}

	outputName := domain.OutputFileName(job.RequestedName, job.ID)
	outputPath := s.store.OutputPath(outputName, job.ProjectRef)
	statsPath := s.store.StatsPath(outputPath)
	if err := s.store.PrepareOutput(outputPath); err != nil {
		s.fail(id, fmt.Sprintf("cannot prepare output location: %v", err))
		return
	}

	var collected strings.Builder
	err = s.runner.Run(context.Background(), interpreter, job.InputPath, outputPath, statsPath, job.Options, func(chunk string) {
		collected.WriteString(chunk)
		if progress, message, matched := ClassifyProgress(collected.String()); matched {
			s.update(id, func(j *domain.Job) {
				if progress > j.Progress {
					j.Progress = progress
				}
				j.Message = message
			})
		}
	})
	if err != nil {
		s.fail(id, fmt.Sprintf("conversion failed: %v", err))
		return
	}

	size, err := s.store.OutputSize(outputPath)
	if err != nil {
		s.fail(id, "converter finished but produced no output")
		return
	}

	stats, err := s.store.ReadStats(statsPath)
	if err != nil {
		// A broken stats side-file never fails the job.
		s.logger.Warn().Str("job_id", id).Err(err).Msg("Conversion statistics unreadable")
		stats = map[string]interface{}{}
	}
	stats["file_size"] = size
	stats["plan_type"] = string(job.Options.PlanType)
	stats["projection"] = job.Options.Projection
	stats["colors_enabled"] = job.Options.UseColors

	completedAt := time.Now()
	s.update(id, func(j *domain.Job) {
		j.Status = domain.StatusCompleted
		j.Progress = 100
		j.Message = "Conversion completed"
		j.CompletedAt = &completedAt
		j.OutputFile = outputName
		j.Stats = stats
	})
	metrics.ConversionsCompletedTotal.Inc()
	s.logger.Info().Str("job_id", id).Str("output", outputName).Msg("Conversion completed")

	final, err := s.registry.Get(id)
	if err != nil {
		return
	}
	s.history.Append(domain.HistoryEntry{
		JobID:       final.ID,
		OutputFile:  final.OutputFile,
		PlanType:    final.Options.PlanType,
		Projection:  final.Options.Projection,
		SubmittedBy: final.SubmittedBy,
		CompletedAt: completedAt,
		Stats:       final.Stats,
	})

	if s.activity != nil {
		if err := s.activity.RecordConversion(final); err != nil {
			s.logger.Warn().Str("job_id", id).Err(err).Msg("Activity notification failed")
		}
	}
}

func (s *Service) fail(id, message string) {
	s.update(id, func(j *domain.Job) {
		j.Status = domain.StatusError
		j.ErrorMessage = message
		j.Message = message
		j.Progress = 0
	})
	metrics.ConversionsFailedTotal.Inc()
	s.logger.Error().Str("job_id", id).Str("reason", message).Msg("Conversion failed")
}

func (s *Service) update(id string, apply func(*domain.Job)) {
	_ = s.registry.Update(id, apply)
}
