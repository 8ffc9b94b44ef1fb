package conversion

import (
	"context"
	"time"
)

const (
	defaultReapInterval = 10 * time.Minute
	defaultRetention    = time.Hour
)

// StartReaper periodically evicts terminal job records older than the
// retention window from the registry. Pending and processing records are
// never touched, however old they are.
func (s *Service) StartReaper(ctx context.Context, interval, retention time.Duration) {
	if interval <= 0 {
		interval = defaultReapInterval
	}
	if retention <= 0 {
		retention = defaultRetention
	}

	s.reapOnce.Do(func() {
		s.logger.Info().Dur("interval", interval).Dur("retention", retention).Msg("Job reaper enabled")
		go s.runReaper(ctx, interval, retention)
	})
}

func (s *Service) runReaper(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.reap(retention); removed > 0 {
				s.logger.Info().Int("removed", removed).Msg("Reaped finished jobs")
			}
		}
	}
}

func (s *Service) reap(retention time.Duration) int {
	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, job := range s.registry.List() {
		if !job.Terminal() {
			continue
		}
		if job.CreatedAt.After(cutoff) {
			continue
		}
		s.registry.Remove(job.ID)
		removed++
	}
	return removed
}
