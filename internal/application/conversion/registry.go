package conversion

import (
	"sort"
	"sync"

	domain "osmcad/internal/domain/conversion"
)

// Registry is the concurrency-safe store of live job records. Records are
// mutated only through Update, so readers always see a consistent snapshot.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*domain.Job)}
}

// Create stores a new record under its id.
func (r *Registry) Create(job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; ok {
		return domain.ErrDuplicateJobID
	}
	r.jobs[job.ID] = job
	return nil
}

// Get returns a snapshot copy of the record.
func (r *Registry) Get(id string) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return snapshot(job), nil
}

// Update applies a mutation under the registry lock.
func (r *Registry) Update(id string, apply func(*domain.Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	apply(job)
	return nil
}

// ListActive returns snapshots of all pending and processing records,
// newest first.
func (r *Registry) ListActive() []domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]domain.Job, 0)
	for _, job := range r.jobs {
		if job.Status == domain.StatusPending || job.Status == domain.StatusProcessing {
			active = append(active, snapshot(job))
		}
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active
}

// List returns snapshots of every record regardless of status.
func (r *Registry) List() []domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		all = append(all, snapshot(job))
	}
	return all
}

// Remove deletes a record. Missing ids are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}

func snapshot(job *domain.Job) domain.Job {
	copied := *job
	if job.CompletedAt != nil {
		at := *job.CompletedAt
		copied.CompletedAt = &at
	}
	if job.Stats != nil {
		stats := make(map[string]interface{}, len(job.Stats))
		for k, v := range job.Stats {
			stats[k] = v
		}
		copied.Stats = stats
	}
	return copied
}
