package pipeline

import (
	"sync"
	"time"
)

// JobStatus represents the state of a report refresh job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusFetching  JobStatus = "fetching"
	StatusParsing   JobStatus = "parsing"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks one refresh of one journalist's narrative report.
type Job struct {
	mu sync.Mutex

	ID           string    `json:"job_id"`
	JournalistID string    `json:"journalist_id"`
	Status       JobStatus `json:"status"`
	Phase        string    `json:"phase"`

	Attempts   int `json:"attempts"`
	BlockCount int `json:"block_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	errors []string
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// IncrAttempts counts one upstream fetch attempt.
func (j *Job) IncrAttempts() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Attempts++
	j.UpdatedAt = time.Now()
}

// SetBlockCount records how many blocks the parse produced.
func (j *Job) SetBlockCount(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.BlockCount = n
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID           string    `json:"job_id"`
	JournalistID string    `json:"journalist_id"`
	Status       JobStatus `json:"status"`
	Phase        string    `json:"phase"`
	Attempts     int       `json:"attempts"`
	BlockCount   int       `json:"block_count"`
	Errors       []string  `json:"errors"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := make([]string, len(j.errors))
	copy(errs, j.errors)
	return JobSnapshot{
		ID:           j.ID,
		JournalistID: j.JournalistID,
		Status:       j.Status,
		Phase:        j.Phase,
		Attempts:     j.Attempts,
		BlockCount:   j.BlockCount,
		Errors:       errs,
	}
}
