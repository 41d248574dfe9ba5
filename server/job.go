// SPDX-License-Identifier: MIT

// Package server - run jobs and their in-memory registry.
package server

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/twocycle/solver"
)

// ErrBusy is returned by JobManager.Create when the running limit is reached.
var ErrBusy = errors.New("server: too many active runs")

// ErrJobNotFound is returned for an unknown job id.
var ErrJobNotFound = errors.New("server: run not found")

// JobState is the lifecycle state of a run.
type JobState string

const (
	StatePending   JobState = "pending"
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
	StateFailed    JobState = "failed"
)

// Job is one submitted run.
type Job struct {
	ID        string         `json:"id"`
	State     JobState       `json:"state"`
	N         int            `json:"n"`
	Options   solver.Options `json:"options"`
	Result    *solver.Result `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	StartTime *time.Time     `json:"start_time,omitempty"`
	EndTime   *time.Time     `json:"end_time,omitempty"`
}

// active reports whether the job still counts against the running limit.
func (j *Job) active() bool { return j.State == StatePending || j.State == StateRunning }

// JobManager keeps every job of the process. Getters return copies, so
// callers never share memory with the worker goroutines.
type JobManager struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	maxActive int
}

// NewJobManager returns an empty registry admitting at most maxActive
// pending or running jobs; maxActive < 1 means no limit.
func NewJobManager(maxActive int) *JobManager {
	return &JobManager{
		jobs:      make(map[string]*Job),
		maxActive: maxActive,
	}
}

// Create registers a pending job, or fails with ErrBusy.
func (jm *JobManager) Create(n int, opts solver.Options) (Job, error) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if jm.maxActive > 0 && jm.activeLocked() >= jm.maxActive {
		return Job{}, ErrBusy
	}

	job := &Job{
		ID:        uuid.New().String(),
		State:     StatePending,
		N:         n,
		Options:   opts,
		CreatedAt: time.Now(),
	}
	jm.jobs[job.ID] = job

	return *job, nil
}

// Get returns a copy of job id.
func (jm *JobManager) Get(id string) (Job, bool) {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	job, ok := jm.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// List returns copies of all jobs, oldest first.
func (jm *JobManager) List() []Job {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	jobs := make([]Job, 0, len(jm.jobs))
	for _, job := range jm.jobs {
		jobs = append(jobs, *job)
	}
	slices.SortFunc(jobs, func(a, b Job) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return jobs
}

// Active returns the number of pending or running jobs.
func (jm *JobManager) Active() int {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	return jm.activeLocked()
}

// Update applies fn to job id under the write lock.
func (jm *JobManager) Update(id string, fn func(*Job)) error {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	job, ok := jm.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	fn(job)

	return nil
}

func (jm *JobManager) activeLocked() int {
	var count int
	for _, job := range jm.jobs {
		if job.active() {
			count++
		}
	}
	return count
}
