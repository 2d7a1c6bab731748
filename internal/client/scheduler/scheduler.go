package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrJobExists is returned when a job with the same name is registered twice
var ErrJobExists = errors.New("job already registered")

// ErrJobNotFound is returned for an unknown job name
var ErrJobNotFound = errors.New("job not found")

// DefaultJobTimeout ограничивает один запуск задачи
const DefaultJobTimeout = 5 * time.Minute

// Handler is the body of a scheduled job
type Handler func(ctx context.Context) error

// Job is a snapshot of a registered job
type Job struct {
	LastRun    time.Time `json:"lastRun"`
	NextRun    time.Time `json:"nextRun"`
	Name       string    `json:"name"`
	Cron       string    `json:"cron"`
	LastResult string    `json:"lastResult"` // LastResult "success", "failed: ..." или пусто до первого запуска
	Runs       int       `json:"runs"`
}

type job struct {
	handler    Handler
	lastRun    time.Time
	name       string
	cron       string
	lastResult string
	entryID    cron.EntryID
	runs       int
}

// Scheduler runs registered jobs on cron expressions with a seconds field.
// A run is skipped while the previous run of the same job is still going.
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	jobs    map[string]*job
	logger  *slog.Logger
	timeout time.Duration
	mu      sync.Mutex
	running bool
}

// New creates a new Scheduler
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	schedulerLogger := logger.WithGroup("scheduler")

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{schedulerLogger})),
			cron.WithLogger(cronLogger{schedulerLogger}),
		),
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(map[string]*job),
		logger:  schedulerLogger,
		timeout: DefaultJobTimeout,
	}
}

// SetJobTimeout overrides the per-run timeout
func (s *Scheduler) SetJobTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = d
}

// Register adds a job. The expression is validated immediately; jobs
// registered after Start are scheduled right away.
func (s *Scheduler) Register(name, spec string, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("%w: %s", ErrJobExists, name)
	}

	j := &job{name: name, cron: spec, handler: handler}
	entryID, err := s.cron.AddFunc(spec, func() { s.runJob(s.ctx, j) })
	if err != nil {
		return fmt.Errorf("failed to schedule job %s (%q): %w", name, spec, err)
	}
	j.entryID = entryID
	s.jobs[name] = j

	s.logger.Info("Scheduled job", "name", name, "cron", spec, "entryID", entryID)
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	s.logger.Info("Starting scheduler", "jobs", len(s.jobs))
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs. When ctx is done first
// the running jobs are cancelled and ctx.Err() is returned.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done.Done()
		return ctx.Err()
	}
}

// Run executes the named job once, outside of its schedule
func (s *Scheduler) Run(ctx context.Context, name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}

	return s.runJob(ctx, j)
}

// Jobs returns a snapshot of all jobs sorted by name
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		snapshot := Job{
			Name:       j.name,
			Cron:       j.cron,
			LastRun:    j.lastRun,
			LastResult: j.lastResult,
			Runs:       j.runs,
		}
		if s.running {
			snapshot.NextRun = s.cron.Entry(j.entryID).Next
		}
		jobs = append(jobs, snapshot)
	}

	sort.Slice(jobs, func(i, k int) bool { return jobs[i].Name < jobs[k].Name })
	return jobs
}

func (s *Scheduler) runJob(parent context.Context, j *job) error {
	s.mu.Lock()
	timeout := s.timeout
	j.lastRun = time.Now()
	j.runs++
	s.mu.Unlock()

	s.logger.Info("Running job", "name", j.name)

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	err := j.handler(ctx)

	s.mu.Lock()
	if err != nil {
		j.lastResult = fmt.Sprintf("failed: %v", err)
	} else {
		j.lastResult = "success"
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Job failed", "name", j.name, "error", err)
		return err
	}

	s.logger.Info("Job completed", "name", j.name)
	return nil
}

// cronLogger adapts slog to cron.Logger
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
