package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultTaskTimeout = 4 * time.Minute

// Task is one periodic job. Spec uses the robfig/cron syntax, including
// descriptors such as "@every 5m" and "@hourly".
type Task struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(context.Context) error
}

// Scheduler runs tasks on their schedules. A task never overlaps with
// itself: a tick that arrives while the previous run is still going is
// skipped.
type Scheduler struct {
	logger    *zap.Logger
	tasks     []Task
	cron      *cron.Cron
	cancel    context.CancelFunc
	done      chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  tasks,
	}
}

// Start registers every task and runs each once immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)

	logger := cronLogger{sugar: s.logger.Sugar()}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	ids := make([]cron.EntryID, 0, len(s.tasks))
	for _, task := range s.tasks {
		id, err := c.AddFunc(task.Spec, s.wrap(runCtx, task))
		if err != nil {
			cancel()
			return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, task.Name, task.Spec, err)
		}
		ids = append(ids, id)
	}

	s.cron = c
	s.cancel = cancel
	s.done = make(chan struct{})
	s.isRunning = true

	c.Start()
	for _, id := range ids {
		go c.Entry(id).WrappedJob.Run()
	}

	go s.waitForShutdown(runCtx, c, s.done)

	s.logger.Info("Scheduler started", zap.Int("tasks", len(s.tasks)))
	return nil
}

// Stop halts the scheduler and waits for running tasks to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) waitForShutdown(ctx context.Context, c *cron.Cron, done chan struct{}) {
	defer close(done)

	<-ctx.Done()
	<-c.Stop().Done()

	s.mu.Lock()
	if s.cron == c {
		s.isRunning = false
		s.cron = nil
	}
	s.mu.Unlock()
}

func (s *Scheduler) wrap(ctx context.Context, task Task) func() {
	timeout := task.Timeout
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}

	return func() {
		if ctx.Err() != nil {
			return
		}

		taskCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		start := time.Now()
		s.logger.Debug("Executing scheduled task", zap.String("task", task.Name))

		if err := task.Run(taskCtx); err != nil {
			s.logger.Error("Task execution failed",
				zap.String("task", task.Name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
			return
		}

		s.logger.Debug("Task execution completed",
			zap.String("task", task.Name),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
