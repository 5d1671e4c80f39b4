package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/scheduler"
)

func noopTask(name string) scheduler.Task {
	return scheduler.Task{
		Name: name,
		Spec: "@every 1h",
		Run:  func(ctx context.Context) error { return nil },
	}
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), noopTask("initial"), noopTask("reminders"))
			},
			expectedError: nil,
		},
		{
			name: "already running",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), noopTask("initial"))
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: scheduler.ErrSchedulerAlreadyRunning,
		},
		{
			name: "invalid spec",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), scheduler.Task{
					Name: "broken",
					Spec: "every now and then",
					Run:  func(ctx context.Context) error { return nil },
				})
			},
			expectedError: scheduler.ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			err := s.Start(context.Background())
			if tt.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestScheduler_Stop(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), noopTask("initial"))
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: nil,
		},
		{
			name: "not running",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), noopTask("initial"))
			},
			expectedError: scheduler.ErrSchedulerNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			err := s.Stop()
			assert.Equal(t, tt.expectedError, err)
			assert.False(t, s.IsRunning())
		})
	}
}

func TestScheduler_RestartAfterStop(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), noopTask("initial"))

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Stop())
}

func TestScheduler_RunsTasksOnStart(t *testing.T) {
	var initial, reminders atomic.Int32

	s := scheduler.NewScheduler(zap.NewNop(),
		scheduler.Task{
			Name: "initial",
			Spec: "@every 1h",
			Run: func(ctx context.Context) error {
				initial.Add(1)
				return nil
			},
		},
		scheduler.Task{
			Name: "reminders",
			Spec: "@every 1h",
			Run: func(ctx context.Context) error {
				reminders.Add(1)
				return errors.New("task error")
			},
		},
	)

	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop() }()

	assert.Eventually(t, func() bool {
		return initial.Load() == 1 && reminders.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	var running, maxRunning, calls atomic.Int32

	s := scheduler.NewScheduler(zap.NewNop(), scheduler.Task{
		Name: "slow",
		Spec: "@every 1s",
		Run: func(ctx context.Context) error {
			calls.Add(1)
			n := running.Add(1)
			defer running.Add(-1)
			for {
				m := maxRunning.Load()
				if n <= m || maxRunning.CompareAndSwap(m, n) {
					break
				}
			}
			select {
			case <-time.After(1500 * time.Millisecond):
			case <-ctx.Done():
			}
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(2500 * time.Millisecond)
	require.NoError(t, s.Stop())

	assert.Equal(t, int32(1), maxRunning.Load())
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var mu sync.Mutex
	taskCalls := 0

	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewScheduler(zap.NewNop(), scheduler.Task{
		Name: "initial",
		Spec: "@every 1h",
		Run: func(ctx context.Context) error {
			mu.Lock()
			taskCalls++
			mu.Unlock()
			return nil
		},
	})

	err := s.Start(ctx)
	assert.NoError(t, err)
	assert.True(t, s.IsRunning())

	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, taskCalls, 1)
}

func TestScheduler_ConcurrentAccess(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), noopTask("initial"))

	done := make(chan bool)
	errs := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func() {
			if err := s.Start(context.Background()); err != nil && err != scheduler.ErrSchedulerAlreadyRunning {
				errs <- err
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}

	assert.True(t, s.IsRunning())
	assert.Len(t, errs, 0)

	err := s.Stop()
	assert.NoError(t, err)
}
