package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/gateway"
)

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	tests := []struct {
		name     string
		function func() error
	}{
		{
			name:     "successful execution",
			function: func() error { return nil },
		},
		{
			name: "successful execution with delay",
			function: func() error {
				time.Sleep(10 * time.Millisecond)
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.6,
				ConsecutiveFails: 5,
			}
			cb := gateway.NewCircuitBreaker(cfg, zap.NewNop())

			assert.NoError(t, cb.Execute(context.Background(), tt.function))
		})
	}
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(*gateway.CircuitBreaker)
		cancelCtx   bool
		function    func() error
		expectedErr string
	}{
		{
			name:        "function returns error",
			function:    func() error { return errors.New("test error") },
			expectedErr: "test error",
		},
		{
			name:        "context cancelled",
			cancelCtx:   true,
			function:    func() error { return nil },
			expectedErr: "context canceled",
		},
		{
			name: "circuit breaker open",
			setupFunc: func(cb *gateway.CircuitBreaker) {
				for i := 0; i < 10; i++ {
					_ = cb.Execute(context.Background(), func() error {
						return errors.New("failure")
					})
				}
			},
			function:    func() error { return nil },
			expectedErr: "circuit breaker is open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.5,
				ConsecutiveFails: 3,
			}
			cb := gateway.NewCircuitBreaker(cfg, zap.NewNop())

			if tt.setupFunc != nil {
				tt.setupFunc(cb)
			}

			ctx := context.Background()
			if tt.cancelCtx {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			err := cb.Execute(ctx, tt.function)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	cfg := &config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          1,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	}
	cb := gateway.NewCircuitBreaker(cfg, zap.NewNop())

	assert.Equal(t, gateway.BreakerClosed, cb.GetState())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("failure")
		})
	}

	assert.Equal(t, gateway.BreakerOpen, cb.GetState())

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, gateway.ErrBreakerOpen)

	time.Sleep(1100 * time.Millisecond)

	assert.Equal(t, gateway.BreakerHalfOpen, cb.GetState())
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cfg := &config.CircuitBreakerConfig{
		MaxRequests:      10,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.8,
		ConsecutiveFails: 10,
	}
	cb := gateway.NewCircuitBreaker(cfg, zap.NewNop())

	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)

	for i := 0; i < 5; i++ {
		fail := i%2 == 1
		_ = cb.Execute(context.Background(), func() error {
			if fail {
				return errors.New("failure")
			}
			return nil
		})
	}

	requests, failures = cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
	assert.Contains(t, cb.String(), "closed")
}
