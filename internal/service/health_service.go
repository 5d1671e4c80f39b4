package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/repository"
)

const healthPingTimeout = 2 * time.Second

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	gateway          gateway.Gateway
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	gw gateway.Gateway,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		gateway:          gw,
	}
}

// GetHealth reports the engine's dependencies. Only the database is fatal:
// without redis duplicate webhooks fall through to idempotent writes, and
// with the breaker open inbound traffic is still recorded. A stopped
// scheduler is reported but not penalised since sweeps can be triggered
// over HTTP.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:          api.Healthy,
		SchedulerStatus: api.HealthResponseSchedulerStatusStopped,
		DatabaseStatus:  s.checkDatabaseHealth(),
		RedisStatus:     s.checkRedisHealth(),
	}
	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = api.HealthResponseSchedulerStatusRunning
	}

	status.CircuitBreakerState = breakerState(s.gateway.BreakerState())
	status.CircuitBreakerStatus = breakerSummary(s.gateway.BreakerCounts())

	switch {
	case status.DatabaseStatus != api.HealthResponseDatabaseStatusConnected:
		status.Status = api.Unhealthy
	case status.RedisStatus != api.HealthResponseRedisStatusConnected,
		status.CircuitBreakerState == api.Open:
		status.Status = api.Degraded
	}

	return status
}

func breakerState(s gateway.BreakerState) api.HealthResponseCircuitBreakerState {
	switch s {
	case gateway.BreakerOpen:
		return api.Open
	case gateway.BreakerHalfOpen:
		return api.HalfOpen
	default:
		return api.Closed
	}
}

func breakerSummary(requests, failures uint32) string {
	if requests == 0 {
		return "No requests yet"
	}
	failureRate := float64(failures) / float64(requests) * 100
	return fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
}

func (s *healthService) checkDatabaseHealth() api.HealthResponseDatabaseStatus {
	if err := s.repo.Ping(); err != nil {
		return api.HealthResponseDatabaseStatusDisconnected
	}
	return api.HealthResponseDatabaseStatusConnected
}

func (s *healthService) checkRedisHealth() api.HealthResponseRedisStatus {
	if s.redisClient == nil {
		return api.HealthResponseRedisStatusDisconnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.HealthResponseRedisStatusDisconnected
	}
	return api.HealthResponseRedisStatusConnected
}
