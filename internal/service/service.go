package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/repository"
)

type Service struct {
	Settings  SettingsService
	Jobs      JobService
	Drip      DripService
	Campaigns CampaignService
	Telephony TelephonyService
	Dedupe    Deduper
	Scheduler SchedulerService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	gw gateway.Gateway,
	publisher events.Publisher,
	callbacks *callback.Builder,
	logger *zap.Logger,
) *Service {
	batchSize := cfg.Engine.BatchSize

	settingsService := NewSettingsService(cfg, repo)
	messenger := NewMessenger(repo, gw, callbacks, logger)
	jobService := NewJobService(repo, settingsService, messenger, publisher, logger)
	dripService := NewDripService(repo, settingsService, messenger, callbacks, publisher, batchSize, logger)
	campaignService := NewCampaignService(repo, settingsService, dripService, publisher, batchSize, logger)
	telephonyService := NewTelephonyService(cfg, repo, settingsService, messenger, gw, callbacks, publisher, logger)
	deduper := NewRedisDeduper(redisClient, time.Duration(cfg.Webhook.DedupeTTL)*time.Second, logger)
	schedulerService := NewSchedulerService(cfg, dripService, campaignService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, gw)

	return &Service{
		Settings:  settingsService,
		Jobs:      jobService,
		Drip:      dripService,
		Campaigns: campaignService,
		Telephony: telephonyService,
		Dedupe:    deduper,
		Scheduler: schedulerService,
		Health:    healthService,
	}
}
