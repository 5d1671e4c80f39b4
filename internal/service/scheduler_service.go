package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	drip      DripService
	campaigns CampaignService
	logger    *zap.Logger
}

// NewSchedulerService runs the three sweeps in process on the cadences from
// cfg. The same sweeps stay reachable through the trigger endpoints.
func NewSchedulerService(
	cfg *config.Config,
	drip DripService,
	campaigns CampaignService,
	logger *zap.Logger,
) SchedulerService {
	timeout := time.Duration(cfg.Scheduler.SweepTimeout) * time.Second

	svc := &schedulerService{
		drip:      drip,
		campaigns: campaigns,
		logger:    logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger,
		scheduler.Task{Name: SweepInitial, Spec: cfg.Scheduler.InitialSweepCron, Timeout: timeout, Run: svc.runInitial},
		scheduler.Task{Name: SweepReminders, Spec: cfg.Scheduler.ReminderSweepCron, Timeout: timeout, Run: svc.runReminders},
		scheduler.Task{Name: SweepCampaigns, Spec: cfg.Scheduler.CampaignDrainCron, Timeout: timeout, Run: svc.runCampaigns},
	)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) runInitial(ctx context.Context) error {
	_, err := s.drip.RunInitialSweep(ctx)
	return err
}

func (s *schedulerService) runReminders(ctx context.Context) error {
	_, err := s.drip.RunReminderSweep(ctx)
	return err
}

func (s *schedulerService) runCampaigns(ctx context.Context) error {
	_, err := s.campaigns.RunDrain(ctx)
	return err
}
