// Package scheduler runs the periodic engine sweeps on cron schedules.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
	ErrInvalidSchedule         = errors.New("invalid task schedule")
)
