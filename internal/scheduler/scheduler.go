package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a named function run on a cron schedule ("@every 15m", "0 * * * *").
type Job struct {
	Name     string
	Schedule string
	Run      func()
}

// Start registers every job and starts the scheduler. Nothing is started
// when a schedule fails to parse.
func Start(jobs []Job, logger *zap.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := cron.New()
	for _, j := range jobs {
		job := j
		_, err := c.AddFunc(job.Schedule, func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("scheduler: job panicked", zap.String("job", job.Name), zap.Any("panic", r))
				}
			}()
			job.Run()
		})
		if err != nil {
			return nil, fmt.Errorf("scheduler: register job %s: %w", job.Name, err)
		}
		logger.Info("scheduler: job registered", zap.String("job", job.Name), zap.String("schedule", job.Schedule))
	}
	c.Start()
	return c, nil
}

// RunByName runs a single job immediately.
func RunByName(jobs []Job, name string) error {
	for _, j := range jobs {
		if j.Name == name {
			j.Run()
			return nil
		}
	}
	return fmt.Errorf("scheduler: unknown job %q", name)
}
