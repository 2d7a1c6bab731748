package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/integrity"
	"github.com/iudanet/maintkeeper/internal/client/scheduler"
)

// ErrNoJobs is returned by daemon when no schedule is configured
var ErrNoJobs = errors.New("no scheduled jobs configured")

// stopTimeout ограничивает ожидание работающих задач при остановке
const stopTimeout = 30 * time.Second

func (c *Cli) newDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "daemon",
		Short:   "Run scheduled sync, cleanup and validation until interrupted",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := c.newScheduler()
			if err != nil {
				return err
			}
			return c.runDaemon(cmd.Context(), sched)
		},
	}
}

// newScheduler registers a job per configured schedule
func (c *Cli) newScheduler() (*scheduler.Scheduler, error) {
	sched := scheduler.New(c.logger)

	if spec := c.cfg.Sync.Schedule; spec != "" {
		err := sched.Register("sync", spec, func(ctx context.Context) error {
			result, err := c.syncService.Sync(ctx, c.cfg.Sync.Endpoint, c.syncOptions())
			if err != nil {
				return err
			}
			if result.Failed > 0 {
				c.logger.Warn("Scheduled sync finished with failures", "failed", result.Failed, "conflicts", len(result.Conflicts))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if spec := c.cfg.Cleanup.Schedule; spec != "" {
		err := sched.Register("cleanup", spec, func(ctx context.Context) error {
			result, err := c.store.Cleanup(ctx, c.cleanupOptions())
			if err != nil {
				return err
			}
			c.logger.Info("Scheduled cleanup finished", "removed", result.Total())
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if spec := c.cfg.Integrity.Schedule; spec != "" {
		err := sched.Register("validate", spec, func(ctx context.Context) error {
			reports, err := c.runValidate(ctx, nil)
			if err != nil {
				return err
			}
			for _, report := range reports {
				if report.OverallStatus != integrity.StatusHealthy {
					c.logger.Warn("Integrity degraded",
						"collection", report.Collection,
						"status", report.OverallStatus,
						"failed", report.Failed,
						"warnings", report.Warnings)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(sched.Jobs()) == 0 {
		return nil, ErrNoJobs
	}

	return sched, nil
}

// runDaemon runs sched until ctx is cancelled
func (c *Cli) runDaemon(ctx context.Context, sched *scheduler.Scheduler) error {
	sched.Start()

	for _, job := range sched.Jobs() {
		c.io.Printf("Scheduled %-10s %s\n", job.Name, job.Cron)
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := sched.Stop(stopCtx); err != nil {
		return err
	}

	c.io.Println("Daemon stopped")
	return nil
}

func (c *Cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.io.Println("MaintKeeper Client")
			c.io.Printf("Version:    %s\n", c.build.Version)
			c.io.Printf("Build Date: %s\n", c.build.BuildDate)
			c.io.Printf("Git Commit: %s\n", c.build.GitCommit)
		},
	}
}
