package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteercal/internal/app/deps"
	"volunteercal/internal/app/services"
	"volunteercal/internal/config"
	"volunteercal/internal/core/domain/logging"
	schedulereminders "volunteercal/internal/core/services/schedule_reminders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	deps, shutdownDeps := deps.InitDeps(cfg)
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(cfg.RemindersSchedulingPeriod)
	defer ticker.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info(
		ctx,
		"Starting periodic reminder scheduler.",
		logging.Entry("period", cfg.RemindersSchedulingPeriod.String()),
		logging.Entry("batchSize", cfg.RemindersBatchSize),
		logging.Entry("workers", cfg.RemindersWorkers),
	)

	runPass(ctx, log, services)
loop:
	for {
		select {
		case <-ctx.Done():
			log.Info(context.Background(), "Stopping periodic reminder scheduler.")
			break loop
		case <-ticker.C:
			runPass(ctx, log, services)
		}
	}
}

func runPass(ctx context.Context, log logging.Logger, services *services.Services) {
	log.Info(ctx, "Launching reminders scheduling service.")
	_, err := services.ScheduleReminders.Run(ctx, schedulereminders.Input{})
	if err != nil {
		log.Error(ctx, "Scheduling service returned an error.", logging.Entry("err", err))
	}
}
