// file: scheduler/scheduler.go

package scheduler

import (
	"context"
	"fmt"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/notify"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ILoanSweeper is the loan engine operation the daily job drives.
type ILoanSweeper interface {
	ApplyDailyInstallments(ctx context.Context, today model.Date) ([]model.InstallmentEvent, error)
}

// Scheduler runs the daily installment sweep on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	loans    ILoanSweeper
	notifier notify.Notifier
	config   config.Scheduler
	loc      *time.Location
	now      func() time.Time
}

// New builds a scheduler whose calendar day is computed in cfg.Timezone.
// A nil clock means time.Now.
func New(loans ILoanSweeper, notifier notify.Notifier, cfg config.Scheduler, now func() time.Time) (*Scheduler, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Timezone, err)
		}
	}
	if now == nil {
		now = time.Now
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.PrintfLogger(logger.Log))),
	)
	return &Scheduler{
		cron:     c,
		loans:    loans,
		notifier: notifier,
		config:   cfg,
		loc:      loc,
		now:      now,
	}, nil
}

// Start registers the sweep and starts the cron runner. With RunOnStart the
// sweep also runs once before Start returns.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.Spec, s.job); err != nil {
		logger.Log.WithError(err).WithField("schedule", s.config.Spec).Error("Failed to schedule installment sweep")
		return fmt.Errorf("failed to schedule installment sweep: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"schedule": s.config.Spec,
		"timezone": s.loc.String(),
	}).Info("Scheduled installment sweep")

	if s.config.RunOnStart {
		s.job()
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron runner; the returned context is done once a running
// sweep has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce sweeps today's installments and notifies every charged user.
// Notification failures are logged and do not fail the sweep.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	today := model.DateOf(s.now().In(s.loc))
	events, err := s.loans.ApplyDailyInstallments(ctx, today)

	for _, event := range events {
		if nerr := s.notifier.NotifyInstallment(ctx, event); nerr != nil {
			logger.Log.WithError(nerr).WithField("identity", event.Identity).Warn("Installment notification failed")
		}
	}
	if err != nil {
		return len(events), fmt.Errorf("installment sweep for %s: %w", today, err)
	}
	return len(events), nil
}

func (s *Scheduler) job() {
	start := time.Now()
	applied, err := s.RunOnce(context.Background())
	log := logger.Log.WithFields(logrus.Fields{
		"applied":  applied,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		log.WithError(err).Error("Installment sweep failed")
		return
	}
	log.Info("Installment sweep finished")
}
