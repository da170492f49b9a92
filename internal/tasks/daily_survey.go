// Package tasks holds the scheduled jobs run by the job manager.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

// DefaultSchedule sends the daily batch at 10:00.
const DefaultSchedule = "0 10 * * *"

// RecipientStore lists due customers and records delivered surveys.
type RecipientStore interface {
	Due(ctx context.Context, afterDays int) ([]survey.Recipient, error)
	MarkSurveyed(ctx context.Context, ids []string) (int64, error)
}

// BatchSender sends one survey batch.
type BatchSender interface {
	SendBatch(ctx context.Context, recipients []survey.Recipient, channel survey.Channel) (survey.BatchResult, error)
}

// DailySurvey surveys every customer whose installation is old enough.
type DailySurvey struct {
	store     RecipientStore
	sender    BatchSender
	logger    *slog.Logger
	channel   survey.Channel
	schedule  string
	afterDays int
}

// NewDailySurvey creates the task. An empty schedule falls back to DefaultSchedule.
func NewDailySurvey(store RecipientStore, sender BatchSender, channel survey.Channel, afterDays int, schedule string, log *slog.Logger) *DailySurvey {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if log == nil {
		log = logger.NewNope()
	}
	return &DailySurvey{
		store:     store,
		sender:    sender,
		channel:   channel,
		afterDays: afterDays,
		schedule:  schedule,
		logger:    log,
	}
}

func (t *DailySurvey) Name() string     { return "daily_nps_survey" }
func (t *DailySurvey) Schedule() string { return t.schedule }

// Handle sends the batch and marks the delivered customers. Customers are
// marked even when the batch stops early, so a rerun does not survey them twice.
func (t *DailySurvey) Handle(ctx context.Context) error {
	recipients, err := t.store.Due(ctx, t.afterDays)
	if err != nil {
		return fmt.Errorf("load due customers: %w", err)
	}
	if len(recipients) == 0 {
		t.logger.InfoContext(ctx, "no customers due for a survey")
		return nil
	}

	result, sendErr := t.sender.SendBatch(ctx, recipients, t.channel)

	marked, markErr := t.store.MarkSurveyed(context.WithoutCancel(ctx), result.SentIDs)
	if markErr != nil {
		markErr = fmt.Errorf("mark surveyed: %w", markErr)
	}

	t.logger.InfoContext(ctx, "daily survey batch done",
		slog.Int("due", len(recipients)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("marked", marked),
	)

	return errors.Join(sendErr, markErr)
}
