// file: notify/notifier.go

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"rpbank/logger"
	"rpbank/model"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	EventInstallmentApplied = "loan.installment_applied"
	EventLoanSettled        = "loan.settled"
)

// Notifier tells the chat front-end that a daily installment was charged so
// it can message the user.
type Notifier interface {
	NotifyInstallment(ctx context.Context, event model.InstallmentEvent) error
}

// IPublisher is the part of the Redis client the notifier needs.
type IPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Envelope is the message published on the loan events channel.
type Envelope struct {
	EventType string                 `json:"event_type"`
	Event     model.InstallmentEvent `json:"event"`
	Timestamp int64                  `json:"timestamp"`
}

type RedisNotifier struct {
	client  IPublisher
	channel string
}

func NewRedisNotifier(client IPublisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) NotifyInstallment(ctx context.Context, event model.InstallmentEvent) error {
	env := Envelope{
		EventType: EventInstallmentApplied,
		Event:     event,
		Timestamp: event.AppliedAt.Unix(),
	}
	if event.Settled {
		env.EventType = EventLoanSettled
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", env.EventType, err)
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"channel":  n.channel,
			"identity": event.Identity,
		}).Error("Failed to publish loan event")
		return fmt.Errorf("failed to publish %s event: %w", env.EventType, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"channel":    n.channel,
		"event_type": env.EventType,
		"identity":   event.Identity,
	}).Debug("Loan event published")
	return nil
}

// LogNotifier only logs; used when Redis is disabled.
type LogNotifier struct{}

func (LogNotifier) NotifyInstallment(_ context.Context, event model.InstallmentEvent) error {
	logger.Log.WithFields(logrus.Fields{
		"identity":  event.Identity,
		"amount":    event.Amount,
		"remaining": event.Remaining,
		"settled":   event.Settled,
	}).Info("Installment notification")
	return nil
}
