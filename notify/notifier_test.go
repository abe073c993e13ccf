// file: notify/notifier_test.go

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"rpbank/logger"
	"rpbank/model"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	args := m.Called(ctx, channel, message)
	return redis.NewIntResult(1, args.Error(0))
}

func sampleEvent(settled bool) model.InstallmentEvent {
	return model.InstallmentEvent{
		Identity:    "U1",
		Amount:      100,
		Remaining:   2900,
		CardBalance: 4100,
		Settled:     settled,
		Date:        "2025-03-11",
		AppliedAt:   time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
	}
}

func decode(t *testing.T, message interface{}) Envelope {
	t.Helper()
	raw, ok := message.([]byte)
	require.True(t, ok)
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestRedisNotifier_NotifyInstallment(t *testing.T) {
	ctx := context.Background()

	t.Run("installment applied", func(t *testing.T) {
		pub := new(mockPublisher)
		n := NewRedisNotifier(pub, "rpbank:loan_events")

		var published interface{}
		pub.On("Publish", ctx, "rpbank:loan_events", mock.Anything).
			Run(func(args mock.Arguments) { published = args.Get(2) }).
			Return(nil).Once()

		err := n.NotifyInstallment(ctx, sampleEvent(false))
		require.NoError(t, err)
		pub.AssertExpectations(t)

		env := decode(t, published)
		assert.Equal(t, EventInstallmentApplied, env.EventType)
		assert.Equal(t, "U1", env.Event.Identity)
		assert.Equal(t, int64(2900), env.Event.Remaining)
	})

	t.Run("settled", func(t *testing.T) {
		pub := new(mockPublisher)
		n := NewRedisNotifier(pub, "events")

		var published interface{}
		pub.On("Publish", ctx, "events", mock.Anything).
			Run(func(args mock.Arguments) { published = args.Get(2) }).
			Return(nil).Once()

		require.NoError(t, n.NotifyInstallment(ctx, sampleEvent(true)))
		assert.Equal(t, EventLoanSettled, decode(t, published).EventType)
	})

	t.Run("publish failure", func(t *testing.T) {
		pub := new(mockPublisher)
		n := NewRedisNotifier(pub, "events")
		pub.On("Publish", ctx, "events", mock.Anything).Return(errors.New("connection refused")).Once()

		err := n.NotifyInstallment(ctx, sampleEvent(false))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, LogNotifier{}.NotifyInstallment(context.Background(), sampleEvent(false)))
}
