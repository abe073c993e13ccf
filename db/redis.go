// file: db/redis.go

package db

import (
	"context"
	"fmt"
	"rpbank/config"
	"rpbank/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis initializes the client the loan notifier publishes through.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	cfg := config.AppConfig.Redis

	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.Password,
		DB:       0,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping Redis")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"address": redisAddr,
		"channel": cfg.Channel,
	}).Info("Redis connection established successfully")
	return rdb, nil
}
