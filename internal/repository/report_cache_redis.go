package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lifenumber/reporthub/internal/model"
)

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &redisReportCache{client: client, ttl: ttl}
}

func (c *redisReportCache) Get(ctx context.Context, id uint) (*model.Report, error) {
	val, err := c.client.Get(ctx, reportCacheKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report model.Report
	if err := json.Unmarshal(val, &report); err != nil {
		// Corrupt entry: treat as a miss, the store is authoritative.
		return nil, nil
	}
	return &report, nil
}

func (c *redisReportCache) Set(ctx context.Context, report *model.Report) error {
	val, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportCacheKey(report.ID), val, c.ttl).Err()
}
