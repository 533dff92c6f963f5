package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/analytics"
)

const (
	reportCachePrefix = "report:"
	reportCacheTTL    = 5 * time.Minute
)

func reportKey(workspaceID *uuid.UUID) string {
	if workspaceID == nil {
		return reportCachePrefix + "all"
	}
	return reportCachePrefix + workspaceID.String()
}

// ReportCache holds computed dashboard reports in Redis
type ReportCache struct {
	client *Client
}

// NewReportCache creates a new report cache
func NewReportCache(client *Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get retrieves a cached report; nil workspaceID addresses the all-workspaces report
func (c *ReportCache) Get(ctx context.Context, workspaceID *uuid.UUID) (*analytics.Report, error) {
	data, err := c.client.rdb.Get(ctx, reportKey(workspaceID)).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var report analytics.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}

	return &report, nil
}

// Set caches a report
func (c *ReportCache) Set(ctx context.Context, workspaceID *uuid.UUID, report *analytics.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return c.client.rdb.Set(ctx, reportKey(workspaceID), data, reportCacheTTL).Err()
}

// Invalidate drops the workspace's cached report along with the
// all-workspaces report, which aggregates over it.
func (c *ReportCache) Invalidate(ctx context.Context, workspaceID uuid.UUID) error {
	return c.client.rdb.Del(ctx, reportKey(&workspaceID), reportKey(nil)).Err()
}

// FlushAll removes every cached report
func (c *ReportCache) FlushAll(ctx context.Context) (int64, error) {
	pattern := reportCachePrefix + "*"
	var cursor uint64
	var deleted int64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			count, err := c.client.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += count
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}
