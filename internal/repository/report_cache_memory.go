package repository

import (
	"context"
	"sync"
	"time"

	"lifenumber/reporthub/internal/model"
)

type cacheEntry struct {
	report    model.Report
	expiresAt time.Time
	hasTTL    bool
}

func (e cacheEntry) isExpired() bool {
	return e.hasTTL && time.Now().After(e.expiresAt)
}

type memoryReportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[uint]cacheEntry
}

func NewMemoryReportCache(ttl time.Duration) ReportCache {
	return &memoryReportCache{
		ttl:     ttl,
		entries: make(map[uint]cacheEntry),
	}
}

func (c *memoryReportCache) Get(_ context.Context, id uint) (*model.Report, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok || entry.isExpired() {
		if ok && entry.isExpired() {
			c.mu.Lock()
			delete(c.entries, id)
			c.mu.Unlock()
		}
		return nil, nil
	}
	report := entry.report
	return &report, nil
}

func (c *memoryReportCache) Set(_ context.Context, report *model.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{report: *report}
	if c.ttl > 0 {
		entry.hasTTL = true
		entry.expiresAt = time.Now().Add(c.ttl)
	}
	c.entries[report.ID] = entry
	return nil
}
