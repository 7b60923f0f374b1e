package repository

import (
	"context"
	"strconv"

	"lifenumber/reporthub/internal/model"
)

// ReportCache is a read-through cache for persisted reports. Reports
// never change after creation, so entries can only go stale by
// eviction, never by mutation. Redeem-code state is deliberately
// never cached; the store stays its sole authority.
// Implementations: Redis (production) or in-memory (local dev).
type ReportCache interface {
	Get(ctx context.Context, id uint) (*model.Report, error)
	Set(ctx context.Context, report *model.Report) error
}

func reportCacheKey(id uint) string {
	return "report:" + strconv.FormatUint(uint64(id), 10)
}
