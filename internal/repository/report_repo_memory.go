package repository

import (
	"context"
	"sync"
	"time"

	"lifenumber/reporthub/internal/model"
)

// memoryReportRepository keeps reports in process memory. It backs the
// "memory" store backend and the service-level tests.
type memoryReportRepository struct {
	mu      sync.RWMutex
	reports []model.Report
	nextID  uint
}

func NewMemoryReportRepository() ReportRepository {
	return &memoryReportRepository{nextID: 1}
}

func (r *memoryReportRepository) Create(_ context.Context, report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = r.nextID
	r.nextID++
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	r.reports = append(r.reports, *report)
	return nil
}

func (r *memoryReportRepository) GetByID(_ context.Context, id uint) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reports {
		if r.reports[i].ID == id {
			report := r.reports[i]
			return &report, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryReportRepository) ListRecent(_ context.Context, limit int) ([]model.ReportSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]model.ReportSummary, 0, limit)
	for i := len(r.reports) - 1; i >= 0 && len(summaries) < limit; i-- {
		rep := r.reports[i]
		summaries = append(summaries, model.ReportSummary{
			ID:         rep.ID,
			LifeNumber: rep.LifeNumber,
			Birthday:   rep.Birthday,
			Age:        rep.Age,
			CreatedAt:  rep.CreatedAt,
		})
	}
	return summaries, nil
}
