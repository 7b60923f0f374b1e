package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lifenumber/reporthub/internal/model"
)

type pgReportRepository struct {
	db *gorm.DB
}

func NewPGReportRepository(db *gorm.DB) ReportRepository {
	return &pgReportRepository{db: db}
}

func (r *pgReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *pgReportRepository) GetByID(ctx context.Context, id uint) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *pgReportRepository) ListRecent(ctx context.Context, limit int) ([]model.ReportSummary, error) {
	var summaries []model.ReportSummary
	err := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Select("id", "life_number", "birthday", "age", "created_at").
		Order("id DESC").
		Limit(limit).
		Find(&summaries).
		Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
