package repository

import (
	"context"
	"errors"

	"lifenumber/reporthub/internal/model"
)

// ErrNotFound is returned by lookups when no row matches. Both the
// postgres and the in-memory implementations normalize to it.
var ErrNotFound = errors.New("record not found")

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id uint) (*model.Report, error)
	ListRecent(ctx context.Context, limit int) ([]model.ReportSummary, error)
}
