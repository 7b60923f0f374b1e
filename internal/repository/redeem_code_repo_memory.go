package repository

import (
	"context"
	"sync"
	"time"

	"lifenumber/reporthub/internal/model"
)

type memoryRedeemCodeRepository struct {
	mu    sync.Mutex
	codes map[string]model.RedeemCode
}

func NewMemoryRedeemCodeRepository() RedeemCodeRepository {
	return &memoryRedeemCodeRepository{codes: make(map[string]model.RedeemCode)}
}

func (r *memoryRedeemCodeRepository) Create(_ context.Context, code *model.RedeemCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[code.Code]; exists {
		return ErrDuplicateCode
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	r.codes[code.Code] = *code
	return nil
}

func (r *memoryRedeemCodeRepository) GetByCode(_ context.Context, code string) (*model.RedeemCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.codes[code]
	if !exists {
		return nil, ErrNotFound
	}
	return &stored, nil
}

func (r *memoryRedeemCodeRepository) MarkUsed(_ context.Context, code string, usedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.codes[code]
	if !exists || stored.IsUsed {
		return false, nil
	}
	stored.IsUsed = true
	stored.UsedAt = &usedAt
	r.codes[code] = stored
	return true, nil
}
