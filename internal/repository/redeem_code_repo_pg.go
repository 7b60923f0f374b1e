package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lifenumber/reporthub/internal/model"
)

type pgRedeemCodeRepository struct {
	db *gorm.DB
}

func NewPGRedeemCodeRepository(db *gorm.DB) RedeemCodeRepository {
	return &pgRedeemCodeRepository{db: db}
}

func (r *pgRedeemCodeRepository) Create(ctx context.Context, code *model.RedeemCode) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *pgRedeemCodeRepository) GetByCode(ctx context.Context, code string) (*model.RedeemCode, error) {
	var redeemCode model.RedeemCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&redeemCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &redeemCode, nil
}

func (r *pgRedeemCodeRepository) MarkUsed(ctx context.Context, code string, usedAt time.Time) (bool, error) {
	// Single conditional UPDATE: of two racing consumers, exactly one
	// sees RowsAffected == 1.
	res := r.db.WithContext(ctx).
		Model(&model.RedeemCode{}).
		Where("code = ? AND is_used = ?", code, false).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_at": usedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
