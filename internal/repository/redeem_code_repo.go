package repository

import (
	"context"
	"errors"
	"time"

	"lifenumber/reporthub/internal/model"
)

// ErrDuplicateCode is returned by Create when the code already exists.
// Issuance retries on it instead of trusting alphabet entropy.
var ErrDuplicateCode = errors.New("redeem code already exists")

type RedeemCodeRepository interface {
	Create(ctx context.Context, code *model.RedeemCode) error
	GetByCode(ctx context.Context, code string) (*model.RedeemCode, error)
	// MarkUsed atomically flips an unused code to used and records the
	// consumption time. It reports whether this call won the flip; false
	// means the code is absent or was already used.
	MarkUsed(ctx context.Context, code string, usedAt time.Time) (bool, error)
}
