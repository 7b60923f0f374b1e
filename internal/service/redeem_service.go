package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"lifenumber/reporthub/internal/model"
	"lifenumber/reporthub/internal/repository"
)

// CodeStatus is the observable state of a redeem code.
type CodeStatus string

const (
	CodeNonexistent CodeStatus = "nonexistent"
	CodeUnused      CodeStatus = "unused"
	CodeUsed        CodeStatus = "used"
)

// codeAlphabet excludes visually confusable characters (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 12

// issueAttempts bounds retries when a generated code collides with an
// existing row.
const issueAttempts = 3

type RedeemService interface {
	// Issue generates a fresh code and persists it in the unused state.
	Issue(ctx context.Context) (*model.RedeemCode, error)
	// Check is a read-only, case-insensitive lookup of a code's state.
	Check(ctx context.Context, code string) (CodeStatus, error)
	// Consume atomically flips an unused code to used. Of two racing
	// calls on the same code, exactly one succeeds; the other gets
	// ErrCodeAlreadyUsed.
	Consume(ctx context.Context, code string) error
}

type redeemService struct {
	codeRepo repository.RedeemCodeRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewRedeemService(codeRepo repository.RedeemCodeRepository, logger *zap.Logger) RedeemService {
	return &redeemService{
		codeRepo: codeRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *redeemService) Issue(ctx context.Context) (*model.RedeemCode, error) {
	for attempt := 0; attempt < issueAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("generate redeem code: %w", err)
		}

		redeemCode := &model.RedeemCode{
			Code:      code,
			CreatedAt: s.now(),
		}
		err = s.codeRepo.Create(ctx, redeemCode)
		if err == nil {
			s.logger.Info("redeem code issued", zap.String("code", code))
			return redeemCode, nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return nil, fmt.Errorf("persist redeem code: %w", err)
		}
		s.logger.Warn("redeem code collision, retrying", zap.String("code", code))
	}
	return nil, fmt.Errorf("issue redeem code: exhausted %d attempts", issueAttempts)
}

func (s *redeemService) Check(ctx context.Context, code string) (CodeStatus, error) {
	stored, err := s.codeRepo.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CodeNonexistent, nil
		}
		return "", fmt.Errorf("look up redeem code: %w", err)
	}
	if stored.IsUsed {
		return CodeUsed, nil
	}
	return CodeUnused, nil
}

func (s *redeemService) Consume(ctx context.Context, code string) error {
	normalized := normalizeCode(code)

	ok, err := s.codeRepo.MarkUsed(ctx, normalized, s.now())
	if err != nil {
		return fmt.Errorf("consume redeem code: %w", err)
	}
	if ok {
		s.logger.Info("redeem code consumed", zap.String("code", normalized))
		return nil
	}

	// Lost the flip: classify why.
	if _, err := s.codeRepo.GetByCode(ctx, normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCodeNotFound
		}
		return fmt.Errorf("look up redeem code: %w", err)
	}
	return ErrCodeAlreadyUsed
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func generateCode() (string, error) {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

var _ RedeemService = (*redeemService)(nil)
