package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lifenumber/reporthub/internal/model"
	"lifenumber/reporthub/internal/repository"
)

func newTestRedeemService(repo repository.RedeemCodeRepository) *redeemService {
	return &redeemService{
		codeRepo: repo,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
}

func TestIssueProducesWellFormedCode(t *testing.T) {
	svc := newTestRedeemService(repository.NewMemoryRedeemCodeRepository())

	code, err := svc.Issue(context.Background())
	require.NoError(t, err)

	assert.Len(t, code.Code, codeLength)
	for _, r := range code.Code {
		assert.Containsf(t, codeAlphabet, string(r), "character %q outside the allowed alphabet", r)
	}
	assert.False(t, code.IsUsed)
	assert.Nil(t, code.UsedAt)
}

func TestCheckLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedeemService(repository.NewMemoryRedeemCodeRepository())

	status, err := svc.Check(ctx, "NEVERISSUED2")
	require.NoError(t, err)
	assert.Equal(t, CodeNonexistent, status)

	code, err := svc.Issue(ctx)
	require.NoError(t, err)

	status, err = svc.Check(ctx, code.Code)
	require.NoError(t, err)
	assert.Equal(t, CodeUnused, status)

	require.NoError(t, svc.Consume(ctx, code.Code))

	status, err = svc.Check(ctx, code.Code)
	require.NoError(t, err)
	assert.Equal(t, CodeUsed, status)
}

func TestCheckIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedeemService(repository.NewMemoryRedeemCodeRepository())

	code, err := svc.Issue(ctx)
	require.NoError(t, err)

	status, err := svc.Check(ctx, strings.ToLower(code.Code))
	require.NoError(t, err)
	assert.Equal(t, CodeUnused, status)

	require.NoError(t, svc.Consume(ctx, strings.ToLower(code.Code)))
}

func TestConsumeOutcomes(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedeemService(repository.NewMemoryRedeemCodeRepository())

	assert.ErrorIs(t, svc.Consume(ctx, "NEVERISSUED2"), ErrCodeNotFound)

	code, err := svc.Issue(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Consume(ctx, code.Code))
	assert.ErrorIs(t, svc.Consume(ctx, code.Code), ErrCodeAlreadyUsed)
}

func TestConsumeRaceHasExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedeemService(repository.NewMemoryRedeemCodeRepository())

	code, err := svc.Issue(ctx)
	require.NoError(t, err)

	const racers = 16
	results := make(chan error, racers)

	var start sync.WaitGroup
	start.Add(1)
	var done sync.WaitGroup
	for i := 0; i < racers; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			start.Wait()
			results <- svc.Consume(ctx, code.Code)
		}()
	}
	start.Done()
	done.Wait()
	close(results)

	var wins, alreadyUsed int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrCodeAlreadyUsed)
		alreadyUsed++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, alreadyUsed)
}

// collidingRepo forces duplicate-key failures for the first n creates.
type collidingRepo struct {
	repository.RedeemCodeRepository
	collisions int
	creates    int
}

func (r *collidingRepo) Create(ctx context.Context, code *model.RedeemCode) error {
	r.creates++
	if r.creates <= r.collisions {
		return repository.ErrDuplicateCode
	}
	return r.RedeemCodeRepository.Create(ctx, code)
}

func TestIssueRetriesOnCollision(t *testing.T) {
	repo := &collidingRepo{
		RedeemCodeRepository: repository.NewMemoryRedeemCodeRepository(),
		collisions:           2,
	}
	svc := newTestRedeemService(repo)

	code, err := svc.Issue(context.Background())
	require.NoError(t, err)
	assert.Len(t, code.Code, codeLength)
	assert.Equal(t, 3, repo.creates)
}

func TestIssueGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &collidingRepo{
		RedeemCodeRepository: repository.NewMemoryRedeemCodeRepository(),
		collisions:           issueAttempts,
	}
	svc := newTestRedeemService(repo)

	_, err := svc.Issue(context.Background())
	assert.Error(t, err)
	assert.Equal(t, issueAttempts, repo.creates)
}
