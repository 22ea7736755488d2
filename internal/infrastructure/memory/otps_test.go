package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOTP(phone, code string, expiresAt time.Time) *domain.OTP {
	return &domain.OTP{
		OtpID:     "otp-" + code,
		Phone:     phone,
		Code:      code,
		ExpiresAt: expiresAt.Unix(),
		CreatedAt: time.Now(),
	}
}

func TestConsume_ConcurrentAttemptsHaveOneWinner(t *testing.T) {
	repo := NewOTPRepo()
	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), newOTP("9876543210", "123456", now.Add(10*time.Minute))))

	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.Consume(context.Background(), "9876543210", "123456", now)
			assert.NoError(t, err)
			if ok {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), wins, "exactly one concurrent attempt may spend the code")
}

func TestConsume_ExpiredRecordIgnored(t *testing.T) {
	repo := NewOTPRepo()
	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), newOTP("9876543210", "123456", now.Add(-time.Minute))))

	ok, err := repo.Consume(context.Background(), "9876543210", "123456", now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsume_SpendsOnlyOneOfSeveralMatches(t *testing.T) {
	repo := NewOTPRepo()
	now := time.Now()
	a := newOTP("9876543210", "111111", now.Add(10*time.Minute))
	b := newOTP("9876543210", "222222", now.Add(10*time.Minute))
	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, repo.Create(context.Background(), b))

	ok, err := repo.Consume(context.Background(), "9876543210", "111111", now)
	require.NoError(t, err)
	require.True(t, ok)

	// The other outstanding record is untouched.
	ok, err = repo.Consume(context.Background(), "9876543210", "222222", now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsume_WrongPhone(t *testing.T) {
	repo := NewOTPRepo()
	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), newOTP("9876543210", "123456", now.Add(10*time.Minute))))

	ok, err := repo.Consume(context.Background(), "9123456780", "123456", now)
	require.NoError(t, err)
	assert.False(t, ok)
}
