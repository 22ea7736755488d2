package auth

import (
	"context"
	"testing"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingSender records outgoing messages so tests can extract the code.
type capturingSender struct {
	to       []string
	messages []string
	fail     error
}

func (s *capturingSender) SendSMS(_ context.Context, to, message string) error {
	if s.fail != nil {
		return s.fail
	}
	s.to = append(s.to, to)
	s.messages = append(s.messages, message)
	return nil
}

// lastCode pulls the 6-digit code out of the last captured message.
func (s *capturingSender) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, s.messages)
	msg := s.messages[len(s.messages)-1]
	require.GreaterOrEqual(t, len(msg), 6)
	return msg[len(msg)-6:]
}

func newTestService(sender *capturingSender, clock func() time.Time) Service {
	return NewService(ServiceDeps{
		OTPRepo:   memory.NewOTPRepo(),
		SMSSender: sender,
		OTPTTL:    10 * time.Minute,
		Clock:     clock,
	})
}

func TestRequestCode_DeliversSixDigitCode(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	expires, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.True(t, expires.After(time.Now()))
	require.Len(t, sender.to, 1)
	assert.Equal(t, "9876543210", sender.to[0])

	code := sender.lastCode(t)
	assert.Regexp(t, `^[0-9]{6}$`, code)
}

func TestRequestCode_ShortPhoneRejected(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "12345")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Empty(t, sender.messages)
}

func TestVerifyCode_HappyPath(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)

	ok, err := svc.VerifyCode(context.Background(), "9876543210", sender.lastCode(t))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyCode_WrongCodeIsUniformFalse(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)

	wrong := "000000"
	if sender.lastCode(t) == wrong {
		wrong = "000001"
	}
	ok, err := svc.VerifyCode(context.Background(), "9876543210", wrong)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyCode_SingleUse(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)
	code := sender.lastCode(t)

	ok, err := svc.VerifyCode(context.Background(), "9876543210", code)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.VerifyCode(context.Background(), "9876543210", code)
	require.NoError(t, err)
	assert.False(t, ok, "a consumed code must not verify again")
}

func TestVerifyCode_ExpiredCode(t *testing.T) {
	now := time.Now()
	sender := &capturingSender{}
	svc := newTestService(sender, func() time.Time { return now })

	_, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)
	code := sender.lastCode(t)

	now = now.Add(11 * time.Minute)
	ok, err := svc.VerifyCode(context.Background(), "9876543210", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequestCode_OutstandingCodesCoexist(t *testing.T) {
	sender := &capturingSender{}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)
	first := sender.lastCode(t)

	_, err = svc.RequestCode(context.Background(), "9876543210")
	require.NoError(t, err)
	second := sender.lastCode(t)

	// The earlier code still verifies; a fresh request does not revoke it.
	ok, err := svc.VerifyCode(context.Background(), "9876543210", first)
	require.NoError(t, err)
	assert.True(t, ok)

	if second != first {
		ok, err = svc.VerifyCode(context.Background(), "9876543210", second)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRequestCode_SendFailureSurfaces(t *testing.T) {
	sender := &capturingSender{fail: assert.AnError}
	svc := newTestService(sender, nil)

	_, err := svc.RequestCode(context.Background(), "9876543210")
	assert.Error(t, err)
}
