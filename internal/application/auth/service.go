package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/id"
)

// Service issues short-lived numeric codes bound to a phone number and
// validates single-use consumption. Requesting a new code does not
// invalidate earlier outstanding codes for the same phone; each record
// expires on its own schedule.
type Service interface {
	// RequestCode creates and dispatches a fresh 6-digit code and returns
	// its expiry instant.
	RequestCode(ctx context.Context, phone string) (time.Time, error)
	// VerifyCode consumes exactly one matching, unexpired, unverified
	// record. It reports a uniform false for every failure mode — wrong
	// code, expired, or already consumed — so callers cannot distinguish
	// which check failed.
	VerifyCode(ctx context.Context, phone, code string) (bool, error)
}

type otpStore interface {
	Create(ctx context.Context, o *domain.OTP) error
	Consume(ctx context.Context, phone, code string, now time.Time) (bool, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	otpRepo otpStore
	sms     smsSender
	otpTTL  time.Duration
	now     func() time.Time
}

type ServiceDeps struct {
	OTPRepo   otpStore
	SMSSender smsSender
	OTPTTL    time.Duration
	// Clock overrides the time source; nil means time.Now.
	Clock func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &service{
		otpRepo: deps.OTPRepo,
		sms:     deps.SMSSender,
		otpTTL:  deps.OTPTTL,
		now:     now,
	}
}

func (s *service) RequestCode(ctx context.Context, phone string) (time.Time, error) {
	if len(phone) < 10 {
		return time.Time{}, fmt.Errorf("phone number must be at least 10 digits: %w", domain.ErrBadRequest)
	}
	code, err := generateCode()
	if err != nil {
		return time.Time{}, err
	}
	now := s.now().UTC()
	o := &domain.OTP{
		OtpID:     id.New(),
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(s.otpTTL).Unix(),
		Verified:  false,
		CreatedAt: now,
	}
	if err := s.otpRepo.Create(ctx, o); err != nil {
		return time.Time{}, err
	}
	slog.Info("OTP issued", "otp_id", o.OtpID, "phone", phone, "expires_at", o.ExpiresAt)
	// Delivery happens after the record is stored; a failed send leaves the
	// record in place and surfaces the error to the caller.
	if err := s.sms.SendSMS(ctx, phone, "Your CivicConnect verification code: "+code); err != nil {
		return time.Time{}, fmt.Errorf("dispatch OTP: %w", err)
	}
	return time.Unix(o.ExpiresAt, 0).UTC(), nil
}

func (s *service) VerifyCode(ctx context.Context, phone, code string) (bool, error) {
	ok, err := s.otpRepo.Consume(ctx, phone, code, s.now())
	if err != nil {
		return false, err
	}
	if !ok {
		slog.Info("OTP verification failed", "phone", phone)
	}
	return ok, nil
}

// generateCode draws a uniformly random integer in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
