package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// OTPRepo holds outstanding one-time codes. Expired records are filtered at
// read time rather than swept; consumption is serialized under the mutex so
// concurrent verification attempts against the same record resolve to
// exactly one winner.
type OTPRepo struct {
	mu   sync.Mutex
	otps map[string]*domain.OTP // otp_id -> record
}

func NewOTPRepo() *OTPRepo {
	return &OTPRepo{otps: make(map[string]*domain.OTP)}
}

func (r *OTPRepo) Create(_ context.Context, o *domain.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.otps[o.OtpID] = &cp
	return nil
}

// Consume marks exactly one matching, unexpired, unverified record as
// verified and reports whether one was found. When duplicate requests left
// several matching records outstanding, one is spent and the rest remain
// usable until they individually expire or get consumed.
func (r *OTPRepo) Consume(_ context.Context, phone, code string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.otps {
		if o.Phone == phone && o.Code == code && o.Consumable(now) {
			o.Verified = true
			return true, nil
		}
	}
	return false, nil
}
