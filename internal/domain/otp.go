package domain

import "time"

// OTP is a one-time phone verification code.
// A record is consumable when its code matches, it has not expired, and it
// has not been verified before. Once verified it is permanently spent.
// Multiple outstanding records may coexist for the same phone; requesting a
// new code does not invalidate earlier ones.
// ExpiresAt is a Unix timestamp also used as the DynamoDB TTL attribute.
type OTP struct {
	OtpID     string    `json:"id" dynamodbav:"otp_id"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	Code      string    `json:"-" dynamodbav:"code"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
	Verified  bool      `json:"verified" dynamodbav:"verified"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

// Consumable reports whether the record can still be spent at the given instant.
func (o *OTP) Consumable(now time.Time) bool {
	return !o.Verified && o.ExpiresAt > now.Unix()
}

type OTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required,min=10"`
	Code  string `json:"otp" validate:"required,len=6,numeric"`
}
