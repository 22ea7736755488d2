package domain

import "time"

// Session binds an authenticated identity to an opaque token delivered to
// the client as a cookie. Expiry is checked lazily on read; the DynamoDB
// backend additionally uses ExpiresAt as a native TTL attribute.
type Session struct {
	Token      string    `json:"-" dynamodbav:"token"`
	UserID     string    `json:"user_id" dynamodbav:"user_id"`
	UserType   string    `json:"user_type" dynamodbav:"user_type"`
	LocationID *string   `json:"location_id,omitempty" dynamodbav:"location_id"`
	ExpiresAt  int64     `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// Expired reports whether the session's TTL has elapsed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt <= now.Unix()
}
