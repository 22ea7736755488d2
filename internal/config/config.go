package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// "memory" keeps auth state in-process; "dynamo" externalizes users,
	// sessions and OTPs to DynamoDB so the service can run multi-instance.
	StorageBackend string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string
	SNSRegion    string
	// SMSDelivery selects the OTP delivery channel: "sns" or "log".
	SMSDelivery string

	OTPTTL     time.Duration
	SessionTTL time.Duration

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each externalized entity.
type DynamoTables struct {
	Users    string
	Sessions string
	Otps     string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),

		AWSRegion:      getEnv("AWS_REGION", "ap-south-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users:    getEnv("DYNAMO_TABLE_USERS", "civic_users"),
			Sessions: getEnv("DYNAMO_TABLE_SESSIONS", "civic_sessions"),
			Otps:     getEnv("DYNAMO_TABLE_OTPS", "civic_otps"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "civic-media"),
		SNSRegion:    getEnv("SNS_REGION", "ap-south-1"),
		SMSDelivery:  getEnv("SMS_DELIVERY", "log"),

		OTPTTL:     time.Duration(getEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute,
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
