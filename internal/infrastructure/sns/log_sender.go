package sns

import (
	"context"
	"log/slog"
)

// LogSender writes the message to the log instead of delivering it.
// This is the dev/reference delivery channel; the code still reaches the
// operator through the process log.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) SendSMS(_ context.Context, to, message string) error {
	slog.Info("SMS delivery (log channel)", "to", to, "message", message)
	return nil
}
