package services

import (
	"context"

	"kickconnect.net/configs/configslog"

	"go.uber.org/zap"
)

// Notifier delivers outbound messages to users. Delivery is best-effort
// and never blocks or fails the operation that triggered it.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name, accountCode string) error
	SendPasswordReset(ctx context.Context, email, name string) error
}

// logNotifier records the message instead of sending it; mail transport is
// wired in deployment-specific builds.
type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) SendWelcome(_ context.Context, email, name, accountCode string) error {
	configslog.Log.Info("welcome notification",
		zap.String("email", email), zap.String("name", name), zap.String("accountCode", accountCode))
	return nil
}

func (logNotifier) SendPasswordReset(_ context.Context, email, name string) error {
	configslog.Log.Info("password reset notification",
		zap.String("email", email), zap.String("name", name))
	return nil
}
