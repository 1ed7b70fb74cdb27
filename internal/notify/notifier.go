// Package notify delivers best-effort notices to students. Senders never
// participate in the transactions that trigger them; callers log failures
// and move on.
package notify

import (
	"context"

	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Log is the default notifier: it writes the notice to the log instead of
// delivering it. Used when no SMTP relay is configured.
type Log struct{ log *zap.Logger }

func NewLog(log *zap.Logger) *Log { return &Log{log: log} }

func (n *Log) Send(_ context.Context, to, subject, body string) error {
	n.log.Info("notice (log only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
