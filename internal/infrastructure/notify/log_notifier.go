// Package notify delivers operational warnings raised by the use cases.
package notify

import (
	"context"

	"github.com/karimbadr/mohasib-api/internal/application/inventory"
	"github.com/karimbadr/mohasib-api/pkg/logger"
)

var _ inventory.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the structured log. A chat or email
// channel can replace it without touching the use cases.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier builds the notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the message at the level the caller asked for.
func (n *LogNotifier) Notify(_ context.Context, level, message string) {
	switch level {
	case inventory.LevelWarn:
		n.log.Warn().Str("channel", "notification").Msg(message)
	default:
		n.log.Info().Str("channel", "notification").Msg(message)
	}
}
