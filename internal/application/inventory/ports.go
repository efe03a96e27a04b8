package inventory

import "context"

// Notification levels.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// Notifier is a fire-and-forget sink for operational signals (low stock).
// Implementations must never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, level, message string)
}
