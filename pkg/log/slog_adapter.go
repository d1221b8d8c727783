package log

import (
	"context"
	"log/slog"

	"github.com/djlink-protocol/djlink-go/pkg/wire"
)

// SlogAdapter writes capture events to an slog.Logger.
// Useful for development when you want to see protocol traffic in the
// console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Classified packets and lock
// transitions log at Debug level; rejections log at Warn level, since
// they are the signal the protocol boundary exists to produce.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("capture_id", event.CaptureID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Port != 0 {
		attrs = append(attrs, slog.Int("port", event.Port))
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote_addr", event.RemoteAddr))
	}

	level := slog.LevelDebug

	switch {
	case event.Packet != nil:
		attrs = append(attrs,
			slog.String("packet_type", event.Packet.Name),
			slog.Uint64("type_value", uint64(event.Packet.TypeValue)),
			slog.Int("size", event.Packet.Size),
		)
		if event.Packet.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.Rejection != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("reason", event.Rejection.Reason),
			slog.Int("length", event.Rejection.Length),
		)
		if event.Rejection.Kind == wire.RejectUnknownType {
			attrs = append(attrs, slog.Uint64("type_value", uint64(event.Rejection.TypeValue)))
		}
	case event.Lock != nil:
		attrs = append(attrs,
			slog.String("lock_name", event.Lock.Name),
			slog.String("action", event.Lock.Action.String()),
		)
	}

	a.logger.LogAttrs(context.Background(), level, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
