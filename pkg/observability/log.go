package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/waypoint/pkg/domain"
)

// LogHooks returns hooks that log every event at info level.
func LogHooks(logger *slog.Logger) domain.Hooks {
	nav := func(ctx context.Context, e *domain.NavigationEvent) {
		logger.InfoContext(ctx, string(e.Type), "from", e.From, "to", e.To)
	}
	res := func(ctx context.Context, e *domain.ResultEvent) {
		attrs := []any{"origin", e.Origin, "type", e.TypeID, "entry", e.EntryID}
		if e.Reason != "" {
			attrs = append(attrs, "reason", e.Reason)
		}
		logger.InfoContext(ctx, string(e.Type), attrs...)
	}
	return domain.Hooks{
		OnNavigate:        nav,
		OnPop:             nav,
		OnResultSent:      res,
		OnResultDelivered: res,
		OnResultDropped:   res,
	}
}
