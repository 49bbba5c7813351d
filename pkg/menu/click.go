package menu

import (
	"context"
	"log/slog"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// ClickHandler applies the menu click policy: a click navigates only when the
// current entry is resumed and shows a different destination.
type ClickHandler struct {
	controller    ports.NavController
	scheduler     ports.Scheduler
	afterNavigate func(ctx context.Context)
	navOptions    ports.NavOptions
	logger        *slog.Logger
}

// ClickOption configures a ClickHandler.
type ClickOption func(*ClickHandler)

// WithScheduler sets where the after-navigate action runs. Defaults to ports.GoScheduler.
func WithScheduler(s ports.Scheduler) ClickOption {
	return func(h *ClickHandler) {
		h.scheduler = s
	}
}

// WithAfterNavigate sets an action launched after a click navigated, such as closing a drawer.
func WithAfterNavigate(fn func(ctx context.Context)) ClickOption {
	return func(h *ClickHandler) {
		h.afterNavigate = fn
	}
}

// WithNavOptions sets the options used for menu navigations.
func WithNavOptions(opts ports.NavOptions) ClickOption {
	return func(h *ClickHandler) {
		h.navOptions = opts
	}
}

// WithLogger configures a logger for the handler.
func WithLogger(logger *slog.Logger) ClickOption {
	return func(h *ClickHandler) {
		h.logger = logger
	}
}

// NewClickHandler returns a handler navigating through controller.
func NewClickHandler(controller ports.NavController, opts ...ClickOption) *ClickHandler {
	h := &ClickHandler{
		controller: controller,
		scheduler:  ports.GoScheduler,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Click navigates to dest if the policy allows it and reports whether it did.
// The after-navigate action is launched without being awaited.
func (h *ClickHandler) Click(ctx context.Context, dest domain.DirectionDestination) bool {
	if dest == nil {
		return false
	}
	current := h.controller.CurrentEntry()
	if current == nil {
		return false
	}
	if state := current.Lifecycle().State(); state != domain.StateResumed {
		h.logger.Debug("menu click ignored", "route", dest.Route(), "state", state.String())
		return false
	}
	if domain.SameDestination(current.Destination(), dest) {
		h.logger.Debug("menu click ignored", "route", dest.Route(), "reason", "already current")
		return false
	}

	if err := h.controller.Navigate(dest.Direction(), h.navOptions); err != nil {
		h.logger.Warn("menu navigation failed", "route", dest.Route(), "error", err)
		return false
	}
	if h.afterNavigate != nil {
		h.scheduler.Launch(ctx, h.afterNavigate)
	}
	return true
}
