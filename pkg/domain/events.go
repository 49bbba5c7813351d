package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNavigate        EventType = "navigate"
	EventPop             EventType = "pop"
	EventResultSent      EventType = "result_sent"
	EventResultDelivered EventType = "result_delivered"
	EventResultDropped   EventType = "result_dropped"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NavigationEvent represents a push or pop on the back stack.
type NavigationEvent struct {
	EventBase
	From string `json:"from,omitempty"` // Route of the entry that was on top
	To   string `json:"to,omitempty"`   // Route of the entry now on top
}

// ResultEvent represents a result handoff between two screens.
type ResultEvent struct {
	EventBase
	Origin  string `json:"origin"`           // Route of the screen that produced the result
	TypeID  string `json:"type_id"`          // Type identifier of the result
	EntryID string `json:"entry_id"`         // Entry holding the mailbox
	Reason  string `json:"reason,omitempty"` // Why a result was dropped
}

// Hooks defines callbacks for navigation observability.
// Every field is optional.
type Hooks struct {
	OnNavigate        func(context.Context, *NavigationEvent)
	OnPop             func(context.Context, *NavigationEvent)
	OnResultSent      func(context.Context, *ResultEvent)
	OnResultDelivered func(context.Context, *ResultEvent)
	OnResultDropped   func(context.Context, *ResultEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnNavigate:        chainNav(h.OnNavigate, other.OnNavigate),
		OnPop:             chainNav(h.OnPop, other.OnPop),
		OnResultSent:      chainResult(h.OnResultSent, other.OnResultSent),
		OnResultDelivered: chainResult(h.OnResultDelivered, other.OnResultDelivered),
		OnResultDropped:   chainResult(h.OnResultDropped, other.OnResultDropped),
	}
}

func chainNav(a, b func(context.Context, *NavigationEvent)) func(context.Context, *NavigationEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *NavigationEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainResult(a, b func(context.Context, *ResultEvent)) func(context.Context, *ResultEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *ResultEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
