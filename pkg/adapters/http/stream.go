package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/domain"
)

// StreamManager fans navigation events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty StreamManager. A nil logger discards logs.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new subscriber. The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe() (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			delete(sm.subscribers, ch)
			close(ch)
		})
	}
}

// Len returns the number of subscribers.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every subscriber, dropping it for those whose buffer is full.
func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("SSE: client buffer full, dropping message")
		}
	}
}

func (sm *StreamManager) broadcastJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		sm.logger.Error("SSE: encode event failed", "error", err)
		return
	}
	sm.Broadcast(string(data))
}

// Hooks returns hooks that broadcast every event as JSON.
func (sm *StreamManager) Hooks() domain.Hooks {
	nav := func(_ context.Context, e *domain.NavigationEvent) { sm.broadcastJSON(e) }
	res := func(_ context.Context, e *domain.ResultEvent) { sm.broadcastJSON(e) }
	return domain.Hooks{
		OnNavigate:        nav,
		OnPop:             nav,
		OnResultSent:      res,
		OnResultDelivered: res,
		OnResultDropped:   res,
	}
}
