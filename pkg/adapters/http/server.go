package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/internal/presentation/graph"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Host is the navigation host served over HTTP.
type Host interface {
	Graph() *domain.NavGraph
	Controller() ports.NavController
	Menu(localizer *menu.Localizer) []menu.Item
	Render() error
}

// Server implements the generated ServerInterface. Requests are serialized:
// the host has a single logical UI thread.
type Server struct {
	mu        sync.Mutex
	host      Host
	streams   *StreamManager
	localizer *menu.Localizer
	version   string
	logger    *slog.Logger
	router    routers.Router
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithStreams sets the stream manager backing GET /events.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.streams = sm
	}
}

// WithLocalizer sets the localizer used for menu labels.
func WithLocalizer(l *menu.Localizer) Option {
	return func(s *Server) {
		s.localizer = l
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// WithLogger configures a logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server for host.
func NewServer(host Host, opts ...Option) *Server {
	s := &Server{host: host, version: "dev", logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.streams == nil {
		s.streams = NewStreamManager(s.logger)
	}
	router, err := newSpecRouter()
	if err != nil {
		s.logger.Error("Failed to load OpenAPI spec, requests are not validated", "error", err)
	}
	s.router = router
	return s
}

// newSpecRouter matches requests against the embedded spec, whatever host serves it.
func newSpecRouter() (routers.Router, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	doc.Servers = nil
	return legacy.NewRouter(doc)
}

// Routes returns the chi router of the API, including /openapi.yaml and /swagger.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:  r,
		Middlewares: []MiddlewareFunc{s.validateRequest},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.Warn("invalid parameter", "path", r.URL.Path, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	})
	return r
}

// NewHandler creates the HTTP handler for host.
func NewHandler(host Host, opts ...Option) http.Handler {
	return NewServer(host, opts...).Routes()
}

// validateRequest rejects requests whose parameters or body do not match the spec.
func (s *Server) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.router == nil {
			next.ServeHTTP(w, r)
			return
		}
		route, pathParams, err := s.router.FindRoute(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		err = openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
		})
		if err != nil {
			s.logger.Warn("request rejected", "path", r.URL.Path, "error", err)
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Waypoint API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, Info{
		App:     "waypoint-http",
		Version: s.version,
		Graph:   s.host.Graph().Route(),
	})
}

// GetMenu handles GET /menu. The lang parameter overrides the server's language preference.
func (s *Server) GetMenu(w http.ResponseWriter, r *http.Request, params GetMenuParams) {
	loc := s.localizer
	if params.Lang != nil && len(*params.Lang) > 0 {
		loc = loc.ForLanguages(*params.Lang...)
	}

	s.mu.Lock()
	items := s.host.Menu(loc)
	s.mu.Unlock()

	out := make([]MenuItem, len(items))
	for i, item := range items {
		out[i] = MenuItem{Route: item.Route(), Label: item.Label, Selected: item.Selected}
	}
	writeJSON(w, s.logger, http.StatusOK, out)
}

// GetStack handles GET /stack.
func (s *Server) GetStack(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.logger, http.StatusOK, s.stack())
}

// GetGraph handles GET /graph, returning a Mermaid diagram with the back stack overlaid.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	overlay := &graph.GraphOverlay{}
	for _, e := range s.stack() {
		overlay.BackStack = append(overlay.BackStack, e.Route)
		overlay.Current = e.Route
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.host.Graph(), overlay))
}

// Navigate handles POST /navigate and renders the new destination.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	var body NavigateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Navigate: invalid request body", "error", err)
		return
	}

	dir := domain.Direction{Route: body.Route}
	if body.Args != nil {
		dir.Args = *body.Args
	}
	opts := ports.NavOptions{
		SingleTop:        deref(body.SingleTop),
		PopUpTo:          deref(body.PopUpTo),
		PopUpToInclusive: deref(body.PopUpToInclusive),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.Controller().Navigate(dir, opts); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrDestinationNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Navigate error: %v", err), status)
		return
	}
	if !s.render(w) {
		return
	}
	writeJSON(w, s.logger, http.StatusOK, s.stack())
}

// Back handles POST /back: pops one entry, or up to a route when "to" is set.
func (s *Server) Back(w http.ResponseWriter, r *http.Request) {
	var body BackJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var popped bool
	if to := deref(body.To); to != "" {
		popped = s.host.Controller().PopBackStackTo(to, deref(body.Inclusive))
	} else {
		popped = s.host.Controller().NavigateUp()
	}
	if !popped {
		http.Error(w, "Nothing to pop", http.StatusConflict)
		return
	}
	if !s.render(w) {
		return
	}
	writeJSON(w, s.logger, http.StatusOK, s.stack())
}

// SubscribeEvents handles GET /events (SSE). The types parameter filters events by type.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	var want map[domain.EventType]bool
	if params.Types != nil && len(*params.Types) > 0 {
		want = make(map[domain.EventType]bool, len(*params.Types))
		for _, t := range *params.Types {
			want[domain.EventType(t)] = true
		}
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if want != nil && !want[eventType(msg)] {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// eventType reads the type of a broadcast event.
func eventType(msg string) domain.EventType {
	var base domain.EventBase
	_ = json.Unmarshal([]byte(msg), &base)
	return base.Type
}

// render runs the current destination. Missing content is not an error for the API.
// Caller holds s.mu.
func (s *Server) render(w http.ResponseWriter) bool {
	if err := s.host.Render(); err != nil && !errors.Is(err, domain.ErrNoContent) {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Render failed", "error", err)
		return false
	}
	return true
}

// stack lists the back stack, bottom first. Caller holds s.mu.
func (s *Server) stack() []Entry {
	lister, ok := s.host.Controller().(interface{ Entries() []ports.BackStackEntry })
	var entries []ports.BackStackEntry
	if ok {
		entries = lister.Entries()
	} else {
		if prev := s.host.Controller().PreviousEntry(); prev != nil {
			entries = append(entries, prev)
		}
		if cur := s.host.Controller().CurrentEntry(); cur != nil {
			entries = append(entries, cur)
		}
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{
			Id:    e.ID(),
			Route: e.Destination().Route(),
			State: e.Lifecycle().State().String(),
		}
		if args := e.Arguments(); len(args) > 0 {
			out[i].Args = &args
		}
	}
	return out
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
