package mocknet

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/frontend-talks/order-request-contract-tests/framework"

	"github.com/go-chi/chi/v5"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

// Registry is a mock network layer. Requests are matched by method and chi-style path pattern
// (for instance "/api/{market}/leads"); query strings are not part of the match.
//
// Routes registered with Handle, Respond or Capture are the initial routes. Routes registered
// with Use are overrides for the current test case and take precedence over initial routes.
// For the same method and pattern, the route registered last wins. Remove is an override too:
// it hides the route until a later Use or the next Reset. Reset drops the overrides and clears
// every capture and the unmatched-request log.
type Registry struct {
	initial   []route
	overrides []route
	captures  []*Capture
	unmatched []*UnmatchedRequestError
	router    http.Handler
	logger    framework.Logger
	lock      sync.Mutex
}

// A route with a nil handler is a removal marker.
type route struct {
	method  string
	pattern string
	handler http.Handler
}

func (r route) key() string {
	return r.method + " " + r.pattern
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger framework.Logger) *Registry {
	if logger == nil {
		logger = framework.NullLogger()
	}
	r := &Registry{logger: logger}
	r.rebuild()
	return r
}

// Handle registers an initial route.
func (r *Registry) Handle(method, pattern string, handler http.Handler) {
	r.lock.Lock()
	r.initial = append(r.initial, route{method: strings.ToUpper(method), pattern: pattern, handler: handler})
	r.rebuildLocked()
	r.lock.Unlock()
}

// Use registers an override route that lasts until the next Reset.
func (r *Registry) Use(method, pattern string, handler http.Handler) {
	r.lock.Lock()
	r.overrides = append(r.overrides, route{method: strings.ToUpper(method), pattern: pattern, handler: handler})
	r.rebuildLocked()
	r.lock.Unlock()
}

// Remove makes requests for the method and pattern unmatched until the next Reset, or until Use
// registers the route again. The initial route, if any, is kept and comes back on Reset.
func (r *Registry) Remove(method, pattern string) {
	removed := route{method: strings.ToUpper(method), pattern: pattern}
	r.lock.Lock()
	r.overrides = append(withoutRoute(r.overrides, removed.key()), removed)
	r.rebuildLocked()
	r.lock.Unlock()
}

// Respond registers an initial route that always answers with the given status and the JSON
// encoding of body.
func (r *Registry) Respond(method, pattern string, status int, body interface{}) {
	r.Handle(method, pattern, JSONHandler(status, body))
}

// Capture registers an initial route that stores the body of every request it receives in the
// returned Capture, then answers with the given status and the JSON encoding of body.
func (r *Registry) Capture(method, pattern string, status int, body interface{}) *Capture {
	c := r.newCapture(method, pattern)
	r.Handle(method, pattern, CapturingHandler(c, JSONHandler(status, body), r.logger))
	return c
}

func (r *Registry) newCapture(method, pattern string) *Capture {
	c := newCapture(strings.ToUpper(method) + " " + pattern)
	r.lock.Lock()
	r.captures = append(r.captures, c)
	r.lock.Unlock()
	return c
}

// Reset restores the initial routes and clears all captured state.
func (r *Registry) Reset() {
	r.lock.Lock()
	r.overrides = nil
	r.unmatched = nil
	captures := append([]*Capture(nil), r.captures...)
	r.rebuildLocked()
	r.lock.Unlock()
	for _, c := range captures {
		c.Reset()
	}
}

// Unmatched returns every request since the last Reset that matched no route.
func (r *Registry) Unmatched() []*UnmatchedRequestError {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]*UnmatchedRequestError(nil), r.unmatched...)
}

// Err returns nil if every request matched a route, or else all of the unmatched-request errors.
func (r *Registry) Err() error {
	unmatched := r.Unmatched()
	if len(unmatched) == 0 {
		return nil
	}
	errs := make([]error, 0, len(unmatched))
	for _, u := range unmatched {
		errs = append(errs, u)
	}
	return errors.Join(errs...)
}

func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.lock.Lock()
	router := r.router
	r.lock.Unlock()

	r.logger.Printf(">> %s %s", req.Method, req.URL.RequestURI())
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	router.ServeHTTP(sw, req)
	r.logger.Printf("<< %d %s %s", sw.status, req.Method, req.URL.Path)
}

func (r *Registry) rebuild() {
	r.lock.Lock()
	r.rebuildLocked()
	r.lock.Unlock()
}

// rebuildLocked replaces the router. It must be called with the lock held.
func (r *Registry) rebuildLocked() {
	var keys []string
	winners := make(map[string]route)
	for _, rt := range append(append([]route(nil), r.initial...), r.overrides...) {
		if _, ok := winners[rt.key()]; !ok {
			keys = append(keys, rt.key())
		}
		winners[rt.key()] = rt
	}

	router := chi.NewRouter()
	for _, k := range keys {
		rt := winners[k]
		if rt.handler == nil {
			continue
		}
		router.Method(rt.method, rt.pattern, rt.handler)
	}
	router.NotFound(r.handleUnmatched)
	router.MethodNotAllowed(r.handleUnmatched)
	r.router = router
}

func (r *Registry) handleUnmatched(w http.ResponseWriter, req *http.Request) {
	err := NewUnmatchedRequestError(req.Method, req.URL.RequestURI())
	r.logger.Printf("Error: %s", err)
	r.lock.Lock()
	r.unmatched = append(r.unmatched, err)
	r.lock.Unlock()
	JSONHandler(http.StatusNotImplemented, map[string]string{"error": err.Error()}).ServeHTTP(w, req)
}

func withoutRoute(routes []route, key string) []route {
	var ret []route
	for _, rt := range routes {
		if rt.key() != key {
			ret = append(ret, rt)
		}
	}
	return ret
}

// JSONHandler returns a handler that always answers with status and the JSON encoding of body.
// A []byte or json.RawMessage body is sent as-is.
func JSONHandler(status int, body interface{}) http.Handler {
	if status == http.StatusOK {
		if raw, ok := body.([]byte); ok {
			body = json.RawMessage(raw)
		}
		return httphelpers.HandlerWithJSONResponse(body, nil)
	}
	var data []byte
	switch b := body.(type) {
	case []byte:
		data = b
	case json.RawMessage:
		data = b
	default:
		data, _ = json.Marshal(body)
	}
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return httphelpers.HandlerWithResponse(status, headers, data)
}

// CapturingHandler records each request body in c before delegating to handler.
func CapturingHandler(c *Capture, handler http.Handler, logger framework.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body []byte
		if req.Body != nil {
			data, err := io.ReadAll(req.Body)
			_ = req.Body.Close()
			if err != nil {
				logger.Printf("Unexpected error trying to read request body: %s", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			body = data
		}
		logger.Printf("Captured %s %s: %s", req.Method, req.URL.Path, string(body))
		c.record(body, req.Header)
		handler.ServeHTTP(w, req)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}
