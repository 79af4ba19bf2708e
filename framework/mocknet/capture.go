package mocknet

import (
	"net/http"
	"sync"
	"time"
)

// Capture holds the body of the last request received by a recording route. It belongs to a
// single test case; the registry clears it on Reset.
type Capture struct {
	route   string
	body    []byte
	header  http.Header
	count   int
	updated chan struct{}
	lock    sync.Mutex
}

func newCapture(route string) *Capture {
	return &Capture{route: route, updated: make(chan struct{}, 1)}
}

func (c *Capture) record(body []byte, header http.Header) {
	c.lock.Lock()
	c.body = body
	c.header = header.Clone()
	c.count++
	c.lock.Unlock()
	select { // non-blocking notify
	case c.updated <- struct{}{}:
	default:
	}
}

// Set stores a body as if a request had been captured. Tests of code that consumes captures use
// it to simulate traffic.
func (c *Capture) Set(body []byte) {
	c.record(body, nil)
}

// Value returns the last captured body, and false if nothing has been captured since the last
// reset.
func (c *Capture) Value() ([]byte, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.count == 0 {
		return nil, false
	}
	return append([]byte(nil), c.body...), true
}

// Header returns the headers of the last captured request.
func (c *Capture) Header() http.Header {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.header.Clone()
}

// Count returns how many requests were captured since the last reset.
func (c *Capture) Count() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.count
}

func (c *Capture) Reset() {
	c.lock.Lock()
	c.body = nil
	c.header = nil
	c.count = 0
	c.lock.Unlock()
	select { // drain a stale notification
	case <-c.updated:
	default:
	}
}

// Await waits until something has been captured, and returns it.
func (c *Capture) Await(timeout time.Duration) ([]byte, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		if body, ok := c.Value(); ok {
			return body, nil
		}
		select {
		case <-c.updated:
		case <-deadline.C:
			return nil, &CaptureTimeoutError{Route: c.route, Timeout: timeout}
		}
	}
}
