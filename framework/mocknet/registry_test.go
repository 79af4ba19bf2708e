package mocknet

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, s *Server, method, path, body string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL()+path, reader)
	require.NoError(t, err)
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func startTestServer(t *testing.T, r *Registry) *Server {
	s := StartServer(r)
	t.Cleanup(s.Close)
	return s
}

func TestRespondWithCannedJSON(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/api/{market}/places/location", 200, map[string]float64{"lat": 59.3, "lng": 18.06})
	s := startTestServer(t, r)

	status, body := doRequest(t, s, "GET", "/api/se/places/location?placeId=abc", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"lat":59.3,"lng":18.06}`, body)
	assert.NoError(t, r.Err())
}

func TestRespondWithNon200Status(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("POST", "/leads", 201, "Success")
	s := startTestServer(t, r)

	status, body := doRequest(t, s, "POST", "/leads", `{}`)
	assert.Equal(t, 201, status)
	assert.Equal(t, `"Success"`, body)
}

func TestLastRegisteredHandlerWins(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/thing", 200, "first")
	r.Respond("GET", "/thing", 200, "second")
	s := startTestServer(t, r)

	_, body := doRequest(t, s, "GET", "/thing", "")
	assert.Equal(t, `"second"`, body)
}

func TestOverrideLastsUntilReset(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/thing", 200, "initial")
	r.Use("GET", "/thing", JSONHandler(500, "broken"))
	s := startTestServer(t, r)

	status, _ := doRequest(t, s, "GET", "/thing", "")
	assert.Equal(t, 500, status)

	r.Reset()
	status, body := doRequest(t, s, "GET", "/thing", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, `"initial"`, body)
}

func TestUnmatchedRequestSurfacesError(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/known", 200, "ok")
	s := startTestServer(t, r)

	status, _ := doRequest(t, s, "GET", "/unknown?x=1", "")
	assert.Equal(t, http.StatusNotImplemented, status)
	status, _ = doRequest(t, s, "DELETE", "/known", "")
	assert.Equal(t, http.StatusNotImplemented, status)

	unmatched := r.Unmatched()
	require.Len(t, unmatched, 2)
	assert.Equal(t, "GET", unmatched[0].Method)
	assert.Equal(t, "/unknown?x=1", unmatched[0].URL)
	assert.Equal(t, "DELETE", unmatched[1].Method)

	err := r.Err()
	require.Error(t, err)
	var u *UnmatchedRequestError
	assert.True(t, errors.As(err, &u))

	r.Reset()
	assert.NoError(t, r.Err())
}

func TestRemovedRouteBecomesUnmatched(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/retailers", 200, []string{})
	r.Remove("get", "/retailers")
	s := startTestServer(t, r)

	status, _ := doRequest(t, s, "GET", "/retailers", "")
	assert.Equal(t, http.StatusNotImplemented, status)
	assert.Len(t, r.Unmatched(), 1)
}

func TestRemovedRouteComesBackOnReset(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/retailers", 200, []string{"r1"})
	s := startTestServer(t, r)

	r.Remove("GET", "/retailers")
	status, _ := doRequest(t, s, "GET", "/retailers", "")
	assert.Equal(t, http.StatusNotImplemented, status)

	r.Reset()
	status, body := doRequest(t, s, "GET", "/retailers", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `["r1"]`, body)
	assert.NoError(t, r.Err())
}

func TestUseAfterRemoveWins(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/retailers", 200, []string{"r1"})
	r.Use("GET", "/retailers", JSONHandler(500, "broken"))
	r.Remove("GET", "/retailers")
	r.Use("GET", "/retailers", JSONHandler(200, []string{"r2"}))
	s := startTestServer(t, r)

	status, body := doRequest(t, s, "GET", "/retailers", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `["r2"]`, body)
}

func TestRemovingOneMethodKeepsTheOther(t *testing.T) {
	r := NewRegistry(nil)
	r.Respond("GET", "/leads", 200, "listed")
	r.Respond("POST", "/leads", 201, "Success")
	r.Remove("GET", "/leads")
	s := startTestServer(t, r)

	status, _ := doRequest(t, s, "POST", "/leads", `{}`)
	assert.Equal(t, 201, status)
	status, _ = doRequest(t, s, "GET", "/leads", "")
	assert.Equal(t, http.StatusNotImplemented, status)
}

func TestCaptureRecordsBodyAndHeaders(t *testing.T) {
	r := NewRegistry(nil)
	c := r.Capture("POST", "/leads", 201, "Success")
	s := startTestServer(t, r)

	_, ok := c.Value()
	assert.False(t, ok)

	status, _ := doRequest(t, s, "POST", "/leads", `{"firstName":"Johan"}`)
	assert.Equal(t, 201, status)

	body, ok := c.Value()
	require.True(t, ok)
	assert.JSONEq(t, `{"firstName":"Johan"}`, string(body))
	assert.Equal(t, 1, c.Count())
	assert.NotNil(t, c.Header())
}

func TestCaptureAwait(t *testing.T) {
	r := NewRegistry(nil)
	c := r.Capture("POST", "/leads", 201, "Success")
	s := startTestServer(t, r)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_, _ = s.Client().Post(s.URL()+"/leads", "application/json", strings.NewReader(`{"a":1}`))
	}()

	body, err := c.Await(time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(body))
}

func TestCaptureAwaitTimesOut(t *testing.T) {
	r := NewRegistry(nil)
	c := r.Capture("POST", "/leads", 201, "Success")

	_, err := c.Await(30 * time.Millisecond)
	var timeout *CaptureTimeoutError
	require.True(t, errors.As(err, &timeout))
	assert.Equal(t, "POST /leads", timeout.Route)
}

func TestResetClearsCapturesBetweenCases(t *testing.T) {
	r := NewRegistry(nil)
	c := r.Capture("POST", "/leads", 201, "Success")
	s := startTestServer(t, r)

	for _, name := range []string{"first", "second"} {
		t.Run(name, func(t *testing.T) {
			r.Reset()
			_, ok := c.Value()
			require.False(t, ok, "capture leaked from a previous case")

			doRequest(t, s, "POST", "/leads", `{"case":"`+name+`"}`)
			body, ok := c.Value()
			require.True(t, ok)
			assert.JSONEq(t, `{"case":"`+name+`"}`, string(body))
		})
	}
}

func TestRecordingHandlerAsRoute(t *testing.T) {
	h, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))
	r := NewRegistry(nil)
	r.Handle("GET", "/ping", h)
	s := startTestServer(t, r)

	status, _ := doRequest(t, s, "GET", "/ping", "")
	assert.Equal(t, 204, status)
	assert.Equal(t, 1, len(requestsCh))
}

func TestCaptureSetWakesAwait(t *testing.T) {
	c := newCapture("POST /x")
	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Set([]byte(`{"a":1}`))
	}()
	body, err := c.Await(time.Second)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))
	assert.Equal(t, 1, c.Count())
	assert.Empty(t, c.Header())
}
