package ordertests

import (
	"encoding/json"
	"time"

	"github.com/frontend-talks/order-request-contract-tests/servicedef"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireLead waits until the backend has captured a lead and returns its raw body. The test
// fails and immediately exits if nothing is captured within the configured timeout.
func RequireLead(t *T, backend *MockBackend) []byte {
	body, err := backend.Leads.Await(t.Config().AwaitTimeout())
	require.NoError(t, err)
	t.Debug("captured lead: %s", body)
	return body
}

// RequireDecodedLead is RequireLead followed by decoding into the typed payload.
func RequireDecodedLead(t *T, backend *MockBackend) servicedef.LeadRequest {
	var lead servicedef.LeadRequest
	require.NoError(t, json.Unmarshal(RequireLead(t, backend), &lead), "lead is not valid JSON")
	return lead
}

// RequireSubmittedLead waits for a lead and compares it field by field with the expected JSON.
// Key order and whitespace do not matter; a mismatch fails the test with a structural diff.
// If the run is configured to mask the user agent, userAgent entries are ignored.
func RequireSubmittedLead(t *T, backend *MockBackend, expectedJSON string) {
	actual := RequireLead(t, backend)
	RequireSameLead(t, []byte(expectedJSON), actual)
}

// RequireSameLead compares two lead payloads the same way RequireSubmittedLead does.
func RequireSameLead(t *T, expected, actual []byte) {
	var expectedValue, actualValue interface{}
	require.NoError(t, json.Unmarshal(expected, &expectedValue), "expected lead is not valid JSON")
	require.NoError(t, json.Unmarshal(actual, &actualValue), "submitted lead is not valid JSON")

	var opts []cmp.Option
	if t.Config().MaskUserAgent {
		opts = append(opts, cmpopts.IgnoreMapEntries(func(key string, _ interface{}) bool {
			return key == "userAgent"
		}))
	}
	if diff := cmp.Diff(expectedValue, actualValue, opts...); diff != "" {
		require.Fail(t, "submitted lead does not match", "(-expected +actual):\n%s", diff)
	}
}

// RequireNoLead fails the test if a lead is captured within the given time.
func RequireNoLead(t *T, backend *MockBackend, within time.Duration) {
	assert.Never(t, func() bool { return backend.Leads.Count() > 0 }, within, t.Config().PollInterval(),
		"a lead was submitted")
}
