package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/framework/mocknet"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

// MockBackend is the order-request API as seen by the form: a mock network layer serving the
// fixtures, and a capture cell for submitted leads.
//
// Routes are registered for concrete paths only, so a form that asks for another market,
// customer type, payment type or token makes unmatched requests.
type MockBackend struct {
	Registry *mocknet.Registry
	Server   *mocknet.Server
	Leads    *mocknet.Capture

	Market       string
	CustomerType servicedef.CustomerType
	PaymentType  servicedef.PaymentType
	Token        string

	pageOptions     []PageOption
	expectUnmatched bool
}

// NewMockBackend starts a mock backend with the default fixtures, serving the form that the
// given options describe. RenderOrderForm applies the same options before its own. The backend
// is closed when the test ends, and the test fails at that point if any request went
// unmatched, unless ExpectUnmatchedRequests was called.
func NewMockBackend(t *T, options ...PageOption) *MockBackend {
	setup := newPageSetup(t, options)
	b := &MockBackend{
		Market:       setup.opts.Market,
		CustomerType: setup.opts.CustomerType,
		PaymentType:  setup.opts.PaymentType,
		Token:        setup.opts.Token,
		pageOptions:  options,
	}

	logger := framework.LoggerWithPrefix(t.DebugLogger(), "[mock network] ")
	r := mocknet.NewRegistry(logger)
	r.Respond("GET", b.ConfigurationPath(), 200, fixtureConfiguration)
	r.Respond("GET", b.AutocompletePath(), 200, fixturePredictions)
	r.Respond("GET", b.LocationPath(), 200, fixtureLocation)
	r.Respond("GET", b.RetailersPath(), 200, []byte(fixtureRetailers))
	b.Leads = r.Capture("POST", b.LeadsPath(), 201, "Success")
	b.Registry = r
	b.Server = mocknet.StartServer(r)

	t.Defer(b.Server.Close)
	t.Defer(func() {
		if !b.expectUnmatched {
			assert.NoError(t, r.Err(), "the form made requests that the mock backend does not handle")
		}
	})
	return b
}

func (b *MockBackend) ConfigurationPath() string {
	return servicedef.ConfigurationPath(b.Market, b.CustomerType, b.PaymentType, b.Token)
}

func (b *MockBackend) AutocompletePath() string { return servicedef.AutocompletePath(b.Market) }

func (b *MockBackend) LocationPath() string { return servicedef.LocationPath(b.Market) }

func (b *MockBackend) RetailersPath() string { return servicedef.RetailersPath(b.Market) }

func (b *MockBackend) LeadsPath() string { return servicedef.LeadsPath(b.Market) }

// Reset restores the default fixtures and empties the lead capture, as a setup hook does
// before each case.
func (b *MockBackend) Reset() {
	b.Registry.Reset()
}

func (b *MockBackend) ExpectUnmatchedRequests() {
	b.expectUnmatched = true
}
