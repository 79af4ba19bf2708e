package ordertests

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/framework/mocknet"
	"github.com/frontend-talks/order-request-contract-tests/framework/screen"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoNetworkTests(t *T) {
	t.Run("request with no handler surfaces an error", func(t *T) {
		backend := NewMockBackend(t)
		backend.ExpectUnmatchedRequests()
		backend.Registry.Remove("GET", backend.RetailersPath())

		page := RenderOrderForm(t, backend)
		page.ChooseLocation("Stockholm", "Stockholm Sverige")

		err := page.WaitFor("an unmatched request", func() error {
			if len(backend.Registry.Unmatched()) == 0 {
				return errors.New("no unmatched requests yet")
			}
			return nil
		})
		require.NoError(t, err)

		var unmatched *mocknet.UnmatchedRequestError
		require.True(t, errors.As(backend.Registry.Err(), &unmatched))
		assert.Equal(t, "GET", unmatched.Method)
		assert.True(t, strings.HasPrefix(unmatched.URL, backend.RetailersPath()),
			"unexpected URL %s", unmatched.URL)
		assert.Empty(t, page.QueryAllByRole(screen.RoleButton, screen.Pattern("volvo studio")))
	})

	t.Run("configuration is only served for the expected form", func(t *T) {
		for name, option := range map[string]PageOption{
			"another token":         WithToken("another-cch-token"),
			"another customer type": WithCustomerType(servicedef.CustomerTypeB2B),
			"another payment type":  WithPaymentType(servicedef.PaymentTypeLoan),
		} {
			t.Run(name, func(t *T) {
				backend := NewMockBackend(t)
				backend.ExpectUnmatchedRequests()

				page := RenderOrderForm(t, backend, option)
				err := page.WaitFor("an unmatched request", func() error {
					if len(backend.Registry.Unmatched()) == 0 {
						return errors.New("no unmatched requests yet")
					}
					return nil
				})
				require.NoError(t, err)

				unmatched := backend.Registry.Unmatched()[0]
				assert.Equal(t, "GET", unmatched.Method)
				assert.Contains(t, unmatched.URL, "/configuration/")
				assert.NotEqual(t, backend.ConfigurationPath(), unmatched.URL)
			})
		}
	})

	t.Run("location requests carry the expected query", func(t *T) {
		backend := NewMockBackend(t)
		handler, requests := httphelpers.RecordingHandler(mocknet.JSONHandler(200, fixtureLocation))
		backend.Registry.Use("GET", backend.LocationPath(), handler)

		page := RenderOrderForm(t, backend)
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")

		require.Equal(t, 1, len(requests))
		r := <-requests
		assert.Equal(t, fixturePredictions.Predictions[0].PlaceID, r.Request.URL.Query().Get("placeId"))
		assert.Equal(t, t.Config().UserAgent, r.Request.Header.Get("User-Agent"))
	})

	t.Run("last registered handler wins", func(t *T) {
		backend := NewMockBackend(t)
		backend.Registry.Use("GET", backend.RetailersPath(), mocknet.JSONHandler(200, servicedef.RetailersResponse{}))
		backend.Registry.Use("GET", backend.RetailersPath(), mocknet.JSONHandler(200, []byte(
			`{"retailers": [{"id": "se-99999", "name": "Override Retailer"}]}`)))

		page := RenderOrderForm(t, backend)
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		_, err := page.FindByRole(screen.RoleButton, screen.Pattern("override retailer"))
		assert.NoError(t, err)
	})

	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("lead rejected with %d shows an error", status), func(t *T) {
			backend := NewMockBackend(t)
			backend.Registry.Use("POST", backend.LeadsPath(), mocknet.JSONHandler(status, "Failure"))

			page := RenderOrderForm(t, backend)
			page.FillCustomer(customerForMarket(t.Config().Market))
			page.ChooseLocation("Stockholm", "Stockholm Sverige")
			page.ChooseRetailer("Volvo Studio Stockholm")
			page.Submit()

			alert, err := page.FindByRole(screen.RoleAlert, nameMatching(page.Translations.T(translations.KeyErrorSubmit)))
			require.NoError(t, err)
			t.Debug("alert shown: %s", alert)
			assert.Empty(t, page.QueryAllByRole(screen.RoleStatus, nil))
		})
	}
}
