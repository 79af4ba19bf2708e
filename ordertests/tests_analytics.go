package ordertests

import (
	"net/http"

	"github.com/frontend-talks/order-request-contract-tests/framework/mocknet"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

func DoAnalyticsTests(t *T) {
	t.Run("UTM parameters and GA cookies are reported", func(t *T) {
		backend := NewMockBackend(t)
		config := fixtureConfiguration
		config.GaTrackID = "UA-12345-1"
		backend.Registry.Use("GET", backend.ConfigurationPath(), mocknet.JSONHandler(200, config))

		page := RenderOrderForm(t, backend,
			WithPageURL("https://www.example.com/se/order-request?utm_source=newsletter&utm_medium=email&utm_campaign=launch"),
			WithCookies(
				&http.Cookie{Name: "_ga", Value: "GA1.2.1111111111.1600000000"},
				&http.Cookie{Name: "_gid", Value: "GA1.2.2222222222.1600000000"},
			),
		)
		page.FillCustomer(customerForMarket(t.Config().Market))
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")
		page.Submit()

		a := RequireDecodedLead(t, backend).Analytics
		assert.Equal(t, "1111111111.1600000000", a.GTM.GaClientID.StringValue())
		assert.Equal(t, "2222222222.1600000000", a.GTM.GaUserID.StringValue())
		assert.Equal(t, "UA-12345-1", a.GTM.GaTrackID.StringValue())
		assert.Equal(t, "newsletter", a.UTM.UTMSource.StringValue())
		assert.Equal(t, "email", a.UTM.UTMMedium.StringValue())
		assert.Equal(t, "launch", a.UTM.UTMCampaign.StringValue())
		assert.False(t, a.UTM.UTMContent.IsDefined())
		assert.False(t, a.UTM.UTMTerm.IsDefined())
	})

	t.Run("configuration is echoed in the lead", func(t *T) {
		backend := NewMockBackend(t, WithFleet(), WithPaymentType(servicedef.PaymentTypeLeasing))
		config := fixtureConfiguration
		config.RetailerAssistedSales = true
		backend.Registry.Use("GET", backend.ConfigurationPath(), mocknet.JSONHandler(200, config))

		page := RenderOrderForm(t, backend)
		page.FillCustomer(customerForMarket(t.Config().Market))
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")
		page.Submit()

		lead := RequireDecodedLead(t, backend)
		assert.True(t, lead.RetailerAssistedSales)
		assert.True(t, lead.IsFleet)
		assert.Equal(t, servicedef.PaymentTypeLeasing, lead.PaymentType)
		assert.Equal(t, FixtureToken, lead.CCHToken)
	})
}
