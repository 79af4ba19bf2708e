package ordertests

import (
	"encoding/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoRecaptchaTests(t *T) {
	submit := func(t *T, options ...PageOption) *MockBackend {
		backend := NewMockBackend(t)
		page := RenderOrderForm(t, backend, options...)
		page.FillCustomer(customerForMarket(t.Config().Market))
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")
		page.Submit()
		return backend
	}

	t.Run("token is sent when reCAPTCHA is enabled", func(t *T) {
		backend := submit(t, WithRecaptcha())
		lead := RequireDecodedLead(t, backend)
		assert.Equal(t, fixtureRecaptchaToken, lead.ReCaptchaToken.StringValue())
	})

	t.Run("token is null when reCAPTCHA is disabled", func(t *T) {
		backend := submit(t)
		var lead map[string]interface{}
		require.NoError(t, json.Unmarshal(RequireLead(t, backend), &lead))
		value, present := lead["reCaptchaToken"]
		assert.True(t, present, "reCaptchaToken should be present")
		assert.Nil(t, value)
	})
}
