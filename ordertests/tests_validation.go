package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/framework/screen"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoValidationTests(t *T) {
	t.Run("empty form is not submitted", func(t *T) {
		backend := NewMockBackend(t)
		page := RenderOrderForm(t, backend)
		page.Submit()

		required := page.Translations.T(translations.KeyErrorRequired)
		for _, key := range []string{
			translations.KeyFirstName,
			translations.KeyLastName,
			translations.KeyEmail,
			translations.KeyPhoneNumber,
			translations.KeyPostalCode,
		} {
			name := page.Translations.T(key) + ": " + required
			_, err := page.GetByRole(screen.RoleAlert, screen.Exact(name))
			assert.NoError(t, err)
		}
		_, err := page.GetByRole(screen.RoleAlert, screen.Exact(page.Translations.T(translations.KeyErrorRetailer)))
		assert.NoError(t, err)

		RequireNoLead(t, backend, 4*t.Config().PollInterval())
	})

	t.Run("malformed values are rejected", func(t *T) {
		backend := NewMockBackend(t)
		page := RenderOrderForm(t, backend)
		c := customerForMarket(t.Config().Market)
		c.Email = "mail@"
		c.PhoneNumber = "0709 15 47 22"
		c.PostalCode = "ABC"
		page.FillCustomer(c)
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")
		page.Submit()

		for key, message := range map[string]string{
			translations.KeyEmail:       translations.KeyErrorEmail,
			translations.KeyPhoneNumber: translations.KeyErrorPhone,
			translations.KeyPostalCode:  translations.KeyErrorPostalCode,
		} {
			name := page.Translations.T(key) + ": " + page.Translations.T(message)
			_, err := page.GetByRole(screen.RoleAlert, screen.Exact(name))
			assert.NoError(t, err)
		}
		RequireNoLead(t, backend, 4*t.Config().PollInterval())
	})

	t.Run("correcting the errors allows submission", func(t *T) {
		backend := NewMockBackend(t)
		page := RenderOrderForm(t, backend)
		page.Submit()
		require.NotEmpty(t, page.QueryAllByRole(screen.RoleAlert, nil))

		page.FillCustomer(customerForMarket(t.Config().Market))
		page.ChooseLocation("Stockholm", "Stockholm Sverige")
		page.ChooseRetailer("Volvo Studio Stockholm")
		assert.Empty(t, page.QueryAllByRole(screen.RoleAlert, nil))

		page.Submit()
		lead := RequireDecodedLead(t, backend)
		assert.Equal(t, DefaultCustomer.FirstName, lead.Customer.FirstName)
	})
}
