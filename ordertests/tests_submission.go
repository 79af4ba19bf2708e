package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/framework/screen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoSubmissionTests(t *T) {
	t.Run("when all fields are filled out", func(t *T) {
		t.Run("will submit the same data every time", func(t *T) {
			backend := NewMockBackend(t, WithMarket("se"))
			page := RenderOrderForm(t, backend)
			fillSwedishSnapshotForm(t, page)

			RequireSubmittedLead(t, backend, expectedLeadSnapshot(t.Config().UserAgent))
		})

		t.Run("shows a confirmation once the lead is accepted", func(t *T) {
			backend := NewMockBackend(t, WithMarket("se"))
			page := RenderOrderForm(t, backend)
			fillSwedishSnapshotForm(t, page)
			_ = RequireLead(t, backend)

			status, err := page.FindByRole(screen.RoleStatus, nil)
			require.NoError(t, err)
			assert.Equal(t, "Tack! Din begäran har skickats.", status.Name)

			submit, err := page.GetByRole(screen.RoleButton, screen.Pattern("skicka begäran"))
			require.NoError(t, err)
			assert.True(t, submit.Disabled, "submit button should be disabled after submission")
		})
	})

	t.Run("same input after a reset gives an identical payload", func(t *T) {
		backend := NewMockBackend(t, WithMarket("se"))

		page := RenderOrderForm(t, backend)
		fillSwedishSnapshotForm(t, page)
		first := RequireLead(t, backend)
		page.Form.Close()

		backend.Reset()
		require.Equal(t, 0, backend.Leads.Count())

		page = RenderOrderForm(t, backend)
		fillSwedishSnapshotForm(t, page)
		second := RequireLead(t, backend)

		RequireSameLead(t, first, second)
		assert.NotEqual(t, backend.Leads.Header().Get("Idempotency-Key"), "",
			"lead submission should carry an idempotency key")
	})

	t.Run("capture is reset before each case", func(t *T) {
		backend := NewMockBackend(t)
		beforeEach := func(t *T) {
			backend.Reset()
		}
		submitted := false

		t.Run("a case that submits", func(t *T) {
			beforeEach(t)
			page := RenderOrderForm(t, backend)
			page.FillCustomer(customerForMarket(t.Config().Market))
			page.ChooseLocation("Stockholm", "Stockholm Sverige")
			page.ChooseRetailer("Volvo Studio Stockholm")
			page.Submit()
			_ = RequireLead(t, backend)
			submitted = true
		})

		t.Run("a later case starts empty", func(t *T) {
			if submitted {
				_, ok := backend.Leads.Value()
				require.True(t, ok, "the previous case's lead should still be captured before the hook runs")
			}
			beforeEach(t)
			_, ok := backend.Leads.Value()
			assert.False(t, ok, "capture should be empty at the start of a case")
			assert.Equal(t, 0, backend.Leads.Count())
		})
	})
}

// fillSwedishSnapshotForm enters the fixed input sequence using the Swedish labels, exactly as
// a user reading the page would.
func fillSwedishSnapshotForm(t *T, page *OrderPage) {
	page.ChangeByLabel("Förnamn", DefaultCustomer.FirstName)
	page.ChangeByLabel("Efternamn", DefaultCustomer.LastName)
	page.ChangeByLabel("E-postadress", DefaultCustomer.Email)
	page.ChangeByLabel("Telefon", DefaultCustomer.PhoneNumber)
	page.ChangeByLabel("Postnummer", DefaultCustomer.PostalCode)

	location, err := page.GetByLabelText("Plats")
	require.NoError(t, err)
	require.NoError(t, page.Focus(location))
	require.NoError(t, page.Change(location, "Stockholm"))
	page.ClickButton(screen.Pattern("stockholm sverige"))
	page.ClickButton(screen.Pattern("volvo studio stockholm"))

	page.ClickByLabel("SMS")
	submit, err := page.GetByRole(screen.RoleButton, screen.Pattern("skicka begäran"))
	require.NoError(t, err)
	require.NoError(t, page.Click(submit))
}
