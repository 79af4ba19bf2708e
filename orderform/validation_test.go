package orderform

import (
	"testing"

	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationForm(t *testing.T, market, postalCode string) *Form {
	tr, err := translations.Get(market, servicedef.PaymentTypeCash, servicedef.CustomerTypeB2C)
	require.NoError(t, err)
	return &Form{
		opts:     Options{Market: market, Translations: tr},
		validate: newValidator(market),
		logger:   framework.NullLogger(),
		values: map[string]string{
			translations.KeyFirstName:   "Johan",
			translations.KeyLastName:    "Gustavsson",
			translations.KeyEmail:       "mail@example.com",
			translations.KeyPhoneNumber: "+46709154722",
			translations.KeyPostalCode:  postalCode,
		},
		retailerID: "se-12345",
	}
}

func TestPostalCodesAccepted(t *testing.T) {
	for market, codes := range map[string][]string{
		"se": {"99 999", "999 99", "99999", " 11153 ", "1 1 1 5 3"},
		"no": {"0150", " 0150", "01 50"},
	} {
		for _, code := range codes {
			t.Run(market+" "+code, func(t *testing.T) {
				f := newValidationForm(t, market, code)
				assert.Empty(t, f.validateLocked())
			})
		}
	}
}

func TestPostalCodesRejected(t *testing.T) {
	for market, codes := range map[string][]string{
		"se": {"9999", "999999", "99-999", "ABCDE"},
		"no": {"015", "01500", "O150"},
	} {
		for _, code := range codes {
			t.Run(market+" "+code, func(t *testing.T) {
				f := newValidationForm(t, market, code)
				errs := f.validateLocked()
				require.Len(t, errs, 1)
				assert.Equal(t, f.t(translations.KeyErrorPostalCode), errs[translations.KeyPostalCode])
			})
		}
	}
}

func TestSubmittedPostalCodeKeepsItsSpacing(t *testing.T) {
	f := newValidationForm(t, "se", " 99 999 ")
	assert.Equal(t, "99 999", f.customerLocked().PostalCode)
}
