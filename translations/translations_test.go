package translations

import (
	"testing"

	"github.com/frontend-talks/order-request-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwedishCashB2C(t *testing.T) {
	require.NoError(t, InitCache())

	tr, err := Get("se", servicedef.PaymentTypeCash, servicedef.CustomerTypeB2C)
	require.NoError(t, err)
	assert.Equal(t, "Förnamn", tr.T(KeyFirstName))
	assert.Equal(t, "Efternamn", tr.T(KeyLastName))
	assert.Equal(t, "E-postadress", tr.T(KeyEmail))
	assert.Equal(t, "Telefon", tr.T(KeyPhoneNumber))
	assert.Equal(t, "Postnummer", tr.T(KeyPostalCode))
	assert.Equal(t, "Plats", tr.T(KeyLocation))
	assert.Equal(t, "SMS", tr.T(KeyCommunicationSMS))
	assert.Equal(t, "Skicka begäran", tr.T(KeySubmit))
}

func TestOverridesApplyPerPaymentAndCustomerType(t *testing.T) {
	tr, err := Get("se", servicedef.PaymentTypeLeasing, servicedef.CustomerTypeB2B)
	require.NoError(t, err)
	assert.Equal(t, "Skicka leasingförfrågan", tr.T(KeySubmit))
	assert.Equal(t, "Kontaktpersonens förnamn", tr.T(KeyFirstName))
	assert.Equal(t, "Postnummer", tr.T(KeyPostalCode))
}

func TestOverridesDoNotLeakBetweenCalls(t *testing.T) {
	_, err := Get("se", servicedef.PaymentTypeLeasing, servicedef.CustomerTypeB2C)
	require.NoError(t, err)
	tr, err := Get("se", servicedef.PaymentTypeCash, servicedef.CustomerTypeB2C)
	require.NoError(t, err)
	assert.Equal(t, "Skicka begäran", tr.T(KeySubmit))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	tr, err := Get("no", servicedef.PaymentTypeCash, servicedef.CustomerTypeB2C)
	require.NoError(t, err)
	assert.Equal(t, "Fornavn", tr.T(KeyFirstName))
	assert.Equal(t, "noSuchKey", tr.T("noSuchKey"))
}

func TestUnknownMarket(t *testing.T) {
	_, err := Get("xx", servicedef.PaymentTypeCash, servicedef.CustomerTypeB2C)
	assert.Error(t, err)
}

func TestMarkets(t *testing.T) {
	assert.Equal(t, []string{"no", "se"}, Markets())
}
