package servicedef

import (
	"fmt"
	"net/url"
	"strings"
)

// APIPrefix is the root of every order-request endpoint. The market follows it.
const APIPrefix = "/api/order-request"

type CustomerType string

const (
	CustomerTypeB2C CustomerType = "b2c"
	CustomerTypeB2B CustomerType = "b2b"
)

type PaymentType string

const (
	PaymentTypeCash    PaymentType = "cash"
	PaymentTypeLeasing PaymentType = "leasing"
	PaymentTypeLoan    PaymentType = "loan"
)

func ParseCustomerType(s string) (CustomerType, error) {
	switch c := CustomerType(strings.ToLower(s)); c {
	case CustomerTypeB2C, CustomerTypeB2B:
		return c, nil
	}
	return "", fmt.Errorf("unknown customer type %q", s)
}

func ParsePaymentType(s string) (PaymentType, error) {
	switch p := PaymentType(strings.ToLower(s)); p {
	case PaymentTypeCash, PaymentTypeLeasing, PaymentTypeLoan:
		return p, nil
	}
	return "", fmt.Errorf("unknown payment type %q", s)
}

// Route patterns, in the chi syntax understood by the mock network layer.
const (
	ConfigurationRoute = APIPrefix + "/{market}/{customerType}/{paymentType}/configuration/{token}"
	AutocompleteRoute  = APIPrefix + "/{market}/places/autocomplete"
	LocationRoute      = APIPrefix + "/{market}/places/location"
	RetailersRoute     = APIPrefix + "/{market}/retailers"
	LeadsRoute         = APIPrefix + "/{market}/leads"
)

func ConfigurationPath(market string, customerType CustomerType, paymentType PaymentType, token string) string {
	return fmt.Sprintf("%s/%s/%s/%s/configuration/%s",
		APIPrefix, url.PathEscape(market), customerType, paymentType, url.PathEscape(token))
}

func AutocompletePath(market string) string {
	return APIPrefix + "/" + url.PathEscape(market) + "/places/autocomplete"
}

func LocationPath(market string) string {
	return APIPrefix + "/" + url.PathEscape(market) + "/places/location"
}

func RetailersPath(market string) string {
	return APIPrefix + "/" + url.PathEscape(market) + "/retailers"
}

func LeadsPath(market string) string {
	return APIPrefix + "/" + url.PathEscape(market) + "/leads"
}
