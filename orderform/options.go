package orderform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"
)

// Options is the fixed configuration the page is rendered with.
type Options struct {
	Token        string
	CustomerType servicedef.CustomerType
	FeatureFlags FeatureFlags
	IsFleet      bool
	Market       string
	PaymentType  servicedef.PaymentType
	Translations translations.Translations
}

type FeatureFlags struct {
	UseRecaptcha                 bool
	ShowCommunicationPreferences bool
}

var DefaultFeatureFlags = FeatureFlags{
	UseRecaptcha:                 true,
	ShowCommunicationPreferences: true,
}

// RecaptchaProvider obtains a verification token before a lead is submitted.
type RecaptchaProvider interface {
	Token(ctx context.Context, action string) (string, error)
}

// Environment is what a browser would otherwise provide to the page.
type Environment struct {
	// BaseURL is prepended to every API path.
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	// PageURL is the address the page was opened with; UTM parameters are read from its query.
	PageURL   string
	Cookies   []*http.Cookie
	Recaptcha RecaptchaProvider
	Logger    framework.Logger
}

func (o Options) validate() error {
	if o.Market == "" {
		return errors.New("market is required")
	}
	if o.Token == "" {
		return errors.New("token is required")
	}
	if _, err := servicedef.ParseCustomerType(string(o.CustomerType)); err != nil {
		return err
	}
	if _, err := servicedef.ParsePaymentType(string(o.PaymentType)); err != nil {
		return err
	}
	return nil
}

func (e Environment) withDefaults() (Environment, error) {
	if e.BaseURL == "" {
		return e, errors.New("base URL is required")
	}
	if e.HTTPClient == nil {
		e.HTTPClient = http.DefaultClient
	}
	if e.Logger == nil {
		e.Logger = framework.NullLogger()
	}
	return e, nil
}

func (o Options) withDefaults() (Options, error) {
	if err := o.validate(); err != nil {
		return o, fmt.Errorf("invalid order form options: %w", err)
	}
	if o.Translations == nil {
		tr, err := translations.Get(o.Market, o.PaymentType, o.CustomerType)
		if err != nil {
			return o, err
		}
		o.Translations = tr
	}
	return o, nil
}
