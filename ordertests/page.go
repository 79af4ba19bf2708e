package ordertests

import (
	"context"
	"net/http"
	"regexp"

	"github.com/frontend-talks/order-request-contract-tests/framework/screen"
	"github.com/frontend-talks/order-request-contract-tests/orderform"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/stretchr/testify/require"
)

const fixtureRecaptchaToken = "fake-recaptcha-token"

// CustomerInput is what a user types into the customer fields.
type CustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PostalCode  string
}

// OrderPage is a rendered order form and the screen it is driven through.
type OrderPage struct {
	*screen.Screen
	Form         *orderform.Form
	Translations translations.Translations
	t            *T
}

type pageSetup struct {
	opts orderform.Options
	env  orderform.Environment
}

// PageOption customizes RenderOrderForm.
type PageOption func(*pageSetup)

func WithMarket(market string) PageOption {
	return func(s *pageSetup) { s.opts.Market = market }
}

func WithFeatureFlags(flags orderform.FeatureFlags) PageOption {
	return func(s *pageSetup) { s.opts.FeatureFlags = flags }
}

func WithCustomerType(customerType servicedef.CustomerType) PageOption {
	return func(s *pageSetup) { s.opts.CustomerType = customerType }
}

func WithPaymentType(paymentType servicedef.PaymentType) PageOption {
	return func(s *pageSetup) { s.opts.PaymentType = paymentType }
}

// WithToken sets the token the configuration is requested with.
func WithToken(token string) PageOption {
	return func(s *pageSetup) { s.opts.Token = token }
}

func WithFleet() PageOption {
	return func(s *pageSetup) { s.opts.IsFleet = true }
}

// WithPageURL sets the address the page was opened with, including any UTM parameters.
func WithPageURL(pageURL string) PageOption {
	return func(s *pageSetup) { s.env.PageURL = pageURL }
}

func WithCookies(cookies ...*http.Cookie) PageOption {
	return func(s *pageSetup) { s.env.Cookies = append(s.env.Cookies, cookies...) }
}

// WithRecaptcha enables reCAPTCHA, answered by a provider that always returns the same token.
func WithRecaptcha() PageOption {
	return func(s *pageSetup) {
		s.opts.FeatureFlags.UseRecaptcha = true
		s.env.Recaptcha = staticRecaptcha(fixtureRecaptchaToken)
	}
}

type staticRecaptcha string

func (r staticRecaptcha) Token(context.Context, string) (string, error) {
	return string(r), nil
}

// newPageSetup applies options over the defaults: the b2c cash form with reCAPTCHA turned off,
// in the configured market.
func newPageSetup(t *T, options []PageOption) pageSetup {
	flags := orderform.DefaultFeatureFlags
	flags.UseRecaptcha = false
	setup := pageSetup{
		opts: orderform.Options{
			Token:        FixtureToken,
			CustomerType: servicedef.CustomerTypeB2C,
			FeatureFlags: flags,
			Market:       t.Config().Market,
			PaymentType:  servicedef.PaymentTypeCash,
		},
		env: orderform.Environment{
			UserAgent: t.Config().UserAgent,
			Logger:    t.DebugLogger(),
		},
	}
	for _, o := range options {
		o(&setup)
	}
	return setup
}

// RenderOrderForm renders the form against the mock backend, with the options the backend was
// created with followed by the given ones.
func RenderOrderForm(t *T, backend *MockBackend, options ...PageOption) *OrderPage {
	setup := newPageSetup(t, append(append([]PageOption(nil), backend.pageOptions...), options...))
	setup.env.BaseURL = backend.Server.URL()
	setup.env.HTTPClient = backend.Server.Client()

	tr, err := translations.Get(setup.opts.Market, setup.opts.PaymentType, setup.opts.CustomerType)
	require.NoError(t, err)
	setup.opts.Translations = tr

	form, err := orderform.Render(setup.opts, setup.env)
	require.NoError(t, err)
	t.Defer(form.Close)

	return &OrderPage{
		Screen: screen.New(form, screen.Options{
			Timeout:  t.Config().AwaitTimeout(),
			Interval: t.Config().PollInterval(),
			Logger:   t.DebugLogger(),
		}),
		Form:         form,
		Translations: tr,
		t:            t,
	}
}

// ChangeByLabel types a value into the field with the given label.
func (p *OrderPage) ChangeByLabel(label, value string) {
	e, err := p.GetByLabelText(label)
	require.NoError(p.t, err)
	require.NoError(p.t, p.Change(e, value))
}

// ClickByLabel clicks the element with the given label, such as a checkbox.
func (p *OrderPage) ClickByLabel(label string) {
	e, err := p.GetByLabelText(label)
	require.NoError(p.t, err)
	require.NoError(p.t, p.Click(e))
}

// ClickButton waits for a button whose name matches the pattern, then clicks it.
func (p *OrderPage) ClickButton(name screen.NameMatcher) {
	e, err := p.FindByRole(screen.RoleButton, name)
	require.NoError(p.t, err)
	require.NoError(p.t, p.Click(e))
}

func (p *OrderPage) FillCustomer(c CustomerInput) {
	p.ChangeByLabel(p.Translations.T(translations.KeyFirstName), c.FirstName)
	p.ChangeByLabel(p.Translations.T(translations.KeyLastName), c.LastName)
	p.ChangeByLabel(p.Translations.T(translations.KeyEmail), c.Email)
	p.ChangeByLabel(p.Translations.T(translations.KeyPhoneNumber), c.PhoneNumber)
	p.ChangeByLabel(p.Translations.T(translations.KeyPostalCode), c.PostalCode)
}

// ChooseLocation types into the location field and picks the suggestion with the given name.
func (p *OrderPage) ChooseLocation(input, suggestion string) {
	label := p.Translations.T(translations.KeyLocation)
	e, err := p.GetByLabelText(label)
	require.NoError(p.t, err)
	require.NoError(p.t, p.Focus(e))
	require.NoError(p.t, p.Change(e, input))
	p.ClickButton(nameMatching(suggestion))
}

func (p *OrderPage) ChooseRetailer(name string) {
	p.ClickButton(nameMatching(name))
}

func (p *OrderPage) Submit() {
	p.ClickButton(nameMatching(p.Translations.T(translations.KeySubmit)))
}

// nameMatching is a case-insensitive pattern that matches the literal text anywhere in a name.
func nameMatching(text string) screen.NameMatcher {
	return screen.Pattern(regexp.QuoteMeta(text))
}
