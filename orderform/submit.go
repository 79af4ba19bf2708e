package orderform

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	recaptchaAction    = "order_request"
	idempotencyHeader  = "Idempotency-Key"
	gaClientIDCookie   = "_ga"
	gaUserIDCookie     = "_gid"
	submitExpectStatus = http.StatusCreated
)

var errNoRecaptchaProvider = errors.New("reCAPTCHA is enabled but no provider was configured")

// submit validates the form and, if it is valid, starts sending the lead. Must be called with
// the lock held.
func (f *Form) submit() {
	if f.submitting || f.submitted {
		return
	}
	f.formError = ""
	f.fieldErrors = f.validateLocked()
	if msg, ok := f.fieldErrors[idFormError]; ok {
		delete(f.fieldErrors, idFormError)
		f.formError = msg
	}
	if len(f.fieldErrors) > 0 || f.formError != "" {
		f.logger.Printf("Not submitting, %d invalid fields", len(f.fieldErrors))
		return
	}
	retailer, _ := f.retailerByID(f.retailerID)
	lead := servicedef.LeadRequest{
		CCHToken:              f.opts.Token,
		Customer:              f.customerLocked(),
		CustomerCommunication: f.communication,
		CustomerType:          f.opts.CustomerType,
		IsFleet:               f.opts.IsFleet,
		PaymentType:           f.opts.PaymentType,
		Retailer:              retailer,
	}
	f.submitting = true
	f.async(func() { f.sendLead(lead) })
}

func (f *Form) customerLocked() servicedef.Customer {
	value := func(key string) string {
		return strings.TrimSpace(f.values[key])
	}
	return servicedef.Customer{
		Email:          value(translations.KeyEmail),
		FirstName:      value(translations.KeyFirstName),
		Gender:         value(translations.KeyGender),
		LastName:       value(translations.KeyLastName),
		NationalID:     value(translations.KeyNationalID),
		PhoneNumber:    value(translations.KeyPhoneNumber),
		PostalCode:     value(translations.KeyPostalCode),
		SecondLastName: value(translations.KeySecondLastName),
		Title:          value(translations.KeyTitle),
	}
}

// sendLead completes the payload with whatever needed the network, and posts it.
func (f *Form) sendLead(lead servicedef.LeadRequest) {
	err := f.completeAndPost(&lead)

	f.lock.Lock()
	defer f.lock.Unlock()
	f.submitting = false
	if err != nil {
		f.logger.Printf("Submission failed: %s", err)
		f.formError = f.t(translations.KeyErrorSubmit)
		return
	}
	f.submitted = true
}

func (f *Form) completeAndPost(lead *servicedef.LeadRequest) error {
	config, err := f.awaitConfiguration()
	if err != nil {
		return err
	}
	lead.RetailerAssistedSales = config.RetailerAssistedSales
	lead.Analytics = readAnalytics(f.env, *config)

	if f.opts.FeatureFlags.UseRecaptcha {
		if f.env.Recaptcha == nil {
			return errNoRecaptchaProvider
		}
		token, err := f.env.Recaptcha.Token(f.ctx, recaptchaAction)
		if err != nil {
			return err
		}
		lead.ReCaptchaToken = ldvalue.NewOptionalString(token)
	}

	header := make(http.Header)
	header.Set(idempotencyHeader, uuid.NewString())
	return f.api.postJSON(f.ctx, servicedef.LeadsPath(f.opts.Market), lead, header, submitExpectStatus)
}

func readAnalytics(env Environment, config servicedef.Configuration) servicedef.Analytics {
	a := servicedef.Analytics{UserAgent: env.UserAgent}
	for _, c := range env.Cookies {
		switch c.Name {
		case gaClientIDCookie:
			a.GTM.GaClientID = optional(gaCookieID(c.Value))
		case gaUserIDCookie:
			a.GTM.GaUserID = optional(gaCookieID(c.Value))
		}
	}
	a.GTM.GaTrackID = optional(config.GaTrackID)

	if env.PageURL == "" {
		return a
	}
	u, err := url.Parse(env.PageURL)
	if err != nil {
		return a
	}
	q := u.Query()
	a.UTM = servicedef.UTM{
		UTMCampaign: optional(q.Get("utm_campaign")),
		UTMContent:  optional(q.Get("utm_content")),
		UTMMedium:   optional(q.Get("utm_medium")),
		UTMSource:   optional(q.Get("utm_source")),
		UTMTerm:     optional(q.Get("utm_term")),
	}
	return a
}

// gaCookieID extracts the id from a Google Analytics cookie such as "GA1.2.1234567890.1600000000",
// which is everything after the version and domain-depth fields.
func gaCookieID(value string) string {
	parts := strings.Split(value, ".")
	if len(parts) < 4 {
		return value
	}
	return strings.Join(parts[2:], ".")
}

func optional(s string) ldvalue.OptionalString {
	if s == "" {
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString(s)
}
