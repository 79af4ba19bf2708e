// Package orderform is the order-request page: a form that collects a customer's details, a
// location and a retailer, and submits them to the backend as a lead.
//
// The form is headless. It exposes its accessible tree through the screen.Document interface,
// so it is driven the same way a user would drive the real page: by typing into labelled
// fields and clicking buttons.
package orderform

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/framework/screen"
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/go-playground/validator/v10"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	idSubmit      = "submit"
	idFormError   = "form-error"
	idFormStatus  = "form-status"
	idRetailer    = "retailer"
	suggestionPre = "suggestion-"
	retailerPre   = "retailer-"
	errorPre      = "error-"
)

// Form is a rendered order-request page. All of its state is guarded by lock; network calls run
// in their own goroutines and are cancelled by Close.
type Form struct {
	opts     Options
	env      Environment
	api      *apiClient
	validate *validator.Validate
	logger   framework.Logger

	ctx          context.Context
	cancel       context.CancelFunc
	workers      sync.WaitGroup
	configLoaded chan struct{}

	config        *servicedef.Configuration
	configErr     error
	values        map[string]string
	focused       string
	locationGen   int
	predictions   []servicedef.PlacePrediction
	location      *servicedef.Location
	retailers     []ldvalue.Value
	retailerID    string
	communication servicedef.CustomerCommunication
	fieldErrors   map[string]string
	formError     string
	submitting    bool
	submitted     bool
	lock          sync.Mutex
}

// Render creates the page and starts loading its configuration.
func Render(opts Options, env Environment) (*Form, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	env, err = env.withDefaults()
	if err != nil {
		return nil, err
	}
	logger := framework.LoggerWithPrefix(env.Logger, "[order form] ")
	ctx, cancel := context.WithCancel(context.Background())
	f := &Form{
		opts: opts,
		env:  env,
		api: &apiClient{
			baseURL:   strings.TrimSuffix(env.BaseURL, "/"),
			http:      env.HTTPClient,
			userAgent: env.UserAgent,
			logger:    logger,
		},
		validate:     newValidator(opts.Market),
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		configLoaded: make(chan struct{}),
		values:       make(map[string]string),
		fieldErrors:  make(map[string]string),
	}
	f.async(f.loadConfiguration)
	return f, nil
}

// Close cancels any outstanding requests and waits for their goroutines to finish.
func (f *Form) Close() {
	f.cancel()
	f.workers.Wait()
}

func (f *Form) async(fn func()) {
	f.workers.Add(1)
	go func() {
		defer f.workers.Done()
		fn()
	}()
}

func (f *Form) loadConfiguration() {
	defer close(f.configLoaded)
	var config servicedef.Configuration
	path := servicedef.ConfigurationPath(f.opts.Market, f.opts.CustomerType, f.opts.PaymentType, f.opts.Token)
	err := f.api.getJSON(f.ctx, path, nil, &config)
	f.lock.Lock()
	defer f.lock.Unlock()
	if err != nil {
		f.logger.Printf("Failed to load configuration: %s", err)
		f.configErr = err
		return
	}
	f.config = &config
}

// awaitConfiguration blocks until the configuration request has finished.
func (f *Form) awaitConfiguration() (*servicedef.Configuration, error) {
	select {
	case <-f.configLoaded:
	case <-f.ctx.Done():
		return nil, f.ctx.Err()
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.config, f.configErr
}

func (f *Form) t(key string) string {
	return f.opts.Translations.T(key)
}

// textFields lists the visible text inputs in page order. Must be called with the lock held.
func (f *Form) textFields() []string {
	var optional servicedef.ConfigurationFields
	if f.config != nil {
		optional = f.config.Fields
	}
	var fields []string
	if optional.Title {
		fields = append(fields, translations.KeyTitle)
	}
	fields = append(fields, translations.KeyFirstName, translations.KeyLastName)
	if optional.SecondLastName {
		fields = append(fields, translations.KeySecondLastName)
	}
	fields = append(fields, translations.KeyEmail, translations.KeyPhoneNumber, translations.KeyPostalCode)
	if optional.NationalID {
		fields = append(fields, translations.KeyNationalID)
	}
	if optional.Gender {
		fields = append(fields, translations.KeyGender)
	}
	return fields
}

func communicationFields() []string {
	return []string{
		translations.KeyCommunicationEmail,
		translations.KeyCommunicationSMS,
		translations.KeyCommunicationPhone,
	}
}

func (f *Form) communicationChecked(key string) bool {
	switch key {
	case translations.KeyCommunicationEmail:
		return f.communication.Email
	case translations.KeyCommunicationSMS:
		return f.communication.SMS
	case translations.KeyCommunicationPhone:
		return f.communication.Phone
	}
	return false
}

func (f *Form) toggleCommunication(key string) {
	switch key {
	case translations.KeyCommunicationEmail:
		f.communication.Email = !f.communication.Email
	case translations.KeyCommunicationSMS:
		f.communication.SMS = !f.communication.SMS
	case translations.KeyCommunicationPhone:
		f.communication.Phone = !f.communication.Phone
	}
}

// Elements implements screen.Document.
func (f *Form) Elements() []screen.Element {
	f.lock.Lock()
	defer f.lock.Unlock()

	var ret []screen.Element
	labelled := func(id string, role screen.Role) screen.Element {
		label := f.t(id)
		return screen.Element{ID: id, Role: role, Label: label, Name: label, Value: f.values[id]}
	}
	for _, key := range f.textFields() {
		ret = append(ret, labelled(key, screen.RoleTextbox))
		if msg, ok := f.fieldErrors[key]; ok {
			ret = append(ret, screen.Element{ID: errorPre + key, Role: screen.RoleAlert, Name: f.t(key) + ": " + msg})
		}
	}
	ret = append(ret, labelled(translations.KeyLocation, screen.RoleCombobox))
	for _, p := range f.predictions {
		ret = append(ret, screen.Element{ID: suggestionPre + p.PlaceID, Role: screen.RoleButton, Name: p.DisplayName()})
	}
	for _, r := range f.retailers {
		id := servicedef.RetailerID(r)
		ret = append(ret, screen.Element{
			ID:      retailerPre + id,
			Role:    screen.RoleButton,
			Name:    servicedef.RetailerName(r),
			Checked: id == f.retailerID,
		})
	}
	if msg, ok := f.fieldErrors[idRetailer]; ok {
		ret = append(ret, screen.Element{ID: errorPre + idRetailer, Role: screen.RoleAlert, Name: msg})
	}
	if f.opts.FeatureFlags.ShowCommunicationPreferences {
		for _, key := range communicationFields() {
			e := labelled(key, screen.RoleCheckbox)
			e.Checked = f.communicationChecked(key)
			ret = append(ret, e)
		}
	}
	ret = append(ret, screen.Element{
		ID:       idSubmit,
		Role:     screen.RoleButton,
		Name:     f.t(translations.KeySubmit),
		Disabled: f.submitting || f.submitted,
	})
	if f.formError != "" {
		ret = append(ret, screen.Element{ID: idFormError, Role: screen.RoleAlert, Name: f.formError})
	}
	if f.submitted {
		ret = append(ret, screen.Element{ID: idFormStatus, Role: screen.RoleStatus, Name: f.t(translations.KeySubmitted)})
	}
	return ret
}

// Dispatch implements screen.Document.
func (f *Form) Dispatch(ev screen.Event) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if !f.hasElement(ev.Target) {
		return fmt.Errorf("no element with id %q", ev.Target)
	}
	switch ev.Type {
	case screen.EventFocus:
		f.focused = ev.Target
	case screen.EventBlur:
		if f.focused == ev.Target {
			f.focused = ""
		}
	case screen.EventChange:
		return f.handleChange(ev.Target, ev.Value)
	case screen.EventClick:
		return f.handleClick(ev.Target)
	default:
		return fmt.Errorf("unsupported event type %q", ev.Type)
	}
	return nil
}

func (f *Form) hasElement(id string) bool {
	for _, key := range f.textFields() {
		if key == id {
			return true
		}
	}
	switch {
	case id == translations.KeyLocation, id == idSubmit:
		return true
	case strings.HasPrefix(id, suggestionPre):
		_, ok := f.predictionByID(id)
		return ok
	case strings.HasPrefix(id, retailerPre):
		_, ok := f.retailerByID(strings.TrimPrefix(id, retailerPre))
		return ok
	}
	if f.opts.FeatureFlags.ShowCommunicationPreferences {
		for _, key := range communicationFields() {
			if key == id {
				return true
			}
		}
	}
	return false
}

func (f *Form) handleChange(id, value string) error {
	if id == translations.KeyLocation {
		f.changeLocation(value)
		return nil
	}
	for _, key := range f.textFields() {
		if key == id {
			f.values[id] = value
			delete(f.fieldErrors, id)
			return nil
		}
	}
	return fmt.Errorf("element %q does not accept text input", id)
}

func (f *Form) handleClick(id string) error {
	switch {
	case id == idSubmit:
		f.submit()
	case strings.HasPrefix(id, suggestionPre):
		p, _ := f.predictionByID(id)
		f.selectPrediction(p)
	case strings.HasPrefix(id, retailerPre):
		f.retailerID = strings.TrimPrefix(id, retailerPre)
		delete(f.fieldErrors, idRetailer)
	default:
		f.toggleCommunication(id)
	}
	return nil
}

// predictionByID finds a suggestion by element ID, which carries the place ID so that an element
// read before the suggestions changed cannot select a different place.
func (f *Form) predictionByID(id string) (servicedef.PlacePrediction, bool) {
	placeID := strings.TrimPrefix(id, suggestionPre)
	for _, p := range f.predictions {
		if p.PlaceID == placeID {
			return p, true
		}
	}
	return servicedef.PlacePrediction{}, false
}

func (f *Form) retailerByID(id string) (ldvalue.Value, bool) {
	for _, r := range f.retailers {
		if servicedef.RetailerID(r) == id {
			return r, true
		}
	}
	return ldvalue.Null(), false
}
