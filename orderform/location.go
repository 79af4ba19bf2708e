package orderform

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/servicedef"
	"github.com/frontend-talks/order-request-contract-tests/translations"
)

// changeLocation updates the location input and asks for suggestions. Every change, and every
// selection, bumps locationGen so that responses to superseded requests are dropped. Must be
// called with the lock held.
func (f *Form) changeLocation(value string) {
	f.values[translations.KeyLocation] = value
	f.locationGen++
	f.predictions = nil
	f.location = nil
	f.retailers = nil
	f.retailerID = ""

	input := strings.TrimSpace(value)
	if input == "" {
		return
	}
	gen := f.locationGen
	f.async(func() { f.fetchPredictions(gen, input) })
}

func (f *Form) fetchPredictions(gen int, input string) {
	var resp servicedef.AutocompleteResponse
	err := f.api.getJSON(f.ctx, servicedef.AutocompletePath(f.opts.Market), url.Values{"input": {input}}, &resp)

	f.lock.Lock()
	defer f.lock.Unlock()
	if gen != f.locationGen {
		f.logger.Printf("Dropping stale suggestions for %q", input)
		return
	}
	if err != nil {
		f.logger.Printf("Autocomplete failed: %s", err)
		return
	}
	f.predictions = resp.Predictions
}

// selectPrediction must be called with the lock held.
func (f *Form) selectPrediction(p servicedef.PlacePrediction) {
	f.values[translations.KeyLocation] = p.DisplayName()
	f.locationGen++
	f.predictions = nil
	f.location = nil
	f.retailers = nil
	f.retailerID = ""

	gen := f.locationGen
	f.async(func() { f.fetchRetailersNear(gen, p) })
}

func (f *Form) fetchRetailersNear(gen int, p servicedef.PlacePrediction) {
	var location servicedef.Location
	err := f.api.getJSON(f.ctx, servicedef.LocationPath(f.opts.Market), url.Values{"placeId": {p.PlaceID}}, &location)
	if err != nil {
		f.logger.Printf("Geocoding %q failed: %s", p.PlaceID, err)
		return
	}
	if !f.stillCurrent(gen) {
		return
	}

	query := url.Values{
		"lat":          {strconv.FormatFloat(location.Lat, 'f', -1, 64)},
		"lng":          {strconv.FormatFloat(location.Lng, 'f', -1, 64)},
		"customerType": {string(f.opts.CustomerType)},
		"paymentType":  {string(f.opts.PaymentType)},
	}
	var resp servicedef.RetailersResponse
	err = f.api.getJSON(f.ctx, servicedef.RetailersPath(f.opts.Market), query, &resp)

	f.lock.Lock()
	defer f.lock.Unlock()
	if gen != f.locationGen {
		return
	}
	f.location = &location
	if err != nil {
		f.logger.Printf("Loading retailers failed: %s", err)
		return
	}
	f.retailers = resp.Retailers
}

func (f *Form) stillCurrent(gen int) bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	return gen == f.locationGen
}
