package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// Configuration is returned by the configuration endpoint for a session token.
type Configuration struct {
	Fields                ConfigurationFields `json:"fields"`
	RetailerAssistedSales bool                `json:"retailerAssistedSales"`
	GaTrackID             string              `json:"gaTrackId,omitempty"`
}

// ConfigurationFields enables the optional customer fields of a market.
type ConfigurationFields struct {
	Title          bool `json:"title"`
	Gender         bool `json:"gender"`
	NationalID     bool `json:"nationalId"`
	SecondLastName bool `json:"secondLastName"`
}

// AutocompleteResponse is returned by the address-autocomplete endpoint.
type AutocompleteResponse struct {
	Predictions []PlacePrediction `json:"predictions"`
}

type PlacePrediction struct {
	PlaceID       string `json:"placeId"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

// DisplayName is the text shown for a prediction in the suggestion list.
func (p PlacePrediction) DisplayName() string {
	if p.SecondaryText == "" {
		return p.MainText
	}
	return p.MainText + " " + p.SecondaryText
}

// Location is returned by the geocoding endpoint.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RetailersResponse is returned by the retailer-list endpoint. Each retailer is kept as an
// opaque JSON object, since the lead submission must echo the selected one back unchanged;
// only "id" and "name" are interpreted.
type RetailersResponse struct {
	Retailers []ldvalue.Value `json:"retailers"`
}

func RetailerID(r ldvalue.Value) string {
	return r.GetByKey("id").StringValue()
}

func RetailerName(r ldvalue.Value) string {
	return r.GetByKey("name").StringValue()
}
