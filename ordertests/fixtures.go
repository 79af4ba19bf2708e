package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/servicedef"
)

const (
	FixtureToken = "fake-cch-token"

	// stockholmRetailer is echoed back verbatim in the lead, so it is kept as raw JSON.
	stockholmRetailer = `{
		"id": "se-12345",
		"name": "Volvo Studio Stockholm",
		"address": "Regeringsgatan 5",
		"city": "Stockholm",
		"postalCode": "111 53",
		"distance": 0.4
	}`
	hammarbyRetailer = `{
		"id": "se-23456",
		"name": "Bilia Hammarby Sjöstad",
		"address": "Hammarby Fabriksväg 23",
		"city": "Stockholm",
		"postalCode": "120 30",
		"distance": 3.1
	}`

	fixtureRetailers = `{"retailers": [` + stockholmRetailer + `, ` + hammarbyRetailer + `]}`
)

var fixtureConfiguration = servicedef.Configuration{}

var fixturePredictions = servicedef.AutocompleteResponse{
	Predictions: []servicedef.PlacePrediction{
		{PlaceID: "ChIJywtkGTF2X0YRZnedZ9MnDag", MainText: "Stockholm", SecondaryText: "Sverige"},
		{PlaceID: "ChIJ6Wk3fVEiXUYRkAMsjGmFDwQ", MainText: "Stockholms län", SecondaryText: "Sverige"},
	},
}

var fixtureLocation = servicedef.Location{Lat: 59.32932349999999, Lng: 18.0685808}

// DefaultCustomer is the customer entered by the snapshot scenario.
var DefaultCustomer = CustomerInput{
	FirstName:   "Johan",
	LastName:    "Gustavsson",
	Email:       "mail@example.com",
	PhoneNumber: "+46709154722",
	PostalCode:  "99 999",
}

// postal codes that are valid in each market with a catalog
var fixturePostalCodes = map[string]string{
	"se": "99 999",
	"no": "0150",
}

// customerForMarket is DefaultCustomer with a postal code that the market accepts.
func customerForMarket(market string) CustomerInput {
	c := DefaultCustomer
	if code, ok := fixturePostalCodes[market]; ok {
		c.PostalCode = code
	}
	return c
}
