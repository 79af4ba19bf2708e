package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// LeadRequest is the body of the lead-submission request. Values the page could not determine
// are sent as JSON null, which is why the analytics fields are optional strings.
type LeadRequest struct {
	Analytics             Analytics              `json:"analytics"`
	CCHToken              string                 `json:"cchToken"`
	Customer              Customer               `json:"customer"`
	CustomerCommunication CustomerCommunication  `json:"customerCommunication"`
	CustomerType          CustomerType           `json:"customerType"`
	IsFleet               bool                   `json:"isFleet"`
	PaymentType           PaymentType            `json:"paymentType"`
	ReCaptchaToken        ldvalue.OptionalString `json:"reCaptchaToken"`
	Retailer              ldvalue.Value          `json:"retailer"`
	RetailerAssistedSales bool                   `json:"retailerAssistedSales"`
}

type Analytics struct {
	GTM       GTM    `json:"gtm"`
	UserAgent string `json:"userAgent"`
	UTM       UTM    `json:"utm"`
}

type GTM struct {
	GaClientID ldvalue.OptionalString `json:"gaClientId"`
	GaTrackID  ldvalue.OptionalString `json:"gaTrackId"`
	GaUserID   ldvalue.OptionalString `json:"gaUserId"`
}

type UTM struct {
	UTMCampaign ldvalue.OptionalString `json:"utmCampaign"`
	UTMContent  ldvalue.OptionalString `json:"utmContent"`
	UTMMedium   ldvalue.OptionalString `json:"utmMedium"`
	UTMSource   ldvalue.OptionalString `json:"utmSource"`
	UTMTerm     ldvalue.OptionalString `json:"utmTerm"`
}

// Customer fields that the market does not use are sent as empty strings.
type Customer struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	Gender         string `json:"gender"`
	LastName       string `json:"lastName"`
	NationalID     string `json:"nationalId"`
	PhoneNumber    string `json:"phoneNumber"`
	PostalCode     string `json:"postalCode"`
	SecondLastName string `json:"secondLastName"`
	Title          string `json:"title"`
}

type CustomerCommunication struct {
	Email bool `json:"email"`
	Phone bool `json:"phone"`
	SMS   bool `json:"sms"`
}
