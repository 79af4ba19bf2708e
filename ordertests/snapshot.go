package ordertests

import (
	"encoding/json"
	"fmt"
)

// expectedLeadSnapshot is the lead submitted by the snapshot scenario, for the given user agent.
func expectedLeadSnapshot(userAgent string) string {
	ua, _ := json.Marshal(userAgent)
	return fmt.Sprintf(`{
		"analytics": {
			"gtm": {
				"gaClientId": null,
				"gaTrackId": null,
				"gaUserId": null
			},
			"userAgent": %s,
			"utm": {
				"utmCampaign": null,
				"utmContent": null,
				"utmMedium": null,
				"utmSource": null,
				"utmTerm": null
			}
		},
		"cchToken": "fake-cch-token",
		"customer": {
			"email": "mail@example.com",
			"firstName": "Johan",
			"gender": "",
			"lastName": "Gustavsson",
			"nationalId": "",
			"phoneNumber": "+46709154722",
			"postalCode": "99 999",
			"secondLastName": "",
			"title": ""
		},
		"customerCommunication": {
			"email": false,
			"phone": false,
			"sms": true
		},
		"customerType": "b2c",
		"isFleet": false,
		"paymentType": "cash",
		"reCaptchaToken": null,
		"retailer": %s,
		"retailerAssistedSales": false
	}`, ua, stockholmRetailer)
}
