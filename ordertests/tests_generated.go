package ordertests

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

// generatedCustomerSeed keeps the generated customers the same from run to run, so that a
// failure can be reproduced.
const generatedCustomerSeed = 20210315

func DoGeneratedCustomerTests(t *T) {
	faker := gofakeit.New(generatedCustomerSeed)
	for i := 0; i < 3; i++ {
		customer := generateCustomer(faker, t.Config().Market)
		t.Run(fmt.Sprintf("customer %d is submitted as entered", i+1), func(t *T) {
			t.Debug("generated customer: %+v", customer)
			backend := NewMockBackend(t)
			page := RenderOrderForm(t, backend)
			page.FillCustomer(customer)
			page.ChooseLocation("Stockholm", "Stockholm Sverige")
			page.ChooseRetailer("Volvo Studio Stockholm")
			page.Submit()

			lead := RequireDecodedLead(t, backend)
			assert.Equal(t, customer.FirstName, lead.Customer.FirstName)
			assert.Equal(t, customer.LastName, lead.Customer.LastName)
			assert.Equal(t, customer.Email, lead.Customer.Email)
			assert.Equal(t, customer.PhoneNumber, lead.Customer.PhoneNumber)
			assert.Equal(t, customer.PostalCode, lead.Customer.PostalCode)
		})
	}
}

func generateCustomer(faker *gofakeit.Faker, market string) CustomerInput {
	postalCode := faker.Numerify("### ##")
	if market == "no" {
		postalCode = faker.Numerify("####")
	}
	return CustomerInput{
		FirstName:   faker.FirstName(),
		LastName:    faker.LastName(),
		Email:       strings.ToLower(faker.Email()),
		PhoneNumber: "+467" + faker.Numerify("########"),
		PostalCode:  postalCode,
	}
}
