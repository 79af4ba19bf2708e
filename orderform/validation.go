package orderform

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/translations"

	"github.com/go-playground/validator/v10"
)

// Postal codes are matched with all whitespace removed, so "99 999", "999 99" and "99999" are
// the same Swedish code.
var postalCodePatterns = map[string]*regexp.Regexp{
	"se": regexp.MustCompile(`^\d{5}$`),
	"no": regexp.MustCompile(`^\d{4}$`),
}

// customerInput is what the validator sees. The form tag is the translation key of the field,
// which is also its element ID.
type customerInput struct {
	FirstName   string `form:"firstName" validate:"required"`
	LastName    string `form:"lastName" validate:"required"`
	Email       string `form:"email" validate:"required,email"`
	PhoneNumber string `form:"phoneNumber" validate:"required,e164"`
	PostalCode  string `form:"postalCode" validate:"required,postal_code"`
}

var messageKeys = map[string]string{
	"required":    translations.KeyErrorRequired,
	"email":       translations.KeyErrorEmail,
	"e164":        translations.KeyErrorPhone,
	"postal_code": translations.KeyErrorPostalCode,
}

func newValidator(market string) *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	pattern := postalCodePatterns[market]
	_ = validate.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		code := strings.Join(strings.Fields(fl.Field().String()), "")
		if pattern == nil {
			return code != ""
		}
		return pattern.MatchString(code)
	})
	return validate
}

// validateLocked returns the error message for each invalid field, keyed by element ID. Must be
// called with the lock held.
func (f *Form) validateLocked() map[string]string {
	input := customerInput{
		FirstName:   strings.TrimSpace(f.values[translations.KeyFirstName]),
		LastName:    strings.TrimSpace(f.values[translations.KeyLastName]),
		Email:       strings.TrimSpace(f.values[translations.KeyEmail]),
		PhoneNumber: strings.ReplaceAll(strings.TrimSpace(f.values[translations.KeyPhoneNumber]), " ", ""),
		PostalCode:  f.values[translations.KeyPostalCode],
	}
	ret := make(map[string]string)
	if err := f.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			f.logger.Printf("Unexpected validation error: %s", err)
			ret[idFormError] = f.t(translations.KeyErrorSubmit)
			return ret
		}
		for _, fe := range verrs {
			key, ok := messageKeys[fe.Tag()]
			if !ok {
				key = translations.KeyErrorRequired
			}
			ret[fe.Field()] = f.t(key)
		}
	}
	if f.retailerID == "" {
		ret[idRetailer] = f.t(translations.KeyErrorRetailer)
	}
	return ret
}
