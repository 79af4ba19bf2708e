// Package translations holds the text catalogs of the order-request page. Catalogs are embedded
// YAML files, one per market, each with a base table and overrides keyed by
// "<paymentType>/<customerType>".
package translations

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/frontend-talks/order-request-contract-tests/servicedef"

	"gopkg.in/yaml.v3"
)

const (
	KeyFirstName          = "firstName"
	KeyLastName           = "lastName"
	KeySecondLastName     = "secondLastName"
	KeyEmail              = "email"
	KeyPhoneNumber        = "phoneNumber"
	KeyPostalCode         = "postalCode"
	KeyTitle              = "title"
	KeyGender             = "gender"
	KeyNationalID         = "nationalId"
	KeyLocation           = "location"
	KeyCommunicationEmail = "communicationEmail"
	KeyCommunicationSMS   = "communicationSms"
	KeyCommunicationPhone = "communicationPhone"
	KeySubmit             = "submit"
	KeySubmitted          = "submitted"
	KeyErrorRequired      = "errorRequired"
	KeyErrorEmail         = "errorEmail"
	KeyErrorPhone         = "errorPhone"
	KeyErrorPostalCode    = "errorPostalCode"
	KeyErrorRetailer      = "errorRetailer"
	KeyErrorSubmit        = "errorSubmit"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Translations maps translation keys to display text.
type Translations map[string]string

// T returns the text for key, or the key itself if there is none.
func (t Translations) T(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

type catalog struct {
	Market    string                       `yaml:"market"`
	Base      map[string]string            `yaml:"base"`
	Overrides map[string]map[string]string `yaml:"overrides"`
}

var cache struct {
	once     sync.Once
	catalogs map[string]catalog
	err      error
}

// InitCache loads every embedded catalog. It is safe to call more than once; only the first call
// does any work. Get calls it implicitly.
func InitCache() error {
	cache.once.Do(func() {
		cache.catalogs, cache.err = loadCatalogs()
	})
	return cache.err
}

func loadCatalogs() (map[string]catalog, error) {
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		return nil, err
	}
	ret := make(map[string]catalog, len(entries))
	for _, entry := range entries {
		data, err := catalogFS.ReadFile(path.Join("catalogs", entry.Name()))
		if err != nil {
			return nil, err
		}
		var c catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("malformed translation catalog %s: %w", entry.Name(), err)
		}
		if c.Market == "" {
			c.Market = strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		}
		ret[c.Market] = c
	}
	return ret, nil
}

// Get returns the translations for a market, with the overrides for the payment type and
// customer type applied over the base table.
func Get(market string, paymentType servicedef.PaymentType, customerType servicedef.CustomerType) (Translations, error) {
	if err := InitCache(); err != nil {
		return nil, err
	}
	c, ok := cache.catalogs[market]
	if !ok {
		return nil, fmt.Errorf("no translations for market %q", market)
	}
	ret := make(Translations, len(c.Base))
	for k, v := range c.Base {
		ret[k] = v
	}
	for k, v := range c.Overrides[string(paymentType)+"/"+string(customerType)] {
		ret[k] = v
	}
	return ret, nil
}

// Markets lists the markets that have a catalog.
func Markets() []string {
	if err := InitCache(); err != nil {
		return nil
	}
	ret := make([]string, 0, len(cache.catalogs))
	for m := range cache.catalogs {
		ret = append(ret, m)
	}
	sort.Strings(ret)
	return ret
}
