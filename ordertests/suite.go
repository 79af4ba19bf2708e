package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/translations"
)

func RunTestSuite(
	env Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	if env.Logger == nil {
		env.Logger = framework.NullLogger()
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &env)
		if err := translations.InitCache(); err != nil {
			t.Errorf("failed to load translations: %s", err)
			t.FailNow()
		}
		if !hasMarket(env.Config.Market) {
			t.Errorf("no translations for market %q; available markets are %v", env.Config.Market, translations.Markets())
			t.FailNow()
		}
		env.Logger.Printf("Rendering the %q order form; translations are available for %v",
			env.Config.Market, translations.Markets())

		t.Run("submission", DoSubmissionTests)
		t.Run("mock network", DoNetworkTests)
		t.Run("validation", DoValidationTests)
		t.Run("reCAPTCHA", DoRecaptchaTests)
		t.Run("analytics", DoAnalyticsTests)
		t.Run("generated customers", DoGeneratedCustomerTests)
	})
}

func hasMarket(market string) bool {
	for _, m := range translations.Markets() {
		if m == market {
			return true
		}
	}
	return false
}
