package consts

import (
	"fmt"
	"sort"
	"strings"
)

// Currency is an ISO 4217 code accepted by PayPal.
type Currency string

type currencyInfo struct {
	name            string
	expressCheckout bool
	inCountry       bool
}

var currencies = map[Currency]currencyInfo{
	"AUD": {name: "Australian Dollar", expressCheckout: true},
	"BRL": {name: "Brazilian Real", inCountry: true},
	"CAD": {name: "Canadian Dollar", expressCheckout: true},
	"CZK": {name: "Czech Koruna", expressCheckout: true},
	"DKK": {name: "Danish Krone", expressCheckout: true},
	"EUR": {name: "Euro", expressCheckout: true},
	"HKD": {name: "Hong Kong Dollar"},
	"HUF": {name: "Hungarian Forint", expressCheckout: true},
	"ILS": {name: "Israeli New Sheqel"},
	"JPY": {name: "Japanese Yen", expressCheckout: true},
	"MYR": {name: "Malaysian Ringgit", inCountry: true},
	"MXN": {name: "Mexican Peso"},
	"NOK": {name: "Norwegian Krone", expressCheckout: true},
	"NZD": {name: "New Zealand Dollar", expressCheckout: true},
	"PHP": {name: "Philippine Peso"},
	"PLN": {name: "Polish Zloty", expressCheckout: true},
	"GBP": {name: "Pound Sterling", expressCheckout: true},
	"SGD": {name: "Singapore Dollar", expressCheckout: true},
	"SEK": {name: "Swedish Krona", expressCheckout: true},
	"CHF": {name: "Swiss Franc", expressCheckout: true},
	"TWD": {name: "Taiwan New Dollar"},
	"THB": {name: "Thai Baht"},
	"TRY": {name: "Turkish Lira"},
	"USD": {name: "U.S. Dollar", expressCheckout: true},
}

const (
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
)

// ParseCurrency returns the currency for code or an error when PayPal does not support it.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencies[c]; !ok {
		return "", fmt.Errorf("currency %q is not supported by paypal", code)
	}
	return c, nil
}

func (c Currency) String() string { return string(c) }

func (c Currency) Code() string { return string(c) }

func (c Currency) Name() string { return currencies[c].name }

func (c Currency) IsValid() bool {
	_, ok := currencies[c]
	return ok
}

// IsExpressCheckout reports whether the currency can be used with Express Checkout.
func (c Currency) IsExpressCheckout() bool { return currencies[c].expressCheckout }

// IsInCountry reports currencies PayPal supports for in-country use only.
func (c Currency) IsInCountry() bool { return currencies[c].inCountry }

// Currencies lists every supported code, sorted.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencies))
	for c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExpressCheckoutCurrencies lists the codes usable with Express Checkout, sorted.
func ExpressCheckoutCurrencies() []Currency {
	var out []Currency
	for _, c := range Currencies() {
		if c.IsExpressCheckout() {
			out = append(out, c)
		}
	}
	return out
}
