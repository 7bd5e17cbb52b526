package consts

import (
	"fmt"
	"strings"
)

const (
	HeaderContentType = "Content-Type"

	ContentTypeForm = "application/x-www-form-urlencoded"
)

// DefaultVersion is the NVP API version sent with every request.
const DefaultVersion = "69.0"

// Environment selects the PayPal host family.
type Environment string

const (
	Live        Environment = "live"
	Sandbox     Environment = "sandbox"
	BetaSandbox Environment = "beta-sandbox"
)

func (e Environment) String() string { return string(e) }

// HostFragment is the part inserted between the host prefix and "paypal.com".
// Only Live selects the production host; the zero value is sandbox.
func (e Environment) HostFragment() string {
	switch e {
	case Live:
		return ""
	case BetaSandbox:
		return "beta-sandbox."
	default:
		return "sandbox."
	}
}

// EndpointURL is the NVP endpoint. API signature credentials use the api-3t host.
func (e Environment) EndpointURL(apiSignature bool) string {
	host := "api."
	if apiSignature {
		host = "api-3t."
	}
	return "https://" + host + e.HostFragment() + "paypal.com/nvp"
}

// RedirectURL is where the buyer is sent to approve an Express Checkout token.
func (e Environment) RedirectURL(token string) string {
	return "https://www." + e.HostFragment() + "paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=" + token
}

// ParseEnvironment accepts "live", "production", "sandbox" and "beta-sandbox".
// An empty value is sandbox.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "production":
		return Live, nil
	case "", "sandbox":
		return Sandbox, nil
	case "beta-sandbox", "betasandbox", "beta_sandbox":
		return BetaSandbox, nil
	default:
		return "", fmt.Errorf("unknown paypal environment %q", s)
	}
}

// NVP operation names, sent as METHOD.
const (
	MethodSetExpressCheckout                   = "SetExpressCheckout"
	MethodGetExpressCheckoutDetails            = "GetExpressCheckoutDetails"
	MethodDoExpressCheckoutPayment             = "DoExpressCheckoutPayment"
	MethodDoDirectPayment                      = "DoDirectPayment"
	MethodCreateRecurringPaymentsProfile       = "CreateRecurringPaymentsProfile"
	MethodGetRecurringPaymentsProfileDetails   = "GetRecurringPaymentsProfileDetails"
	MethodManageRecurringPaymentsProfileStatus = "ManageRecurringPaymentsProfileStatus"
	MethodRefundTransaction                    = "RefundTransaction"
	MethodUpdateRecurringPaymentsProfile       = "UpdateRecurringPaymentsProfile"
)

// Envelope and credential keys.
const (
	KeyMethod        = "METHOD"
	KeyVersion       = "VERSION"
	KeyUser          = "USER"
	KeyPassword      = "PWD"
	KeySignature     = "SIGNATURE"
	KeySubject       = "SUBJECT"
	KeyAck           = "ACK"
	KeyTimestamp     = "TIMESTAMP"
	KeyCorrelationID = "CORRELATIONID"
	KeyBuild         = "BUILD"
)
