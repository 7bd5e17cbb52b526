// Package request assembles the NVP requests of every supported operation.
//
// Constructors take the values PayPal requires; everything else is set with
// setters. NVPRequest flattens the request, METHOD first, into the pairs the
// client sends after the credentials. Nil optional groups are skipped.
package request

import (
	"strconv"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

// Request is implemented by every request in this package.
type Request interface {
	Method() string
	NVPRequest() *nvp.Values
}

var (
	_ Request = (*SetExpressCheckout)(nil)
	_ Request = (*GetExpressCheckoutDetails)(nil)
	_ Request = (*DoExpressCheckoutPayment)(nil)
	_ Request = (*DoDirectPayment)(nil)
	_ Request = (*CreateRecurringPaymentsProfile)(nil)
	_ Request = (*GetRecurringPaymentsProfileDetails)(nil)
	_ Request = (*ManageRecurringPaymentsProfileStatus)(nil)
	_ Request = (*RefundTransaction)(nil)
	_ Request = (*UpdateRecurringPaymentsProfile)(nil)
)

// begin starts the pairs of a request: METHOD followed by the request's own
// scalar fields.
func begin(method string, st *nvp.Store) *nvp.Values {
	out := nvp.NewValues()
	out.Set(consts.KeyMethod, method)
	out.Merge(st.Values())
	return out
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func itoa(n int) string { return strconv.Itoa(n) }
