package response

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/nvp"
)

// scalars are the operation specific top-level values of a response.
type scalars struct {
	st *nvp.Store
}

func newScalars(schema nvp.Schema, src *nvp.Values) scalars {
	return scalars{st: nvp.NewStore(schema, src)}
}

func (s scalars) get(key string) string {
	v, _ := s.st.Get(key)
	return v
}

var setExpressCheckoutSchema = nvp.NewSchema("TOKEN")

// SetExpressCheckout is the response of SetExpressCheckout.
type SetExpressCheckout struct {
	*Envelope
	scalars
}

func NewSetExpressCheckout(e *Envelope) *SetExpressCheckout {
	return &SetExpressCheckout{Envelope: e, scalars: newScalars(setExpressCheckoutSchema, e.values)}
}

func (r *SetExpressCheckout) Token() string { return r.get("TOKEN") }

// RedirectURL is where the buyer is sent to approve the payment. It is empty
// unless the call succeeded and returned a token.
func (r *SetExpressCheckout) RedirectURL(env consts.Environment) string {
	if !r.IsSuccess() || r.Token() == "" {
		return ""
	}
	return env.RedirectURL(r.Token())
}

var getExpressCheckoutDetailsSchema = nvp.NewSchema(
	"TOKEN", "CUSTOM", "INVNUM", "PHONENUM", "PAYPALADJUSTMENT", "NOTE",
	"REDIRECTREQUIRED", "CHECKOUTSTATUS", "GIFTMESSAGE", "GIFTRECEIPTENABLE",
	"GIFTWRAPNAME", "GIFTWRAPAMOUNT", "BUYERMARKETINGEMAIL", "SURVEYQUESTION",
	"SURVEYCHOICESELECTED",
)

// GetExpressCheckoutDetails is the response of GetExpressCheckoutDetails.
type GetExpressCheckoutDetails struct {
	*Envelope
	scalars

	rest        *nvp.Values
	payments    []*fields.Payment
	payerInfo   *fields.PayerInformation
	payerName   *fields.PayerName
	userOptions *fields.UserOptions
}

func NewGetExpressCheckoutDetails(e *Envelope) *GetExpressCheckoutDetails {
	rest, payments := fields.ParallelPaymentsFromNVP(e.values)
	return &GetExpressCheckoutDetails{
		Envelope:    e,
		scalars:     newScalars(getExpressCheckoutDetailsSchema, rest),
		rest:        rest,
		payments:    payments,
		payerInfo:   fields.PayerInformationFromNVP(rest),
		payerName:   fields.PayerNameFromNVP(rest),
		userOptions: fields.UserOptionsFromNVP(rest),
	}
}

func (r *GetExpressCheckoutDetails) Token() string               { return r.get("TOKEN") }
func (r *GetExpressCheckoutDetails) Custom() string              { return r.get("CUSTOM") }
func (r *GetExpressCheckoutDetails) InvoiceNumber() string       { return r.get("INVNUM") }
func (r *GetExpressCheckoutDetails) PhoneNumber() string         { return r.get("PHONENUM") }
func (r *GetExpressCheckoutDetails) PayPalAdjustment() string    { return r.get("PAYPALADJUSTMENT") }
func (r *GetExpressCheckoutDetails) Note() string                { return r.get("NOTE") }
func (r *GetExpressCheckoutDetails) RedirectRequired() string    { return r.get("REDIRECTREQUIRED") }
func (r *GetExpressCheckoutDetails) CheckoutStatus() string      { return r.get("CHECKOUTSTATUS") }
func (r *GetExpressCheckoutDetails) GiftMessage() string         { return r.get("GIFTMESSAGE") }
func (r *GetExpressCheckoutDetails) GiftReceiptEnable() string   { return r.get("GIFTRECEIPTENABLE") }
func (r *GetExpressCheckoutDetails) GiftWrapName() string        { return r.get("GIFTWRAPNAME") }
func (r *GetExpressCheckoutDetails) GiftWrapAmount() string      { return r.get("GIFTWRAPAMOUNT") }
func (r *GetExpressCheckoutDetails) BuyerMarketingEmail() string { return r.get("BUYERMARKETINGEMAIL") }
func (r *GetExpressCheckoutDetails) SurveyQuestion() string      { return r.get("SURVEYQUESTION") }
func (r *GetExpressCheckoutDetails) SurveyChoiceSelected() string {
	return r.get("SURVEYCHOICESELECTED")
}

// PayerID is the buyer's PayPal id, required by DoExpressCheckoutPayment.
func (r *GetExpressCheckoutDetails) PayerID() string { return r.payerInfo.PayerID() }

func (r *GetExpressCheckoutDetails) PayerInformation() *fields.PayerInformation { return r.payerInfo }
func (r *GetExpressCheckoutDetails) PayerName() *fields.PayerName               { return r.payerName }
func (r *GetExpressCheckoutDetails) UserOptions() *fields.UserOptions           { return r.userOptions }

// Payments are the PAYMENTREQUEST_<n>_ payments the buyer approved, in index
// order.
func (r *GetExpressCheckoutDetails) Payments() []*fields.Payment {
	out := make([]*fields.Payment, len(r.payments))
	copy(out, r.payments)
	return out
}

// Values hides the embedded Envelope's Values: it returns the flat pairs
// outside the PAYMENTREQUEST_<n>_ namespace, which is what a follow-up
// DoExpressCheckoutPayment is seeded from.
func (r *GetExpressCheckoutDetails) Values() *nvp.Values { return r.rest.Clone() }

var doExpressCheckoutPaymentSchema = nvp.NewSchema(
	"TOKEN", "PAYMENTTYPE", "NOTE", "REDIRECTREQUIRED", "SUCCESSPAGEREDIRECTREQUESTED",
)

// DoExpressCheckoutPayment is the response of DoExpressCheckoutPayment.
type DoExpressCheckoutPayment struct {
	*Envelope
	scalars

	infos       map[int]*fields.PaymentInfo
	errs        map[int]*fields.PaymentError
	infoOrder   []int
	userOptions *fields.UserOptions
}

func NewDoExpressCheckoutPayment(e *Envelope) *DoExpressCheckoutPayment {
	rest, infos := nvp.DecodePayments(e.values, nvp.PrefixPaymentInfo)
	rest, errs := nvp.DecodePayments(rest, nvp.PrefixPaymentRequest)

	r := &DoExpressCheckoutPayment{
		Envelope:    e,
		scalars:     newScalars(doExpressCheckoutPaymentSchema, rest),
		infos:       make(map[int]*fields.PaymentInfo, len(infos)),
		errs:        make(map[int]*fields.PaymentError, len(errs)),
		userOptions: fields.UserOptionsFromNVP(rest),
	}
	for _, g := range infos {
		r.infos[g.Index] = fields.PaymentInfoFromNVP(g.Values)
		r.infoOrder = append(r.infoOrder, g.Index)
	}
	for _, g := range errs {
		if pe := fields.PaymentErrorFromNVP(g.Values); !pe.IsEmpty() {
			r.errs[g.Index] = pe
		}
	}
	return r
}

func (r *DoExpressCheckoutPayment) Token() string            { return r.get("TOKEN") }
func (r *DoExpressCheckoutPayment) PaymentType() string      { return r.get("PAYMENTTYPE") }
func (r *DoExpressCheckoutPayment) Note() string             { return r.get("NOTE") }
func (r *DoExpressCheckoutPayment) RedirectRequired() string { return r.get("REDIRECTREQUIRED") }
func (r *DoExpressCheckoutPayment) SuccessPageRedirectRequested() string {
	return r.get("SUCCESSPAGEREDIRECTREQUESTED")
}

func (r *DoExpressCheckoutPayment) UserOptions() *fields.UserOptions { return r.userOptions }

// PaymentInfos returns the PAYMENTINFO_<n>_ results in index order.
func (r *DoExpressCheckoutPayment) PaymentInfos() []*fields.PaymentInfo {
	out := make([]*fields.PaymentInfo, 0, len(r.infoOrder))
	for _, idx := range r.infoOrder {
		out = append(out, r.infos[idx])
	}
	return out
}

// PaymentInfo returns the result of payment n.
func (r *DoExpressCheckoutPayment) PaymentInfo(n int) (*fields.PaymentInfo, bool) {
	p, ok := r.infos[n]
	return p, ok
}

// PaymentError returns the failure of payment n, reported under
// PAYMENTREQUEST_<n>_.
func (r *DoExpressCheckoutPayment) PaymentError(n int) (*fields.PaymentError, bool) {
	p, ok := r.errs[n]
	return p, ok
}

func (r *DoExpressCheckoutPayment) HasPaymentErrors() bool { return len(r.errs) > 0 }
