package request

import (
	"net/url"
	"strings"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/nvp"
)

var setExpressCheckoutSchema = nvp.NewSchema(
	"RETURNURL", "CANCELURL", "TOKEN", "MAXAMT", "CALLBACK", "CALLBACKTIMEOUT",
	"CALLBACKVERSION", "REQCONFIRMSHIPPING", "NOSHIPPING", "ALLOWNOTE",
	"ADDROVERRIDE", "LOCALECODE", "PAGESTYLE", "HDRIMG", "HDRBORDERCOLOR",
	"HDRBACKCOLOR", "PAYFLOWCOLOR", "EMAIL", "SOLUTIONTYPE", "LANDINGPAGE",
	"CHANNELTYPE", "GIROPAYSUCCESSURL", "GIROPAYCANCELURL", "BANKTXNPENDINGURL",
	"BRANDNAME", "CUSTOMERSERVICENUMBER", "GIFTMESSAGEENABLE",
	"GIFTRECEIPTENABLE", "GIFTWRAPENABLE", "GIFTWRAPNAME", "GIFTWRAPAMOUNT",
	"BUYEREMAILOPTINENABLE", "SURVEYQUESTION", "SURVEYENABLE",
)

// SetExpressCheckout starts an Express Checkout and obtains a token.
type SetExpressCheckout struct {
	st *nvp.Store

	payments          []*fields.Payment
	billingAgreements []*fields.BillingAgreement
	shippingOptions   []*fields.ShippingOption
	surveyChoices     []string
	buyer             *fields.Buyer
	funding           *fields.FundingSource
}

// NewSetExpressCheckout starts a checkout of a single payment.
func NewSetExpressCheckout(payment *fields.Payment, returnURL, cancelURL string) *SetExpressCheckout {
	return NewParallelSetExpressCheckout([]*fields.Payment{payment}, returnURL, cancelURL)
}

// NewParallelSetExpressCheckout starts a checkout of up to
// nvp.MaxParallelPayments payments, each encoded as PAYMENTREQUEST_<n>_.
func NewParallelSetExpressCheckout(payments []*fields.Payment, returnURL, cancelURL string) *SetExpressCheckout {
	r := &SetExpressCheckout{st: nvp.NewStore(setExpressCheckoutSchema, nil)}
	r.payments = append(r.payments, payments...)
	r.st.Set("RETURNURL", returnURL)
	r.st.Set("CANCELURL", cancelURL)
	return r
}

func (r *SetExpressCheckout) Method() string { return consts.MethodSetExpressCheckout }

func (r *SetExpressCheckout) Payments() []*fields.Payment { return r.payments }
func (r *SetExpressCheckout) ReturnURL() string           { return r.value("RETURNURL") }
func (r *SetExpressCheckout) CancelURL() string           { return r.value("CANCELURL") }

func (r *SetExpressCheckout) value(key string) string {
	v, _ := r.st.Get(key)
	return v
}

// SetToken continues an earlier checkout.
func (r *SetExpressCheckout) SetToken(token string)       { r.st.Set("TOKEN", token) }
func (r *SetExpressCheckout) SetMaxAmount(amount string)  { r.st.Set("MAXAMT", amount) }
func (r *SetExpressCheckout) SetCallback(u string)        { r.st.Set("CALLBACK", u) }
func (r *SetExpressCheckout) SetCallbackTimeout(sec int)  { r.st.Set("CALLBACKTIMEOUT", itoa(sec)) }
func (r *SetExpressCheckout) SetCallbackVersion(v string) { r.st.Set("CALLBACKVERSION", v) }

func (r *SetExpressCheckout) SetRequireConfirmedShipping(b bool) { r.st.Set("REQCONFIRMSHIPPING", flag(b)) }
func (r *SetExpressCheckout) SetNoShipping(s consts.ShippingDisplay) {
	r.st.Set("NOSHIPPING", s.String())
}

func (r *SetExpressCheckout) SetAllowNote(b bool)       { r.st.Set("ALLOWNOTE", flag(b)) }
func (r *SetExpressCheckout) SetAddressOverride(b bool) { r.st.Set("ADDROVERRIDE", flag(b)) }
func (r *SetExpressCheckout) SetLocaleCode(code string) { r.st.Set("LOCALECODE", code) }
func (r *SetExpressCheckout) SetPageStyle(style string) { r.st.Set("PAGESTYLE", style) }
func (r *SetExpressCheckout) SetHeaderImage(u string)   { r.st.Set("HDRIMG", u) }

// Colors are six-character HTML hex codes.
func (r *SetExpressCheckout) SetHeaderBorderColor(c string) { r.st.Set("HDRBORDERCOLOR", c) }
func (r *SetExpressCheckout) SetHeaderBackColor(c string)   { r.st.Set("HDRBACKCOLOR", c) }
func (r *SetExpressCheckout) SetPayflowColor(c string)      { r.st.Set("PAYFLOWCOLOR", c) }

func (r *SetExpressCheckout) SetEmail(email string) { r.st.Set("EMAIL", email) }
func (r *SetExpressCheckout) SetSolutionType(t consts.SolutionType) {
	r.st.Set("SOLUTIONTYPE", t.String())
}
func (r *SetExpressCheckout) SetLandingPage(p consts.LandingPage) { r.st.Set("LANDINGPAGE", p.String()) }
func (r *SetExpressCheckout) SetChannelType(c consts.ChannelType) { r.st.Set("CHANNELTYPE", c.String()) }

func (r *SetExpressCheckout) SetGiropaySuccessURL(u string)     { r.st.Set("GIROPAYSUCCESSURL", u) }
func (r *SetExpressCheckout) SetGiropayCancelURL(u string)      { r.st.Set("GIROPAYCANCELURL", u) }
func (r *SetExpressCheckout) SetBankTxnPendingURL(u string)     { r.st.Set("BANKTXNPENDINGURL", u) }
func (r *SetExpressCheckout) SetBrandName(name string)          { r.st.Set("BRANDNAME", name) }
func (r *SetExpressCheckout) SetCustomerServiceNumber(n string) { r.st.Set("CUSTOMERSERVICENUMBER", n) }
func (r *SetExpressCheckout) SetGiftMessageEnable(b bool)       { r.st.Set("GIFTMESSAGEENABLE", flag(b)) }
func (r *SetExpressCheckout) SetGiftReceiptEnable(b bool)       { r.st.Set("GIFTRECEIPTENABLE", flag(b)) }
func (r *SetExpressCheckout) SetBuyerEmailOptIn(b bool)         { r.st.Set("BUYEREMAILOPTINENABLE", flag(b)) }

// SetGiftWrap enables gift wrapping with the given label and price.
func (r *SetExpressCheckout) SetGiftWrap(name, amount string) {
	r.st.Set("GIFTWRAPENABLE", flag(true))
	r.st.Set("GIFTWRAPNAME", name)
	r.st.Set("GIFTWRAPAMOUNT", amount)
}

// SetSurvey enables the survey question shown on the review page. Choices are
// sent as L_SURVEYCHOICE<n>.
func (r *SetExpressCheckout) SetSurvey(question string, choices ...string) {
	r.st.Set("SURVEYENABLE", flag(true))
	r.st.Set("SURVEYQUESTION", question)
	r.surveyChoices = append([]string(nil), choices...)
}

func (r *SetExpressCheckout) AddBillingAgreement(b *fields.BillingAgreement) {
	if b != nil {
		r.billingAgreements = append(r.billingAgreements, b)
	}
}

func (r *SetExpressCheckout) AddShippingOption(s *fields.ShippingOption) {
	if s != nil {
		r.shippingOptions = append(r.shippingOptions, s)
	}
}

func (r *SetExpressCheckout) SetBuyer(b *fields.Buyer)                 { r.buyer = b }
func (r *SetExpressCheckout) SetFundingSource(f *fields.FundingSource) { r.funding = f }

func (r *SetExpressCheckout) NVPRequest() *nvp.Values {
	out := begin(r.Method(), r.st)
	fields.EncodeParallelPayments(out, r.payments)

	for i, choice := range r.surveyChoices {
		out.Set(nvp.ItemKey("SURVEYCHOICE", i), choice)
	}
	agreements := make([]*nvp.Values, 0, len(r.billingAgreements))
	for _, b := range r.billingAgreements {
		agreements = append(agreements, b.NVP())
	}
	nvp.EncodeItems(out, agreements)
	options := make([]*nvp.Values, 0, len(r.shippingOptions))
	for _, s := range r.shippingOptions {
		options = append(options, s.NVP())
	}
	nvp.EncodeItems(out, options)

	if r.buyer != nil {
		out.Merge(r.buyer.NVP())
	}
	if r.funding != nil {
		out.Merge(r.funding.NVP())
	}
	return out
}

var getExpressCheckoutDetailsSchema = nvp.NewSchema("TOKEN")

// GetExpressCheckoutDetails reads what the buyer approved for a token.
type GetExpressCheckoutDetails struct {
	st *nvp.Store
}

func NewGetExpressCheckoutDetails(token string) *GetExpressCheckoutDetails {
	r := &GetExpressCheckoutDetails{st: nvp.NewStore(getExpressCheckoutDetailsSchema, nil)}
	r.st.Set("TOKEN", token)
	return r
}

// ReturnParams are the values PayPal appends to RETURNURL.
type ReturnParams struct {
	Token   string
	PayerID string
}

// ParseReturnQuery reads token and PayerID from the query string PayPal
// appends to RETURNURL. A full URL is accepted too.
func ParseReturnQuery(raw string) (ReturnParams, error) {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return ReturnParams{}, err
	}
	p := ReturnParams{}
	for key, vals := range q {
		if len(vals) == 0 {
			continue
		}
		switch strings.ToUpper(key) {
		case "TOKEN":
			p.Token = vals[0]
		case "PAYERID":
			p.PayerID = vals[0]
		}
	}
	return p, nil
}

// NewGetExpressCheckoutDetailsFromReturn builds the request from the query
// string of the buyer's return to RETURNURL.
func NewGetExpressCheckoutDetailsFromReturn(rawQuery string) (*GetExpressCheckoutDetails, error) {
	p, err := ParseReturnQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return NewGetExpressCheckoutDetails(p.Token), nil
}

func (r *GetExpressCheckoutDetails) Method() string { return consts.MethodGetExpressCheckoutDetails }

func (r *GetExpressCheckoutDetails) Token() string {
	v, _ := r.st.Get("TOKEN")
	return v
}

func (r *GetExpressCheckoutDetails) NVPRequest() *nvp.Values {
	return begin(r.Method(), r.st)
}

var doExpressCheckoutPaymentSchema = nvp.NewSchema(
	"TOKEN", "PAYERID", "RETURNFMFDETAILS", "GIFTMESSAGE", "GIFTRECEIPTENABLE",
	"GIFTWRAPNAME", "GIFTWRAPAMOUNT", "BUYERMARKETINGEMAIL", "SURVEYQUESTION",
	"SURVEYCHOICESELECTED", "BUTTONSOURCE",
)

// DoExpressCheckoutPayment completes an approved Express Checkout.
type DoExpressCheckoutPayment struct {
	st *nvp.Store

	payments    []*fields.Payment
	userOptions *fields.UserOptions
}

func NewDoExpressCheckoutPayment(token, payerID string, payments ...*fields.Payment) *DoExpressCheckoutPayment {
	r := &DoExpressCheckoutPayment{st: nvp.NewStore(doExpressCheckoutPaymentSchema, nil)}
	r.st.Set("TOKEN", token)
	r.st.Set("PAYERID", payerID)
	r.payments = append(r.payments, payments...)
	return r
}

// CheckoutDetails is what a GetExpressCheckoutDetails response offers to
// complete the payment from.
type CheckoutDetails interface {
	Values() *nvp.Values
	Payments() []*fields.Payment
	UserOptions() *fields.UserOptions
}

// NewDoExpressCheckoutPaymentFromDetails copies token, payer, gift and survey
// values, the payments and the buyer's options from a details response.
func NewDoExpressCheckoutPaymentFromDetails(details CheckoutDetails) *DoExpressCheckoutPayment {
	r := &DoExpressCheckoutPayment{st: nvp.NewStore(doExpressCheckoutPaymentSchema, details.Values())}
	r.payments = details.Payments()
	r.userOptions = details.UserOptions()
	return r
}

func (r *DoExpressCheckoutPayment) Method() string { return consts.MethodDoExpressCheckoutPayment }

func (r *DoExpressCheckoutPayment) value(key string) string {
	v, _ := r.st.Get(key)
	return v
}

func (r *DoExpressCheckoutPayment) Token() string               { return r.value("TOKEN") }
func (r *DoExpressCheckoutPayment) PayerID() string             { return r.value("PAYERID") }
func (r *DoExpressCheckoutPayment) Payments() []*fields.Payment { return r.payments }

func (r *DoExpressCheckoutPayment) SetPayments(payments ...*fields.Payment) {
	r.payments = append([]*fields.Payment(nil), payments...)
}

func (r *DoExpressCheckoutPayment) SetReturnFMFDetails(b bool)       { r.st.Set("RETURNFMFDETAILS", flag(b)) }
func (r *DoExpressCheckoutPayment) SetGiftMessage(msg string)        { r.st.Set("GIFTMESSAGE", msg) }
func (r *DoExpressCheckoutPayment) SetGiftReceiptEnable(b bool)      { r.st.Set("GIFTRECEIPTENABLE", flag(b)) }
func (r *DoExpressCheckoutPayment) SetGiftWrapName(name string)      { r.st.Set("GIFTWRAPNAME", name) }
func (r *DoExpressCheckoutPayment) SetGiftWrapAmount(amount string)  { r.st.Set("GIFTWRAPAMOUNT", amount) }
func (r *DoExpressCheckoutPayment) SetBuyerMarketingEmail(e string)  { r.st.Set("BUYERMARKETINGEMAIL", e) }
func (r *DoExpressCheckoutPayment) SetSurveyQuestion(q string)       { r.st.Set("SURVEYQUESTION", q) }
func (r *DoExpressCheckoutPayment) SetSurveyChoiceSelected(c string) { r.st.Set("SURVEYCHOICESELECTED", c) }
func (r *DoExpressCheckoutPayment) SetButtonSource(src string)       { r.st.Set("BUTTONSOURCE", src) }

func (r *DoExpressCheckoutPayment) SetUserOptions(u *fields.UserOptions) { r.userOptions = u }

func (r *DoExpressCheckoutPayment) NVPRequest() *nvp.Values {
	out := begin(r.Method(), r.st)
	fields.EncodeParallelPayments(out, r.payments)
	if r.userOptions != nil {
		out.Merge(r.userOptions.NVP())
	}
	return out
}
