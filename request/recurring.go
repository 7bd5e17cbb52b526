package request

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/nvp"
)

// mergeGroup appends the pairs of g unless it is nil.
func mergeGroup[G interface {
	*T
	fields.Group
}, T any](dst *nvp.Values, g G) {
	if g != nil {
		dst.Merge(g.NVP())
	}
}

var createRecurringPaymentsProfileSchema = nvp.NewSchema("TOKEN")

// CreateRecurringPaymentsProfile creates a recurring payments profile either
// from an Express Checkout token or from a credit card.
type CreateRecurringPaymentsProfile struct {
	st *nvp.Store

	profile  *fields.RecurringPaymentsProfile
	schedule *fields.Schedule
	period   *fields.BillingPeriod

	activation *fields.Activation
	shipTo     *fields.ShippingAddress
	card       *fields.CreditCard
	payerInfo  *fields.PayerInformation
	payerName  *fields.PayerName
	address    *fields.Address
}

func NewCreateRecurringPaymentsProfile(profile *fields.RecurringPaymentsProfile, schedule *fields.Schedule,
	period *fields.BillingPeriod,
) *CreateRecurringPaymentsProfile {
	return &CreateRecurringPaymentsProfile{
		st:       nvp.NewStore(createRecurringPaymentsProfileSchema, nil),
		profile:  profile,
		schedule: schedule,
		period:   period,
	}
}

func (r *CreateRecurringPaymentsProfile) Method() string {
	return consts.MethodCreateRecurringPaymentsProfile
}

// SetToken uses the billing agreement approved in SetExpressCheckout. When a
// token is set PayPal ignores the credit card.
func (r *CreateRecurringPaymentsProfile) SetToken(token string) { r.st.Set("TOKEN", token) }

func (r *CreateRecurringPaymentsProfile) Token() string {
	v, _ := r.st.Get("TOKEN")
	return v
}

func (r *CreateRecurringPaymentsProfile) Profile() *fields.RecurringPaymentsProfile { return r.profile }
func (r *CreateRecurringPaymentsProfile) Schedule() *fields.Schedule                { return r.schedule }
func (r *CreateRecurringPaymentsProfile) BillingPeriod() *fields.BillingPeriod      { return r.period }
func (r *CreateRecurringPaymentsProfile) CreditCard() *fields.CreditCard            { return r.card }

func (r *CreateRecurringPaymentsProfile) SetActivation(a *fields.Activation)             { r.activation = a }
func (r *CreateRecurringPaymentsProfile) SetShippingAddress(a *fields.ShippingAddress)   { r.shipTo = a }
func (r *CreateRecurringPaymentsProfile) SetCreditCard(c *fields.CreditCard)             { r.card = c }
func (r *CreateRecurringPaymentsProfile) SetPayerInformation(p *fields.PayerInformation) { r.payerInfo = p }
func (r *CreateRecurringPaymentsProfile) SetPayerName(p *fields.PayerName)               { r.payerName = p }
func (r *CreateRecurringPaymentsProfile) SetAddress(a *fields.Address)                   { r.address = a }

func (r *CreateRecurringPaymentsProfile) NVPRequest() *nvp.Values {
	out := begin(r.Method(), r.st)
	mergeGroup(out, r.schedule)
	mergeGroup(out, r.period)
	mergeGroup(out, r.profile)
	mergeGroup(out, r.activation)
	mergeGroup(out, r.shipTo)
	mergeGroup(out, r.card)
	mergeGroup(out, r.payerInfo)
	mergeGroup(out, r.payerName)
	mergeGroup(out, r.address)
	return out
}

var profileIDSchema = nvp.NewSchema("PROFILEID")

// GetRecurringPaymentsProfileDetails reads a recurring payments profile.
type GetRecurringPaymentsProfileDetails struct {
	st *nvp.Store
}

func NewGetRecurringPaymentsProfileDetails(profileID string) *GetRecurringPaymentsProfileDetails {
	r := &GetRecurringPaymentsProfileDetails{st: nvp.NewStore(profileIDSchema, nil)}
	r.st.Set("PROFILEID", profileID)
	return r
}

func (r *GetRecurringPaymentsProfileDetails) Method() string {
	return consts.MethodGetRecurringPaymentsProfileDetails
}

func (r *GetRecurringPaymentsProfileDetails) ProfileID() string {
	v, _ := r.st.Get("PROFILEID")
	return v
}

func (r *GetRecurringPaymentsProfileDetails) NVPRequest() *nvp.Values {
	return begin(r.Method(), r.st)
}

var manageProfileStatusSchema = nvp.NewSchema("PROFILEID", "ACTION", "NOTE")

// ManageRecurringPaymentsProfileStatus cancels, suspends or reactivates a
// profile.
type ManageRecurringPaymentsProfileStatus struct {
	st *nvp.Store
}

func NewManageRecurringPaymentsProfileStatus(profileID string, action consts.ProfileAction) *ManageRecurringPaymentsProfileStatus {
	r := &ManageRecurringPaymentsProfileStatus{st: nvp.NewStore(manageProfileStatusSchema, nil)}
	r.st.Set("PROFILEID", profileID)
	r.st.Set("ACTION", action.String())
	return r
}

func (r *ManageRecurringPaymentsProfileStatus) Method() string {
	return consts.MethodManageRecurringPaymentsProfileStatus
}

func (r *ManageRecurringPaymentsProfileStatus) value(key string) string {
	v, _ := r.st.Get(key)
	return v
}

func (r *ManageRecurringPaymentsProfileStatus) ProfileID() string { return r.value("PROFILEID") }
func (r *ManageRecurringPaymentsProfileStatus) Action() string    { return r.value("ACTION") }

// SetNote is included in the notification email sent to the buyer.
func (r *ManageRecurringPaymentsProfileStatus) SetNote(note string) { r.st.Set("NOTE", note) }

func (r *ManageRecurringPaymentsProfileStatus) NVPRequest() *nvp.Values {
	return begin(r.Method(), r.st)
}

var updateProfileSchema = nvp.NewSchema(
	"PROFILEID", "NOTE", "DESC", "SUBSCRIBERNAME", "PROFILEREFERENCE",
	"ADDITIONALBILLINGCYCLES", "AMT", "SHIPPINGAMT", "TAXAMT", "OUTSTANDINGAMT",
	"AUTOBILLOUTAMT", "MAXFAILEDPAYMENTS", "PROFILESTARTDATE",
)

// UpdateRecurringPaymentsProfile changes an existing profile. Only the values
// that are set are sent.
type UpdateRecurringPaymentsProfile struct {
	st *nvp.Store

	shipTo    *fields.ShippingAddress
	period    *fields.BillingPeriod
	card      *fields.CreditCard
	payerInfo *fields.PayerInformation
	address   *fields.Address
}

func NewUpdateRecurringPaymentsProfile(profileID string) *UpdateRecurringPaymentsProfile {
	r := &UpdateRecurringPaymentsProfile{st: nvp.NewStore(updateProfileSchema, nil)}
	r.st.Set("PROFILEID", profileID)
	return r
}

func (r *UpdateRecurringPaymentsProfile) Method() string {
	return consts.MethodUpdateRecurringPaymentsProfile
}

func (r *UpdateRecurringPaymentsProfile) ProfileID() string {
	v, _ := r.st.Get("PROFILEID")
	return v
}

func (r *UpdateRecurringPaymentsProfile) SetNote(note string)                   { r.st.Set("NOTE", note) }
func (r *UpdateRecurringPaymentsProfile) SetDescription(desc string)            { r.st.Set("DESC", desc) }
func (r *UpdateRecurringPaymentsProfile) SetSubscriberName(name string)         { r.st.Set("SUBSCRIBERNAME", name) }
func (r *UpdateRecurringPaymentsProfile) SetProfileReference(ref string)        { r.st.Set("PROFILEREFERENCE", ref) }
func (r *UpdateRecurringPaymentsProfile) SetAdditionalBillingCycles(cycles int) { r.st.Set("ADDITIONALBILLINGCYCLES", itoa(cycles)) }
func (r *UpdateRecurringPaymentsProfile) SetAmount(amount string)               { r.st.Set("AMT", amount) }
func (r *UpdateRecurringPaymentsProfile) SetShippingAmount(amount string)       { r.st.Set("SHIPPINGAMT", amount) }
func (r *UpdateRecurringPaymentsProfile) SetTaxAmount(amount string)            { r.st.Set("TAXAMT", amount) }

// SetOutstandingAmount is the amount to either charge or credit to the
// outstanding balance.
func (r *UpdateRecurringPaymentsProfile) SetOutstandingAmount(amount string) {
	r.st.Set("OUTSTANDINGAMT", amount)
}

func (r *UpdateRecurringPaymentsProfile) SetAutoBillOutstanding(a consts.AutoBill) {
	r.st.Set("AUTOBILLOUTAMT", a.String())
}

func (r *UpdateRecurringPaymentsProfile) SetMaxFailedPayments(n int)      { r.st.Set("MAXFAILEDPAYMENTS", itoa(n)) }
func (r *UpdateRecurringPaymentsProfile) SetProfileStartDate(date string) { r.st.Set("PROFILESTARTDATE", date) }

func (r *UpdateRecurringPaymentsProfile) SetShippingAddress(a *fields.ShippingAddress)   { r.shipTo = a }
func (r *UpdateRecurringPaymentsProfile) SetBillingPeriod(p *fields.BillingPeriod)       { r.period = p }
func (r *UpdateRecurringPaymentsProfile) SetCreditCard(c *fields.CreditCard)             { r.card = c }
func (r *UpdateRecurringPaymentsProfile) SetPayerInformation(p *fields.PayerInformation) { r.payerInfo = p }
func (r *UpdateRecurringPaymentsProfile) SetAddress(a *fields.Address)                   { r.address = a }

func (r *UpdateRecurringPaymentsProfile) NVPRequest() *nvp.Values {
	out := begin(r.Method(), r.st)
	mergeGroup(out, r.shipTo)
	mergeGroup(out, r.period)
	mergeGroup(out, r.card)
	mergeGroup(out, r.payerInfo)
	mergeGroup(out, r.address)
	return out
}
