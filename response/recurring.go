package response

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/nvp"
)

var createRecurringPaymentsProfileSchema = nvp.NewSchema("PROFILEID", "STATUS")

// CreateRecurringPaymentsProfile is the response of
// CreateRecurringPaymentsProfile.
type CreateRecurringPaymentsProfile struct {
	*Envelope
	scalars
}

func NewCreateRecurringPaymentsProfile(e *Envelope) *CreateRecurringPaymentsProfile {
	return &CreateRecurringPaymentsProfile{
		Envelope: e,
		scalars:  newScalars(createRecurringPaymentsProfileSchema, e.values),
	}
}

func (r *CreateRecurringPaymentsProfile) ProfileID() string { return r.get("PROFILEID") }

// Status returns the profile status; ok is false when STATUS is missing or
// not one PayPal documents.
func (r *CreateRecurringPaymentsProfile) Status() (status consts.ProfileStatus, ok bool) {
	switch s := consts.ProfileStatus(r.get("STATUS")); s {
	case consts.ProfileStatusActive, consts.ProfileStatusPending:
		return s, true
	}
	return "", false
}

var getRecurringPaymentsProfileDetailsSchema = nvp.NewSchema(
	"PROFILEID", "STATUS", "DESC", "AUTOBILLOUTAMT", "MAXFAILEDPAYMENTS",
	"AGGREGATEAMOUNT", "AGGREGATEOPTIONALAMOUNT", "FINALPAYMENTDUEDATE",
)

// GetRecurringPaymentsProfileDetails is the response of
// GetRecurringPaymentsProfileDetails.
type GetRecurringPaymentsProfileDetails struct {
	*Envelope
	scalars

	profile *fields.RecurringPaymentsProfile
	shipTo  *fields.ShippingAddress
	period  *fields.BillingPeriod
	summary *fields.RecurringPaymentsSummary
	card    *fields.CreditCard
	payer   *fields.Payer
	address *fields.Address
}

func NewGetRecurringPaymentsProfileDetails(e *Envelope) *GetRecurringPaymentsProfileDetails {
	v := e.values
	return &GetRecurringPaymentsProfileDetails{
		Envelope: e,
		scalars:  newScalars(getRecurringPaymentsProfileDetailsSchema, v),
		profile:  fields.RecurringPaymentsProfileFromNVP(v),
		shipTo:   fields.ShippingAddressFromNVP(v),
		period:   fields.BillingPeriodFromNVP(v),
		summary:  fields.RecurringPaymentsSummaryFromNVP(v),
		card:     fields.CreditCardFromNVP(v),
		payer:    fields.PayerFromNVP(v),
		address:  fields.AddressFromNVP(v),
	}
}

func (r *GetRecurringPaymentsProfileDetails) ProfileID() string   { return r.get("PROFILEID") }
func (r *GetRecurringPaymentsProfileDetails) Status() string      { return r.get("STATUS") }
func (r *GetRecurringPaymentsProfileDetails) Description() string { return r.get("DESC") }
func (r *GetRecurringPaymentsProfileDetails) AutoBillOutstanding() string {
	return r.get("AUTOBILLOUTAMT")
}
func (r *GetRecurringPaymentsProfileDetails) MaxFailedPayments() string {
	return r.get("MAXFAILEDPAYMENTS")
}
func (r *GetRecurringPaymentsProfileDetails) AggregateAmount() string {
	return r.get("AGGREGATEAMOUNT")
}
func (r *GetRecurringPaymentsProfileDetails) AggregateOptionalAmount() string {
	return r.get("AGGREGATEOPTIONALAMOUNT")
}
func (r *GetRecurringPaymentsProfileDetails) FinalPaymentDueDate() string {
	return r.get("FINALPAYMENTDUEDATE")
}

func (r *GetRecurringPaymentsProfileDetails) Profile() *fields.RecurringPaymentsProfile {
	return r.profile
}

func (r *GetRecurringPaymentsProfileDetails) ShippingAddress() *fields.ShippingAddress { return r.shipTo }
func (r *GetRecurringPaymentsProfileDetails) BillingPeriod() *fields.BillingPeriod     { return r.period }

func (r *GetRecurringPaymentsProfileDetails) Summary() *fields.RecurringPaymentsSummary {
	return r.summary
}

func (r *GetRecurringPaymentsProfileDetails) CreditCard() *fields.CreditCard { return r.card }
func (r *GetRecurringPaymentsProfileDetails) Payer() *fields.Payer           { return r.payer }
func (r *GetRecurringPaymentsProfileDetails) Address() *fields.Address       { return r.address }

var profileIDSchema = nvp.NewSchema("PROFILEID")

// ManageRecurringPaymentsProfileStatus is the response of
// ManageRecurringPaymentsProfileStatus.
type ManageRecurringPaymentsProfileStatus struct {
	*Envelope
	scalars
}

func NewManageRecurringPaymentsProfileStatus(e *Envelope) *ManageRecurringPaymentsProfileStatus {
	return &ManageRecurringPaymentsProfileStatus{Envelope: e, scalars: newScalars(profileIDSchema, e.values)}
}

func (r *ManageRecurringPaymentsProfileStatus) ProfileID() string { return r.get("PROFILEID") }

// UpdateRecurringPaymentsProfile is the response of
// UpdateRecurringPaymentsProfile.
type UpdateRecurringPaymentsProfile struct {
	*Envelope
	scalars
}

func NewUpdateRecurringPaymentsProfile(e *Envelope) *UpdateRecurringPaymentsProfile {
	return &UpdateRecurringPaymentsProfile{Envelope: e, scalars: newScalars(profileIDSchema, e.values)}
}

func (r *UpdateRecurringPaymentsProfile) ProfileID() string { return r.get("PROFILEID") }
