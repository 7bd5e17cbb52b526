package fields

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

var billingAgreementSchema = nvp.NewSchema(
	"BILLINGAGREEMENTDESCRIPTION", "BILLINGTYPE", "PAYMENTTYPE", "BILLINGAGREEMENTCUSTOM",
)

const billingTypeRecurring = "RecurringPayments"

// BillingAgreement is a billing agreement requested on SetExpressCheckout.
// It is encoded as L_<FIELD><n>.
type BillingAgreement struct{ group }

func NewBillingAgreement(description string) *BillingAgreement {
	b := &BillingAgreement{newGroup(billingAgreementSchema, nil)}
	b.set("BILLINGAGREEMENTDESCRIPTION", description)
	return b
}

// NewRecurringBillingAgreement is a billing agreement for a recurring
// payments profile created later from the same token.
func NewRecurringBillingAgreement(description string) *BillingAgreement {
	b := NewBillingAgreement(description)
	b.set("BILLINGTYPE", billingTypeRecurring)
	return b
}

func BillingAgreementFromNVP(v *nvp.Values) *BillingAgreement {
	return &BillingAgreement{newGroup(billingAgreementSchema, v)}
}

func (b *BillingAgreement) Description() string { return b.get("BILLINGAGREEMENTDESCRIPTION") }
func (b *BillingAgreement) BillingType() string { return b.get("BILLINGTYPE") }

func (b *BillingAgreement) SetPaymentType(t consts.BillingPaymentType) {
	b.set("PAYMENTTYPE", t.String())
}

func (b *BillingAgreement) PaymentType() string     { return b.get("PAYMENTTYPE") }
func (b *BillingAgreement) SetCustom(custom string) { b.set("BILLINGAGREEMENTCUSTOM", custom) }
func (b *BillingAgreement) Custom() string          { return b.get("BILLINGAGREEMENTCUSTOM") }

var fundingSourceSchema = nvp.NewSchema("ALLOWPUSHFUNDING")

// FundingSource controls which funding sources the buyer may use.
type FundingSource struct{ group }

func NewFundingSource() *FundingSource {
	return &FundingSource{newGroup(fundingSourceSchema, nil)}
}

// SetAllowPushFunding writes ALLOWPUSHFUNDING as 1 or 0.
func (f *FundingSource) SetAllowPushFunding(allow bool) {
	v := "0"
	if allow {
		v = "1"
	}
	f.set("ALLOWPUSHFUNDING", v)
}

func (f *FundingSource) AllowPushFunding() string { return f.get("ALLOWPUSHFUNDING") }

var shippingOptionSchema = nvp.NewSchema(
	"SHIPPINGOPTIONISDEFAULT", "SHIPPINGOPTIONNAME", "SHIPPINGOPTIONAMOUNT",
)

// ShippingOption is one flat-rate shipping option offered on the PayPal
// review page. It is encoded as L_<FIELD><n>.
type ShippingOption struct{ group }

func NewShippingOption(name, amount string, isDefault bool) *ShippingOption {
	s := &ShippingOption{newGroup(shippingOptionSchema, nil)}
	s.set("SHIPPINGOPTIONISDEFAULT", boolString(isDefault))
	s.set("SHIPPINGOPTIONNAME", name)
	s.set("SHIPPINGOPTIONAMOUNT", amount)
	return s
}

func (s *ShippingOption) Name() string    { return s.get("SHIPPINGOPTIONNAME") }
func (s *ShippingOption) Amount() string  { return s.get("SHIPPINGOPTIONAMOUNT") }
func (s *ShippingOption) IsDefault() bool { return s.get("SHIPPINGOPTIONISDEFAULT") == "true" }

var userOptionsSchema = nvp.NewSchema(
	"SHIPPINGCALCULATIONMODE", "INSURANCEOPTIONSELECTED",
	"SHIPPINGOPTIONISDEFAULT", "SHIPPINGOPTIONAMOUNT", "SHIPPINGOPTIONNAME",
)

// UserOptions are the shipping and insurance choices the buyer made on PayPal.
type UserOptions struct{ group }

func UserOptionsFromNVP(v *nvp.Values) *UserOptions {
	return &UserOptions{newGroup(userOptionsSchema, v)}
}

func (u *UserOptions) ShippingCalculationMode() string { return u.get("SHIPPINGCALCULATIONMODE") }
func (u *UserOptions) InsuranceOptionSelected() string { return u.get("INSURANCEOPTIONSELECTED") }
func (u *UserOptions) ShippingOptionIsDefault() string { return u.get("SHIPPINGOPTIONISDEFAULT") }
func (u *UserOptions) ShippingOptionAmount() string    { return u.get("SHIPPINGOPTIONAMOUNT") }
func (u *UserOptions) ShippingOptionName() string      { return u.get("SHIPPINGOPTIONNAME") }
