package consts

import "strings"

// Ack is the ACK value of every response.
type Ack string

const (
	AckSuccess                   Ack = "Success"
	AckSuccessWithWarning        Ack = "SuccessWithWarning"
	AckFailure                   Ack = "Failure"
	AckFailureWithWarning        Ack = "FailureWithWarning"
	AckPartialSuccess            Ack = "PartialSuccess"
	AckPartialSuccessWithWarning Ack = "PartialSuccessWithWarning"
)

// IsSuccess reports Success and SuccessWithWarning.
func (a Ack) IsSuccess() bool {
	return a == AckSuccess || a == AckSuccessWithWarning
}

func (a Ack) IsFailure() bool {
	return a == AckFailure || a == AckFailureWithWarning
}

// PaymentAction is how the funds are captured.
type PaymentAction string

const (
	PaymentActionSale          PaymentAction = "Sale"
	PaymentActionAuthorization PaymentAction = "Authorization"
	PaymentActionOrder         PaymentAction = "Order"
)

func (p PaymentAction) String() string { return string(p) }

// SolutionType selects whether a PayPal account is optional on checkout.
type SolutionType string

const (
	SolutionTypeSole SolutionType = "Sole"
	SolutionTypeMark SolutionType = "Mark"
)

func (s SolutionType) String() string { return string(s) }

// LandingPage is the page shown first on the PayPal site.
type LandingPage string

const (
	LandingPageBilling LandingPage = "Billing"
	LandingPageLogin   LandingPage = "Login"
)

func (l LandingPage) String() string { return string(l) }

type ChannelType string

const (
	ChannelTypeMerchant ChannelType = "Merchant"
	ChannelTypeEbayItem ChannelType = "eBayItem"
)

func (c ChannelType) String() string { return string(c) }

// ShippingDisplay is the NOSHIPPING value.
type ShippingDisplay string

const (
	// ShippingDisplayAddress shows the shipping address on the PayPal pages.
	ShippingDisplayAddress ShippingDisplay = "0"
	// ShippingDisplayNone hides the shipping address.
	ShippingDisplayNone ShippingDisplay = "1"
	// ShippingDisplayFromAccount takes the address from the buyer's account when none is passed.
	ShippingDisplayFromAccount ShippingDisplay = "2"
)

func (s ShippingDisplay) String() string { return string(s) }

// AutoBill controls what happens with an outstanding recurring balance.
type AutoBill string

const (
	AutoBillNone             AutoBill = "NoAutoBill"
	AutoBillAddToNextBilling AutoBill = "AddToNextBilling"
)

func (a AutoBill) String() string { return string(a) }

// ProfileAction is the ACTION of ManageRecurringPaymentsProfileStatus.
type ProfileAction string

const (
	ProfileActionCancel     ProfileAction = "Cancel"
	ProfileActionSuspend    ProfileAction = "Suspend"
	ProfileActionReactivate ProfileAction = "Reactivate"
)

func (p ProfileAction) String() string { return string(p) }

// ParseProfileAction matches case-insensitively.
func ParseProfileAction(s string) (ProfileAction, bool) {
	for _, a := range []ProfileAction{ProfileActionCancel, ProfileActionSuspend, ProfileActionReactivate} {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, true
		}
	}
	return "", false
}

// ProfileStatus is the STATUS returned by CreateRecurringPaymentsProfile.
type ProfileStatus string

const (
	ProfileStatusActive  ProfileStatus = "ActiveProfile"
	ProfileStatusPending ProfileStatus = "PendingProfile"
)

func (p ProfileStatus) String() string { return string(p) }

type CreditCardType string

const (
	CreditCardVisa       CreditCardType = "Visa"
	CreditCardMasterCard CreditCardType = "MasterCard"
	CreditCardDiscover   CreditCardType = "Discover"
	CreditCardAmex       CreditCardType = "Amex"
	CreditCardMaestro    CreditCardType = "Maestro"
	CreditCardSolo       CreditCardType = "Solo"
)

func (c CreditCardType) String() string { return string(c) }

// Period is a recurring billing unit.
type Period string

const (
	PeriodDay       Period = "Day"
	PeriodWeek      Period = "Week"
	PeriodSemiMonth Period = "SemiMonth"
	PeriodMonth     Period = "Month"
	PeriodYear      Period = "Year"
)

func (p Period) String() string { return string(p) }

func ParsePeriod(s string) (Period, bool) {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodSemiMonth, PeriodMonth, PeriodYear} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

type ItemCategory string

const (
	ItemCategoryDigital  ItemCategory = "Digital"
	ItemCategoryPhysical ItemCategory = "Physical"
)

func (c ItemCategory) String() string { return string(c) }

func ParseItemCategory(s string) (ItemCategory, bool) {
	switch strings.ToLower(s) {
	case "digital":
		return ItemCategoryDigital, true
	case "physical":
		return ItemCategoryPhysical, true
	}
	return "", false
}

type RefundType string

const (
	RefundTypeFull            RefundType = "Full"
	RefundTypePartial         RefundType = "Partial"
	RefundTypeExternalDispute RefundType = "ExternalDispute"
	RefundTypeOther           RefundType = "Other"
)

func (r RefundType) String() string { return string(r) }

// BillingPaymentType is the PAYMENTTYPE of a billing agreement.
type BillingPaymentType string

const (
	BillingPaymentAny         BillingPaymentType = "Any"
	BillingPaymentInstantOnly BillingPaymentType = "InstantOnly"
)

func (b BillingPaymentType) String() string { return string(b) }

// FailedInitAmountAction decides what happens to a profile whose initial payment fails.
type FailedInitAmountAction string

const (
	FailedInitContinueOnFailure FailedInitAmountAction = "ContinueOnFailure"
	FailedInitCancelOnFailure   FailedInitAmountAction = "CancelOnFailure"
)

func (f FailedInitAmountAction) String() string { return string(f) }
