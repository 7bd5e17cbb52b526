package fields

import (
	"strconv"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

var billingPeriodSchema = nvp.NewSchema(
	"BILLINGPERIOD", "BILLINGFREQUENCY", "TOTALBILLINGCYCLES", "AMT",
	"TRIALBILLINGPERIOD", "TRIALBILLINGFREQUENCY", "TRIALTOTALBILLINGCYCLES",
	"TRIALAMT", "CURRENCYCODE", "SHIPPINGAMT", "TAXAMT",
)

// BillingPeriod is the regular (and optional trial) billing cycle of a
// recurring payments profile.
type BillingPeriod struct{ group }

func NewBillingPeriod(period consts.Period, frequency int, amount string) *BillingPeriod {
	b := &BillingPeriod{newGroup(billingPeriodSchema, nil)}
	b.set("BILLINGPERIOD", period.String())
	b.set("BILLINGFREQUENCY", strconv.Itoa(frequency))
	b.set("AMT", amount)
	return b
}

func BillingPeriodFromNVP(v *nvp.Values) *BillingPeriod {
	return &BillingPeriod{newGroup(billingPeriodSchema, v)}
}

// Period returns BILLINGPERIOD; ok is false when it is missing or unknown.
func (b *BillingPeriod) Period() (consts.Period, bool) {
	return consts.ParsePeriod(b.get("BILLINGPERIOD"))
}

func (b *BillingPeriod) Frequency() string { return b.get("BILLINGFREQUENCY") }
func (b *BillingPeriod) Amount() string    { return b.get("AMT") }

func (b *BillingPeriod) SetCurrency(c consts.Currency) { b.set("CURRENCYCODE", c.Code()) }
func (b *BillingPeriod) Currency() string              { return b.get("CURRENCYCODE") }
func (b *BillingPeriod) SetTotalCycles(cycles int)     { b.set("TOTALBILLINGCYCLES", strconv.Itoa(cycles)) }
func (b *BillingPeriod) TotalCycles() string           { return b.get("TOTALBILLINGCYCLES") }
func (b *BillingPeriod) SetShippingAmount(amt string)  { b.set("SHIPPINGAMT", amt) }
func (b *BillingPeriod) ShippingAmount() string        { return b.get("SHIPPINGAMT") }
func (b *BillingPeriod) SetTaxAmount(amt string)       { b.set("TAXAMT", amt) }
func (b *BillingPeriod) TaxAmount() string             { return b.get("TAXAMT") }

// SetTrial configures the trial period billed before the regular one.
func (b *BillingPeriod) SetTrial(period consts.Period, frequency int, cycles int, amount string) {
	b.set("TRIALBILLINGPERIOD", period.String())
	b.set("TRIALBILLINGFREQUENCY", strconv.Itoa(frequency))
	b.set("TRIALTOTALBILLINGCYCLES", strconv.Itoa(cycles))
	b.set("TRIALAMT", amount)
}

func (b *BillingPeriod) TrialPeriod() (consts.Period, bool) {
	return consts.ParsePeriod(b.get("TRIALBILLINGPERIOD"))
}

func (b *BillingPeriod) TrialFrequency() string   { return b.get("TRIALBILLINGFREQUENCY") }
func (b *BillingPeriod) TrialTotalCycles() string { return b.get("TRIALTOTALBILLINGCYCLES") }
func (b *BillingPeriod) TrialAmount() string      { return b.get("TRIALAMT") }

var scheduleSchema = nvp.NewSchema("DESC", "MAXFAILEDPAYMENTS", "AUTOBILLOUTAMT")

// Schedule describes the profile and its failure handling.
type Schedule struct{ group }

// NewSchedule sets DESC, which must match the billing agreement description
// of the Express Checkout token the profile is created from.
func NewSchedule(description string) *Schedule {
	s := &Schedule{newGroup(scheduleSchema, nil)}
	s.set("DESC", description)
	return s
}

func ScheduleFromNVP(v *nvp.Values) *Schedule {
	return &Schedule{newGroup(scheduleSchema, v)}
}

func (s *Schedule) Description() string                      { return s.get("DESC") }
func (s *Schedule) SetMaxFailedPayments(max int)             { s.set("MAXFAILEDPAYMENTS", strconv.Itoa(max)) }
func (s *Schedule) MaxFailedPayments() string                { return s.get("MAXFAILEDPAYMENTS") }
func (s *Schedule) SetAutoBillOutstanding(a consts.AutoBill) { s.set("AUTOBILLOUTAMT", a.String()) }
func (s *Schedule) AutoBillOutstanding() string              { return s.get("AUTOBILLOUTAMT") }

var recurringProfileSchema = nvp.NewSchema("SUBSCRIBERNAME", "PROFILESTARTDATE", "PROFILEREFERENCE")

// RecurringPaymentsProfile holds the subscriber and start date of a profile.
type RecurringPaymentsProfile struct{ group }

// NewRecurringPaymentsProfile takes the start date in UTC/GMT ISO 8601 format.
func NewRecurringPaymentsProfile(startDate string) *RecurringPaymentsProfile {
	p := &RecurringPaymentsProfile{newGroup(recurringProfileSchema, nil)}
	p.set("PROFILESTARTDATE", startDate)
	return p
}

func RecurringPaymentsProfileFromNVP(v *nvp.Values) *RecurringPaymentsProfile {
	return &RecurringPaymentsProfile{newGroup(recurringProfileSchema, v)}
}

func (p *RecurringPaymentsProfile) StartDate() string             { return p.get("PROFILESTARTDATE") }
func (p *RecurringPaymentsProfile) SubscriberName() string        { return p.get("SUBSCRIBERNAME") }
func (p *RecurringPaymentsProfile) SetSubscriberName(name string) { p.set("SUBSCRIBERNAME", name) }
func (p *RecurringPaymentsProfile) Reference() string             { return p.get("PROFILEREFERENCE") }
func (p *RecurringPaymentsProfile) SetReference(ref string)       { p.set("PROFILEREFERENCE", ref) }

var recurringSummarySchema = nvp.NewSchema(
	"NEXTBILLINGDATE", "NUMCYCYLESCOMPLETED", "NUMCYCLESREMAINING",
	"OUTSTANDINGBALANCE", "FAILEDPAYMENTCOUNT", "LASTPAYMENTDATE", "LASTPAYMENTAMT",
)

// RecurringPaymentsSummary is the billing state PayPal reports for a profile.
//
// PayPal spells the completed cycles key NUMCYCYLESCOMPLETED.
type RecurringPaymentsSummary struct{ group }

func RecurringPaymentsSummaryFromNVP(v *nvp.Values) *RecurringPaymentsSummary {
	return &RecurringPaymentsSummary{newGroup(recurringSummarySchema, v)}
}

func (s *RecurringPaymentsSummary) NextBillingDate() string    { return s.get("NEXTBILLINGDATE") }
func (s *RecurringPaymentsSummary) CyclesCompleted() string    { return s.get("NUMCYCYLESCOMPLETED") }
func (s *RecurringPaymentsSummary) CyclesRemaining() string    { return s.get("NUMCYCLESREMAINING") }
func (s *RecurringPaymentsSummary) OutstandingBalance() string { return s.get("OUTSTANDINGBALANCE") }
func (s *RecurringPaymentsSummary) FailedPaymentCount() string { return s.get("FAILEDPAYMENTCOUNT") }
func (s *RecurringPaymentsSummary) LastPaymentDate() string    { return s.get("LASTPAYMENTDATE") }
func (s *RecurringPaymentsSummary) LastPaymentAmount() string  { return s.get("LASTPAYMENTAMT") }

var activationSchema = nvp.NewSchema("INITAMT", "FAILEDINITAMTACTION")

// Activation is the initial (non-recurring) payment of a profile.
type Activation struct{ group }

func NewActivation(initialAmount string) *Activation {
	a := &Activation{newGroup(activationSchema, nil)}
	a.set("INITAMT", initialAmount)
	return a
}

func ActivationFromNVP(v *nvp.Values) *Activation {
	return &Activation{newGroup(activationSchema, v)}
}

func (a *Activation) InitialAmount() string { return a.get("INITAMT") }

func (a *Activation) SetFailedInitialAmountAction(action consts.FailedInitAmountAction) {
	a.set("FAILEDINITAMTACTION", action.String())
}

func (a *Activation) FailedInitialAmountAction() string { return a.get("FAILEDINITAMTACTION") }
