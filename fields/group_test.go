package fields

import (
	"reflect"
	"testing"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

func TestGroupRoundTrip(t *testing.T) {
	address := NewAddress("Main St 1", "San Jose", "CA", "US")
	address.SetZip("95131")
	card := NewCreditCard(consts.CreditCardVisa, "4111111111111111")
	card.SetExpirationDate("012030")
	card.SetCVV2("123")
	period := NewBillingPeriod(consts.PeriodMonth, 1, "9.99")
	period.SetTrial(consts.PeriodWeek, 2, 1, "0.00")
	secure := NewSecure3D()
	secure.SetXID("xid-1")

	tests := []struct {
		name   string
		group  Group
		decode func(*nvp.Values) Group
	}{
		{"address", address, func(v *nvp.Values) Group { return AddressFromNVP(v) }},
		{"card", card, func(v *nvp.Values) Group { return CreditCardFromNVP(v) }},
		{"billing period", period, func(v *nvp.Values) Group { return BillingPeriodFromNVP(v) }},
		{"secure3d", secure, func(v *nvp.Values) Group { return Secure3DFromNVP(v) }},
		{"schedule", NewSchedule("Gold plan"), func(v *nvp.Values) Group { return ScheduleFromNVP(v) }},
		{"payer", NewPayer("John", "Doe"), func(v *nvp.Values) Group { return PayerFromNVP(v) }},
		{"activation", NewActivation("1.00"), func(v *nvp.Values) Group { return ActivationFromNVP(v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.group.NVP()
			back := tt.decode(orig).NVP()
			if !reflect.DeepEqual(orig.Map(), back.Map()) {
				t.Fatalf("round trip mismatch:\n got %v\nwant %v", back.Map(), orig.Map())
			}
		})
	}
}

func TestFromNVPDropsUnknownKeys(t *testing.T) {
	src := nvp.ParseValues("street=Main+St&CITY=Kyiv&COUNTRYCODE=UA&FOO=bar")
	a := AddressFromNVP(src)

	if a.Street() != "Main St" || a.City() != "Kyiv" || a.CountryCode() != "UA" {
		t.Fatalf("unexpected address: %v", a.NVP().Map())
	}
	if _, ok := a.Lookup("FOO"); ok {
		t.Fatalf("FOO must be dropped")
	}
	if a.NVP().Len() != 3 {
		t.Fatalf("unexpected pairs: %v", a.NVP().Map())
	}
}

func TestCreditCardSchema(t *testing.T) {
	card := CreditCardFromNVP(nvp.ParseValues("CREDITCARDTYPE=Visa&ACCT=4111&EXPDATE=012030&STARTDATE=012020&ISSUENUMBER=1&INITAMT=5.00"))
	if card.Type() != "Visa" || card.Number() != "4111" || card.ExpirationDate() != "012030" {
		t.Fatalf("unexpected card: %v", card.NVP().Map())
	}
	if card.StartDate() != "012020" || card.IssueNumber() != "1" {
		t.Fatalf("unexpected card dates: %v", card.NVP().Map())
	}
	if _, ok := card.Lookup("INITAMT"); ok {
		t.Fatalf("INITAMT is not a card field")
	}
}

func TestBillingPeriodParsesPeriods(t *testing.T) {
	b := BillingPeriodFromNVP(nvp.ParseValues("BILLINGPERIOD=Month&BILLINGFREQUENCY=1&AMT=9.99&TRIALBILLINGPERIOD=Bogus"))
	if p, ok := b.Period(); !ok || p != consts.PeriodMonth {
		t.Fatalf("Period() = (%q, %v)", p, ok)
	}
	if _, ok := b.TrialPeriod(); ok {
		t.Fatalf("unknown trial period must not parse")
	}
}

func TestPaymentItemCategory(t *testing.T) {
	it := NewPaymentItem("1.00")
	if _, ok := it.Category(); ok {
		t.Fatalf("missing category must not parse")
	}
	it.SetCategory(consts.ItemCategoryDigital)
	if c, ok := it.Category(); !ok || c != consts.ItemCategoryDigital {
		t.Fatalf("Category() = (%q, %v)", c, ok)
	}
	decoded := PaymentItemFromNVP(nvp.ParseValues("ITEMCATEGORY=physical"))
	if c, ok := decoded.Category(); !ok || c != consts.ItemCategoryPhysical {
		t.Fatalf("Category() = (%q, %v)", c, ok)
	}
}

func TestShippingOptionAndFunding(t *testing.T) {
	opt := NewShippingOption("Ground", "5.00", true)
	want := map[string]string{
		"SHIPPINGOPTIONISDEFAULT": "true",
		"SHIPPINGOPTIONNAME":      "Ground",
		"SHIPPINGOPTIONAMOUNT":    "5.00",
	}
	if got := opt.NVP().Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("shipping option = %v", got)
	}

	f := NewFundingSource()
	f.SetAllowPushFunding(true)
	if f.AllowPushFunding() != "1" {
		t.Fatalf("ALLOWPUSHFUNDING = %q", f.AllowPushFunding())
	}
}

func TestRecurringBillingAgreement(t *testing.T) {
	b := NewRecurringBillingAgreement("Gold plan")
	b.SetPaymentType(consts.BillingPaymentInstantOnly)
	if b.BillingType() != "RecurringPayments" || b.PaymentType() != "InstantOnly" {
		t.Fatalf("unexpected agreement: %v", b.NVP().Map())
	}
}

func TestGroupRoundTripDropsUnknownKeys(t *testing.T) {
	ship := NewShippingAddress()
	ship.SetName("Jane Doe")
	ship.SetStreet("Khreshchatyk 1")
	ship.SetCity("Kyiv")
	ship.SetCountryCode("UA")
	name := NewPayerName("John", "Doe")
	name.SetSalutation("Mr")
	name.SetSuffix("Jr")
	info := NewPayerInformation()
	info.SetEmail("buyer@example.com")
	info.SetPayerID("P-1")
	info.SetPayerStatus("verified")
	seller := NewSeller()
	seller.SetID("S-1")
	seller.SetPayPalAccountID("seller@example.com")
	profile := NewRecurringPaymentsProfile("2030-01-01T00:00:00Z")
	profile.SetSubscriberName("John Doe")
	profile.SetReference("INV-7")
	agreement := NewRecurringBillingAgreement("Gold plan")
	agreement.SetCustom("c-1")
	schedule := NewSchedule("Gold plan")
	schedule.SetMaxFailedPayments(3)
	schedule.SetAutoBillOutstanding(consts.AutoBillAddToNextBilling)

	tests := []struct {
		name   string
		group  Group
		decode func(*nvp.Values) Group
	}{
		{"shipping address", ship, func(v *nvp.Values) Group { return ShippingAddressFromNVP(v) }},
		{"payer name", name, func(v *nvp.Values) Group { return PayerNameFromNVP(v) }},
		{"payer information", info, func(v *nvp.Values) Group { return PayerInformationFromNVP(v) }},
		{"seller", seller, func(v *nvp.Values) Group { return SellerFromNVP(v) }},
		{"recurring profile", profile, func(v *nvp.Values) Group { return RecurringPaymentsProfileFromNVP(v) }},
		{"billing agreement", agreement, func(v *nvp.Values) Group { return BillingAgreementFromNVP(v) }},
		{"schedule", schedule, func(v *nvp.Values) Group { return ScheduleFromNVP(v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.group.NVP()
			wire := orig.Clone()
			wire.Set("UNKNOWNFIELD", "x")

			back := tt.decode(wire).NVP()
			if back.Has("UNKNOWNFIELD") {
				t.Fatalf("unknown key kept: %v", back.Map())
			}
			if !reflect.DeepEqual(orig.Map(), back.Map()) {
				t.Fatalf("round trip mismatch:\n got %v\nwant %v", back.Map(), orig.Map())
			}
		})
	}
}
