package response

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stremovskyy/go-nvp/consts"
)

func TestParseExtractsErrors(t *testing.T) {
	e := Parse("ACK=Failure&L_ERRORCODE0=15005&L_SHORTMESSAGE0=Security+error&CORRELATIONID=abc123")

	errs := e.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Code != "15005" || errs[0].ShortMessage != "Security error" || errs[0].Index != 0 {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
	if e.Values().Has("L_ERRORCODE0") || e.Values().Has("L_SHORTMESSAGE0") {
		t.Fatalf("error keys must be removed from values: %v", e.Values().Map())
	}
	if e.Ack() != consts.AckFailure || e.CorrelationID() != "abc123" {
		t.Fatalf("unexpected envelope: %v", e.Values().Map())
	}
}

func TestParseHeaderDefaults(t *testing.T) {
	e := Parse("")
	if e.Ack() != "" || e.Timestamp() != "" || e.CorrelationID() != "" || e.Version() != "" || e.Build() != "" {
		t.Fatalf("empty body must give empty header values")
	}
	if e.Err() != nil || e.IsSuccess() {
		t.Fatalf("empty body is neither success nor failure")
	}
}

func TestParseToleratesMalformedPairs(t *testing.T) {
	e := Parse("ACK=Success&&=orphan&NOVALUE&BAD=%zz&TIMESTAMP=2030-01-01T00%3A00%3A00Z&L_ERRORCODE=1&L_ERRORCODEX0=2")

	v := e.Values()
	if v.Value("BAD") != "%zz" {
		t.Fatalf("undecodable value must be kept raw, got %q", v.Value("BAD"))
	}
	if !v.Has("NOVALUE") || v.Value("NOVALUE") != "" {
		t.Fatalf("key without '=' must map to empty value")
	}
	if e.Timestamp() != "2030-01-01T00:00:00Z" {
		t.Fatalf("Timestamp() = %q", e.Timestamp())
	}
	if len(e.Errors()) != 0 {
		t.Fatalf("malformed error keys must not produce errors: %+v", e.Errors())
	}
	if !v.Has("L_ERRORCODE") {
		t.Fatalf("unindexed error key stays in values")
	}
}

func TestErrorsAreOrderedByIndex(t *testing.T) {
	e := Parse("ACK=Failure&L_ERRORCODE2=3&L_ERRORCODE0=1&L_LONGMESSAGE1=second&L_ERRORCODE1=2&L_SEVERITYCODE0=Error")

	var codes []string
	for _, er := range e.Errors() {
		codes = append(codes, er.Code)
	}
	if !reflect.DeepEqual(codes, []string{"1", "2", "3"}) {
		t.Fatalf("codes = %v", codes)
	}
	if e.Errors()[0].SeverityCode != "Error" || e.Errors()[1].LongMessage != "second" {
		t.Fatalf("unexpected errors: %+v", e.Errors())
	}
}

func TestEnvelopeErr(t *testing.T) {
	tests := []struct {
		raw     string
		failure bool
	}{
		{"ACK=Success", false},
		{"ACK=SuccessWithWarning&L_ERRORCODE0=11452&L_SHORTMESSAGE0=Warning", false},
		{"ACK=Failure&L_ERRORCODE0=10002&L_SHORTMESSAGE0=Security+error", true},
		{"ACK=FailureWithWarning", true},
		{"L_ERRORCODE0=10001", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := Parse(tt.raw).Err()
			if (err != nil) != tt.failure {
				t.Fatalf("Err() = %v, failure=%v", err, tt.failure)
			}
			if !tt.failure {
				return
			}
			wrapped := fmt.Errorf("checkout: %w", err)
			if !IsFailure(wrapped) {
				t.Fatalf("IsFailure must see through wrapping")
			}
			var fe *FailureError
			if !errors.As(wrapped, &fe) {
				t.Fatalf("expected *FailureError")
			}
		})
	}

	err := Parse("ACK=Failure&CORRELATIONID=c1&L_ERRORCODE0=10002&L_SHORTMESSAGE0=Security+error&L_LONGMESSAGE0=Bad+credentials").Err()
	msg := err.Error()
	if !strings.Contains(msg, "10002 Security error: Bad credentials") || !strings.Contains(msg, `"c1"`) {
		t.Fatalf("unexpected message: %s", msg)
	}
	if codes := err.(*FailureError).Codes(); !reflect.DeepEqual(codes, []string{"10002"}) {
		t.Fatalf("Codes() = %v", codes)
	}
}

func TestSetExpressCheckoutRedirectURL(t *testing.T) {
	ok := NewSetExpressCheckout(Parse("ACK=Success&TOKEN=EC-123"))
	if ok.Token() != "EC-123" {
		t.Fatalf("Token() = %q", ok.Token())
	}
	want := "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-123"
	if got := ok.RedirectURL(consts.Sandbox); got != want {
		t.Fatalf("RedirectURL() = %q, want %q", got, want)
	}

	for _, raw := range []string{"ACK=Failure&TOKEN=EC-1", "ACK=Success"} {
		if got := NewSetExpressCheckout(Parse(raw)).RedirectURL(consts.Live); got != "" {
			t.Fatalf("RedirectURL() for %q = %q, want empty", raw, got)
		}
	}
}

func TestGetExpressCheckoutDetails(t *testing.T) {
	raw := "ACK=Success&TOKEN=EC-9&CHECKOUTSTATUS=PaymentActionNotInitiated&EMAIL=buyer%40example.com&PAYERID=P-9" +
		"&FIRSTNAME=Jane&LASTNAME=Roe&SHIPPINGOPTIONNAME=Ground" +
		"&PAYMENTREQUEST_0_AMT=12.00&PAYMENTREQUEST_0_CURRENCYCODE=EUR&PAYMENTREQUEST_0_SHIPTOCITY=Kyiv" +
		"&L_PAYMENTREQUEST_0_NAME0=Book&L_PAYMENTREQUEST_0_AMT0=12.00" +
		"&PAYMENTREQUEST_1_AMT=3.00"
	r := NewGetExpressCheckoutDetails(Parse(raw))

	if r.Token() != "EC-9" || r.CheckoutStatus() != "PaymentActionNotInitiated" {
		t.Fatalf("unexpected scalars: %v", r.Values().Map())
	}
	if r.PayerID() != "P-9" || r.PayerInformation().Email() != "buyer@example.com" {
		t.Fatalf("unexpected payer information: %v", r.PayerInformation().NVP().Map())
	}
	if r.PayerName().FirstName() != "Jane" || r.UserOptions().ShippingOptionName() != "Ground" {
		t.Fatalf("unexpected payer name or user options")
	}

	payments := r.Payments()
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].Amount() != "12.00" || payments[0].Currency() != "EUR" || len(payments[0].Items()) != 1 {
		t.Fatalf("unexpected payment 0: %v", payments[0].NVP().Map())
	}
	if payments[0].ShippingAddress() == nil || payments[0].ShippingAddress().City() != "Kyiv" {
		t.Fatalf("payment 0 lost its shipping address")
	}
	if payments[1].Amount() != "3.00" {
		t.Fatalf("unexpected payment 1: %v", payments[1].NVP().Map())
	}
	if r.Values().Has("PAYMENTREQUEST_0_AMT") {
		t.Fatalf("Values() must exclude the payment namespace")
	}
}

func TestDoExpressCheckoutPayment(t *testing.T) {
	raw := "ACK=PartialSuccess&TOKEN=EC-3&SUCCESSPAGEREDIRECTREQUESTED=false" +
		"&PAYMENTINFO_0_TRANSACTIONID=T-0&PAYMENTINFO_0_PAYMENTSTATUS=Completed&PAYMENTINFO_0_AMT=10.00" +
		"&PAYMENTREQUEST_1_ERRORCODE=10417&PAYMENTREQUEST_1_SHORTMESSAGE=Declined" +
		"&INSURANCEOPTIONSELECTED=false"
	r := NewDoExpressCheckoutPayment(Parse(raw))

	if r.Token() != "EC-3" || r.SuccessPageRedirectRequested() != "false" {
		t.Fatalf("unexpected scalars")
	}
	info, ok := r.PaymentInfo(0)
	if !ok || info.TransactionID() != "T-0" || info.PaymentStatus() != "Completed" || info.Amount() != "10.00" {
		t.Fatalf("unexpected payment info: %v", r.PaymentInfos())
	}
	if _, ok := r.PaymentInfo(1); ok {
		t.Fatalf("payment 1 has no info")
	}
	pe, ok := r.PaymentError(1)
	if !ok || pe.ErrorCode() != "10417" || pe.ShortMessage() != "Declined" {
		t.Fatalf("unexpected payment error")
	}
	if !r.HasPaymentErrors() || len(r.PaymentInfos()) != 1 {
		t.Fatalf("unexpected payment results")
	}
	if r.UserOptions().InsuranceOptionSelected() != "false" {
		t.Fatalf("user options not decoded")
	}
}

func TestDoDirectPaymentFMFFilters(t *testing.T) {
	raw := "ACK=SuccessWithWarning&TRANSACTIONID=T-1&AMT=3.00&AVSCODE=X&CVV2MATCH=M" +
		"&L_FMFREPORTID0=7&L_FMFREPORTNAME0=Country+Monitor" +
		"&L_FMFPENDINGID1=2&L_FMFPENDINGNAME1=AVS+Partial+Match" +
		"&L_FMFPENDINGID0=1&L_FMFPENDINGNAME0=AVS+No+Match" +
		"&L_FMFBOGUSID0=9"
	r := NewDoDirectPayment(Parse(raw))

	if r.TransactionID() != "T-1" || r.Amount() != "3.00" || r.AVSCode() != "X" || r.CVV2Match() != "M" {
		t.Fatalf("unexpected scalars")
	}
	want := []FMFFilter{
		{Type: FMFPending, Index: 0, ID: "1", Name: "AVS No Match"},
		{Type: FMFPending, Index: 1, ID: "2", Name: "AVS Partial Match"},
		{Type: FMFReport, Index: 0, ID: "7", Name: "Country Monitor"},
	}
	if got := r.FMFFilters(); !reflect.DeepEqual(got, want) {
		t.Fatalf("FMFFilters() = %+v, want %+v", got, want)
	}
}

func TestRecurringResponses(t *testing.T) {
	created := NewCreateRecurringPaymentsProfile(Parse("ACK=Success&PROFILEID=I-1&STATUS=ActiveProfile"))
	if s, ok := created.Status(); !ok || s != consts.ProfileStatusActive || created.ProfileID() != "I-1" {
		t.Fatalf("unexpected create response")
	}
	if _, ok := NewCreateRecurringPaymentsProfile(Parse("STATUS=Weird")).Status(); ok {
		t.Fatalf("unknown status must not parse")
	}

	raw := "ACK=Success&PROFILEID=I-2&STATUS=Active&DESC=Gold&SUBSCRIBERNAME=Jane&PROFILESTARTDATE=2030-01-01T00%3A00%3A00Z" +
		"&SHIPTOCITY=Lviv&BILLINGPERIOD=Month&BILLINGFREQUENCY=1&AMT=9.99&NEXTBILLINGDATE=2030-02-01" +
		"&NUMCYCYLESCOMPLETED=1&ACCT=1111&CREDITCARDTYPE=Visa&EMAIL=jane%40example.com&STREET=Main+St"
	d := NewGetRecurringPaymentsProfileDetails(Parse(raw))
	if d.ProfileID() != "I-2" || d.Status() != "Active" || d.Description() != "Gold" {
		t.Fatalf("unexpected scalars")
	}
	if d.Profile().SubscriberName() != "Jane" || d.ShippingAddress().City() != "Lviv" {
		t.Fatalf("unexpected profile or shipping address")
	}
	if p, ok := d.BillingPeriod().Period(); !ok || p != consts.PeriodMonth {
		t.Fatalf("unexpected billing period")
	}
	if d.Summary().NextBillingDate() != "2030-02-01" || d.Summary().CyclesCompleted() != "1" {
		t.Fatalf("unexpected summary")
	}
	if d.CreditCard().Number() != "1111" || d.Payer().Email() != "jane@example.com" || d.Address().Street() != "Main St" {
		t.Fatalf("unexpected card, payer or address")
	}

	if NewManageRecurringPaymentsProfileStatus(Parse("ACK=Success&PROFILEID=I-3")).ProfileID() != "I-3" {
		t.Fatalf("unexpected manage response")
	}
	if NewUpdateRecurringPaymentsProfile(Parse("ACK=Success&PROFILEID=I-4")).ProfileID() != "I-4" {
		t.Fatalf("unexpected update response")
	}
}

func TestRefundTransaction(t *testing.T) {
	r := NewRefundTransaction(Parse("ACK=Success&REFUNDTRANSACTIONID=R-1&GROSSREFUNDAMT=2.50&CURRENCYCODE=GBP&REFUNDSTATUS=Instant"))
	if r.RefundTransactionID() != "R-1" || r.GrossRefundAmount() != "2.50" || r.Currency() != "GBP" || r.RefundStatus() != "Instant" {
		t.Fatalf("unexpected refund response: %v", r.Values().Map())
	}
}
