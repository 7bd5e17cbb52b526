package fields

import "github.com/stremovskyy/go-nvp/nvp"

var paymentErrorSchema = nvp.NewSchema("SHORTMESSAGE", "LONGMESSAGE", "ERRORCODE", "SEVERITYCODE", "ACK")

// PaymentError is the failure of one parallel payment in a
// DoExpressCheckoutPayment response.
type PaymentError struct{ group }

func PaymentErrorFromNVP(v *nvp.Values) *PaymentError {
	return &PaymentError{newGroup(paymentErrorSchema, v)}
}

func (e *PaymentError) ErrorCode() string    { return e.get("ERRORCODE") }
func (e *PaymentError) ShortMessage() string { return e.get("SHORTMESSAGE") }
func (e *PaymentError) LongMessage() string  { return e.get("LONGMESSAGE") }
func (e *PaymentError) SeverityCode() string { return e.get("SEVERITYCODE") }
func (e *PaymentError) Ack() string          { return e.get("ACK") }

var paymentInfoSchema = nvp.NewSchema(
	"TRANSACTIONID", "TRANSACTIONTYPE", "PAYMENTTYPE", "ORDERTIME", "AMT",
	"CURRENCYCODE", "FEEAMT", "SETTLEAMT", "TAXAMT", "EXCHANGERATE",
	"PAYMENTSTATUS", "PENDINGREASON", "REASONCODE", "HOLDDECISION",
	"PROTECTIONELIGIBILITY", "PROTECTIONELIGIBILITYTYPE",
	"EBAYITEMAUCTIONTXNID", "PAYMENTREQUESTID",
)

// PaymentInfo is the result of one completed payment, returned under
// PAYMENTINFO_<n>_.
type PaymentInfo struct{ group }

func PaymentInfoFromNVP(v *nvp.Values) *PaymentInfo {
	return &PaymentInfo{newGroup(paymentInfoSchema, v)}
}

func (p *PaymentInfo) TransactionID() string             { return p.get("TRANSACTIONID") }
func (p *PaymentInfo) TransactionType() string           { return p.get("TRANSACTIONTYPE") }
func (p *PaymentInfo) PaymentType() string               { return p.get("PAYMENTTYPE") }
func (p *PaymentInfo) OrderTime() string                 { return p.get("ORDERTIME") }
func (p *PaymentInfo) Amount() string                    { return p.get("AMT") }
func (p *PaymentInfo) Currency() string                  { return p.get("CURRENCYCODE") }
func (p *PaymentInfo) FeeAmount() string                 { return p.get("FEEAMT") }
func (p *PaymentInfo) SettleAmount() string              { return p.get("SETTLEAMT") }
func (p *PaymentInfo) TaxAmount() string                 { return p.get("TAXAMT") }
func (p *PaymentInfo) ExchangeRate() string              { return p.get("EXCHANGERATE") }
func (p *PaymentInfo) PaymentStatus() string             { return p.get("PAYMENTSTATUS") }
func (p *PaymentInfo) PendingReason() string             { return p.get("PENDINGREASON") }
func (p *PaymentInfo) ReasonCode() string                { return p.get("REASONCODE") }
func (p *PaymentInfo) HoldDecision() string              { return p.get("HOLDDECISION") }
func (p *PaymentInfo) ProtectionEligibility() string     { return p.get("PROTECTIONELIGIBILITY") }
func (p *PaymentInfo) ProtectionEligibilityType() string { return p.get("PROTECTIONELIGIBILITYTYPE") }
func (p *PaymentInfo) EbayTransactionID() string         { return p.get("EBAYITEMAUCTIONTXNID") }
func (p *PaymentInfo) PaymentRequestID() string          { return p.get("PAYMENTREQUESTID") }
