package request

import (
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/fields"
	"github.com/stremovskyy/go-nvp/nvp"
)

var doDirectPaymentSchema = nvp.NewSchema("IPADDRESS", "PAYMENTACTION", "RETURNFMFDETAILS")

// DoDirectPayment charges a credit card directly.
type DoDirectPayment struct {
	st *nvp.Store

	card     *fields.CreditCard
	payer    *fields.Payer
	address  *fields.Address
	payment  *fields.Payment
	secure3D *fields.Secure3D
}

// NewDoDirectPayment builds the request. ipAddress is the buyer's IPv4
// address.
func NewDoDirectPayment(ipAddress string, card *fields.CreditCard, payer *fields.Payer,
	address *fields.Address, payment *fields.Payment,
) *DoDirectPayment {
	r := &DoDirectPayment{
		st:      nvp.NewStore(doDirectPaymentSchema, nil),
		card:    card,
		payer:   payer,
		address: address,
		payment: payment,
	}
	r.st.Set("IPADDRESS", ipAddress)
	return r
}

func (r *DoDirectPayment) Method() string { return consts.MethodDoDirectPayment }

func (r *DoDirectPayment) IPAddress() string {
	v, _ := r.st.Get("IPADDRESS")
	return v
}

func (r *DoDirectPayment) CreditCard() *fields.CreditCard { return r.card }
func (r *DoDirectPayment) Payment() *fields.Payment       { return r.payment }

func (r *DoDirectPayment) SetPaymentAction(a consts.PaymentAction) { r.st.Set("PAYMENTACTION", a.String()) }

// SetReturnFMFDetails asks PayPal to return the Fraud Management Filter
// results.
func (r *DoDirectPayment) SetReturnFMFDetails(b bool) { r.st.Set("RETURNFMFDETAILS", flag(b)) }

func (r *DoDirectPayment) SetSecure3D(s *fields.Secure3D) { r.secure3D = s }

func (r *DoDirectPayment) NVPRequest() *nvp.Values {
	out := begin(r.Method(), r.st)
	if r.card != nil {
		out.Merge(r.card.NVP())
	}
	if r.payer != nil {
		out.Merge(r.payer.NVP())
	}
	if r.address != nil {
		out.Merge(r.address.NVP())
	}
	if r.payment != nil {
		out.Merge(r.payment.NVP())
	}
	if r.secure3D != nil {
		out.Merge(r.secure3D.NVP())
	}
	return out
}

var refundTransactionSchema = nvp.NewSchema(
	"TRANSACTIONID", "INVOICEID", "REFUNDTYPE", "AMT", "CURRENCYCODE", "NOTE",
)

// RefundTransaction refunds a completed transaction in full or in part.
type RefundTransaction struct {
	st *nvp.Store
}

func NewRefundTransaction(transactionID string) *RefundTransaction {
	r := &RefundTransaction{st: nvp.NewStore(refundTransactionSchema, nil)}
	r.st.Set("TRANSACTIONID", transactionID)
	return r
}

func (r *RefundTransaction) Method() string { return consts.MethodRefundTransaction }

func (r *RefundTransaction) value(key string) string {
	v, _ := r.st.Get(key)
	return v
}

func (r *RefundTransaction) TransactionID() string { return r.value("TRANSACTIONID") }
func (r *RefundTransaction) RefundType() string    { return r.value("REFUNDTYPE") }
func (r *RefundTransaction) Amount() string        { return r.value("AMT") }

func (r *RefundTransaction) SetNote(note string)               { r.st.Set("NOTE", note) }
func (r *RefundTransaction) SetInvoiceID(id string)            { r.st.Set("INVOICEID", id) }
func (r *RefundTransaction) SetAmount(amount string)           { r.st.Set("AMT", amount) }
func (r *RefundTransaction) SetCurrency(c consts.Currency)     { r.st.Set("CURRENCYCODE", c.Code()) }
func (r *RefundTransaction) SetRefundType(t consts.RefundType) { r.st.Set("REFUNDTYPE", t.String()) }

// SetPartial marks the refund as partial for the given amount.
func (r *RefundTransaction) SetPartial(amount string, c consts.Currency) {
	r.SetRefundType(consts.RefundTypePartial)
	r.SetAmount(amount)
	r.SetCurrency(c)
}

func (r *RefundTransaction) NVPRequest() *nvp.Values {
	return begin(r.Method(), r.st)
}
