package fields

import (
	"github.com/shopspring/decimal"
	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

var paymentSchema = nvp.NewSchema(
	"AMT", "CURRENCYCODE", "ITEMAMT", "SHIPPINGAMT", "INSURANCEAMT",
	"SHIPDISCAMT", "INSURANCEOPTIONOFFERED", "HANDLINGAMT", "TAXAMT", "DESC",
	"CUSTOM", "INVNUM", "NOTIFYURL", "NOTETEXT", "TRANSACTIONID",
	"ALLOWEDPAYMENTMETHOD", "PAYMENTACTION", "PAYMENTREQUESTID",
)

// Payment is one payment of a checkout: amounts, line items and the
// optional ship-to address and seller.
//
// A payment built with NewPayment derives ITEMAMT, TAXAMT and AMT from its
// items every time it is encoded. Payments built with NewPaymentAmount or
// decoded from a response keep AMT as it was given.
type Payment struct {
	group

	fromItems bool
	items     []Item

	shipTo     *ShippingAddress
	seller     *Seller
	paymentErr *PaymentError
}

// NewPayment builds a request payment whose totals are computed from items.
func NewPayment(items ...Item) *Payment {
	p := &Payment{group: newGroup(paymentSchema, nil), fromItems: true}
	for _, it := range items {
		p.AddItem(it)
	}
	return p
}

// NewPaymentAmount builds a request payment with a fixed AMT and no items.
func NewPaymentAmount(amount string) *Payment {
	p := &Payment{group: newGroup(paymentSchema, nil)}
	p.set("AMT", amount)
	return p
}

// PaymentFromNVP decodes a payment whose items use L_<FIELD><n> keys.
func PaymentFromNVP(v *nvp.Values) *Payment {
	rest, groups := nvp.DecodeItems(v)
	return paymentFromParts(rest, groups)
}

func paymentFromParts(scalars *nvp.Values, groups []nvp.IndexedGroup) *Payment {
	p := &Payment{group: newGroup(paymentSchema, scalars)}
	p.items = itemsFromGroups(groups)
	if a := ShippingAddressFromNVP(scalars); !a.IsEmpty() {
		p.shipTo = a
	}
	if s := SellerFromNVP(scalars); !s.IsEmpty() {
		p.seller = s
	}
	if e := PaymentErrorFromNVP(scalars); !e.IsEmpty() {
		p.paymentErr = e
	}
	return p
}

// AddItem appends it. Nil items, typed or not, are ignored.
func (p *Payment) AddItem(it Item) {
	if isNilItem(it) {
		return
	}
	p.items = append(p.items, it)
}

func (p *Payment) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// ComputesTotals reports whether AMT is derived from the items on encode.
func (p *Payment) ComputesTotals() bool { return p.fromItems }

// Amount is the AMT sent on the wire; computed from the items when the
// payment was built with NewPayment.
func (p *Payment) Amount() string {
	if p.fromItems {
		return p.Totals().AmountString()
	}
	return p.get("AMT")
}

func (p *Payment) ItemAmount() string { return p.get("ITEMAMT") }

func (p *Payment) SetCurrency(c consts.Currency) { p.set("CURRENCYCODE", c.Code()) }
func (p *Payment) Currency() string              { return p.get("CURRENCYCODE") }

func (p *Payment) SetShippingAddress(a *ShippingAddress) { p.shipTo = a }
func (p *Payment) ShippingAddress() *ShippingAddress     { return p.shipTo }
func (p *Payment) SetSeller(s *Seller)                   { p.seller = s }
func (p *Payment) Seller() *Seller                       { return p.seller }

// PaymentError is set on payments decoded from a response that failed.
func (p *Payment) PaymentError() *PaymentError { return p.paymentErr }

func (p *Payment) SetShippingAmount(amount string) { p.set("SHIPPINGAMT", amount) }
func (p *Payment) ShippingAmount() string          { return p.get("SHIPPINGAMT") }

// SetInsuranceAmount sets INSURANCEAMT. INSURANCEOPTIONOFFERED is written only
// when offered is passed.
func (p *Payment) SetInsuranceAmount(amount string, offered ...bool) {
	p.set("INSURANCEAMT", amount)
	if len(offered) > 0 {
		p.set("INSURANCEOPTIONOFFERED", boolString(offered[0]))
	}
}

func (p *Payment) InsuranceAmount() string { return p.get("INSURANCEAMT") }

// InsuranceOptionOffered returns the flag and whether it was set.
func (p *Payment) InsuranceOptionOffered() (offered bool, ok bool) {
	v, ok := p.Lookup("INSURANCEOPTIONOFFERED")
	return v == "true", ok
}

// SetShippingDiscount stores the discount as a negative amount; "5.00" is
// stored as "-5.00".
func (p *Payment) SetShippingDiscount(amount string) {
	p.set("SHIPDISCAMT", negativeAmount(amount))
}

func (p *Payment) ShippingDiscount() string                { return p.get("SHIPDISCAMT") }
func (p *Payment) SetHandlingAmount(amount string)         { p.set("HANDLINGAMT", amount) }
func (p *Payment) HandlingAmount() string                  { return p.get("HANDLINGAMT") }
func (p *Payment) SetTaxAmount(amount string)              { p.set("TAXAMT", amount) }
func (p *Payment) TaxAmount() string                       { return p.get("TAXAMT") }
func (p *Payment) SetDescription(desc string)              { p.set("DESC", desc) }
func (p *Payment) Description() string                     { return p.get("DESC") }
func (p *Payment) SetCustom(custom string)                 { p.set("CUSTOM", custom) }
func (p *Payment) Custom() string                          { return p.get("CUSTOM") }
func (p *Payment) SetInvoiceNumber(number string)          { p.set("INVNUM", number) }
func (p *Payment) InvoiceNumber() string                   { return p.get("INVNUM") }
func (p *Payment) SetNotifyURL(url string)                 { p.set("NOTIFYURL", url) }
func (p *Payment) NotifyURL() string                       { return p.get("NOTIFYURL") }
func (p *Payment) SetNote(note string)                     { p.set("NOTETEXT", note) }
func (p *Payment) Note() string                            { return p.get("NOTETEXT") }
func (p *Payment) SetTransactionID(id string)              { p.set("TRANSACTIONID", id) }
func (p *Payment) TransactionID() string                   { return p.get("TRANSACTIONID") }
func (p *Payment) SetAllowedPaymentMethod(m string)        { p.set("ALLOWEDPAYMENTMETHOD", m) }
func (p *Payment) AllowedPaymentMethod() string            { return p.get("ALLOWEDPAYMENTMETHOD") }
func (p *Payment) SetPaymentRequestID(id string)           { p.set("PAYMENTREQUESTID", id) }
func (p *Payment) PaymentRequestID() string                { return p.get("PAYMENTREQUESTID") }
func (p *Payment) SetPaymentAction(a consts.PaymentAction) { p.set("PAYMENTACTION", a.String()) }
func (p *Payment) PaymentAction() string                   { return p.get("PAYMENTACTION") }

// Totals are the amounts a payment built from items is encoded with.
type Totals struct {
	ItemAmount decimal.Decimal
	TaxAmount  decimal.Decimal
	Amount     decimal.Decimal
	// Places is the number of decimal places the amounts are rendered with.
	Places int32
}

func (t Totals) ItemAmountString() string { return t.ItemAmount.StringFixed(t.Places) }
func (t Totals) TaxAmountString() string  { return t.TaxAmount.StringFixed(t.Places) }
func (t Totals) AmountString() string     { return t.Amount.StringFixed(t.Places) }

// Totals computes ITEMAMT and TAXAMT from the items and AMT as
// ITEMAMT + TAXAMT + SHIPPINGAMT + SHIPDISCAMT + INSURANCEAMT + HANDLINGAMT.
//
// Only the item amounts count; ITEMAMT and TAXAMT set on the payment itself
// are ignored. Values that are not decimal numbers count as zero.
func (p *Payment) Totals() Totals {
	var items, tax amountSum
	for _, it := range p.items {
		pi, ok := it.(*PaymentItem)
		if !ok {
			continue
		}
		items.add(pi.Amount())
		tax.add(pi.TaxAmount())
	}

	amount := amountSum{}
	amount.merge(items)
	amount.merge(tax)
	for _, key := range []string{"SHIPPINGAMT", "SHIPDISCAMT", "INSURANCEAMT", "HANDLINGAMT"} {
		amount.add(p.get(key))
	}

	return Totals{
		ItemAmount: items.total,
		TaxAmount:  tax.total,
		Amount:     amount.total,
		Places:     amount.placesOrDefault(),
	}
}

// scalars returns the request-side scalar pairs. Values only PayPal sends
// (the payment error and ADDRESSSTATUS) are left out.
func (p *Payment) scalars() *nvp.Values {
	out := p.st.Values()
	if p.fromItems {
		out.Del("ITEMAMT")
		out.Del("TAXAMT")
		t := p.Totals()
		if t.ItemAmount.IsPositive() {
			out.Set("ITEMAMT", t.ItemAmountString())
		}
		if t.TaxAmount.IsPositive() {
			out.Set("TAXAMT", t.TaxAmountString())
		}
		out.Set("AMT", t.AmountString())
	}
	if !isEmptyGroup(p.shipTo) {
		ship := p.shipTo.NVP()
		ship.Del("ADDRESSSTATUS")
		out.Merge(ship)
	}
	if !isEmptyGroup(p.seller) {
		out.Merge(p.seller.NVP())
	}
	return out
}

// NVP encodes the payment with plain scalar keys and L_<FIELD><n> items.
func (p *Payment) NVP() *nvp.Values {
	out := p.scalars()
	nvp.EncodeItems(out, itemValues(p.items))
	return out
}

// EncodeParallel writes the payment as parallel payment n:
// PAYMENTREQUEST_<n>_<FIELD> and L_PAYMENTREQUEST_<n>_<FIELD><i>.
func (p *Payment) EncodeParallel(dst *nvp.Values, n int) {
	nvp.EncodePayment(dst, nvp.PrefixPaymentRequest, n, p.scalars())
	nvp.EncodePaymentItems(dst, nvp.PrefixPaymentRequest, n, itemValues(p.items))
}

// EncodeParallelPayments writes payments as parallel payments 0..n-1.
// Nil payments are skipped without leaving a gap.
func EncodeParallelPayments(dst *nvp.Values, payments []*Payment) {
	n := 0
	for _, p := range payments {
		if p == nil {
			continue
		}
		p.EncodeParallel(dst, n)
		n++
	}
}

// ParallelPaymentsFromNVP decodes every PAYMENTREQUEST_<n>_ payment of v in
// index order and returns the keys outside that namespace.
func ParallelPaymentsFromNVP(v *nvp.Values) (rest *nvp.Values, payments []*Payment) {
	rest, groups := nvp.DecodePayments(v, nvp.PrefixPaymentRequest)
	for _, g := range groups {
		payments = append(payments, paymentFromParts(g.Values, g.Items))
	}
	return rest, payments
}

type amountSum struct {
	total  decimal.Decimal
	places int32
	seen   bool
}

func (s *amountSum) add(raw string) {
	if raw == "" {
		return
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return
	}
	s.total = s.total.Add(d)
	s.seen = true
	if places := -d.Exponent(); places > s.places {
		s.places = places
	}
}

func (s *amountSum) merge(o amountSum) {
	if !o.seen {
		return
	}
	s.total = s.total.Add(o.total)
	s.seen = true
	if o.places > s.places {
		s.places = o.places
	}
}

func (s amountSum) placesOrDefault() int32 {
	if !s.seen {
		return 2
	}
	return s.places
}

func negativeAmount(raw string) string {
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return raw
	}
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.Neg().StringFixed(places)
}
