package fields

import (
	"strconv"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

// Item is one line of a payment: a *PaymentItem or an *EbayItem.
type Item interface {
	Group
	IsEmpty() bool
	isItem()
}

var paymentItemSchema = nvp.NewSchema(
	"NAME", "DESC", "AMT", "NUMBER", "QTY", "TAXAMT",
	"ITEMWEIGHTVALUE", "ITEMWEIGHTUNIT", "ITEMLENGTHVALUE", "ITEMLENGTHUNIT",
	"ITEMWIDTHVALUE", "ITEMWIDTHUNIT", "ITEMHEIGHTVALUE", "ITEMHEIGHTUNIT",
	"ITEMURL", "ITEMCATEGORY",
)

// PaymentItem is a regular merchant line item.
type PaymentItem struct{ group }

func NewPaymentItem(amount string) *PaymentItem {
	it := &PaymentItem{newGroup(paymentItemSchema, nil)}
	it.set("AMT", amount)
	return it
}

func PaymentItemFromNVP(v *nvp.Values) *PaymentItem {
	return &PaymentItem{newGroup(paymentItemSchema, v)}
}

func (*PaymentItem) isItem() {}

func (it *PaymentItem) Amount() string             { return it.get("AMT") }
func (it *PaymentItem) Name() string               { return it.get("NAME") }
func (it *PaymentItem) SetName(name string)        { it.set("NAME", name) }
func (it *PaymentItem) Description() string        { return it.get("DESC") }
func (it *PaymentItem) SetDescription(desc string) { it.set("DESC", desc) }
func (it *PaymentItem) Number() string             { return it.get("NUMBER") }
func (it *PaymentItem) SetNumber(number string)    { it.set("NUMBER", number) }
func (it *PaymentItem) Quantity() string           { return it.get("QTY") }
func (it *PaymentItem) SetQuantity(qty int)        { it.set("QTY", strconv.Itoa(qty)) }
func (it *PaymentItem) TaxAmount() string          { return it.get("TAXAMT") }
func (it *PaymentItem) SetTaxAmount(amount string) { it.set("TAXAMT", amount) }
func (it *PaymentItem) URL() string                { return it.get("ITEMURL") }
func (it *PaymentItem) SetURL(url string)          { it.set("ITEMURL", url) }

func (it *PaymentItem) Weight() (value, unit string) {
	return it.get("ITEMWEIGHTVALUE"), it.get("ITEMWEIGHTUNIT")
}

func (it *PaymentItem) SetWeight(value, unit string) {
	it.set("ITEMWEIGHTVALUE", value)
	it.set("ITEMWEIGHTUNIT", unit)
}

func (it *PaymentItem) Length() (value, unit string) {
	return it.get("ITEMLENGTHVALUE"), it.get("ITEMLENGTHUNIT")
}

func (it *PaymentItem) SetLength(value, unit string) {
	it.set("ITEMLENGTHVALUE", value)
	it.set("ITEMLENGTHUNIT", unit)
}

func (it *PaymentItem) Width() (value, unit string) {
	return it.get("ITEMWIDTHVALUE"), it.get("ITEMWIDTHUNIT")
}

func (it *PaymentItem) SetWidth(value, unit string) {
	it.set("ITEMWIDTHVALUE", value)
	it.set("ITEMWIDTHUNIT", unit)
}

func (it *PaymentItem) Height() (value, unit string) {
	return it.get("ITEMHEIGHTVALUE"), it.get("ITEMHEIGHTUNIT")
}

func (it *PaymentItem) SetHeight(value, unit string) {
	it.set("ITEMHEIGHTVALUE", value)
	it.set("ITEMHEIGHTUNIT", unit)
}

func (it *PaymentItem) SetCategory(c consts.ItemCategory) {
	it.set("ITEMCATEGORY", c.String())
}

// Category returns the item category; ok is false when it is missing or unknown.
func (it *PaymentItem) Category() (consts.ItemCategory, bool) {
	return consts.ParseItemCategory(it.get("ITEMCATEGORY"))
}

var ebayItemSchema = nvp.NewSchema(
	"EBAYITEMNUMBER", "EBAYITEMAUCTIONTXNID", "EBAYITEMORDERID", "EBAYCARTID",
)

// EbayItem references an eBay auction item.
type EbayItem struct{ group }

func NewEbayItem() *EbayItem {
	return &EbayItem{newGroup(ebayItemSchema, nil)}
}

func EbayItemFromNVP(v *nvp.Values) *EbayItem {
	return &EbayItem{newGroup(ebayItemSchema, v)}
}

func (*EbayItem) isItem() {}

func (it *EbayItem) ItemNumber() string                { return it.get("EBAYITEMNUMBER") }
func (it *EbayItem) SetItemNumber(n string)            { it.set("EBAYITEMNUMBER", n) }
func (it *EbayItem) AuctionTransactionID() string      { return it.get("EBAYITEMAUCTIONTXNID") }
func (it *EbayItem) SetAuctionTransactionID(id string) { it.set("EBAYITEMAUCTIONTXNID", id) }
func (it *EbayItem) OrderID() string                   { return it.get("EBAYITEMORDERID") }
func (it *EbayItem) SetOrderID(id string)              { it.set("EBAYITEMORDERID", id) }
func (it *EbayItem) CartID() string                    { return it.get("EBAYCARTID") }
func (it *EbayItem) SetCartID(id string)               { it.set("EBAYCARTID", id) }

// ItemFromNVP reconstructs one item group. PaymentItem is tried first, then
// EbayItem; nil is returned when neither recognizes any key.
func ItemFromNVP(v *nvp.Values) Item {
	if it := PaymentItemFromNVP(v); !it.IsEmpty() {
		return it
	}
	if it := EbayItemFromNVP(v); !it.IsEmpty() {
		return it
	}
	return nil
}

func itemsFromGroups(groups []nvp.IndexedGroup) []Item {
	var out []Item
	for _, g := range groups {
		if it := ItemFromNVP(g.Values); it != nil {
			out = append(out, it)
		}
	}
	return out
}

func itemValues(items []Item) []*nvp.Values {
	out := make([]*nvp.Values, 0, len(items))
	for _, it := range items {
		if isNilItem(it) {
			continue
		}
		out = append(out, it.NVP())
	}
	return out
}

func isNilItem(it Item) bool {
	switch v := it.(type) {
	case nil:
		return true
	case *PaymentItem:
		return v == nil
	case *EbayItem:
		return v == nil
	}
	return false
}
