package nvp

import (
	"sort"
	"strconv"
	"strings"
)

const (
	// ListPrefix marks every repeated-item key on the wire.
	ListPrefix = "L_"

	PrefixPaymentRequest = "PAYMENTREQUEST"
	PrefixPaymentInfo    = "PAYMENTINFO"

	// MaxParallelPayments is the number of payments PayPal accepts in one request.
	MaxParallelPayments = 10
)

// SplitIndex splits the trailing run of decimal digits off token.
//
//	SplitIndex("AMT10") // "AMT", 10, true
//
// ok is false when token has no trailing digits or nothing precedes them.
func SplitIndex(token string) (name string, index int, ok bool) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	if i == len(token) || i == 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(token[i:])
	if err != nil {
		return "", 0, false
	}
	return token[:i], n, true
}

// ItemKey returns L_<field><index>.
func ItemKey(field string, index int) string {
	return ListPrefix + field + strconv.Itoa(index)
}

// PaymentKey returns <prefix>_<n>_<field>.
func PaymentKey(prefix string, n int, field string) string {
	return prefix + "_" + strconv.Itoa(n) + "_" + field
}

// PaymentItemKey returns L_<prefix>_<n>_<field><index>.
func PaymentItemKey(prefix string, n int, field string, index int) string {
	return ListPrefix + prefix + "_" + strconv.Itoa(n) + "_" + field + strconv.Itoa(index)
}

// IndexedGroup is one repeated group recovered from the wire.
type IndexedGroup struct {
	Index  int
	Values *Values
}

// PaymentGroup is one namespaced payment recovered from the wire.
type PaymentGroup struct {
	Index  int
	Values *Values
	Items  []IndexedGroup
}

// EncodeItems writes every group under L_<field><i>, i being its position.
func EncodeItems(dst *Values, groups []*Values) {
	for i, g := range groups {
		g.Range(func(key, value string) bool {
			dst.Set(ItemKey(key, i), value)
			return true
		})
	}
}

// EncodePaymentItems writes every group under L_<prefix>_<n>_<field><i>.
func EncodePaymentItems(dst *Values, prefix string, n int, groups []*Values) {
	for i, g := range groups {
		g.Range(func(key, value string) bool {
			dst.Set(PaymentItemKey(prefix, n, key, i), value)
			return true
		})
	}
}

// EncodePayment writes fields under <prefix>_<n>_<field>.
func EncodePayment(dst *Values, prefix string, n int, fields *Values) {
	fields.Range(func(key, value string) bool {
		dst.Set(PaymentKey(prefix, n, key), value)
		return true
	})
}

// DecodeItems groups every L_<field><i> key of src by i.
//
// Groups are returned in ascending index order. Keys without the list prefix
// are returned in rest. List keys without a trailing index are dropped.
func DecodeItems(src *Values) (rest *Values, groups []IndexedGroup) {
	rest = NewValues()
	byIndex := map[int]*Values{}
	src.Range(func(key, value string) bool {
		upper := strings.ToUpper(key)
		if !strings.HasPrefix(upper, ListPrefix) {
			rest.Set(key, value)
			return true
		}
		field, idx, ok := SplitIndex(upper[len(ListPrefix):])
		if !ok {
			return true
		}
		groupAt(byIndex, idx).Set(field, value)
		return true
	})
	return rest, sortGroups(byIndex)
}

// DecodePayments groups namespaced payment keys of src by payment index.
//
// <prefix>_<n>_<field> keys become the payment's Values and
// L_<prefix>_<n>_<field><i> keys become its Items. Payments and items are
// ordered by index. Keys outside the namespace are returned in rest;
// namespaced keys that cannot be parsed are dropped.
func DecodePayments(src *Values, prefix string) (rest *Values, payments []PaymentGroup) {
	rest = NewValues()
	prefix = strings.ToUpper(prefix)
	scalarPrefix := prefix + "_"
	itemPrefix := ListPrefix + prefix + "_"

	type building struct {
		fields *Values
		items  map[int]*Values
	}
	byIndex := map[int]*building{}
	at := func(n int) *building {
		b, ok := byIndex[n]
		if !ok {
			b = &building{fields: NewValues(), items: map[int]*Values{}}
			byIndex[n] = b
		}
		return b
	}

	src.Range(func(key, value string) bool {
		upper := strings.ToUpper(key)
		switch {
		case strings.HasPrefix(upper, itemPrefix):
			n, token, ok := splitPaymentIndex(upper[len(itemPrefix):])
			if !ok {
				return true
			}
			field, idx, ok := SplitIndex(token)
			if !ok {
				return true
			}
			groupAt(at(n).items, idx).Set(field, value)
		case strings.HasPrefix(upper, scalarPrefix):
			n, field, ok := splitPaymentIndex(upper[len(scalarPrefix):])
			if !ok {
				return true
			}
			at(n).fields.Set(field, value)
		default:
			rest.Set(key, value)
		}
		return true
	})

	indexes := make([]int, 0, len(byIndex))
	for n := range byIndex {
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	for _, n := range indexes {
		b := byIndex[n]
		payments = append(payments, PaymentGroup{
			Index:  n,
			Values: b.fields,
			Items:  sortGroups(b.items),
		})
	}
	return rest, payments
}

// splitPaymentIndex parses "<n>_<rest>".
func splitPaymentIndex(s string) (int, string, bool) {
	head, tail, found := strings.Cut(s, "_")
	if !found || head == "" || tail == "" {
		return 0, "", false
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return 0, "", false
	}
	return n, tail, true
}

func groupAt(m map[int]*Values, idx int) *Values {
	g, ok := m[idx]
	if !ok {
		g = NewValues()
		m[idx] = g
	}
	return g
}

func sortGroups(m map[int]*Values) []IndexedGroup {
	if len(m) == 0 {
		return nil
	}
	out := make([]IndexedGroup, 0, len(m))
	for idx, g := range m {
		out = append(out, IndexedGroup{Index: idx, Values: g})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
