package nvp

import (
	"strconv"
	"testing"
)

func TestSplitIndex(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		index int
		ok    bool
	}{
		{in: "AMT0", name: "AMT", index: 0, ok: true},
		{in: "AMT10", name: "AMT", index: 10, ok: true},
		{in: "ITEMWEIGHTVALUE3", name: "ITEMWEIGHTVALUE", index: 3, ok: true},
		{in: "AMT", ok: false},
		{in: "42", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, index, ok := SplitIndex(tt.in)
			if ok != tt.ok {
				t.Fatalf("SplitIndex(%q) ok=%v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if name != tt.name || index != tt.index {
				t.Fatalf("SplitIndex(%q) = (%q, %d), want (%q, %d)", tt.in, name, index, tt.name, tt.index)
			}
		})
	}
}

func TestKeyBuilders(t *testing.T) {
	if got := ItemKey("AMT", 2); got != "L_AMT2" {
		t.Fatalf("ItemKey: %q", got)
	}
	if got := PaymentKey(PrefixPaymentRequest, 0, "SHIPTOCITY"); got != "PAYMENTREQUEST_0_SHIPTOCITY" {
		t.Fatalf("PaymentKey: %q", got)
	}
	if got := PaymentItemKey(PrefixPaymentRequest, 0, "AMT", 1); got != "L_PAYMENTREQUEST_0_AMT1" {
		t.Fatalf("PaymentItemKey: %q", got)
	}
}

func TestEncodeDecodeItemsRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			groups := make([]*Values, n)
			for i := range groups {
				g := NewValues()
				g.Set("NAME", "item "+strconv.Itoa(i))
				g.Set("AMT", strconv.Itoa(i)+".00")
				groups[i] = g
			}
			dst := NewValues()
			dst.Set("METHOD", "DoDirectPayment")
			EncodeItems(dst, groups)

			if dst.Len() != 1+2*n {
				t.Fatalf("encoded %d pairs, want %d", dst.Len(), 1+2*n)
			}

			rest, decoded := DecodeItems(dst)
			if rest.Value("METHOD") != "DoDirectPayment" || rest.Len() != 1 {
				t.Fatalf("unexpected rest: %v", rest.Map())
			}
			if len(decoded) != n {
				t.Fatalf("decoded %d groups, want %d", len(decoded), n)
			}
			for i, g := range decoded {
				if g.Index != i {
					t.Fatalf("group %d has index %d", i, g.Index)
				}
				if got := g.Values.Value("NAME"); got != "item "+strconv.Itoa(i) {
					t.Fatalf("group %d NAME=%q", i, got)
				}
				if got := g.Values.Value("AMT"); got != strconv.Itoa(i)+".00" {
					t.Fatalf("group %d AMT=%q", i, got)
				}
			}
		})
	}
}

func TestDecodeItemsDropsMalformedKeys(t *testing.T) {
	src := ParseValues("L_AMT=9.99&L_NAME0=Book&L_AMT0=1.00&AMT=1.00")

	rest, groups := DecodeItems(src)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Values.Len() != 2 {
		t.Fatalf("unexpected group: %v", groups[0].Values.Map())
	}
	if rest.Has("L_AMT") {
		t.Fatalf("malformed key must not survive decode")
	}
	if rest.Value("AMT") != "1.00" {
		t.Fatalf("unexpected rest: %v", rest.Map())
	}
}

func TestDecodeItemsOrdersByIndex(t *testing.T) {
	src := ParseValues("L_NAME2=c&L_NAME0=a&L_NAME1=b")
	_, groups := DecodeItems(src)
	want := []string{"a", "b", "c"}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.Values.Value("NAME") != want[i] {
			t.Fatalf("group %d NAME=%q, want %q", i, g.Values.Value("NAME"), want[i])
		}
	}
}

func TestEncodeDecodePaymentsRoundTrip(t *testing.T) {
	for _, n := range []int{1, MaxParallelPayments} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			dst := NewValues()
			dst.Set("RETURNURL", "https://example.com/return")
			for p := 0; p < n; p++ {
				fields := NewValues()
				fields.Set("AMT", strconv.Itoa(p+1)+".00")
				fields.Set("SHIPTOCITY", "Kyiv")
				EncodePayment(dst, PrefixPaymentRequest, p, fields)

				items := make([]*Values, p%4)
				for i := range items {
					it := NewValues()
					it.Set("NAME", "n"+strconv.Itoa(i))
					items[i] = it
				}
				EncodePaymentItems(dst, PrefixPaymentRequest, p, items)
			}

			rest, payments := DecodePayments(dst, PrefixPaymentRequest)
			if rest.Len() != 1 || !rest.Has("RETURNURL") {
				t.Fatalf("unexpected rest: %v", rest.Map())
			}
			if len(payments) != n {
				t.Fatalf("decoded %d payments, want %d", len(payments), n)
			}
			for p, pg := range payments {
				if pg.Index != p {
					t.Fatalf("payment %d index %d", p, pg.Index)
				}
				if got := pg.Values.Value("AMT"); got != strconv.Itoa(p+1)+".00" {
					t.Fatalf("payment %d AMT=%q", p, got)
				}
				if got := pg.Values.Value("SHIPTOCITY"); got != "Kyiv" {
					t.Fatalf("payment %d SHIPTOCITY=%q", p, got)
				}
				if len(pg.Items) != p%4 {
					t.Fatalf("payment %d has %d items, want %d", p, len(pg.Items), p%4)
				}
				for i, it := range pg.Items {
					if it.Values.Value("NAME") != "n"+strconv.Itoa(i) {
						t.Fatalf("payment %d item %d: %v", p, i, it.Values.Map())
					}
				}
			}
		})
	}
}

func TestDecodePaymentsDropsMalformedKeys(t *testing.T) {
	src := ParseValues("PAYMENTREQUEST_X_AMT=1&L_PAYMENTREQUEST_0_AMT=2&PAYMENTREQUEST_0_=3&PAYMENTREQUEST_1_AMT=4&TOKEN=EC-1")

	rest, payments := DecodePayments(src, PrefixPaymentRequest)
	if len(payments) != 1 || payments[0].Index != 1 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if payments[0].Values.Value("AMT") != "4" || len(payments[0].Items) != 0 {
		t.Fatalf("unexpected payment: %v", payments[0].Values.Map())
	}
	if rest.Len() != 1 || rest.Value("TOKEN") != "EC-1" {
		t.Fatalf("unexpected rest: %v", rest.Map())
	}
}

func TestDecodePaymentsSeparatesPrefixes(t *testing.T) {
	src := ParseValues("PAYMENTINFO_0_TRANSACTIONID=T1&PAYMENTREQUEST_0_SHORTMESSAGE=boom")

	rest, info := DecodePayments(src, PrefixPaymentInfo)
	if len(info) != 1 || info[0].Values.Value("TRANSACTIONID") != "T1" {
		t.Fatalf("unexpected info payments: %+v", info)
	}
	_, req := DecodePayments(rest, PrefixPaymentRequest)
	if len(req) != 1 || req[0].Values.Value("SHORTMESSAGE") != "boom" {
		t.Fatalf("unexpected request payments: %+v", req)
	}
}
