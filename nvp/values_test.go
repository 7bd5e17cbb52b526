package nvp

import (
	"reflect"
	"testing"
)

func TestValuesKeepInsertionOrder(t *testing.T) {
	v := NewValues()
	v.Set("METHOD", "RefundTransaction")
	v.Set("TRANSACTIONID", "9XY")
	v.Set("NOTE", "first")
	v.Set("METHOD", "DoDirectPayment")

	want := []string{"METHOD", "TRANSACTIONID", "NOTE"}
	if got := v.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if got := v.Value("METHOD"); got != "DoDirectPayment" {
		t.Fatalf("METHOD = %q", got)
	}

	v.Del("TRANSACTIONID")
	if v.Has("TRANSACTIONID") || v.Len() != 2 {
		t.Fatalf("del failed: %v", v.Map())
	}
}

func TestValuesGetDistinguishesEmpty(t *testing.T) {
	v := NewValues()
	v.Set("NOTE", "")

	if val, ok := v.Get("NOTE"); !ok || val != "" {
		t.Fatalf("NOTE = (%q, %v), want (\"\", true)", val, ok)
	}
	if _, ok := v.Get("DESC"); ok {
		t.Fatalf("DESC must be absent")
	}

	var nilValues *Values
	if _, ok := nilValues.Get("DESC"); ok || nilValues.Len() != 0 {
		t.Fatalf("nil values must read as empty")
	}
}

func TestEncode(t *testing.T) {
	v := NewValues()
	v.Set("METHOD", "SetExpressCheckout")
	v.Set("RETURNURL", "https://example.com/ok?a=1&b=2")
	v.Set("DESC", "Two books")

	want := "METHOD=SetExpressCheckout&RETURNURL=https%3A%2F%2Fexample.com%2Fok%3Fa%3D1%26b%3D2&DESC=Two+books"
	if got := v.Encode(); got != want {
		t.Fatalf("Encode() =\n%s\nwant\n%s", got, want)
	}
	if NewValues().Encode() != "" {
		t.Fatalf("empty values must encode to empty string")
	}
}

func TestParseValues(t *testing.T) {
	v := ParseValues("ACK=Success&TIMESTAMP=2011%2d01%2d01T00%3a00%3a00Z&&=orphan&BAD=%zz&EMPTY=&NOEQ&MSG=a=b")

	tests := map[string]string{
		"ACK":       "Success",
		"TIMESTAMP": "2011-01-01T00:00:00Z",
		"BAD":       "%zz",
		"EMPTY":     "",
		"NOEQ":      "",
		"MSG":       "a=b",
	}
	for key, want := range tests {
		got, ok := v.Get(key)
		if !ok || got != want {
			t.Fatalf("%s = (%q, %v), want %q", key, got, ok, want)
		}
	}
	if v.Len() != len(tests) {
		t.Fatalf("unexpected pairs: %v", v.Map())
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	v := NewValues()
	v.Set("L_NAME0", "Ärger & Co")
	v.Set("AMT", "10.00")

	back := ParseValues(v.Encode())
	if !reflect.DeepEqual(back.Map(), v.Map()) || !reflect.DeepEqual(back.Keys(), v.Keys()) {
		t.Fatalf("round trip mismatch: %v vs %v", back.Map(), v.Map())
	}
}

func TestRedact(t *testing.T) {
	body := "USER=merchant&PWD=secret&SIGNATURE=sig%2B1&METHOD=DoDirectPayment&ACCT=4111111111111111"

	got := Redact(body)
	want := "USER=merchant&PWD=***&SIGNATURE=***&METHOD=DoDirectPayment&ACCT=***"
	if got != want {
		t.Fatalf("Redact() = %q, want %q", got, want)
	}

	if got := Redact(body, "USER"); got != "USER=***&PWD=secret&SIGNATURE=sig%2B1&METHOD=DoDirectPayment&ACCT=4111111111111111" {
		t.Fatalf("Redact(USER) = %q", got)
	}
}
