package jsonutil

import "testing"

func TestMarshalKeepsURLs(t *testing.T) {
	b, err := Marshal(map[string]string{"REDIRECT": "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"REDIRECT\": \"https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-1\"\n}"
	if string(b) != want {
		t.Fatalf("got %s", b)
	}
}
