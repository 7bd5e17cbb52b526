// Package nvp implements the PayPal Name-Value-Pair wire format.
//
// Values is the ordered flat map every request and response passes through.
// Store filters a Values through a field Schema. The codec in this package
// maps repeated groups (line items, parallel payments) to and from their
// index-suffixed wire keys.
package nvp

import (
	"net/url"
	"strings"
)

// Values is an ordered set of wire pairs.
//
// Keys are unique. Setting an existing key replaces its value in place, so the
// encoded order is the order in which keys were first set.
// A nil *Values behaves like an empty one for reads.
type Values struct {
	keys []string
	m    map[string]string
}

func NewValues() *Values {
	return &Values{m: map[string]string{}}
}

// Get returns the value for key and whether it was set.
func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	val, ok := v.m[key]
	return val, ok
}

// Value returns the value for key or "" when the key is not set.
func (v *Values) Value(key string) string {
	val, _ := v.Get(key)
	return val
}

func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

func (v *Values) Set(key, value string) {
	if v.m == nil {
		v.m = map[string]string{}
	}
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

func (v *Values) Del(key string) {
	if v == nil {
		return
	}
	if _, ok := v.m[key]; !ok {
		return
	}
	delete(v.m, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns a copy of the keys in insertion order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Range calls fn for each pair in order until fn returns false.
func (v *Values) Range(fn func(key, value string) bool) {
	if v == nil {
		return
	}
	for _, k := range v.keys {
		if !fn(k, v.m[k]) {
			return
		}
	}
}

func (v *Values) Clone() *Values {
	out := NewValues()
	out.Merge(v)
	return out
}

// Merge copies every pair of other into v. Later pairs win.
func (v *Values) Merge(other *Values) {
	other.Range(func(key, value string) bool {
		v.Set(key, value)
		return true
	})
}

// Map returns the pairs as a plain map.
func (v *Values) Map() map[string]string {
	out := make(map[string]string, v.Len())
	v.Range(func(key, value string) bool {
		out[key] = value
		return true
	})
	return out
}

// Encode renders the pairs as KEY=urlencode(VALUE) joined by '&'.
func (v *Values) Encode() string {
	if v.Len() == 0 {
		return ""
	}
	var b strings.Builder
	v.Range(func(key, value string) bool {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
		return true
	})
	return b.String()
}

// ParseValues decodes a raw NVP body.
//
// Pairs are split on '&' and then on the first '='. Values are percent
// decoded with '+' as space; a value that fails to decode is kept as is.
// Empty pairs and pairs without a key are skipped.
func ParseValues(raw string) *Values {
	out := NewValues()
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		out.Set(key, value)
	}
	return out
}
