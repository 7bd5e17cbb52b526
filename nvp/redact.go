package nvp

import "strings"

// SensitiveKeys are masked by Redact when no keys are given.
var SensitiveKeys = []string{"PWD", "SIGNATURE", "ACCT", "CVV2"}

const redacted = "***"

// Redact masks the values of keys in an encoded NVP body.
//
// The body is rewritten pair by pair so order and every other value are kept.
func Redact(body string, keys ...string) string {
	if body == "" {
		return body
	}
	if len(keys) == 0 {
		keys = SensitiveKeys
	}
	mask := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		mask[strings.ToUpper(k)] = struct{}{}
	}

	pairs := strings.Split(body, "&")
	for i, pair := range pairs {
		key, _, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if _, ok := mask[strings.ToUpper(key)]; ok {
			pairs[i] = key + "=" + redacted
		}
	}
	return strings.Join(pairs, "&")
}
