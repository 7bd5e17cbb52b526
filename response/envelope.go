// Package response parses PayPal NVP responses.
//
// Parse turns a raw body into an Envelope: the decoded pairs, the common
// header values and the L_ERRORCODE<n> family as Error records. The typed
// responses wrap an Envelope and expose the values of one operation.
package response

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/nvp"
)

// Error is one entry of the L_ERRORCODE<n> family.
type Error struct {
	Index        int
	Code         string
	ShortMessage string
	LongMessage  string
	SeverityCode string
}

func (e Error) String() string {
	msg := e.ShortMessage
	if e.LongMessage != "" && e.LongMessage != e.ShortMessage {
		msg += ": " + e.LongMessage
	}
	if e.Code == "" {
		return msg
	}
	return e.Code + " " + msg
}

var errorFields = map[string]func(*Error, string){
	"ERRORCODE":    func(e *Error, v string) { e.Code = v },
	"SHORTMESSAGE": func(e *Error, v string) { e.ShortMessage = v },
	"LONGMESSAGE":  func(e *Error, v string) { e.LongMessage = v },
	"SEVERITYCODE": func(e *Error, v string) { e.SeverityCode = v },
}

// Envelope is a parsed response.
type Envelope struct {
	raw    string
	values *nvp.Values
	errors []Error
}

// Parse decodes raw. It never fails: malformed pairs are skipped and
// undecodable values are kept verbatim.
//
// Error keys are moved out of the flat values into Errors.
func Parse(raw string) *Envelope {
	all := nvp.ParseValues(raw)
	e := &Envelope{raw: raw, values: nvp.NewValues()}

	byIndex := map[int]*Error{}
	all.Range(func(key, value string) bool {
		if field, idx, ok := errorKey(key); ok {
			rec := byIndex[idx]
			if rec == nil {
				rec = &Error{Index: idx}
				byIndex[idx] = rec
			}
			errorFields[field](rec, value)
			return true
		}
		e.values.Set(key, value)
		return true
	})

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	for _, idx := range indexes {
		e.errors = append(e.errors, *byIndex[idx])
	}
	return e
}

func errorKey(key string) (string, int, bool) {
	upper := strings.ToUpper(key)
	if !strings.HasPrefix(upper, nvp.ListPrefix) {
		return "", 0, false
	}
	field, idx, ok := nvp.SplitIndex(upper[len(nvp.ListPrefix):])
	if !ok {
		return "", 0, false
	}
	if _, known := errorFields[field]; !known {
		return "", 0, false
	}
	return field, idx, true
}

// Raw returns the body as received.
func (e *Envelope) Raw() string { return e.raw }

// Values returns a copy of the decoded pairs without the error keys.
func (e *Envelope) Values() *nvp.Values { return e.values.Clone() }

func (e *Envelope) Errors() []Error {
	out := make([]Error, len(e.errors))
	copy(out, e.errors)
	return out
}

func (e *Envelope) Value(key string) string { return e.values.Value(key) }

func (e *Envelope) Ack() consts.Ack       { return consts.Ack(e.Value(consts.KeyAck)) }
func (e *Envelope) Timestamp() string     { return e.Value(consts.KeyTimestamp) }
func (e *Envelope) CorrelationID() string { return e.Value(consts.KeyCorrelationID) }
func (e *Envelope) Version() string       { return e.Value(consts.KeyVersion) }
func (e *Envelope) Build() string         { return e.Value(consts.KeyBuild) }

func (e *Envelope) IsSuccess() bool { return e.Ack().IsSuccess() }

// Err returns a *FailureError when PayPal acknowledged a failure, or when no
// success was acknowledged and errors were returned. It returns nil
// otherwise.
func (e *Envelope) Err() error {
	ack := e.Ack()
	if ack.IsFailure() || (!ack.IsSuccess() && len(e.errors) > 0) {
		return &FailureError{Ack: ack, CorrelationID: e.CorrelationID(), Errors: e.Errors()}
	}
	return nil
}

// FailureError is a response PayPal did not acknowledge as successful.
type FailureError struct {
	Ack           consts.Ack
	CorrelationID string
	Errors        []Error
}

func (e *FailureError) Error() string {
	ack := string(e.Ack)
	if ack == "" {
		ack = "no ack"
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("paypal nvp: %s (correlation id %q)", ack, e.CorrelationID)
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, er := range e.Errors {
		msgs = append(msgs, er.String())
	}
	return fmt.Sprintf("paypal nvp: %s (correlation id %q): %s", ack, e.CorrelationID, strings.Join(msgs, "; "))
}

// Codes returns the error codes in index order.
func (e *FailureError) Codes() []string {
	out := make([]string, 0, len(e.Errors))
	for _, er := range e.Errors {
		out = append(out, er.Code)
	}
	return out
}

// IsFailure checks whether err is a *FailureError.
func IsFailure(err error) bool {
	var fe *FailureError
	return errors.As(err, &fe)
}
