package response

import (
	"sort"
	"strings"

	"github.com/stremovskyy/go-nvp/nvp"
)

// FMFFilterType is the action a Fraud Management Filter took.
type FMFFilterType string

const (
	FMFPending FMFFilterType = "PENDING"
	FMFReport  FMFFilterType = "REPORT"
	FMFDeny    FMFFilterType = "DENY"
)

var fmfFilterTypes = []FMFFilterType{FMFPending, FMFReport, FMFDeny}

const fmfKeyPrefix = nvp.ListPrefix + "FMF"

// FMFFilter is one L_FMF<type>ID<n> / L_FMF<type>NAME<n> entry.
type FMFFilter struct {
	Type  FMFFilterType
	Index int
	ID    string
	Name  string
}

// parseFMFFilters collects the filters of v ordered by type (pending, report,
// deny) and then by index.
func parseFMFFilters(v *nvp.Values) []FMFFilter {
	type key struct {
		t   FMFFilterType
		idx int
	}
	found := map[key]*FMFFilter{}
	v.Range(func(k, value string) bool {
		upper := strings.ToUpper(k)
		if !strings.HasPrefix(upper, fmfKeyPrefix) {
			return true
		}
		token, idx, ok := nvp.SplitIndex(upper[len(fmfKeyPrefix):])
		if !ok {
			return true
		}
		for _, t := range fmfFilterTypes {
			rest, ok := strings.CutPrefix(token, string(t))
			if !ok {
				continue
			}
			if rest != "ID" && rest != "NAME" {
				break
			}
			f := found[key{t, idx}]
			if f == nil {
				f = &FMFFilter{Type: t, Index: idx}
				found[key{t, idx}] = f
			}
			if rest == "ID" {
				f.ID = value
			} else {
				f.Name = value
			}
			break
		}
		return true
	})

	rank := func(t FMFFilterType) int {
		for i, ft := range fmfFilterTypes {
			if ft == t {
				return i
			}
		}
		return len(fmfFilterTypes)
	}
	out := make([]FMFFilter, 0, len(found))
	for _, f := range found {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return rank(out[i].Type) < rank(out[j].Type)
		}
		return out[i].Index < out[j].Index
	})
	return out
}

var doDirectPaymentSchema = nvp.NewSchema("TRANSACTIONID", "AMT", "AVSCODE", "CVV2MATCH")

// DoDirectPayment is the response of DoDirectPayment.
type DoDirectPayment struct {
	*Envelope
	scalars

	filters []FMFFilter
}

func NewDoDirectPayment(e *Envelope) *DoDirectPayment {
	return &DoDirectPayment{
		Envelope: e,
		scalars:  newScalars(doDirectPaymentSchema, e.values),
		filters:  parseFMFFilters(e.values),
	}
}

func (r *DoDirectPayment) TransactionID() string { return r.get("TRANSACTIONID") }
func (r *DoDirectPayment) Amount() string        { return r.get("AMT") }
func (r *DoDirectPayment) AVSCode() string       { return r.get("AVSCODE") }
func (r *DoDirectPayment) CVV2Match() string     { return r.get("CVV2MATCH") }

// FMFFilters are returned only when the request set RETURNFMFDETAILS.
func (r *DoDirectPayment) FMFFilters() []FMFFilter {
	out := make([]FMFFilter, len(r.filters))
	copy(out, r.filters)
	return out
}

var refundTransactionSchema = nvp.NewSchema(
	"REFUNDTRANSACTIONID", "FEEREFUNDAMT", "GROSSREFUNDAMT", "NETREFUNDAMT",
	"TOTALREFUNDEDAMOUNT", "CURRENCYCODE", "REFUNDSTATUS", "PENDINGREASON",
)

// RefundTransaction is the response of RefundTransaction.
type RefundTransaction struct {
	*Envelope
	scalars
}

func NewRefundTransaction(e *Envelope) *RefundTransaction {
	return &RefundTransaction{Envelope: e, scalars: newScalars(refundTransactionSchema, e.values)}
}

func (r *RefundTransaction) RefundTransactionID() string { return r.get("REFUNDTRANSACTIONID") }
func (r *RefundTransaction) FeeRefundAmount() string     { return r.get("FEEREFUNDAMT") }
func (r *RefundTransaction) GrossRefundAmount() string   { return r.get("GROSSREFUNDAMT") }
func (r *RefundTransaction) NetRefundAmount() string     { return r.get("NETREFUNDAMT") }
func (r *RefundTransaction) TotalRefundedAmount() string { return r.get("TOTALREFUNDEDAMOUNT") }
func (r *RefundTransaction) Currency() string            { return r.get("CURRENCYCODE") }
func (r *RefundTransaction) RefundStatus() string        { return r.get("REFUNDSTATUS") }
func (r *RefundTransaction) PendingReason() string       { return r.get("PENDINGREASON") }
