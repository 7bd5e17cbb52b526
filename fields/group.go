// Package fields holds the typed field groups that requests and responses are
// built from.
//
// Request-side groups are created with NewX, seeded with their mandatory
// values. Response-side groups are created with XFromNVP, which keeps only the
// keys the group recognizes. Getters return "" for fields that are not set;
// Lookup tells the two apart.
package fields

import (
	"github.com/stremovskyy/go-nvp/nvp"
)

// Group is anything that can be flattened onto the wire.
type Group interface {
	NVP() *nvp.Values
}

type group struct {
	st *nvp.Store
}

func newGroup(schema nvp.Schema, src *nvp.Values) group {
	return group{st: nvp.NewStore(schema, src)}
}

// Lookup returns the raw value of key and whether it is set.
func (g *group) Lookup(key string) (string, bool) {
	return g.st.Get(key)
}

// NVP returns the group's wire pairs.
func (g *group) NVP() *nvp.Values {
	return g.st.Values()
}

// IsEmpty reports whether no field is set.
func (g *group) IsEmpty() bool {
	return g.st.IsEmpty()
}

func (g *group) get(key string) string {
	v, _ := g.st.Get(key)
	return v
}

func (g *group) set(key, value string) {
	g.st.Set(key, value)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// isEmptyGroup reports whether g carries no pairs; nil counts as empty.
func isEmptyGroup[G interface {
	*T
	IsEmpty() bool
}, T any](g G) bool {
	return g == nil || g.IsEmpty()
}
