package nvp

import "strings"

// Schema is the ordered set of wire keys a field group recognizes.
type Schema struct {
	keys  []string
	index map[string]struct{}
}

func NewSchema(keys ...string) Schema {
	s := Schema{index: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		k = strings.ToUpper(k)
		if _, dup := s.index[k]; dup {
			continue
		}
		s.keys = append(s.keys, k)
		s.index[k] = struct{}{}
	}
	return s
}

func (s Schema) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Has reports whether key (in any case) belongs to the schema.
func (s Schema) Has(key string) bool {
	_, ok := s.index[strings.ToUpper(key)]
	return ok
}

// Store holds the values of one field group.
type Store struct {
	schema Schema
	values *Values
}

// NewStore builds a store for schema.
//
// When src is not nil its keys are upper cased and only the ones present in
// the schema are copied, in schema order. Everything else is dropped.
func NewStore(schema Schema, src *Values) *Store {
	st := &Store{schema: schema, values: NewValues()}
	if src.Len() == 0 {
		return st
	}
	upper := make(map[string]string, src.Len())
	src.Range(func(key, value string) bool {
		upper[strings.ToUpper(key)] = value
		return true
	})
	for _, k := range schema.keys {
		if v, ok := upper[k]; ok {
			st.values.Set(k, v)
		}
	}
	return st
}

// Get returns the value of key and whether it is set.
func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.values.Get(key)
}

// Set upserts key. The schema is not consulted.
func (s *Store) Set(key, value string) {
	s.values.Set(key, value)
}

func (s *Store) Del(key string) {
	if s == nil {
		return
	}
	s.values.Del(key)
}

// Values returns a copy of all set pairs.
func (s *Store) Values() *Values {
	if s == nil {
		return NewValues()
	}
	return s.values.Clone()
}

func (s *Store) IsEmpty() bool {
	return s == nil || s.values.Len() == 0
}

func (s *Store) Schema() Schema {
	if s == nil {
		return Schema{}
	}
	return s.schema
}
