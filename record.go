package csvdoc

import "slices"

// Record is one row: an insertion-ordered mapping from key to value.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a record from alternating key, value arguments.
// A trailing key without a value maps to the empty string.
func NewRecord(kv ...string) *Record {
	r := &Record{}
	for i := 0; i < len(kv); i += 2 {
		v := ""
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		r.Set(kv[i], v)
	}
	return r
}

// assemble zips keys with fields by index. Missing fields become "" and extra
// fields are dropped. Duplicate keys keep their first position and last value.
func assemble(keys, fields []string) *Record {
	r := &Record{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]string, len(keys)),
	}
	for i, k := range keys {
		v := ""
		if i < len(fields) {
			v = fields[i]
		}
		r.Set(k, v)
	}
	return r
}

// Get returns the value stored under key, or "" when the key is absent.
func (r *Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r.values[key]
}

// Lookup returns the value stored under key and whether it is present.
func (r *Record) Lookup(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes key from the record.
func (r *Record) Delete(key string) {
	if r == nil {
		return
	}
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in iteration order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// Values returns the values in iteration order.
func (r *Record) Values() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// All calls yield for each pair in iteration order until yield returns false.
func (r *Record) All(yield func(key, value string) bool) {
	if r == nil {
		return
	}
	for _, k := range r.keys {
		if !yield(k, r.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return &Record{}
	}
	c := &Record{
		keys:   slices.Clone(r.keys),
		values: make(map[string]string, len(r.values)),
	}
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Map returns the record's pairs as a plain map.
func (r *Record) Map() map[string]string {
	out := make(map[string]string, r.Len())
	r.All(func(k, v string) bool {
		out[k] = v
		return true
	})
	return out
}
