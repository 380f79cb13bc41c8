package csvdoc

// Predicate decides whether the record at index i is kept by Filter.
type Predicate func(r *Record, i int) bool

// Transform returns the replacement for the record at index i in Map.
type Transform func(r *Record, i int) *Record

// NonEmpty keeps records holding at least one non-empty value. It is the
// predicate Filter uses when given nil.
func NonEmpty(r *Record, _ int) bool {
	keep := false
	r.All(func(_, v string) bool {
		keep = v != ""
		return !keep
	})
	return keep
}

// Filter removes every record for which pred returns false, keeping the relative
// order of the rest. A nil pred drops empty records (see NonEmpty).
//
// pred is called once per record in order and must not modify the table.
func (t *Table) Filter(pred Predicate) {
	if pred == nil {
		pred = NonEmpty
	}
	kept := make([]*Record, 0, len(t.rows))
	for i, r := range t.rows {
		if pred(r, i) {
			kept = append(kept, r)
		}
	}
	t.rows = kept
}

// Map replaces every record with fn's result. A nil result becomes an empty record.
//
// fn is called once per record in order and must not modify the table.
func (t *Table) Map(fn Transform) {
	out := make([]*Record, len(t.rows))
	for i, r := range t.rows {
		out[i] = fn(r, i)
	}
	t.rows = densify(out)
}

// Add appends a record built from values. Keys not in the header are dropped and
// the remaining pairs are ordered by header position.
func (t *Table) Add(values map[string]string) {
	t.rows = append(t.rows, matchKeyOrder(t.keys, mapPairs(values)))
}

// AddRecord is Add for a Record. r itself is not retained.
func (t *Table) AddRecord(r *Record) {
	t.rows = append(t.rows, matchKeyOrder(t.keys, r.All))
}
