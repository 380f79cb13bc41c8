package csvdoc

import "sort"

// matchKeyOrder returns a record holding only the pairs of src whose key appears in
// keys, ordered by the key's first position in keys. Keys missing from src stay
// missing; zero-fill happens at serialization.
func matchKeyOrder(keys []string, src func(yield func(key, value string) bool)) *Record {
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := index[k]; !dup {
			index[k] = i
		}
	}

	type bucket struct {
		pos        int
		key, value string
	}
	var buckets []bucket
	seen := make(map[int]int)
	src(func(k, v string) bool {
		pos, ok := index[k]
		if !ok {
			return true
		}
		if at, dup := seen[pos]; dup {
			buckets[at].value = v
			return true
		}
		seen[pos] = len(buckets)
		buckets = append(buckets, bucket{pos: pos, key: k, value: v})
		return true
	})

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].pos < buckets[j].pos })

	out := &Record{
		keys:   make([]string, 0, len(buckets)),
		values: make(map[string]string, len(buckets)),
	}
	for _, b := range buckets {
		out.Set(b.key, b.value)
	}
	return out
}

func mapPairs(m map[string]string) func(yield func(key, value string) bool) {
	return func(yield func(key, value string) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}
