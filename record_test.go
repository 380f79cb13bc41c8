package csvdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordOrderAndLookup(t *testing.T) {
	t.Parallel()

	r := NewRecord("b", "2", "a", "1", "dangling")
	require.Equal(t, []string{"b", "a", "dangling"}, r.Keys())
	require.Equal(t, []string{"2", "1", ""}, r.Values())
	require.Equal(t, 3, r.Len())

	r.Set("b", "20")
	require.Equal(t, []string{"b", "a", "dangling"}, r.Keys(), "existing key keeps its position")
	require.Equal(t, "20", r.Get("b"))

	require.Equal(t, "", r.Get("missing"))
	_, ok := r.Lookup("missing")
	require.False(t, ok)

	r.Delete("a")
	require.Equal(t, []string{"b", "dangling"}, r.Keys())
	require.Equal(t, map[string]string{"b": "20", "dangling": ""}, r.Map())
}

func TestRecordZeroAndNil(t *testing.T) {
	t.Parallel()

	var zero Record
	zero.Set("k", "v")
	require.Equal(t, "v", zero.Get("k"))

	var nilRec *Record
	require.Equal(t, "", nilRec.Get("k"))
	require.Zero(t, nilRec.Len())
	require.Nil(t, nilRec.Keys())
	require.Equal(t, 0, nilRec.Clone().Len())
	nilRec.Delete("k")
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	r := NewRecord("a", "1")
	c := r.Clone()
	c.Set("a", "changed")
	c.Set("b", "2")

	require.Equal(t, "1", r.Get("a"))
	require.Equal(t, 1, r.Len())
}

func TestRecordAllStopsEarly(t *testing.T) {
	t.Parallel()

	r := NewRecord("a", "1", "b", "2", "c", "3")
	var seen []string
	for k := range r.All {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b", "c"}

	short := assemble(keys, []string{"1"})
	require.Equal(t, []string{"a", "b", "c"}, short.Keys())
	require.Equal(t, []string{"1", "", ""}, short.Values())

	long := assemble(keys, []string{"1", "2", "3", "4"})
	require.Equal(t, []string{"1", "2", "3"}, long.Values())

	dup := assemble([]string{"x", "x"}, []string{"1", "2"})
	require.Equal(t, []string{"x"}, dup.Keys())
	require.Equal(t, "2", dup.Get("x"))
}

func TestMatchKeyOrder(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b", "c"}

	got := matchKeyOrder(keys, NewRecord("c", "3", "extra", "x", "a", "1").All)
	require.Equal(t, []string{"a", "c"}, got.Keys(), "unknown keys dropped, missing keys stay missing")
	require.Equal(t, []string{"1", "3"}, got.Values())

	fromMap := matchKeyOrder(keys, mapPairs(map[string]string{"b": "2", "a": "1", "z": "26"}))
	require.Equal(t, []string{"a", "b"}, fromMap.Keys())

	dupHeader := matchKeyOrder([]string{"k", "j", "k"}, NewRecord("j", "J", "k", "K").All)
	require.Equal(t, []string{"k", "j"}, dupHeader.Keys(), "duplicate header keys resolve to the first position")
}
