package csvdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Table {
	t.Helper()
	tbl, err := Parse(text)
	require.NoError(t, err)
	return tbl
}

func TestFilterRemovesAndDensifies(t *testing.T) {
	t.Parallel()

	tbl := mustParse(t, "id,name\n0,zero\n1,one\n2,two")

	var visited []int
	tbl.Filter(func(_ *Record, i int) bool {
		visited = append(visited, i)
		return i != 1
	})

	require.Equal(t, []int{0, 1, 2}, visited)
	require.Equal(t, 2, tbl.Len())
	second, ok := tbl.Row(1)
	require.True(t, ok)
	require.Equal(t, "2", second.Get("id"))
	require.Equal(t, "id,name\n0,zero\n2,two", tbl.String())
}

func TestFilterDefaultDropsEmptyRows(t *testing.T) {
	t.Parallel()

	tbl := mustParse(t, "a,b\n1,2\n\n,\n,3")
	require.Equal(t, 4, tbl.Len())

	tbl.Filter(nil)
	require.Equal(t, "a,b\n1,2\n,3", tbl.String())
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	require.False(t, NonEmpty(nil, 0))
	require.False(t, NonEmpty(&Record{}, 0))
	require.False(t, NonEmpty(NewRecord("a", "", "b", ""), 0))
	require.True(t, NonEmpty(NewRecord("a", "", "b", "x"), 0))
	require.True(t, NonEmpty(NewRecord("a", " "), 0))
}

func TestMap(t *testing.T) {
	t.Parallel()

	tbl := mustParse(t, "name,qty\napple,3\npear,7")

	tbl.Map(func(r *Record, i int) *Record {
		out := r.Clone()
		out.Set("name", strings.ToUpper(r.Get("name")))
		if i == 1 {
			out.Set("qty", "")
		}
		return out
	})
	require.Equal(t, "name,qty\nAPPLE,3\nPEAR,", tbl.String())

	tbl.Map(func(*Record, int) *Record { return nil })
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "name,qty\n,\n,", tbl.String())
}

func TestAddMatchesHeaderOrder(t *testing.T) {
	t.Parallel()

	tbl, err := New([]string{"a", "b"})
	require.NoError(t, err)

	tbl.Add(map[string]string{"b": "2", "a": "1"})
	tbl.Add(map[string]string{"b": "only", "unknown": "x"})
	tbl.AddRecord(NewRecord("b", "4", "a", "3"))

	require.Equal(t, "a,b\n1,2\n,only\n3,4", tbl.String())

	first, _ := tbl.Row(0)
	require.Equal(t, []string{"a", "b"}, first.Keys())
	partial, _ := tbl.Row(1)
	require.Equal(t, []string{"b"}, partial.Keys(), "missing keys are not zero-filled in the record")
}

func TestAddRecordDoesNotRetainInput(t *testing.T) {
	t.Parallel()

	tbl, err := New([]string{"a"})
	require.NoError(t, err)

	in := NewRecord("a", "1")
	tbl.AddRecord(in)
	in.Set("a", "changed")

	require.Equal(t, "a\n1", tbl.String())
}
