package csvdoc

import (
	"strings"
	"testing"
)

func benchmarkData() string {
	return "id,name,description,price\n" + strings.Repeat(`1,xxxxxxxxxxxxxxxx,"yyyyyyyy, with a comma and ""quotes""",12.50
2,zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz,wwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwww,3
3,,vvvv,
`, 200)
}

func BenchmarkParse(b *testing.B) {
	data := benchmarkData()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	tbl, err := Parse(benchmarkData())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for b.Loop() {
		_ = tbl.String()
	}
}

func BenchmarkSplitFields(b *testing.B) {
	const line = `1,xxxxxxxxxxxxxxxx,"yyyyyyyy, with a comma and ""quotes""",12.50`
	b.ReportAllocs()
	b.SetBytes(int64(len(line)))

	for b.Loop() {
		_ = SplitFields(line, ',', '"')
	}
}
