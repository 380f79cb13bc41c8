// # csvdoc: An Editable CSV Document Model for Go
//
// csvdoc parses delimited text into an addressable, mutable table and serializes it back,
// keeping the delimiter, quoting and `sep=` dialect hint stable across a round trip. No schema is
// required: every value is text, every row is a key to value record aligned to the header.
//
// # Features
//
// - Dialect detection: CRLF vs LF newlines and an optional `sep=<delimiter>` first line.
// - Quote-aware line tokenizer (`SplitFields`, `Reader`) with lenient recovery and an opt-in strict mode.
// - `Table` with header-order serialization, zero-filled short rows and truncated long rows.
// - Row transforms: `Filter`, `Map`, `Add` with key-order matching against the header.
// - Minimal quoting on output: only fields containing the delimiter are quoted.
// - Struct binding through `Table.Decode` and `Encode`.
//
// # Getting Started
//
//	t, err := csvdoc.Parse("sep=;\nname;qty\napple;3")
//	if err != nil {
//		// handle error
//	}
//	t.Add(map[string]string{"qty": "7", "name": "pear"})
//	fmt.Println(t.String()) // sep=;\nname;qty\napple;3\npear;7
//
// File access lives in the csvfile subpackage.
package csvdoc
