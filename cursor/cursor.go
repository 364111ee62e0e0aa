// Package cursor defines the row cursor consumed by adapters and provides two
// implementations: SQL, over *sql.Rows, and Memory, over in-memory rows.
package cursor

// Row is the current row of a cursor. Values are indexed by column position.
type Row interface {
	// ColumnIndex returns the position of the named column, or -1 when the row has
	// no such column. Duplicate names resolve to the first position.
	ColumnIndex(name string) int
	// Value returns the raw value at idx, nil for SQL NULL.
	Value(idx int) any
	// IsNull reports whether the value at idx is SQL NULL.
	IsNull(idx int) bool
}

// Cursor iterates rows. It starts positioned before the first row; Next must be
// called before the first read. A Cursor is single-use and not safe for concurrent use.
type Cursor interface {
	Row
	Columns() []string
	Next() bool
	Err() error
	Close() error
}

func indexColumns(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}
