package cursor

import "github.com/Station-Manager/microorm/content"

// Memory is a Cursor over rows held in memory.
type Memory struct {
	columns []string
	index   map[string]int
	rows    [][]any
	pos     int
}

var _ Cursor = (*Memory)(nil)

// NewMemory returns a cursor over rows. Short rows read as NULL in their missing
// trailing columns.
func NewMemory(columns []string, rows ...[]any) *Memory {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Memory{columns: cols, index: indexColumns(cols), rows: rows, pos: -1}
}

// FromValues returns a cursor with one row per container. When columns is empty the
// keys of the first container are used.
func FromValues(columns []string, values ...*content.Values) *Memory {
	if len(columns) == 0 && len(values) > 0 {
		columns = values[0].Keys()
	}
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, v.Args(columns...))
	}
	return NewMemory(columns, rows...)
}

func (m *Memory) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

func (m *Memory) Next() bool {
	if m.pos >= len(m.rows) {
		return false
	}
	m.pos++
	return m.pos < len(m.rows)
}

func (m *Memory) Err() error { return nil }

func (m *Memory) Close() error {
	m.pos = len(m.rows)
	return nil
}

// MoveToFirst rewinds the cursor onto its first row and reports whether there is one.
func (m *Memory) MoveToFirst() bool {
	m.pos = 0
	return len(m.rows) > 0
}

func (m *Memory) ColumnIndex(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	return -1
}

func (m *Memory) Value(idx int) any {
	if m.pos < 0 || m.pos >= len(m.rows) {
		return nil
	}
	row := m.rows[m.pos]
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func (m *Memory) IsNull(idx int) bool { return m.Value(idx) == nil }
