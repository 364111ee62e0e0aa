package cursor

import (
	"database/sql"

	"github.com/Station-Manager/errors"
)

// SQL adapts *sql.Rows to Cursor. Each call to Next scans the whole row into
// driver values (int64, float64, bool, []byte, string, time.Time or nil).
type SQL struct {
	rows    *sql.Rows
	columns []string
	index   map[string]int
	current []any
	err     error
}

var _ Cursor = (*SQL)(nil)

// FromRows wraps rows. The caller keeps ownership of rows only until Close is called
// on the returned cursor.
func FromRows(rows *sql.Rows) (*SQL, error) {
	const op errors.Op = "cursor.FromRows"
	if rows == nil {
		return nil, errors.New(op).Msg("rows must not be nil")
	}
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &SQL{rows: rows, columns: cols, index: indexColumns(cols)}, nil
}

func (s *SQL) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *SQL) Next() bool {
	const op errors.Op = "cursor.SQL.Next"
	s.current = nil
	if s.err != nil || !s.rows.Next() {
		return false
	}
	vals := make([]any, len(s.columns))
	dest := make([]any, len(s.columns))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := s.rows.Scan(dest...); err != nil {
		s.err = errors.New(op).Err(err)
		return false
	}
	s.current = vals
	return true
}

func (s *SQL) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

func (s *SQL) Close() error { return s.rows.Close() }

func (s *SQL) ColumnIndex(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

func (s *SQL) Value(idx int) any {
	if idx < 0 || idx >= len(s.current) {
		return nil
	}
	return s.current[idx]
}

func (s *SQL) IsNull(idx int) bool { return s.Value(idx) == nil }
