package microorm

import (
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Load creates a new instance and populates it from row.
func Load[T any](a *Adapter[T], row cursor.Row) (*T, error) {
	return a.FromCursor(row, a.CreateInstance())
}

// Values serializes obj into a fresh container.
func Values[T any](a *Adapter[T], obj *T) (*content.Values, error) {
	return a.ToContentValues(content.New(len(a.writableColumns)), obj)
}
