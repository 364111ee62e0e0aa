package microorm

import (
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

// FieldAdapter moves one field of T between a cursor row and a content container.
// A field adapter may span several columns (an embedded object does).
type FieldAdapter[T any] interface {
	// ColumnNames returns the columns read from a row, in order.
	ColumnNames() []string
	// WritableColumnNames returns the columns written into a container, in order.
	WritableColumnNames() []string
	SetValueFromCursor(row cursor.Row, obj *T) error
	PutToContentValues(obj *T, values *content.Values) error
}

// EmbeddedFieldInitializer allocates and attaches a nested owned object to a freshly
// created instance.
type EmbeddedFieldInitializer[T any] interface {
	InitEmbeddedField(obj *T)
}

// InitializerFunc adapts a function to EmbeddedFieldInitializer.
type InitializerFunc[T any] func(obj *T)

func (f InitializerFunc[T]) InitEmbeddedField(obj *T) { f(obj) }

func initializersOf[T any](fields []FieldAdapter[T]) []EmbeddedFieldInitializer[T] {
	var out []EmbeddedFieldInitializer[T]
	for _, f := range fields {
		if init, ok := f.(EmbeddedFieldInitializer[T]); ok {
			out = append(out, init)
		}
	}
	return out
}

func collectColumns[T any](fields []FieldAdapter[T], writable bool) []string {
	var out []string
	for _, f := range fields {
		if writable {
			out = append(out, f.WritableColumnNames()...)
		} else {
			out = append(out, f.ColumnNames()...)
		}
	}
	return out
}
