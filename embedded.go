package microorm

import (
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

// EmbeddedAdapter maps a struct value embedded in T. Its columns are those of the
// nested field adapters, flattened in order.
type EmbeddedAdapter[T, E any] struct {
	ref      func(*T) *E
	fields   []FieldAdapter[E]
	inits    []EmbeddedFieldInitializer[E]
	columns  []string
	writable []string
}

// Embedded declares a value-embedded object. Nested adapters that need
// initialization (EmbeddedPtr) are initialized through the parent.
func Embedded[T, E any](ref func(*T) *E, fields ...FieldAdapter[E]) *EmbeddedAdapter[T, E] {
	if ref == nil {
		panic("microorm: embedded field has no accessor")
	}
	return &EmbeddedAdapter[T, E]{
		ref:      ref,
		fields:   fields,
		inits:    initializersOf(fields),
		columns:  collectColumns(fields, false),
		writable: collectColumns(fields, true),
	}
}

func (e *EmbeddedAdapter[T, E]) ColumnNames() []string {
	return append([]string(nil), e.columns...)
}

func (e *EmbeddedAdapter[T, E]) WritableColumnNames() []string {
	return append([]string(nil), e.writable...)
}

func (e *EmbeddedAdapter[T, E]) SetValueFromCursor(row cursor.Row, obj *T) error {
	nested := e.ref(obj)
	for _, f := range e.fields {
		if err := f.SetValueFromCursor(row, nested); err != nil {
			return err
		}
	}
	return nil
}

func (e *EmbeddedAdapter[T, E]) PutToContentValues(obj *T, values *content.Values) error {
	nested := e.ref(obj)
	for _, f := range e.fields {
		if err := f.PutToContentValues(nested, values); err != nil {
			return err
		}
	}
	return nil
}

// InitEmbeddedField runs the initializers of the nested adapters.
func (e *EmbeddedAdapter[T, E]) InitEmbeddedField(obj *T) {
	nested := e.ref(obj)
	for _, init := range e.inits {
		init.InitEmbeddedField(nested)
	}
}

// EmbeddedPtrAdapter maps an owned object held by pointer in T.
type EmbeddedPtrAdapter[T, E any] struct {
	ref      func(*T) **E
	fields   []FieldAdapter[E]
	inits    []EmbeddedFieldInitializer[E]
	columns  []string
	writable []string
}

// EmbeddedPtr declares a pointer-owned nested object. The adapter is also the
// object's initializer: CreateInstance allocates it. Reading into a nil pointer
// allocates it too; writing a nil pointer puts NULL in each of its writable columns.
func EmbeddedPtr[T, E any](ref func(*T) **E, fields ...FieldAdapter[E]) *EmbeddedPtrAdapter[T, E] {
	if ref == nil {
		panic("microorm: embedded field has no accessor")
	}
	return &EmbeddedPtrAdapter[T, E]{
		ref:      ref,
		fields:   fields,
		inits:    initializersOf(fields),
		columns:  collectColumns(fields, false),
		writable: collectColumns(fields, true),
	}
}

func (e *EmbeddedPtrAdapter[T, E]) ColumnNames() []string {
	return append([]string(nil), e.columns...)
}

func (e *EmbeddedPtrAdapter[T, E]) WritableColumnNames() []string {
	return append([]string(nil), e.writable...)
}

func (e *EmbeddedPtrAdapter[T, E]) allocate() *E {
	nested := new(E)
	for _, init := range e.inits {
		init.InitEmbeddedField(nested)
	}
	return nested
}

func (e *EmbeddedPtrAdapter[T, E]) InitEmbeddedField(obj *T) {
	*e.ref(obj) = e.allocate()
}

func (e *EmbeddedPtrAdapter[T, E]) SetValueFromCursor(row cursor.Row, obj *T) error {
	p := e.ref(obj)
	if *p == nil {
		*p = e.allocate()
	}
	for _, f := range e.fields {
		if err := f.SetValueFromCursor(row, *p); err != nil {
			return err
		}
	}
	return nil
}

func (e *EmbeddedPtrAdapter[T, E]) PutToContentValues(obj *T, values *content.Values) error {
	nested := *e.ref(obj)
	if nested == nil {
		for _, c := range e.writable {
			values.PutNull(c)
		}
		return nil
	}
	for _, f := range e.fields {
		if err := f.PutToContentValues(nested, values); err != nil {
			return err
		}
	}
	return nil
}
