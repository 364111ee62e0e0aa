package microorm

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

// Adapter maps objects of type T to columns through an ordered list of field
// adapters. It is immutable after construction and safe for concurrent use as long
// as each cursor and container is used by one goroutine at a time.
type Adapter[T any] struct {
	fields             []FieldAdapter[T]
	initializers       []EmbeddedFieldInitializer[T]
	projection         []string
	writableColumns    []string
	writableDuplicates []string
	options            Options
}

// New creates an Adapter. The projection and writable columns are the
// concatenation, in declaration order, of the field adapters' columns.
//
// Duplicate writable columns do not fail here; ToContentValues refuses to write
// while FromCursor keeps working.
func New[T any](fields []FieldAdapter[T], initializers []EmbeddedFieldInitializer[T], opts ...Option) *Adapter[T] {
	optsState := Options{Validators: make(map[string]ValidatorFunc)}
	for _, f := range opts {
		f(&optsState)
	}
	a := &Adapter[T]{
		fields:       append([]FieldAdapter[T](nil), fields...),
		initializers: append([]EmbeddedFieldInitializer[T](nil), initializers...),
		options:      optsState,
	}
	a.projection = collectColumns(a.fields, false)
	a.writableColumns = collectColumns(a.fields, true)
	a.writableDuplicates = findDuplicates(a.writableColumns)
	return a
}

// findDuplicates returns the names occurring more than once, in the order their
// second occurrence is met.
func findDuplicates(columns []string) []string {
	uniques := make(map[string]struct{}, len(columns))
	seen := make(map[string]struct{})
	var result []string
	for _, c := range columns {
		if _, ok := uniques[c]; !ok {
			uniques[c] = struct{}{}
			continue
		}
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			result = append(result, c)
		}
	}
	return result
}

// CreateInstance allocates a new T and runs every embedded-field initializer on it.
func (a *Adapter[T]) CreateInstance() *T {
	obj := new(T)
	for _, init := range a.initializers {
		init.InitEmbeddedField(obj)
	}
	return obj
}

// FromCursor populates obj from row and returns obj. Fields whose
// columns are not mapped are left untouched.
func (a *Adapter[T]) FromCursor(row cursor.Row, obj *T) (*T, error) {
	const op errors.Op = "microorm.Adapter.FromCursor"
	if row == nil || obj == nil {
		return obj, internal(op, errors.New(op).Msg("row and object must not be nil"))
	}
	for _, fa := range a.fields {
		if err := fa.SetValueFromCursor(row, obj); err != nil {
			return obj, internal(op, err)
		}
	}
	return obj, nil
}

// ToContentValues writes every writable column of obj into values and returns it.
// A nil values is allocated. It fails with *DuplicateColumnsError when two field
// adapters write the same column.
func (a *Adapter[T]) ToContentValues(values *content.Values, obj *T) (*content.Values, error) {
	const op errors.Op = "microorm.Adapter.ToContentValues"
	if len(a.writableDuplicates) > 0 {
		return values, &DuplicateColumnsError{Columns: append([]string(nil), a.writableDuplicates...)}
	}
	if obj == nil {
		return values, internal(op, errors.New(op).Msg("object must not be nil"))
	}
	if values == nil {
		values = content.New(len(a.writableColumns))
	}
	for _, fa := range a.fields {
		if err := fa.PutToContentValues(obj, values); err != nil {
			return values, internal(op, err)
		}
		if err := a.validate(fa, values); err != nil {
			return values, err
		}
	}
	return values, nil
}

func (a *Adapter[T]) validate(fa FieldAdapter[T], values *content.Values) error {
	if len(a.options.Validators) == 0 {
		return nil
	}
	for _, c := range fa.WritableColumnNames() {
		fn := a.options.Validators[c]
		if fn == nil {
			continue
		}
		v, _ := values.Get(c)
		if err := fn(v); err != nil {
			return &ValidationError{Column: c, Value: v, Err: err}
		}
	}
	return nil
}

// Projection returns a copy of the columns read by FromCursor.
func (a *Adapter[T]) Projection() []string {
	return append(make([]string, 0, len(a.projection)), a.projection...)
}

// WritableColumns returns a copy of the columns written by ToContentValues.
func (a *Adapter[T]) WritableColumns() []string {
	return append(make([]string, 0, len(a.writableColumns)), a.writableColumns...)
}

// WritableDuplicates returns the writable columns declared more than once.
func (a *Adapter[T]) WritableDuplicates() []string {
	return append([]string(nil), a.writableDuplicates...)
}
