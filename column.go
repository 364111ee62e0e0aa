package microorm

import (
	"fmt"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

type columnOptions struct {
	readOnly           bool
	treatNullAsDefault bool
}

// ColumnOption configures a single column mapping.
type ColumnOption func(*columnOptions)

// ReadOnly keeps the column in the projection but out of the writable columns,
// e.g. for generated keys or computed columns.
func ReadOnly() ColumnOption { return func(o *columnOptions) { o.readOnly = true } }

// TreatNullAsDefault leaves the field untouched when the cell is NULL, so the value
// set by CreateInstance (or by the caller) survives.
func TreatNullAsDefault() ColumnOption {
	return func(o *columnOptions) { o.treatNullAsDefault = true }
}

// ColumnAdapter maps one field of T, reached through ref, to one column.
type ColumnAdapter[T, V any] struct {
	name  string
	ref   func(*T) *V
	codec Codec
	opts  columnOptions
}

var _ FieldAdapter[struct{}] = (*ColumnAdapter[struct{}, int])(nil)

// Column declares a column mapping. ref returns a pointer to the field inside the
// object and is used both to read and to assign it. Column panics if name is empty
// or ref is nil.
func Column[T, V any](name string, ref func(*T) *V, codec Codec, opts ...ColumnOption) *ColumnAdapter[T, V] {
	if name == "" {
		panic("microorm: column name must not be empty")
	}
	if ref == nil {
		panic(fmt.Sprintf("microorm: column %q has no field accessor", name))
	}
	c := &ColumnAdapter[T, V]{name: name, ref: ref, codec: codec}
	for _, f := range opts {
		f(&c.opts)
	}
	return c
}

// Name returns the column name.
func (c *ColumnAdapter[T, V]) Name() string { return c.name }

func (c *ColumnAdapter[T, V]) ColumnNames() []string { return []string{c.name} }

func (c *ColumnAdapter[T, V]) WritableColumnNames() []string {
	if c.opts.readOnly {
		return nil
	}
	return []string{c.name}
}

func (c *ColumnAdapter[T, V]) SetValueFromCursor(row cursor.Row, obj *T) error {
	const op errors.Op = "microorm.ColumnAdapter.SetValueFromCursor"
	idx := row.ColumnIndex(c.name)
	if idx < 0 {
		return errors.New(op).Errorf("column %s is not in the cursor", c.name)
	}
	raw := row.Value(idx)
	if raw == nil && c.opts.treatNullAsDefault {
		return nil
	}
	decoded, err := c.codec.decode(raw)
	if err != nil {
		return errors.New(op).Err(err).Msg("decoding column " + c.name)
	}
	var v V
	if decoded != nil {
		var ok bool
		if v, ok = decoded.(V); !ok {
			return errors.New(op).Errorf("column %s decoded to %T, field is %T", c.name, decoded, v)
		}
	}
	*c.ref(obj) = v
	return nil
}

func (c *ColumnAdapter[T, V]) PutToContentValues(obj *T, values *content.Values) error {
	const op errors.Op = "microorm.ColumnAdapter.PutToContentValues"
	if c.opts.readOnly {
		return nil
	}
	encoded, err := c.codec.encode(*c.ref(obj))
	if err != nil {
		return errors.New(op).Err(err).Msg("encoding column " + c.name)
	}
	values.Put(c.name, encoded)
	return nil
}
