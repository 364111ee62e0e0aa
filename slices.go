package microorm

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/cursor"
)

// ListFromCursor reads every remaining row of c into a new instance. It does not
// close c. Any failure aborts the read and nothing is returned.
func ListFromCursor[T any](a *Adapter[T], c cursor.Cursor) ([]*T, error) {
	const op errors.Op = "microorm.ListFromCursor"
	var result []*T
	for c.Next() {
		obj, err := Load(a, c)
		if err != nil {
			return nil, err
		}
		result = append(result, obj)
	}
	if err := c.Err(); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return result, nil
}

// ValuesSlice serializes each object into its own container.
func ValuesSlice[T any](a *Adapter[T], objs []*T) ([]*content.Values, error) {
	result := make([]*content.Values, 0, len(objs))
	for _, obj := range objs {
		v, err := Values(a, obj)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
