// Package sqlite holds converters for values stored the way SQLite stores them:
// timestamps as TEXT or as epoch milliseconds in an INTEGER column.
package sqlite

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
	"github.com/aarondl/null/v8"
)

// ColumnToTimeConverter converts a column value to a time.Time. It accepts a
// time.Time (drivers that parse declared DATETIME columns), TEXT in any layout
// converters.ParseTimeText understands, and an integer of epoch milliseconds.
// NULL reads as the zero time.
func ColumnToTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.sqlite.ColumnToTimeConverter"
	switch v := src.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v.UTC(), nil
	case string, []byte:
		s, err := converters.CheckString(op, v)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err)
		}
		t, err := converters.ParseTimeText(op, s)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
		}
		return t.UTC(), nil
	}
	millis, err := converters.CheckInt64(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// TimeToTextColumnConverter writes a time.Time as RFC3339 TEXT in UTC. The zero
// time is written as NULL.
func TimeToTextColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.sqlite.TimeToTextColumnConverter"
	t, err := converters.CheckTime(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if t.IsZero() {
		return nil, nil
	}
	return t.UTC().Format(time.RFC3339Nano), nil
}

// TimeToMillisColumnConverter writes a time.Time as epoch milliseconds. The zero
// time is written as NULL.
func TimeToMillisColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.sqlite.TimeToMillisColumnConverter"
	t, err := converters.CheckTime(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if t.IsZero() {
		return nil, nil
	}
	return t.UnixMilli(), nil
}

// ColumnToNullTimeConverter converts a column value to a null.Time.
func ColumnToNullTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.sqlite.ColumnToNullTimeConverter"
	if src == nil {
		return null.Time{}, nil
	}
	v, err := ColumnToTimeConverter(src)
	if err != nil {
		return null.Time{}, errors.New(op).Err(err)
	}
	return null.TimeFrom(v.(time.Time)), nil
}

// NullTimeToTextColumnConverter writes a null.Time as RFC3339 TEXT, or NULL when
// invalid.
func NullTimeToTextColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.sqlite.NullTimeToTextColumnConverter"
	nt, ok := src.(null.Time)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Time, got %T", src)
	}
	if !nt.Valid {
		return nil, nil
	}
	return nt.Time.UTC().Format(time.RFC3339Nano), nil
}
