// Package postgres holds converters for Postgres column types: native timestamps
// and exact NUMERIC values.
package postgres

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
)

// ColumnToTimeConverter converts a timestamp column value to a time.Time. Drivers
// return TIMESTAMP and TIMESTAMPTZ as time.Time; text is accepted for drivers in
// text mode. NULL reads as the zero time.
func ColumnToTimeConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.ColumnToTimeConverter"
	if src == nil {
		return time.Time{}, nil
	}
	if t, err := converters.CheckTime(op, src); err == nil {
		return t, nil
	}
	s, err := converters.CheckString(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	t, err := converters.ParseTimeText(op, s)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
	}
	return t, nil
}

// TimeToColumnConverter passes a time.Time through; Postgres drivers bind it
// natively. The zero time is written as NULL.
func TimeToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.TimeToColumnConverter"
	t, err := converters.CheckTime(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if t.IsZero() {
		return nil, nil
	}
	return t, nil
}
