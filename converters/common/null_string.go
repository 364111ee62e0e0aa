package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
	"github.com/aarondl/null/v8"
)

// ColumnToNullStringConverter converts a column value to a null.String. NULL reads as
// an invalid null.String.
func ColumnToNullStringConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToNullStringConverter"
	if src == nil {
		return null.String{}, nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return null.String{}, errors.New(op).Err(err)
	}
	return null.StringFrom(srcVal), nil
}

// NullStringToColumnConverter converts a null.String field to a column value.
func NullStringToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullStringToColumnConverter"
	nullStr, ok := src.(null.String)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.String, got %T", src)
	}
	if !nullStr.Valid {
		return nil, nil
	}
	return nullStr.String, nil
}
