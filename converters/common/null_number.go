package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
	"github.com/aarondl/null/v8"
)

// ColumnToNullInt64Converter converts a column value to a null.Int64.
func ColumnToNullInt64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToNullInt64Converter"
	if src == nil {
		return null.Int64{}, nil
	}
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int64{}, errors.New(op).Err(err)
	}
	return null.Int64From(srcVal), nil
}

// NullInt64ToColumnConverter converts a null.Int64 field to a column value.
func NullInt64ToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullInt64ToColumnConverter"
	n, ok := src.(null.Int64)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Int64, got %T", src)
	}
	if !n.Valid {
		return nil, nil
	}
	return n.Int64, nil
}

// ColumnToNullFloat64Converter converts a column value to a null.Float64.
func ColumnToNullFloat64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToNullFloat64Converter"
	if src == nil {
		return null.Float64{}, nil
	}
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return null.Float64{}, errors.New(op).Err(err)
	}
	return null.Float64From(srcVal), nil
}

// NullFloat64ToColumnConverter converts a null.Float64 field to a column value.
func NullFloat64ToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullFloat64ToColumnConverter"
	n, ok := src.(null.Float64)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Float64, got %T", src)
	}
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

// ColumnToNullBoolConverter converts a column value to a null.Bool.
func ColumnToNullBoolConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToNullBoolConverter"
	if src == nil {
		return null.Bool{}, nil
	}
	srcVal, err := converters.CheckBool(op, src)
	if err != nil {
		return null.Bool{}, errors.New(op).Err(err)
	}
	return null.BoolFrom(srcVal), nil
}

// NullBoolToColumnConverter converts a null.Bool field to 1, 0 or NULL.
func NullBoolToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullBoolToColumnConverter"
	n, ok := src.(null.Bool)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.Bool, got %T", src)
	}
	if !n.Valid {
		return nil, nil
	}
	return BoolToColumnConverter(n.Bool)
}
