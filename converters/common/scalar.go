package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
)

// ColumnToStringConverter converts a column value to a string. NULL reads as "".
func ColumnToStringConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToStringConverter"
	if src == nil {
		return "", nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return srcVal, nil
}

// StringToColumnConverter converts a string field to a column value.
func StringToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.StringToColumnConverter"
	srcVal, ok := src.(string)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	return srcVal, nil
}

// ColumnToInt64Converter converts a column value to an int64. NULL reads as 0.
func ColumnToInt64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToInt64Converter"
	if src == nil {
		return int64(0), nil
	}
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return srcVal, nil
}

// ColumnToIntConverter converts a column value to an int. NULL reads as 0.
func ColumnToIntConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToIntConverter"
	v, err := ColumnToInt64Converter(src)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	return int(v.(int64)), nil
}

// IntegerToColumnConverter converts any integer field to an int64 column value.
func IntegerToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.IntegerToColumnConverter"
	if _, ok := src.(float64); ok {
		return nil, errors.New(op).Errorf("Given parameter not an integer, got %T", src)
	}
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return srcVal, nil
}

// ColumnToFloat64Converter converts a column value to a float64. NULL reads as 0.
func ColumnToFloat64Converter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToFloat64Converter"
	if src == nil {
		return float64(0), nil
	}
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return float64(0), errors.New(op).Err(err)
	}
	return srcVal, nil
}

// Float64ToColumnConverter converts a float field to a float64 column value.
func Float64ToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.Float64ToColumnConverter"
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
}

// ColumnToBoolConverter converts a column value to a bool. NULL reads as false.
func ColumnToBoolConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToBoolConverter"
	if src == nil {
		return false, nil
	}
	srcVal, err := converters.CheckBool(op, src)
	if err != nil {
		return false, errors.New(op).Err(err)
	}
	return srcVal, nil
}

// BoolToColumnConverter stores a bool as the integer 1 or 0, which every SQL
// dialect accepts.
func BoolToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.BoolToColumnConverter"
	srcVal, ok := src.(bool)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	if srcVal {
		return int64(1), nil
	}
	return int64(0), nil
}

// ColumnToBytesConverter converts a column value to a []byte. NULL reads as nil.
func ColumnToBytesConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToBytesConverter"
	if src == nil {
		return []byte(nil), nil
	}
	srcVal, err := converters.CheckBytes(op, src)
	if err != nil {
		return []byte(nil), errors.New(op).Err(err)
	}
	return srcVal, nil
}

// BytesToColumnConverter converts a []byte field to a column value. A nil slice
// is written as NULL.
func BytesToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.BytesToColumnConverter"
	srcVal, ok := src.([]byte)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a []byte, got %T", src)
	}
	if srcVal == nil {
		return nil, nil
	}
	return srcVal, nil
}
