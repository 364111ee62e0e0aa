package converters

import (
	"math"
	"strconv"
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString accepts a string or the []byte form most drivers use for TEXT.
func CheckString(op errors.Op, src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
}

// CheckBytes accepts a []byte or a string.
func CheckBytes(op errors.Op, src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []byte(v), nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a []byte, got %T", src)
}

// CheckFloat64 accepts any float or integer kind.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	if i, err := CheckInt64(op, src); err == nil {
		return float64(i), nil
	}
	if s, ok := src.([]byte); ok {
		if f, err := strconv.ParseFloat(string(s), 64); err == nil {
			return f, nil
		}
	}
	return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
}

// CheckInt64 accepts every integer kind and a float64 holding an integral value,
// which is what JSON decoding and some drivers produce.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return -1, errors.New(op).Msg(ErrMsgIntOverflow)
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return -1, errors.New(op).Msg(ErrMsgIntOverflow)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), nil
		}
		return -1, errors.New(op).Errorf("Given float64 is not integral: %v", v)
	case []byte:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i, nil
		}
	}
	return -1, errors.New(op).Errorf("Given parameter not a int64, got %T", src)
}

// CheckBool accepts a bool or an integer, where any non-zero integer is true.
func CheckBool(op errors.Op, src any) (bool, error) {
	if b, ok := src.(bool); ok {
		return b, nil
	}
	if _, isFloat := src.(float64); !isFloat {
		if i, err := CheckInt64(op, src); err == nil {
			return i != 0, nil
		}
	}
	return false, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
}

// CheckTime accepts a time.Time only.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	if t, ok := src.(time.Time); ok {
		return t, nil
	}
	return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
}
