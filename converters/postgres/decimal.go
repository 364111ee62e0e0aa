package postgres

import (
	"strconv"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

func parseBig(op errors.Op, src any) (*decimal.Big, error) {
	switch v := src.(type) {
	case string, []byte:
		s, err := converters.CheckString(op, v)
		if err != nil {
			return nil, err
		}
		d, ok := new(decimal.Big).SetString(s)
		if !ok || d.IsNaN(0) {
			return nil, errors.New(op).Msg(converters.ErrMsgBadDecimal)
		}
		return d, nil
	case float64:
		return new(decimal.Big).SetFloat64(v), nil
	}
	i, err := converters.CheckInt64(op, src)
	if err != nil {
		return nil, err
	}
	return new(decimal.Big).SetMantScale(i, 0), nil
}

// ColumnToDecimalConverter converts a NUMERIC column value to types.Decimal.
// NUMERIC arrives as text from Postgres drivers, and as REAL or INTEGER from SQLite.
func ColumnToDecimalConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.ColumnToDecimalConverter"
	if src == nil {
		return types.NewDecimal(new(decimal.Big)), nil
	}
	d, err := parseBig(op, src)
	if err != nil {
		return types.Decimal{}, errors.New(op).Err(err)
	}
	return types.NewDecimal(d), nil
}

// DecimalToColumnConverter writes a types.Decimal as its exact text form.
func DecimalToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.DecimalToColumnConverter"
	d, ok := src.(types.Decimal)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a types.Decimal, got %T", src)
	}
	if d.Big == nil {
		return "0", nil
	}
	return d.Big.String(), nil
}

// ColumnToNullDecimalConverter converts a NUMERIC column value to types.NullDecimal.
func ColumnToNullDecimalConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.ColumnToNullDecimalConverter"
	if src == nil {
		return types.NewNullDecimal(nil), nil
	}
	d, err := parseBig(op, src)
	if err != nil {
		return types.NullDecimal{}, errors.New(op).Err(err)
	}
	return types.NewNullDecimal(d), nil
}

// NullDecimalToColumnConverter writes a types.NullDecimal as text, or NULL.
func NullDecimalToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.postgres.NullDecimalToColumnConverter"
	d, ok := src.(types.NullDecimal)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a types.NullDecimal, got %T", src)
	}
	if d.Big == nil {
		return nil, nil
	}
	return d.Big.String(), nil
}

// FormatFixed renders a float with prec decimals, for NUMERIC(p, prec) columns fed
// from float fields.
func FormatFixed(prec int) func(any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.postgres.FormatFixed"
		f, err := converters.CheckFloat64(op, src)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		return strconv.FormatFloat(f, 'f', prec, 64), nil
	}
}
