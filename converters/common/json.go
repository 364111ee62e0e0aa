package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/microorm/converters"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// ColumnToNullJSONConverter converts a TEXT or BLOB column holding JSON to a null.JSON.
// The document is validated.
func ColumnToNullJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToNullJSONConverter"
	if src == nil {
		return null.JSON{}, nil
	}
	raw, err := converters.CheckBytes(op, src)
	if err != nil {
		return null.JSON{}, errors.New(op).Err(err)
	}
	if !json.Valid(raw) {
		return null.JSON{}, errors.New(op).Msg("Column does not hold a valid JSON document")
	}
	return null.JSONFrom(raw), nil
}

// NullJSONToColumnConverter writes a null.JSON field as TEXT, or NULL when invalid.
func NullJSONToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.NullJSONToColumnConverter"
	nj, ok := src.(null.JSON)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a null.JSON, got %T", src)
	}
	if !nj.Valid {
		return nil, nil
	}
	return string(nj.JSON), nil
}

// ColumnToBoilerJSONConverter converts a JSON column to sqlboiler's types.JSON.
// NULL reads as an empty document.
func ColumnToBoilerJSONConverter(src any) (any, error) {
	const op errors.Op = "converters.common.ColumnToBoilerJSONConverter"
	if src == nil {
		return boilertypes.JSON(nil), nil
	}
	raw, err := converters.CheckBytes(op, src)
	if err != nil {
		return boilertypes.JSON(nil), errors.New(op).Err(err)
	}
	if !json.Valid(raw) {
		return boilertypes.JSON(nil), errors.New(op).Msg("Column does not hold a valid JSON document")
	}
	return boilertypes.JSON(raw), nil
}

// BoilerJSONToColumnConverter writes a types.JSON field as TEXT; an empty document
// is written as NULL.
func BoilerJSONToColumnConverter(src any) (any, error) {
	const op errors.Op = "converters.common.BoilerJSONToColumnConverter"
	bj, ok := src.(boilertypes.JSON)
	if !ok {
		return nil, errors.New(op).Errorf("Given parameter not a types.JSON, got %T", src)
	}
	if len(bj) == 0 {
		return nil, nil
	}
	return string(bj), nil
}

// JSONMarshalConverter encodes any value into a JSON TEXT column value.
func JSONMarshalConverter(src any) (any, error) {
	const op errors.Op = "converters.common.JSONMarshalConverter"
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return string(data), nil
}

// JSONUnmarshalInto decodes a JSON column value into dst. NULL leaves dst untouched.
func JSONUnmarshalInto(src any, dst any) error {
	const op errors.Op = "converters.common.JSONUnmarshalInto"
	if src == nil {
		return nil
	}
	raw, err := converters.CheckBytes(op, src)
	if err != nil {
		return errors.New(op).Err(err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}
