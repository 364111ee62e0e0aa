package microorm

import (
	"github.com/Station-Manager/microorm/converters/common"
	"github.com/Station-Manager/microorm/converters/postgres"
	"github.com/Station-Manager/microorm/converters/sqlite"
)

// ConverterFunc converts a value from one representation to another. Every
// converter in the converters packages has this shape.
type ConverterFunc func(src any) (any, error)

// ValidatorFunc validates a column value before it is put into a container.
type ValidatorFunc func(value any) error

// ComposeConverters chains multiple ConverterFunc instances left-to-right.
// If any converter returns an error it aborts.
// Nil output propagates immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string; otherwise returns src unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}

// Codec pairs the two directions of a column mapping. Decode turns a raw cursor
// value (nil for NULL) into the field's type; Encode turns the field value into
// the value put into a container. A nil func passes values through unchanged.
type Codec struct {
	Decode ConverterFunc
	Encode ConverterFunc
}

func (c Codec) decode(src any) (any, error) {
	if c.Decode == nil {
		return src, nil
	}
	return c.Decode(src)
}

func (c Codec) encode(src any) (any, error) {
	if c.Encode == nil {
		return src, nil
	}
	return c.Encode(src)
}

// Then returns a codec that applies dec after c.Decode and enc before c.Encode, so a
// field-level conversion can sit on top of a column codec.
func (c Codec) Then(dec, enc ConverterFunc) Codec {
	out := Codec{Decode: c.Decode, Encode: c.Encode}
	if dec != nil {
		out.Decode = ComposeConverters(c.decode, dec)
	}
	if enc != nil {
		out.Encode = ComposeConverters(enc, c.encode)
	}
	return out
}

var (
	StringCodec  = Codec{Decode: common.ColumnToStringConverter, Encode: common.StringToColumnConverter}
	Int64Codec   = Codec{Decode: common.ColumnToInt64Converter, Encode: common.IntegerToColumnConverter}
	IntCodec     = Codec{Decode: common.ColumnToIntConverter, Encode: common.IntegerToColumnConverter}
	Float64Codec = Codec{Decode: common.ColumnToFloat64Converter, Encode: common.Float64ToColumnConverter}
	BoolCodec    = Codec{Decode: common.ColumnToBoolConverter, Encode: common.BoolToColumnConverter}
	BytesCodec   = Codec{Decode: common.ColumnToBytesConverter, Encode: common.BytesToColumnConverter}

	NullStringCodec  = Codec{Decode: common.ColumnToNullStringConverter, Encode: common.NullStringToColumnConverter}
	NullInt64Codec   = Codec{Decode: common.ColumnToNullInt64Converter, Encode: common.NullInt64ToColumnConverter}
	NullFloat64Codec = Codec{Decode: common.ColumnToNullFloat64Converter, Encode: common.NullFloat64ToColumnConverter}
	NullBoolCodec    = Codec{Decode: common.ColumnToNullBoolConverter, Encode: common.NullBoolToColumnConverter}
	NullJSONCodec    = Codec{Decode: common.ColumnToNullJSONConverter, Encode: common.NullJSONToColumnConverter}
	BoilerJSONCodec  = Codec{Decode: common.ColumnToBoilerJSONConverter, Encode: common.BoilerJSONToColumnConverter}

	// TimeTextCodec stores time.Time as RFC3339 TEXT.
	TimeTextCodec = Codec{Decode: sqlite.ColumnToTimeConverter, Encode: sqlite.TimeToTextColumnConverter}
	// TimeMillisCodec stores time.Time as epoch milliseconds.
	TimeMillisCodec = Codec{Decode: sqlite.ColumnToTimeConverter, Encode: sqlite.TimeToMillisColumnConverter}
	NullTimeCodec   = Codec{Decode: sqlite.ColumnToNullTimeConverter, Encode: sqlite.NullTimeToTextColumnConverter}
	// TimestampCodec binds time.Time natively, for drivers with a timestamp type.
	TimestampCodec = Codec{Decode: postgres.ColumnToTimeConverter, Encode: postgres.TimeToColumnConverter}

	DecimalCodec     = Codec{Decode: postgres.ColumnToDecimalConverter, Encode: postgres.DecimalToColumnConverter}
	NullDecimalCodec = Codec{Decode: postgres.ColumnToNullDecimalConverter, Encode: postgres.NullDecimalToColumnConverter}
)

// JSONCodec stores a value of type V as a JSON document in a TEXT column. NULL
// decodes to the zero V.
func JSONCodec[V any]() Codec {
	return Codec{
		Decode: func(src any) (any, error) {
			var v V
			if err := common.JSONUnmarshalInto(src, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
		Encode: common.JSONMarshalConverter,
	}
}
