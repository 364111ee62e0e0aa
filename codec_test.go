package microorm

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Station-Manager/microorm/cursor"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeConverters(t *testing.T) {
	double := func(v any) (any, error) { return v.(int) * 2, nil }
	toNil := func(v any) (any, error) { return nil, nil }
	fail := func(v any) (any, error) { return nil, errors.New("fail") }

	got, err := ComposeConverters(double, double)(3)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	got, err = ComposeConverters(toNil, double)(3)
	require.NoError(t, err)
	assert.Nil(t, got, "nil output propagates without calling the next converter")

	_, err = ComposeConverters(double, fail)(3)
	assert.Error(t, err)
}

func TestMapString(t *testing.T) {
	fn := MapString(strings.TrimSpace)

	got, err := fn("  x ")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = fn(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestCodec_ZeroValuePassesThrough(t *testing.T) {
	var c Codec

	got, err := c.decode("raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", got)

	got, err = c.encode(int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestCodec_Then(t *testing.T) {
	trimmed := StringCodec.Then(MapString(strings.TrimSpace), MapString(strings.ToLower))

	got, err := trimmed.decode([]byte("  Hello "))
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	got, err = trimmed.encode("LOUD")
	require.NoError(t, err)
	assert.Equal(t, "loud", got)

	same := Int64Codec.Then(nil, nil)
	got, err = same.decode(int64(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

type kitchenSink struct {
	When     time.Time
	Stamp    time.Time
	Maybe    null.Time
	Price    boilertypes.Decimal
	Discount boilertypes.NullDecimal
	Doc      boilertypes.JSON
	Extra    null.JSON
	Count    null.Int64
	Ratio    null.Float64
	Flag     null.Bool
	Blob     []byte
	Prefs    map[string]int
}

func newKitchenSinkAdapter() *Adapter[kitchenSink] {
	return NewBuilder[kitchenSink]().
		Field(
			Column("when_text", func(k *kitchenSink) *time.Time { return &k.When }, TimeTextCodec),
			Column("stamp_ms", func(k *kitchenSink) *time.Time { return &k.Stamp }, TimeMillisCodec),
			Column("maybe", func(k *kitchenSink) *null.Time { return &k.Maybe }, NullTimeCodec),
			Column("price", func(k *kitchenSink) *boilertypes.Decimal { return &k.Price }, DecimalCodec),
			Column("discount", func(k *kitchenSink) *boilertypes.NullDecimal { return &k.Discount }, NullDecimalCodec),
			Column("doc", func(k *kitchenSink) *boilertypes.JSON { return &k.Doc }, BoilerJSONCodec),
			Column("extra", func(k *kitchenSink) *null.JSON { return &k.Extra }, NullJSONCodec),
			Column("count", func(k *kitchenSink) *null.Int64 { return &k.Count }, NullInt64Codec),
			Column("ratio", func(k *kitchenSink) *null.Float64 { return &k.Ratio }, NullFloat64Codec),
			Column("flag", func(k *kitchenSink) *null.Bool { return &k.Flag }, NullBoolCodec),
			Column("blob", func(k *kitchenSink) *[]byte { return &k.Blob }, BytesCodec),
			Column("prefs", func(k *kitchenSink) *map[string]int { return &k.Prefs }, JSONCodec[map[string]int]()),
		).
		Build()
}

func TestCodecs_RoundTrip(t *testing.T) {
	a := newKitchenSinkAdapter()
	price, _ := new(decimal.Big).SetString("19.99")
	orig := &kitchenSink{
		When:     time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		Stamp:    time.Date(2024, 1, 1, 0, 0, 0, 123_000_000, time.UTC),
		Maybe:    null.TimeFrom(time.Date(2020, 2, 2, 2, 2, 2, 0, time.UTC)),
		Price:    boilertypes.NewDecimal(price),
		Doc:      boilertypes.JSON(`{"a":1}`),
		Extra:    null.JSONFrom([]byte(`[true]`)),
		Count:    null.Int64From(3),
		Flag:     null.BoolFrom(true),
		Blob:     []byte{0xde, 0xad},
		Prefs:    map[string]int{"volume": 11},
	}

	values, err := Values(a, orig)
	require.NoError(t, err)

	discount, _ := values.Get("discount")
	assert.Nil(t, discount)
	ratio, _ := values.Get("ratio")
	assert.Nil(t, ratio)

	c := cursor.FromValues(a.Projection(), values)
	require.True(t, c.Next())
	got, err := Load(a, c)
	require.NoError(t, err)

	assert.Equal(t, orig.When, got.When)
	assert.Equal(t, orig.Stamp, got.Stamp)
	assert.Equal(t, orig.Maybe, got.Maybe)
	assert.Zero(t, orig.Price.Cmp(got.Price.Big))
	assert.Nil(t, got.Discount.Big)
	assert.JSONEq(t, string(orig.Doc), string(got.Doc))
	assert.Equal(t, orig.Extra, got.Extra)
	assert.Equal(t, orig.Count, got.Count)
	assert.False(t, got.Ratio.Valid)
	assert.Equal(t, orig.Flag, got.Flag)
	assert.Equal(t, orig.Blob, got.Blob)
	assert.Equal(t, orig.Prefs, got.Prefs)
}
