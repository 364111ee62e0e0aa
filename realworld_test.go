package microorm

import (
	"database/sql"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/Station-Manager/microorm/content"
	"github.com/Station-Manager/microorm/converters/postgres"
	"github.com/Station-Manager/microorm/cursor"
	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"
)

type loggingStation struct {
	StationCallsign string
	MyCity          null.String
}

type qso struct {
	ID      int64
	Call    string
	Band    string
	Freq    float64
	Mode    string
	QsoDate time.Time
	Comment null.String
	Station *loggingStation
}

func newQsoAdapter() *Adapter[qso] {
	return NewBuilder[qso]().
		Field(
			Column("id", func(q *qso) *int64 { return &q.ID }, Int64Codec, ReadOnly()),
			Column("call", func(q *qso) *string { return &q.Call }, StringCodec.Then(nil, MapString(strings.ToUpper))),
			Column("band", func(q *qso) *string { return &q.Band }, StringCodec),
			Column("freq", func(q *qso) *float64 { return &q.Freq }, Codec{
				Decode: Float64Codec.Decode,
				Encode: ConverterFunc(postgres.FormatFixed(3)),
			}),
			Column("mode", func(q *qso) *string { return &q.Mode }, StringCodec),
			Column("qso_date", func(q *qso) *time.Time { return &q.QsoDate }, TimeTextCodec),
			Column("comment", func(q *qso) *null.String { return &q.Comment }, NullStringCodec),
			EmbeddedPtr(func(q *qso) **loggingStation { return &q.Station },
				Column("station_callsign", func(s *loggingStation) *string { return &s.StationCallsign }, StringCodec),
				Column("my_city", func(s *loggingStation) *null.String { return &s.MyCity }, NullStringCodec),
			),
		).
		AddValidator("call", func(v any) error {
			if s, _ := v.(string); s == "" {
				return stderrors.New("call is required")
			}
			return nil
		}).
		Build()
}

type TestSuite struct {
	suite.Suite
	db      *sql.DB
	adapter *Adapter[qso]
}

func TestRealworld(T *testing.T) {
	suite.Run(T, new(TestSuite))
}

func (suite *TestSuite) SetupTest() {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(suite.T(), err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE qso (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		call TEXT NOT NULL,
		band TEXT,
		freq REAL,
		mode TEXT,
		qso_date TEXT,
		comment TEXT,
		station_callsign TEXT,
		my_city TEXT
	)`)
	require.NoError(suite.T(), err)
	suite.db = db
	suite.adapter = newQsoAdapter()
}

func (suite *TestSuite) TearDownTest() {
	suite.NoError(suite.db.Close())
}

func (suite *TestSuite) insert(values *content.Values) {
	cols := suite.adapter.WritableColumns()
	stmt := "INSERT INTO qso (" + strings.Join(cols, ", ") + ") VALUES (?" + strings.Repeat(", ?", len(cols)-1) + ")"
	_, err := suite.db.Exec(stmt, values.Args(cols...)...)
	require.NoError(suite.T(), err)
}

func (suite *TestSuite) selectAll() []*qso {
	rows, err := suite.db.Query("SELECT " + strings.Join(suite.adapter.Projection(), ", ") + " FROM qso ORDER BY id")
	require.NoError(suite.T(), err)
	c, err := cursor.FromRows(rows)
	require.NoError(suite.T(), err)
	defer c.Close()

	list, err := ListFromCursor(suite.adapter, c)
	require.NoError(suite.T(), err)
	return list
}

func (suite *TestSuite) TestQsoRoundTripThroughSQLite() {
	date := time.Date(2025, 11, 7, 12, 0, 0, 0, time.UTC)
	contacts := []*qso{
		{Call: "m0cmc", Band: "20m", Freq: 14.320, Mode: "SSB", QsoDate: date,
			Station: &loggingStation{StationCallsign: "7Q5MLV", MyCity: null.StringFrom("Mzuzu")}},
		{Call: "G4ABC", Band: "40m", Freq: 7.074, Mode: "FT8", QsoDate: date.Add(time.Hour),
			Comment: null.StringFrom("weak signal")},
	}

	all, err := ValuesSlice(suite.adapter, contacts)
	suite.Require().NoError(err)
	freq, _ := all[0].Get("freq")
	suite.Equal("14.320", freq)
	for _, v := range all {
		suite.insert(v)
	}

	got := suite.selectAll()
	suite.Require().Len(got, 2)

	suite.Equal(int64(1), got[0].ID)
	suite.Equal("M0CMC", got[0].Call)
	suite.Equal(14.320, got[0].Freq)
	suite.Equal(date, got[0].QsoDate)
	suite.False(got[0].Comment.Valid)
	suite.Equal(&loggingStation{StationCallsign: "7Q5MLV", MyCity: null.StringFrom("Mzuzu")}, got[0].Station)

	suite.Equal(int64(2), got[1].ID)
	suite.Equal("FT8", got[1].Mode)
	suite.Equal(7.074, got[1].Freq)
	suite.Equal(null.StringFrom("weak signal"), got[1].Comment)
	suite.Require().NotNil(got[1].Station, "NULL station columns still allocate the owned object")
	suite.Equal("", got[1].Station.StationCallsign)
	suite.False(got[1].Station.MyCity.Valid)
}

func (suite *TestSuite) TestValidatorBlocksWrite() {
	_, err := Values(suite.adapter, &qso{Band: "20m"})
	var ve *ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Equal("call", ve.Column)
}

func (suite *TestSuite) TestProjectionSubsetFails() {
	_, err := suite.db.Exec(`INSERT INTO qso (call) VALUES ('X')`)
	suite.Require().NoError(err)

	rows, err := suite.db.Query("SELECT id, call FROM qso")
	suite.Require().NoError(err)
	c, err := cursor.FromRows(rows)
	suite.Require().NoError(err)
	defer c.Close()

	_, err = ListFromCursor(suite.adapter, c)
	var ie *InternalError
	suite.ErrorAs(err, &ie, "a cursor without the projection is a broken setup")
}
