package converters

import (
	"strings"
	"time"

	"github.com/Station-Manager/errors"
)

// SQLiteTimeLayout is the layout SQLite's date and time functions produce.
const SQLiteTimeLayout = "2006-01-02 15:04:05"

var textTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	SQLiteTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimeText parses the textual timestamp forms found in TEXT columns. Values
// without a zone are read as UTC.
func ParseTimeText(op errors.Op, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range textTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(op).Msg(ErrMsgBadTimeFormat)
}
