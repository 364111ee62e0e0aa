package converters

const (
	ErrMsgNullNotAllowed = "Column value is NULL but the target does not accept NULL."
	ErrMsgBadTimeFormat  = "Bad time format, expected RFC3339, YYYY-MM-DD HH:MM:SS or YYYY-MM-DD"
	ErrMsgBadDecimal     = "Bad decimal value"
	ErrMsgIntOverflow    = "Integer value overflows int64"
)
