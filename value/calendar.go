package value

import (
	"time"

	"github.com/signadot/valuefmt/apperr"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	DateTimeLayout  = "2006-01-02 15:04:05"
	YearMonthLayout = "2006-01"
)

func layout(t Type) string {
	switch t {
	case DateType:
		return DateLayout
	case TimeType:
		return TimeLayout
	case DateTimeType:
		return DateTimeLayout
	case YearMonthType:
		return YearMonthLayout
	}
	return ""
}

// FromDate returns a Date holding the civil date of t.
func FromDate(t time.Time) *Value {
	y, m, d := t.Date()
	return &Value{Type: DateType, Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns a Time holding the wall clock of t to the second.
func FromTime(t time.Time) *Value {
	h, m, s := t.Clock()
	return &Value{Type: TimeType, Time: time.Date(0, 1, 1, h, m, s, 0, time.UTC)}
}

// FromDateTime returns a DateTime holding the civil date and wall clock
// of t to the second.
func FromDateTime(t time.Time) *Value {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return &Value{Type: DateTimeType, Time: time.Date(y, mo, d, h, mi, s, 0, time.UTC)}
}

func FromYearMonth(year int, month time.Month) *Value {
	return &Value{Type: YearMonthType, Time: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (*Value, error) {
	return parseCalendar(DateType, s)
}

func ParseTime(s string) (*Value, error) {
	return parseCalendar(TimeType, s)
}

func ParseDateTime(s string) (*Value, error) {
	return parseCalendar(DateTimeType, s)
}

func ParseYearMonth(s string) (*Value, error) {
	return parseCalendar(YearMonthType, s)
}

func parseCalendar(typ Type, s string) (*Value, error) {
	t, err := time.Parse(layout(typ), s)
	if err != nil {
		return nil, apperr.Errorf(apperr.ErrParse, "%s %q", typ, s).WithCause(err)
	}
	return &Value{Type: typ, Time: t}, nil
}

// CalendarString returns the canonical text of a calendar value.
func (v *Value) CalendarString() (string, bool) {
	l := layout(v.typ())
	if l == "" {
		return "", false
	}
	return v.Time.Format(l), true
}
