package datecalc

import "time"

const DateFormat = "2006-01-02"

// Date is a civil day, materialized as 00:00:00 UTC of that day. Two Dates
// derived from any wall-clock timestamps of the same UTC day compare equal.
type Date struct {
	time.Time
}

func Today() Date {
	return NewDateFromTime(time.Now())
}

// NewDateFromTime clips t to the first instant of its civil day in UTC.
func NewDateFromTime(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// AddDate adds the given number of years, months and days, normalizing the
// result the way time.Time does: October 32 becomes November 1.
func (d Date) AddDate(years, months, days int) Date {
	t := d.Time.AddDate(years, months, days)
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

func Parse(layout, value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, err
	}
	return NewDateFromTime(t), nil
}

func (d *Date) Set(v string) error {
	if d == nil {
		d = new(Date)
	}
	parsed, err := Parse(DateFormat, v)
	if err == nil {
		*d = parsed
	}
	return err
}

func (d Date) String() string {
	return d.Format(DateFormat)
}
