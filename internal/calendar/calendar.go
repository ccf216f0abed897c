// Package calendar provides day-granular Gregorian arithmetic for the
// calculator. Month addition uses clip-to-last-day semantics: adding one
// month to January 31 yields February 28 (or 29), never March 3.
package calendar

import (
	"time"

	"github.com/guilherme-santos/datecalc"
)

type Date = datecalc.Date

// Representable range. Results outside of it are reported as overflow and
// must not be used.
var (
	Min = datecalc.NewDate(1, time.January, 1)
	Max = datecalc.NewDate(9999, time.December, 31)
)

// maxDaySpan bounds day counts before they are handed to time.Time
// arithmetic, which would otherwise overflow on absurd inputs. The whole
// representable range is under 3.7 million days.
const maxDaySpan = 4_000_000

type Calendar struct {
	identifier string
	telemetry  datecalc.Telemetry

	// now is swapped out by tests.
	now func() time.Time
}

func New(identifier string, telemetry datecalc.Telemetry) *Calendar {
	return &Calendar{
		identifier: identifier,
		telemetry:  telemetry,
		now:        time.Now,
	}
}

func (c *Calendar) Identifier() string {
	return c.identifier
}

func (c *Calendar) Now() time.Time {
	return c.now()
}

// ClipToDay normalizes t to the first instant of its civil day in UTC.
// Differences are computed in UTC so that daylight-saving transitions cannot
// flip the apparent day across midnight. When clipping changes the apparent
// day of the week, the event is reported to telemetry; the result is
// returned unchanged.
func (c *Calendar) ClipToDay(t time.Time) Date {
	clipped := datecalc.NewDateFromTime(t)
	if clipped.Weekday() != t.Weekday() {
		c.telemetry.DateClippedTimeDifferenceFound(c.identifier, clipped.Time)
	}
	return clipped
}

// AddUnits advances d by n units of u. It reports ok=false when the result
// would fall outside the representable range; the returned date is then the
// zero Date and must not be used.
func (c *Calendar) AddUnits(d Date, u datecalc.DateUnit, n int) (Date, bool) {
	var (
		r  Date
		ok bool
	)
	switch u {
	case datecalc.UnitYear:
		r, ok = addMonths(d, 12*int64(n))
	case datecalc.UnitMonth:
		r, ok = addMonths(d, int64(n))
	case datecalc.UnitWeek:
		r, ok = addDays(d, 7*int64(n))
	case datecalc.UnitDay:
		r, ok = addDays(d, int64(n))
	}
	if !ok || r.Before(Min.Time) || r.After(Max.Time) {
		return Date{}, false
	}
	return r, true
}

// DiffDays returns the signed number of civil days from a to b.
func (c *Calendar) DiffDays(a, b Date) int {
	// Both dates sit at midnight UTC, so the distance in seconds is an
	// exact multiple of a day. time.Time.Sub is avoided as it saturates
	// at roughly 292 years.
	return int((b.Unix() - a.Unix()) / (24 * 60 * 60))
}

func addMonths(d Date, months int64) (Date, bool) {
	year, month, day := d.Date()
	total := int64(year)*12 + int64(month) - 1 + months
	if total < 0 || total >= 12*10_000 {
		return Date{}, false
	}
	ny, nm := int(total/12), time.Month(total%12)+1
	if last := daysIn(nm, ny); day > last {
		day = last
	}
	return datecalc.NewDate(ny, nm, day), true
}

func addDays(d Date, n int64) (Date, bool) {
	if n < -maxDaySpan || n > maxDaySpan {
		return Date{}, false
	}
	return d.AddDate(0, 0, int(n)), true
}

// daysIn returns the number of days in the given month: day zero of the
// following month is its last day.
func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
