// Package engine implements the date calculations behind the two calculator
// modes: decomposing the span between two dates into calendar units, and
// applying a year/month/day offset to a date.
package engine

import (
	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal/calendar"
)

type Date = datecalc.Date

type Engine struct {
	cal *calendar.Calendar
}

func New(cal *calendar.Calendar) *Engine {
	return &Engine{cal: cal}
}

// Calendar returns the adapter the engine computes with.
func (e *Engine) Calendar() *calendar.Calendar {
	return e.cal
}

// Difference decomposes the span between from and to into the units selected
// by mask, largest unit first. The result is always non-negative; the order
// of the arguments does not matter. Each unit receives the largest count
// that does not step past the upper endpoint, with month additions clipping
// to the last valid day of the target month. Applying the result to the
// lower endpoint with Apply reproduces the upper endpoint whenever UnitDay
// is part of the mask.
func (e *Engine) Difference(from, to Date, mask datecalc.DateUnit) datecalc.DateDifference {
	lo, hi := from, to
	if hi.Before(lo.Time) {
		lo, hi = hi, lo
	}

	var diff datecalc.DateDifference
	if mask == datecalc.UnitDay {
		diff.Day = e.cal.DiffDays(lo, hi)
		return diff
	}

	cur := lo
	for _, u := range []datecalc.DateUnit{datecalc.UnitYear, datecalc.UnitMonth, datecalc.UnitWeek, datecalc.UnitDay} {
		if !mask.Has(u) {
			continue
		}
		n := e.estimate(cur, hi, u)
		// A forward step that lands past hi because of a longer target
		// month must be rejected.
		for n > 0 {
			if next, ok := e.cal.AddUnits(cur, u, n); ok && !next.After(hi.Time) {
				break
			}
			n--
		}
		for {
			next, ok := e.cal.AddUnits(cur, u, n+1)
			if !ok || next.After(hi.Time) {
				break
			}
			n++
		}
		if n == 0 {
			continue
		}
		cur, _ = e.cal.AddUnits(cur, u, n)
		switch u {
		case datecalc.UnitYear:
			diff.Year = n
		case datecalc.UnitMonth:
			diff.Month = n
		case datecalc.UnitWeek:
			diff.Week = n
		case datecalc.UnitDay:
			diff.Day = n
		}
	}
	// With UnitDay in the mask the day count absorbs whatever the larger
	// units left over, so cur has reached hi exactly.
	return diff
}

// estimate guesses the unit count before probing. Year and month guesses
// come from the calendar fields and are off by at most one; week and day
// guesses are exact.
func (e *Engine) estimate(cur, hi Date, u datecalc.DateUnit) int {
	var n int
	switch u {
	case datecalc.UnitYear:
		n = hi.Year() - cur.Year()
	case datecalc.UnitMonth:
		n = 12*(hi.Year()-cur.Year()) + int(hi.Month()) - int(cur.Month())
	case datecalc.UnitWeek:
		n = e.cal.DiffDays(cur, hi) / 7
	case datecalc.UnitDay:
		n = e.cal.DiffDays(cur, hi)
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Apply adds diff to from, unit by unit in year, month, week, day order,
// with month-clip semantics. It reports ok=false on overflow.
func (e *Engine) Apply(from Date, diff datecalc.DateDifference) (Date, bool) {
	cur := from
	for _, step := range []struct {
		u datecalc.DateUnit
		n int
	}{
		{datecalc.UnitYear, diff.Year},
		{datecalc.UnitMonth, diff.Month},
		{datecalc.UnitWeek, diff.Week},
		{datecalc.UnitDay, diff.Day},
	} {
		if step.n == 0 {
			continue
		}
		next, ok := e.cal.AddUnits(cur, step.u, step.n)
		if !ok {
			return Date{}, false
		}
		cur = next
	}
	return cur, true
}

// AddDuration applies offset to start, field by field in year, month, day
// order. Week is not part of an offset. On overflow it reports ok=false and
// the returned date must not be used; the engine never silently clamps.
func (e *Engine) AddDuration(start Date, offset datecalc.DateDifference) (Date, bool) {
	return e.applyDuration(start, offset, 1)
}

// SubtractDuration is AddDuration with negated counts.
func (e *Engine) SubtractDuration(start Date, offset datecalc.DateDifference) (Date, bool) {
	return e.applyDuration(start, offset, -1)
}

func (e *Engine) applyDuration(start Date, offset datecalc.DateDifference, sign int) (Date, bool) {
	cur := start
	for _, step := range []struct {
		u datecalc.DateUnit
		n int
	}{
		{datecalc.UnitYear, offset.Year},
		{datecalc.UnitMonth, offset.Month},
		{datecalc.UnitDay, offset.Day},
	} {
		if step.n == 0 {
			continue
		}
		next, ok := e.cal.AddUnits(cur, step.u, sign*step.n)
		if !ok {
			return Date{}, false
		}
		cur = next
	}
	return cur, true
}
