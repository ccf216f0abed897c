package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal/calendar"
)

type nopTelemetry struct{}

func (nopTelemetry) DateClippedTimeDifferenceFound(string, time.Time) {}

func newTestEngine() *Engine {
	return New(calendar.New("gregorian", nopTelemetry{}))
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name     string
		from, to Date
		mask     datecalc.DateUnit
		want     datecalc.DateDifference
	}{
		{
			name: "same date",
			from: datecalc.NewDate(2024, time.June, 15),
			to:   datecalc.NewDate(2024, time.June, 15),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{},
		},
		{
			name: "one week",
			from: datecalc.NewDate(2023, time.March, 10),
			to:   datecalc.NewDate(2023, time.March, 17),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{Week: 1},
		},
		{
			name: "leap day to end of february",
			from: datecalc.NewDate(2020, time.February, 29),
			to:   datecalc.NewDate(2021, time.February, 28),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{Year: 1},
		},
		{
			name: "multi unit",
			from: datecalc.NewDate(2020, time.January, 1),
			to:   datecalc.NewDate(2023, time.March, 15),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{Year: 3, Month: 2, Week: 2},
		},
		{
			name: "month clip backoff",
			from: datecalc.NewDate(2024, time.January, 31),
			to:   datecalc.NewDate(2024, time.March, 30),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{Month: 1, Week: 4, Day: 2},
		},
		{
			name: "days only",
			from: datecalc.NewDate(2020, time.February, 29),
			to:   datecalc.NewDate(2021, time.February, 28),
			mask: datecalc.UnitDay,
			want: datecalc.DateDifference{Day: 365},
		},
		{
			name: "month and day mask",
			from: datecalc.NewDate(2020, time.January, 15),
			to:   datecalc.NewDate(2020, time.March, 20),
			mask: datecalc.UnitMonth | datecalc.UnitDay,
			want: datecalc.DateDifference{Month: 2, Day: 5},
		},
		{
			name: "reversed endpoints",
			from: datecalc.NewDate(2023, time.March, 17),
			to:   datecalc.NewDate(2023, time.March, 10),
			mask: datecalc.AllUnits,
			want: datecalc.DateDifference{Week: 1},
		},
	}
	e := newTestEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Difference(tc.from, tc.to, tc.mask)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Difference(%v, %v) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
			}
		})
	}
}

// TestDifferenceRoundTrip checks the defining property of the decomposition:
// applying it to the lower endpoint in year, month, week, day order with
// month-clip semantics reproduces the upper endpoint.
func TestDifferenceRoundTrip(t *testing.T) {
	e := newTestEngine()
	cal := e.Calendar()

	rnd := rand.New(rand.NewSource(1))
	randomDate := func() Date {
		year := 1 + rnd.Intn(9999)
		month := time.Month(1 + rnd.Intn(12))
		day := 1 + rnd.Intn(31)
		if last := datecalc.NewDate(year, month+1, 0).Day(); day > last {
			day = last
		}
		return datecalc.NewDate(year, month, day)
	}

	for i := 0; i < 2000; i++ {
		a, b := randomDate(), randomDate()
		lo, hi := a, b
		if hi.Before(lo.Time) {
			lo, hi = hi, lo
		}

		got := e.Difference(a, b, datecalc.AllUnits)
		if got.Year < 0 || got.Month < 0 || got.Week < 0 || got.Day < 0 {
			t.Fatalf("Difference(%v, %v) = %+v has a negative field", a, b, got)
		}

		applied, ok := e.Apply(lo, got)
		if !ok {
			t.Fatalf("Apply(%v, %+v) overflowed", lo, got)
		}
		if !applied.Equal(hi) {
			t.Fatalf("Apply(%v, %+v) = %v, want %v (from Difference(%v, %v))", lo, got, applied, hi, a, b)
		}

		daysOnly := e.Difference(a, b, datecalc.UnitDay)
		want := cal.DiffDays(lo, hi)
		if daysOnly.Day != want {
			t.Fatalf("Difference(%v, %v, day) = %d, want %d", a, b, daysOnly.Day, want)
		}
		if daysOnly.Year != 0 || daysOnly.Month != 0 || daysOnly.Week != 0 {
			t.Fatalf("Difference(%v, %v, day) = %+v has fields outside the mask", a, b, daysOnly)
		}
	}
}

func TestAddDuration(t *testing.T) {
	e := newTestEngine()

	start := datecalc.NewDate(2023, time.January, 31)
	got, ok := e.AddDuration(start, datecalc.DateDifference{Month: 1})
	if !ok || !got.Equal(datecalc.NewDate(2023, time.February, 28)) {
		t.Errorf("AddDuration(%v, 1 month) = %v, %t, want 2023-02-28, true", start, got, ok)
	}

	start = datecalc.NewDate(2022, time.March, 15)
	offset := datecalc.DateDifference{Year: 1, Month: 2, Day: 10}
	got, ok = e.AddDuration(start, offset)
	if !ok || !got.Equal(datecalc.NewDate(2023, time.May, 25)) {
		t.Errorf("AddDuration(%v, %+v) = %v, %t, want 2023-05-25, true", start, offset, got, ok)
	}
}

func TestSubtractDuration(t *testing.T) {
	e := newTestEngine()

	start := datecalc.NewDate(2023, time.May, 25)
	offset := datecalc.DateDifference{Year: 1, Month: 2, Day: 10}
	got, ok := e.SubtractDuration(start, offset)
	if !ok || !got.Equal(datecalc.NewDate(2022, time.March, 15)) {
		t.Errorf("SubtractDuration(%v, %+v) = %v, %t, want 2022-03-15, true", start, offset, got, ok)
	}
}

// TestAddSubtractInverse checks that subtracting an offset undoes adding it
// whenever no month clip is involved, and pins the known exceptions where
// the clip loses the day of month.
func TestAddSubtractInverse(t *testing.T) {
	e := newTestEngine()

	safe := []struct {
		start  Date
		offset datecalc.DateDifference
	}{
		{datecalc.NewDate(2022, time.March, 15), datecalc.DateDifference{Year: 1, Month: 2, Day: 10}},
		{datecalc.NewDate(2024, time.June, 1), datecalc.DateDifference{Day: 45}},
		{datecalc.NewDate(1999, time.December, 31), datecalc.DateDifference{Year: 10}},
	}
	for _, tc := range safe {
		r, ok := e.AddDuration(tc.start, tc.offset)
		if !ok {
			t.Fatalf("AddDuration(%v, %+v) overflowed", tc.start, tc.offset)
		}
		back, ok := e.SubtractDuration(r, tc.offset)
		if !ok {
			t.Fatalf("SubtractDuration(%v, %+v) overflowed", r, tc.offset)
		}
		if !back.Equal(tc.start) {
			t.Errorf("subtract after add: got %v, want %v (offset %+v)", back, tc.start, tc.offset)
		}
	}

	// Jan 31 + 1 month clips to Feb 29; going back lands on Jan 29, not
	// Jan 31.
	start := datecalc.NewDate(2024, time.January, 31)
	r, ok := e.AddDuration(start, datecalc.DateDifference{Month: 1})
	if !ok || !r.Equal(datecalc.NewDate(2024, time.February, 29)) {
		t.Fatalf("AddDuration(%v, 1 month) = %v, %t, want 2024-02-29, true", start, r, ok)
	}
	back, ok := e.SubtractDuration(r, datecalc.DateDifference{Month: 1})
	if !ok || !back.Equal(datecalc.NewDate(2024, time.January, 29)) {
		t.Errorf("SubtractDuration(%v, 1 month) = %v, %t, want 2024-01-29, true", r, back, ok)
	}
}

func TestDurationOutOfRange(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		start    Date
		offset   datecalc.DateDifference
		subtract bool
	}{
		{"before minimum", calendar.Min, datecalc.DateDifference{Day: 1}, true},
		{"after maximum", calendar.Max, datecalc.DateDifference{Day: 1}, false},
		{"year overflow", datecalc.NewDate(2024, time.June, 15), datecalc.DateDifference{Year: 9999}, false},
		{"month overflow", calendar.Max, datecalc.DateDifference{Month: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ok bool
			if tc.subtract {
				_, ok = e.SubtractDuration(tc.start, tc.offset)
			} else {
				_, ok = e.AddDuration(tc.start, tc.offset)
			}
			if ok {
				t.Errorf("duration on %v with %+v = ok, want overflow", tc.start, tc.offset)
			}
		})
	}
}
