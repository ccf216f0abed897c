// Package format renders calculation results with the user's number system,
// unit labels and list separator.
package format

import (
	"strconv"
	"strings"

	"github.com/guilherme-santos/datecalc"
)

type Formatter struct {
	settings datecalc.Settings
	catalog  datecalc.Catalog
	longDate datecalc.DateFormatter

	// listSeparator already carries the trailing space, e.g. ", ".
	listSeparator string
}

func New(settings datecalc.Settings, catalog datecalc.Catalog, factory datecalc.DateFormatterFactory) (*Formatter, error) {
	longDate, err := factory.LongDateFormatter(settings.CalendarIdentifier())
	if err != nil {
		return nil, err
	}
	return &Formatter{
		settings:      settings,
		catalog:       catalog,
		longDate:      longDate,
		listSeparator: settings.ListSeparator() + " ",
	}, nil
}

// DateDifference renders diff as "2 years, 1 month, 3 days": zero fields are
// suppressed, counts of one select the singular label, and the list
// separator goes between emitted units only.
func (f *Formatter) DateDifference(diff datecalc.DateDifference) string {
	units := []struct {
		count     int
		one, many string
	}{
		{diff.Year, datecalc.KeyYear, datecalc.KeyYears},
		{diff.Month, datecalc.KeyMonth, datecalc.KeyMonths},
		{diff.Week, datecalc.KeyWeek, datecalc.KeyWeeks},
		{diff.Day, datecalc.KeyDay, datecalc.KeyDays},
	}

	var parts []string
	for _, u := range units {
		if u.count == 0 {
			continue
		}
		key := u.many
		if u.count == 1 {
			key = u.one
		}
		parts = append(parts, f.Number(u.count)+" "+f.catalog.String(key))
	}
	return strings.Join(parts, f.listSeparator)
}

// DateDifferenceInDays renders the days-only result as "1 day" or "N days".
func (f *Formatter) DateDifferenceInDays(diff datecalc.DateDifference) string {
	key := datecalc.KeyDay
	if diff.Day > 1 {
		key = datecalc.KeyDays
	}
	return f.Number(diff.Day) + " " + f.catalog.String(key)
}

// Date renders d in the configured long-date format.
func (f *Formatter) Date(d datecalc.Date) string {
	return f.longDate.Format(d)
}

// Number renders a non-negative integer in the user's numbering system.
func (f *Formatter) Number(n int) string {
	return f.settings.LocalizeDigits(strconv.Itoa(n))
}
