package datecalc

import "time"

// DateUnit is a bitmask selecting which calendar units a difference is
// decomposed into.
type DateUnit uint8

const (
	UnitYear DateUnit = 1 << iota
	UnitMonth
	UnitWeek
	UnitDay
)

// AllUnits is the output format used for the decomposed difference result.
const AllUnits = UnitYear | UnitMonth | UnitWeek | UnitDay

func (u DateUnit) Has(f DateUnit) bool {
	return u&f != 0
}

// DateDifference is a non-negative decomposition of the span between two
// dates. Only fields selected by the output format are ever nonzero. It
// doubles as the offset for add/subtract, where Week is unused.
type DateDifference struct {
	Year  int
	Month int
	Week  int
	Day   int
}

func (d DateDifference) IsZero() bool {
	return d == DateDifference{}
}

// Keys looked up in the Catalog.
const (
	KeySameDates                      = "Date_SameDates"
	KeyOutOfBoundMessage              = "Date_OutOfBoundMessage"
	KeyYear                           = "Date_Year"
	KeyYears                          = "Date_Years"
	KeyMonth                          = "Date_Month"
	KeyMonths                         = "Date_Months"
	KeyWeek                           = "Date_Week"
	KeyWeeks                          = "Date_Weeks"
	KeyDay                            = "Date_Day"
	KeyDays                           = "Date_Days"
	KeyDifferenceResultAutomationName = "Date_DifferenceResultAutomationName"
	KeyResultingDateAutomationName    = "Date_ResultingDateAutomationName"
)

// Settings exposes the regional preferences the core consumes. A single
// calendar identifier is fixed for the lifetime of the calculator.
type Settings interface {
	CalendarIdentifier() string
	ListSeparator() string
	// LocalizeDigits rewrites ASCII digits into the user's numbering system.
	LocalizeDigits(s string) string
}

// Catalog resolves localized strings by key. A missing key is a programming
// error; implementations panic instead of returning fallback text.
type Catalog interface {
	String(key string) string
}

// DateFormatter renders a date in the user's long-date format.
type DateFormatter interface {
	Format(d Date) string
}

// DateFormatterFactory builds a long-date formatter bound to a calendar
// identifier. Time-of-day fields are never rendered.
type DateFormatterFactory interface {
	LongDateFormatter(calendarID string) (DateFormatter, error)
}

// Telemetry receives diagnostic events. Events never alter results.
type Telemetry interface {
	// DateClippedTimeDifferenceFound reports that clipping a timestamp to
	// midnight UTC changed its apparent day of the week.
	DateClippedTimeDifferenceFound(calendarID string, clipped time.Time)
}

type Clipboard interface {
	Copy(text string) error
}

// Calculation is a single committed computation, as recorded in the history
// storage.
type Calculation struct {
	CreatedAt time.Time
	Mode      CalculationMode
	From      Date
	To        Date
	Start     Date
	Offset    DateDifference
	Result    string
}

type CalculationMode string

func (m CalculationMode) String() string {
	return string(m)
}

var (
	ModeDifference CalculationMode = "difference"
	ModeAdd        CalculationMode = "add"
	ModeSubtract   CalculationMode = "subtract"
)
