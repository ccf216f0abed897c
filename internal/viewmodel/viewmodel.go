// Package viewmodel hosts the presentation state machine of the date
// calculator. Inputs (mode, dates, offsets) go in through typed setters;
// derived output strings come out through observable properties with stable
// names.
package viewmodel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal/calendar"
	"github.com/guilherme-santos/datecalc/internal/engine"
	"github.com/guilherme-santos/datecalc/internal/format"
)

// Observable property names.
const (
	PropIsDateDiffMode                  = "IsDateDiffMode"
	PropIsAddMode                       = "IsAddMode"
	PropFromDate                        = "FromDate"
	PropToDate                          = "ToDate"
	PropStartDate                       = "StartDate"
	PropDaysOffset                      = "DaysOffset"
	PropMonthsOffset                    = "MonthsOffset"
	PropYearsOffset                     = "YearsOffset"
	PropStrDateDiffResult               = "StrDateDiffResult"
	PropStrDateDiffResultAutomationName = "StrDateDiffResultAutomationName"
	PropStrDateDiffResultInDays         = "StrDateDiffResultInDays"
	PropStrDateResult                   = "StrDateResult"
	PropStrDateResultAutomationName     = "StrDateResultAutomationName"
	PropIsDiffInDays                    = "IsDiffInDays"
	PropIsOutOfBound                    = "IsOutOfBound"
)

// MaxOffset is the largest value the offset pickers present. The engine
// itself accepts any count and relies on range checks.
const MaxOffset = 999

// outputOnly lists the derived properties that must never feed back into
// OnInputsChanged.
var outputOnly = map[string]bool{
	PropStrDateDiffResultAutomationName: true,
	PropStrDateDiffResultInDays:         true,
	PropStrDateResultAutomationName:     true,
	PropIsDiffInDays:                    true,
}

// Handle identifies a subscription for later removal.
type Handle int

type ViewModel struct {
	cal       *calendar.Calendar
	engine    *engine.Engine
	formatter *format.Formatter
	catalog   datecalc.Catalog
	clipboard datecalc.Clipboard

	isDateDiffMode bool
	isAddMode      bool
	isOutOfBound   bool

	fromDate  datecalc.Date
	toDate    datecalc.Date
	startDate time.Time

	daysOffset   int
	monthsOffset int
	yearsOffset  int

	dateDiffResult       datecalc.DateDifference
	dateDiffResultInDays datecalc.DateDifference
	dateResult           datecalc.Date

	strDateDiffResult               string
	strDateDiffResultAutomationName string
	strDateDiffResultInDays         string
	strDateResult                   string
	strDateResultAutomationName     string
	isDiffInDays                    bool

	offsetValues []string

	subs   map[string]map[Handle]func()
	nextID Handle
}

// New builds the view model with today's date in every date field and the
// difference mode selected, and runs the first recomputation.
func New(
	settings datecalc.Settings,
	catalog datecalc.Catalog,
	factory datecalc.DateFormatterFactory,
	telemetry datecalc.Telemetry,
	clipboard datecalc.Clipboard,
) (*ViewModel, error) {
	formatter, err := format.New(settings, catalog, factory)
	if err != nil {
		return nil, err
	}

	cal := calendar.New(settings.CalendarIdentifier(), telemetry)
	vm := &ViewModel{
		cal:            cal,
		engine:         engine.New(cal),
		formatter:      formatter,
		catalog:        catalog,
		clipboard:      clipboard,
		isDateDiffMode: true,
		isAddMode:      true,
		subs:           map[string]map[Handle]func(){},
	}

	now := cal.Now()
	// The clip performs the day-of-week consistency check and reports a
	// mismatch to telemetry.
	today := cal.ClipToDay(now)
	vm.fromDate = today
	vm.toDate = today
	vm.startDate = now
	vm.dateResult = today

	vm.offsetValues = make([]string, 0, MaxOffset+1)
	for i := 0; i <= MaxOffset; i++ {
		vm.offsetValues = append(vm.offsetValues, settings.LocalizeDigits(strconv.Itoa(i)))
	}

	vm.onInputsChanged()
	return vm, nil
}

// Subscribe registers fn to run after the named property changes value.
func (vm *ViewModel) Subscribe(name string, fn func()) Handle {
	vm.nextID++
	if vm.subs[name] == nil {
		vm.subs[name] = map[Handle]func(){}
	}
	vm.subs[name][vm.nextID] = fn
	return vm.nextID
}

func (vm *ViewModel) Unsubscribe(name string, h Handle) {
	delete(vm.subs[name], h)
}

// raise notifies observers of prop and routes the change: the two primary
// result strings refresh their automation names, every other non-output
// property re-runs the computation.
func (vm *ViewModel) raise(prop string) {
	for _, fn := range vm.subs[prop] {
		fn()
	}
	switch {
	case prop == PropStrDateDiffResult:
		vm.updateStrDateDiffResultAutomationName()
	case prop == PropStrDateResult:
		vm.updateStrDateResultAutomationName()
	case !outputOnly[prop]:
		vm.onInputsChanged()
	}
}

func (vm *ViewModel) onInputsChanged() {
	if vm.isDateDiffMode {
		from := vm.cal.ClipToDay(vm.fromDate.Time)
		to := vm.cal.ClipToDay(vm.toDate.Time)

		vm.dateDiffResult = vm.engine.Difference(from, to, datecalc.AllUnits)
		vm.dateDiffResultInDays = vm.engine.Difference(from, to, datecalc.UnitDay)
	} else {
		offset := datecalc.DateDifference{
			Year:  vm.yearsOffset,
			Month: vm.monthsOffset,
			Day:   vm.daysOffset,
		}
		start := vm.cal.ClipToDay(vm.startDate)

		var (
			result datecalc.Date
			ok     bool
		)
		if vm.isAddMode {
			result, ok = vm.engine.AddDuration(start, offset)
		} else {
			result, ok = vm.engine.SubtractDuration(start, offset)
		}

		vm.setIsOutOfBound(!ok)
		if ok {
			vm.dateResult = result
		}
	}
	vm.updateDisplayResult()
}

func (vm *ViewModel) updateDisplayResult() {
	if vm.isDateDiffMode {
		switch {
		case vm.dateDiffResultInDays.Day == 0:
			vm.setIsDiffInDays(true)
			vm.setStrDateDiffResultInDays("")
			vm.setStrDateDiffResult(vm.catalog.String(datecalc.KeySameDates))
		case vm.dateDiffResult.Year == 0 && vm.dateDiffResult.Month == 0 && vm.dateDiffResult.Week == 0:
			vm.setIsDiffInDays(true)
			vm.setStrDateDiffResultInDays("")
			vm.setStrDateDiffResult(vm.formatter.DateDifferenceInDays(vm.dateDiffResultInDays))
		default:
			vm.setIsDiffInDays(false)
			vm.setStrDateDiffResult(vm.formatter.DateDifference(vm.dateDiffResult))
			vm.setStrDateDiffResultInDays(vm.formatter.DateDifferenceInDays(vm.dateDiffResultInDays))
		}
		return
	}

	if vm.isOutOfBound {
		vm.setStrDateResult(vm.catalog.String(datecalc.KeyOutOfBoundMessage))
	} else {
		vm.setStrDateResult(vm.formatter.Date(vm.dateResult))
	}
}

func (vm *ViewModel) updateStrDateDiffResultAutomationName() {
	tmpl := vm.catalog.String(datecalc.KeyDifferenceResultAutomationName)
	vm.setStrDateDiffResultAutomationName(fmt.Sprintf(tmpl, vm.strDateDiffResult))
}

func (vm *ViewModel) updateStrDateResultAutomationName() {
	tmpl := vm.catalog.String(datecalc.KeyResultingDateAutomationName)
	vm.setStrDateResultAutomationName(fmt.Sprintf(tmpl, vm.strDateResult))
}

// CopyCurrentResult copies the mode-appropriate result text to the
// clipboard.
func (vm *ViewModel) CopyCurrentResult() error {
	text := vm.strDateResult
	if vm.isDateDiffMode {
		text = vm.strDateDiffResult
	}
	return vm.clipboard.Copy(text)
}

// OffsetValues returns the pre-localized labels "0".."999" for the offset
// pickers. The returned slice must not be modified.
func (vm *ViewModel) OffsetValues() []string {
	return vm.offsetValues
}

// Input setters. Each one notifies observers and re-runs the computation,
// but only when the value actually changed.

func (vm *ViewModel) SetIsDateDiffMode(v bool) {
	if vm.isDateDiffMode == v {
		return
	}
	vm.isDateDiffMode = v
	vm.raise(PropIsDateDiffMode)
}

func (vm *ViewModel) SetIsAddMode(v bool) {
	if vm.isAddMode == v {
		return
	}
	vm.isAddMode = v
	vm.raise(PropIsAddMode)
}

func (vm *ViewModel) SetFromDate(t time.Time) {
	d := datecalc.NewDateFromTime(t)
	if vm.fromDate.Equal(d) {
		return
	}
	vm.fromDate = d
	vm.raise(PropFromDate)
}

func (vm *ViewModel) SetToDate(t time.Time) {
	d := datecalc.NewDateFromTime(t)
	if vm.toDate.Equal(d) {
		return
	}
	vm.toDate = d
	vm.raise(PropToDate)
}

// SetStartDate keeps the timestamp as given; it is clipped at computation
// time only.
func (vm *ViewModel) SetStartDate(t time.Time) {
	if vm.startDate.Equal(t) {
		return
	}
	vm.startDate = t
	vm.raise(PropStartDate)
}

func (vm *ViewModel) SetDaysOffset(n int) {
	if vm.daysOffset == n {
		return
	}
	vm.daysOffset = n
	vm.raise(PropDaysOffset)
}

func (vm *ViewModel) SetMonthsOffset(n int) {
	if vm.monthsOffset == n {
		return
	}
	vm.monthsOffset = n
	vm.raise(PropMonthsOffset)
}

func (vm *ViewModel) SetYearsOffset(n int) {
	if vm.yearsOffset == n {
		return
	}
	vm.yearsOffset = n
	vm.raise(PropYearsOffset)
}

// Output setters stay unexported: they are driven by the recomputation
// pipeline only.

func (vm *ViewModel) setIsOutOfBound(v bool) {
	if vm.isOutOfBound == v {
		return
	}
	vm.isOutOfBound = v
	vm.raise(PropIsOutOfBound)
}

func (vm *ViewModel) setIsDiffInDays(v bool) {
	if vm.isDiffInDays == v {
		return
	}
	vm.isDiffInDays = v
	vm.raise(PropIsDiffInDays)
}

func (vm *ViewModel) setStrDateDiffResult(s string) {
	if vm.strDateDiffResult == s {
		return
	}
	vm.strDateDiffResult = s
	vm.raise(PropStrDateDiffResult)
}

func (vm *ViewModel) setStrDateDiffResultInDays(s string) {
	if vm.strDateDiffResultInDays == s {
		return
	}
	vm.strDateDiffResultInDays = s
	vm.raise(PropStrDateDiffResultInDays)
}

func (vm *ViewModel) setStrDateResult(s string) {
	if vm.strDateResult == s {
		return
	}
	vm.strDateResult = s
	vm.raise(PropStrDateResult)
}

func (vm *ViewModel) setStrDateDiffResultAutomationName(s string) {
	if vm.strDateDiffResultAutomationName == s {
		return
	}
	vm.strDateDiffResultAutomationName = s
	vm.raise(PropStrDateDiffResultAutomationName)
}

func (vm *ViewModel) setStrDateResultAutomationName(s string) {
	if vm.strDateResultAutomationName == s {
		return
	}
	vm.strDateResultAutomationName = s
	vm.raise(PropStrDateResultAutomationName)
}

// Getters.

func (vm *ViewModel) IsDateDiffMode() bool { return vm.isDateDiffMode }
func (vm *ViewModel) IsAddMode() bool { return vm.isAddMode }
func (vm *ViewModel) IsOutOfBound() bool { return vm.isOutOfBound }
func (vm *ViewModel) IsDiffInDays() bool { return vm.isDiffInDays }

func (vm *ViewModel) FromDate() datecalc.Date { return vm.fromDate }
func (vm *ViewModel) ToDate() datecalc.Date { return vm.toDate }
func (vm *ViewModel) StartDate() time.Time { return vm.startDate }
func (vm *ViewModel) DateResult() datecalc.Date { return vm.dateResult }

func (vm *ViewModel) DaysOffset() int { return vm.daysOffset }
func (vm *ViewModel) MonthsOffset() int { return vm.monthsOffset }
func (vm *ViewModel) YearsOffset() int { return vm.yearsOffset }

func (vm *ViewModel) DateDiffResult() datecalc.DateDifference { return vm.dateDiffResult }
func (vm *ViewModel) DateDiffResultInDays() datecalc.DateDifference { return vm.dateDiffResultInDays }

func (vm *ViewModel) StrDateDiffResult() string { return vm.strDateDiffResult }
func (vm *ViewModel) StrDateDiffResultInDays() string { return vm.strDateDiffResultInDays }
func (vm *ViewModel) StrDateResult() string { return vm.strDateResult }
func (vm *ViewModel) StrDateDiffResultAutomationName() string { return vm.strDateDiffResultAutomationName }
func (vm *ViewModel) StrDateResultAutomationName() string { return vm.strDateResultAutomationName }
