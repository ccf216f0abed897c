package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal"
)

var AddCommand = _offsetCommand{
	Name:        "add",
	Description: "Add years, months and days to a date",
	add:         true,
}

var SubCommand = _offsetCommand{
	Name:        "sub",
	Description: "Subtract years, months and days from a date",
}

type _offsetCommand struct {
	Name        string
	Description string
	add         bool
}

func (c _offsetCommand) Run(ctx context.Context, args []string) error {
	start := datecalc.Today()

	var (
		years, months, days int
		copyResult          bool
	)

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Var(&start, "start", "start date (e.g. 2022-08-12), defaults to today")
	fs.IntVar(&years, "years", 0, "number of years")
	fs.IntVar(&months, "months", 0, "number of months")
	fs.IntVar(&days, "days", 0, "number of days")
	fs.BoolVar(&copyResult, "copy", false, "copy the result to the clipboard")

	if err := fs.Parse(args); err != nil {
		return err
	}

	vm, err := newViewModel(os.Stderr)
	if err != nil {
		return err
	}
	vm.SetIsDateDiffMode(false)
	vm.SetIsAddMode(c.add)
	vm.SetStartDate(start.Time)
	vm.SetYearsOffset(years)
	vm.SetMonthsOffset(months)
	vm.SetDaysOffset(days)

	w := flag.CommandLine.Output()
	internal.Logf(w, "", "%s", vm.StrDateResult())

	if copyResult {
		if err := vm.CopyCurrentResult(); err != nil {
			return fmt.Errorf("copying result: %w", err)
		}
	}

	mode := datecalc.ModeSubtract
	if c.add {
		mode = datecalc.ModeAdd
	}
	return recordCalculation(ctx, &datecalc.Calculation{
		Mode:  mode,
		Start: start,
		Offset: datecalc.DateDifference{
			Year:  years,
			Month: months,
			Day:   days,
		},
		Result: vm.StrDateResult(),
	})
}
