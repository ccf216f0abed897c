package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal"
)

var DiffCommand = _diffCommand{
	Name:        "diff",
	Description: "Difference between two calendar dates",
}

type _diffCommand struct {
	Name        string
	Description string
}

func (c _diffCommand) Run(ctx context.Context, args []string) error {
	from := datecalc.Today()
	to := datecalc.Today()

	var copyResult bool

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Var(&from, "from", "lower date (e.g. 2022-08-12), defaults to today")
	fs.Var(&to, "to", "upper date (e.g. 2022-08-12), defaults to today")
	fs.BoolVar(&copyResult, "copy", false, "copy the result to the clipboard")

	if err := fs.Parse(args); err != nil {
		return err
	}

	vm, err := newViewModel(os.Stderr)
	if err != nil {
		return err
	}
	vm.SetFromDate(from.Time)
	vm.SetToDate(to.Time)

	w := flag.CommandLine.Output()
	internal.Logf(w, "", "%s", vm.StrDateDiffResult())
	if !vm.IsDiffInDays() {
		internal.Logf(w, "", "%s", vm.StrDateDiffResultInDays())
	}

	if copyResult {
		if err := vm.CopyCurrentResult(); err != nil {
			return fmt.Errorf("copying result: %w", err)
		}
	}

	return recordCalculation(ctx, &datecalc.Calculation{
		Mode:   datecalc.ModeDifference,
		From:   vm.FromDate(),
		To:     vm.ToDate(),
		Result: vm.StrDateDiffResult(),
	})
}
