package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal"
	"github.com/guilherme-santos/datecalc/internal/sqlite"
)

var HistoryCommand = _historyCommand{
	Name:        "history",
	Description: "List previous calculations",
}

type _historyCommand struct {
	Name        string
	Description string
}

func (c _historyCommand) Run(ctx context.Context, args []string) error {
	var limit int

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&limit, "n", 10, "number of entries to show, 0 for all")

	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := sql.Open(sqlite.DriverName, cfg.DBFilename)
	if err != nil {
		return err
	}
	defer db.Close()

	calcs, err := sqlite.NewStorage(db).Calculations(ctx, limit)
	if err != nil {
		return err
	}

	w := flag.CommandLine.Output()
	for _, calc := range calcs {
		internal.Logf(w, "", "%s", formatCalculation(calc))
	}
	return nil
}

func formatCalculation(calc *datecalc.Calculation) string {
	createdAt := calc.CreatedAt.In(time.Local).Format("02 Jan 06 15:04")

	switch calc.Mode {
	case datecalc.ModeDifference:
		return fmt.Sprintf("%s  diff %s .. %s: %s", createdAt, calc.From, calc.To, calc.Result)
	case datecalc.ModeAdd:
		return fmt.Sprintf("%s  %s + %dy %dm %dd: %s", createdAt, calc.Start,
			calc.Offset.Year, calc.Offset.Month, calc.Offset.Day, calc.Result)
	case datecalc.ModeSubtract:
		return fmt.Sprintf("%s  %s - %dy %dm %dd: %s", createdAt, calc.Start,
			calc.Offset.Year, calc.Offset.Month, calc.Offset.Day, calc.Result)
	}
	return fmt.Sprintf("%s  %s: %s", createdAt, calc.Mode, calc.Result)
}
