package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

var cfg struct {
	LocaleFile string
	DBFilename string
	NoHistory  bool
}

func init() {
	flag.StringVar(&cfg.LocaleFile, "locale", "", "locale configuration file (YAML)")
	flag.StringVar(&cfg.DBFilename, "db", "datecalc.db", "calculation history database")
	flag.BoolVar(&cfg.NoHistory, "no-history", false, "do not record the calculation")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	var err error

	switch name := args[0]; name {
	case DiffCommand.Name:
		err = DiffCommand.Run(ctx, args[1:])
	case AddCommand.Name:
		err = AddCommand.Run(ctx, args[1:])
	case SubCommand.Name:
		err = SubCommand.Run(ctx, args[1:])
	case HistoryCommand.Name:
		err = HistoryCommand.Run(ctx, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [options] <command> [command options]\n", os.Args[0])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range []struct{ Name, Description string }{
		{DiffCommand.Name, DiffCommand.Description},
		{AddCommand.Name, AddCommand.Description},
		{SubCommand.Name, SubCommand.Description},
		{HistoryCommand.Name, HistoryCommand.Description},
	} {
		fmt.Fprintf(w, "  %-10s%s\n", c.Name, c.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}
