package main

import (
	"context"
	"database/sql"
	"io"

	_ "github.com/mattn/go-sqlite3"

	"github.com/guilherme-santos/datecalc"
	"github.com/guilherme-santos/datecalc/internal"
	"github.com/guilherme-santos/datecalc/internal/clipboard"
	"github.com/guilherme-santos/datecalc/internal/locale"
	"github.com/guilherme-santos/datecalc/internal/sqlite"
	"github.com/guilherme-santos/datecalc/internal/viewmodel"
)

func newViewModel(telemetryOut io.Writer) (*viewmodel.ViewModel, error) {
	settings := locale.Default()
	if cfg.LocaleFile != "" {
		var err error
		settings, err = locale.Load(cfg.LocaleFile)
		if err != nil {
			return nil, err
		}
	}
	telemetry := internal.LogTelemetry{W: telemetryOut}
	return viewmodel.New(settings, settings, settings, telemetry, clipboard.System{})
}

func recordCalculation(ctx context.Context, calc *datecalc.Calculation) error {
	if cfg.NoHistory {
		return nil
	}
	db, err := sql.Open(sqlite.DriverName, cfg.DBFilename)
	if err != nil {
		return err
	}
	defer db.Close()

	return sqlite.NewStorage(db).AddCalculation(ctx, calc)
}
