package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/guilherme-santos/datecalc"
)

const DriverName = "sqlite3"

// Storage keeps the calculation history in a local SQLite database.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sql.DB) *Storage {
	s := &Storage{
		db: sqlx.NewDb(db, DriverName),
	}
	err := s.RunMigrations()
	if err != nil {
		panic(fmt.Sprintf("sqlite: running migrations: %v", err))
	}
	return s
}

func (s Storage) AddCalculation(ctx context.Context, calc *datecalc.Calculation) error {
	createdAt := calc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations
			(created_at, mode, from_date, to_date, start_date, years, months, days, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, createdAt.Format(time.RFC3339), calc.Mode.String(),
		dateColumn(calc.From), dateColumn(calc.To), dateColumn(calc.Start),
		calc.Offset.Year, calc.Offset.Month, calc.Offset.Day, calc.Result)
	return err
}

// Calculations returns the most recent entries, newest first. A limit of
// zero or less means no limit.
func (s Storage) Calculations(ctx context.Context, limit int) ([]*datecalc.Calculation, error) {
	if limit <= 0 {
		limit = -1
	}

	var calcs []Calculation

	err := s.db.SelectContext(ctx, &calcs, `
		SELECT created_at, mode, from_date, to_date, start_date, years, months, days, result
		FROM calculations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*datecalc.Calculation, len(calcs))
	for i, c := range calcs {
		conv, err := c.Convert()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		res[i] = conv
	}
	return res, nil
}

func dateColumn(d datecalc.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
