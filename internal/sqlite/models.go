package sqlite

import (
	"fmt"
	"time"

	"github.com/guilherme-santos/datecalc"
)

type Calculation struct {
	CreatedAt string `db:"created_at"`
	Mode      string
	FromDate  string `db:"from_date"`
	ToDate    string `db:"to_date"`
	StartDate string `db:"start_date"`
	Years     int
	Months    int
	Days      int
	Result    string
}

func (c Calculation) Convert() (*datecalc.Calculation, error) {
	createdAt, err := time.Parse(time.RFC3339, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}

	calc := &datecalc.Calculation{
		CreatedAt: createdAt,
		Mode:      datecalc.CalculationMode(c.Mode),
		Offset: datecalc.DateDifference{
			Year:  c.Years,
			Month: c.Months,
			Day:   c.Days,
		},
		Result: c.Result,
	}
	for _, col := range []struct {
		value string
		dst   *datecalc.Date
	}{
		{c.FromDate, &calc.From},
		{c.ToDate, &calc.To},
		{c.StartDate, &calc.Start},
	} {
		if col.value == "" {
			continue
		}
		d, err := datecalc.Parse(datecalc.DateFormat, col.value)
		if err != nil {
			return nil, err
		}
		*col.dst = d
	}
	return calc, nil
}
