package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"

	"github.com/guilherme-santos/datecalc"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open(DriverName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStorage(db)
}

func TestAddAndListCalculations(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	first := &datecalc.Calculation{
		CreatedAt: time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC),
		Mode:      datecalc.ModeDifference,
		From:      datecalc.NewDate(2020, time.January, 1),
		To:        datecalc.NewDate(2023, time.March, 15),
		Result:    "3 years, 2 months, 2 weeks",
	}
	second := &datecalc.Calculation{
		CreatedAt: time.Date(2024, time.June, 15, 11, 0, 0, 0, time.UTC),
		Mode:      datecalc.ModeAdd,
		Start:     datecalc.NewDate(2023, time.January, 31),
		Offset:    datecalc.DateDifference{Month: 1},
		Result:    "Tuesday, February 28, 2023",
	}
	for _, calc := range []*datecalc.Calculation{first, second} {
		if err := storage.AddCalculation(ctx, calc); err != nil {
			t.Fatalf("AddCalculation() = %v, want <nil>", err)
		}
	}

	got, err := storage.Calculations(ctx, 0)
	if err != nil {
		t.Fatalf("Calculations() = _, %v, want <nil>", err)
	}
	if diff := cmp.Diff([]*datecalc.Calculation{second, first}, got); diff != "" {
		t.Errorf("Calculations() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculationsLimit(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	for i := 0; i < 5; i++ {
		calc := &datecalc.Calculation{
			CreatedAt: time.Date(2024, time.June, 15, 10, i, 0, 0, time.UTC),
			Mode:      datecalc.ModeDifference,
			From:      datecalc.NewDate(2024, time.June, 1),
			To:        datecalc.NewDate(2024, time.June, 1+i),
			Result:    "whatever",
		}
		if err := storage.AddCalculation(ctx, calc); err != nil {
			t.Fatalf("AddCalculation() = %v, want <nil>", err)
		}
	}

	got, err := storage.Calculations(ctx, 2)
	if err != nil {
		t.Fatalf("Calculations() = _, %v, want <nil>", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Calculations(2)) = %d, want 2", len(got))
	}
	// Newest first.
	if want := datecalc.NewDate(2024, time.June, 5); !got[0].To.Equal(want) {
		t.Errorf("Calculations(2)[0].To = %v, want %v", got[0].To, want)
	}
}

func TestAddCalculationDefaultsCreatedAt(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	err := storage.AddCalculation(ctx, &datecalc.Calculation{
		Mode:   datecalc.ModeSubtract,
		Start:  datecalc.NewDate(2024, time.June, 15),
		Offset: datecalc.DateDifference{Day: 7},
		Result: "Saturday, June 8, 2024",
	})
	if err != nil {
		t.Fatalf("AddCalculation() = %v, want <nil>", err)
	}

	got, err := storage.Calculations(ctx, 1)
	if err != nil {
		t.Fatalf("Calculations() = _, %v, want <nil>", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Calculations(1)) = %d, want 1", len(got))
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want defaulted to now")
	}
}
