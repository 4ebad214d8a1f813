package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

func TestExportTripsFilename(t *testing.T) {
	svc := ExportService{}

	_, name, err := svc.ExportTrips(nil, TripSummary{}, &DateRange{Start: "2025-01-01", End: "2025-01-31"})
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if name != "TRIPS_20250101_20250131.xlsx" {
		t.Fatalf("ranged filename: got %q", name)
	}

	_, name, err = svc.ExportTrips(nil, TripSummary{}, nil)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.HasPrefix(name, "TRIPS_") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unranged filename shape: got %q", name)
	}
}

func TestExportImportRoundTripPreservesAggregates(t *testing.T) {
	trips := sampleTrips()
	original := Summarize(trips, nil)

	data, _, err := ExportService{}.ExportTrips(trips, original, nil)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}

	parsed, rowErrs, err := ParseTripSheet(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("round trip produced row errors: %+v", rowErrs)
	}
	if len(parsed) != len(trips) {
		t.Fatalf("row count: got %d want %d", len(parsed), len(trips))
	}

	got := Summarize(parsed, nil)
	if got.TripCount != original.TripCount ||
		!almostEqual(got.TotalRevenue, original.TotalRevenue) ||
		!almostEqual(got.TotalTripCost, original.TotalTripCost) ||
		!almostEqual(got.TotalProfit, original.TotalProfit) {
		t.Fatalf("aggregates changed across round trip:\n got %+v\nwant %+v", got, original)
	}

	for i := range trips {
		if parsed[i].Date != trips[i].Date || parsed[i].DriverName != trips[i].DriverName {
			t.Fatalf("row %d identity changed: got %s/%s want %s/%s",
				i, parsed[i].Date, parsed[i].DriverName, trips[i].Date, trips[i].DriverName)
		}
		if parsed[i].PaymentStatus != trips[i].PaymentStatus {
			t.Fatalf("row %d payment status: got %q want %q", i, parsed[i].PaymentStatus, trips[i].PaymentStatus)
		}
	}
}

func buildWorkbook(t *testing.T, header []string, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for r, row := range rows {
		for i, v := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseTripSheetMachineFieldHeaders(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"date", "driver_name", "customer_name", "from_location", "to_location", "trip_amount"},
		[][]any{{"2025-02-03", "Ravi", "Anita", "Airport", "City", 1500}},
	)

	trips, rowErrs, err := ParseTripSheet(r)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rowErrs) != 0 || len(trips) != 1 {
		t.Fatalf("unexpected result: trips=%d errs=%+v", len(trips), rowErrs)
	}
	if trips[0].TripAmount != 1500 {
		t.Fatalf("trip amount: got %v", trips[0].TripAmount)
	}
}

func TestParseTripSheetHumanHeadersAndDefaults(t *testing.T) {
	// no fuel, payment or cost columns at all
	r := buildWorkbook(t,
		[]string{"Date", "Driver Name", "Customer Name", "From Location", "To Location", "Trip Amount"},
		[][]any{{"2025-02-03", "Ravi", "Anita", "Airport", "City", "1,500"}},
	)

	trips, rowErrs, err := ParseTripSheet(r)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rowErrs) != 0 || len(trips) != 1 {
		t.Fatalf("unexpected result: trips=%d errs=%+v", len(trips), rowErrs)
	}

	got := trips[0]
	if got.FuelType != models.FuelPetrol {
		t.Fatalf("missing fuel column must default to Petrol, got %q", got.FuelType)
	}
	if got.PaymentMode != models.PayCash {
		t.Fatalf("missing payment mode must default to Cash, got %q", got.PaymentMode)
	}
	if got.PaymentStatus != models.StatusPending {
		t.Fatalf("missing payment status must default to pending, got %q", got.PaymentStatus)
	}
	if got.DriverAmount != 0 || got.Tolls != 0 {
		t.Fatalf("missing cost columns must default to 0: %+v", got)
	}
	if got.TripAmount != 1500 {
		t.Fatalf("grouped amount must parse: got %v", got.TripAmount)
	}
}

func TestParseTripSheetIgnoresProfitColumn(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"date", "driver_name", "customer_name", "from_location", "to_location", "trip_amount", "Profit (₹)"},
		[][]any{{"2025-02-03", "Ravi", "Anita", "Airport", "City", 1000, 999999}},
	)

	trips, _, err := ParseTripSheet(r)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("row count: got %d", len(trips))
	}
	if got := trips[0].Profit(); !almostEqual(got, 1000) {
		t.Fatalf("profit must be recomputed, not read: got %v", got)
	}
}

func TestParseTripSheetRowErrorsDoNotBlockValidRows(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"date", "driver_name", "customer_name", "from_location", "to_location", "trip_amount"},
		[][]any{
			{"2025-02-03", "Ravi", "Anita", "Airport", "City", 1000},
			{"not-a-date", "Suresh", "Vikram", "Station", "Park", 500},
			{"2025-02-05", "Mani", "Leela", "Hotel", "Mall", "abc"},
		},
	)

	trips, rowErrs, err := ParseTripSheet(r)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("valid rows: got %d want 1", len(trips))
	}
	if len(rowErrs) != 2 {
		t.Fatalf("row errors: got %d want 2: %+v", len(rowErrs), rowErrs)
	}
	if rowErrs[0].Row != 3 || rowErrs[1].Row != 4 {
		t.Fatalf("row numbers wrong: %+v", rowErrs)
	}
}

func TestParseTripSheetMissingDateColumn(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"driver_name", "trip_amount"},
		[][]any{{"Ravi", 1000}},
	)
	_, _, err := ParseTripSheet(r)
	if !domain.IsValidation(err) {
		t.Fatalf("missing date column must be a validation error, got %v", err)
	}
}

func TestParseTripSheetRejectsGarbageInput(t *testing.T) {
	_, _, err := ParseTripSheet(strings.NewReader("this is not a workbook"))
	if !domain.IsValidation(err) {
		t.Fatalf("garbage input must be a validation error, got %v", err)
	}
}
