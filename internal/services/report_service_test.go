package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"taxiops/internal/domain"
	"taxiops/internal/repositories"
)

func reportTripRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "date",
		"driver_name", "driver_phone", "customer_name", "customer_phone",
		"from_location", "to_location", "company",
		"fuel_type", "payment_mode", "payment_status",
		"driver_amount", "commission", "fuel_amount", "tolls",
		"trip_amount", "created_by",
	})
}

func reportMaintenanceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "date", "vehicle_number", "driver_name", "maintenance_type",
		"amount", "payment_mode", "current_km", "next_service_km", "original_km", "created_by",
	})
}

func TestMonthlyReportAggregatesAndGlobalPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	// trips and maintenance are fetched concurrently
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM trips WHERE 1=1 AND date>=\\? AND date<=\\?").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(reportTripRows().
			AddRow(1, "2025-01-10", "Ravi", "", "Anita", "", "Airport", "City", "",
				"Petrol", "Cash", "paid", 500, 100, 300, 50, 1500, 7).
			AddRow(2, "2025-01-22", "Suresh", "", "Vikram", "", "Station", "Park", "",
				"Petrol", "Cash", "pending", 400, 80, 250, 0, 1200, 7))
	mock.ExpectQuery("FROM maintenance_records WHERE 1=1 AND date>=\\? AND date<=\\?").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(reportMaintenanceRows().
			AddRow(1, "2025-01-15", "KA01AB1234", "", "Oil Change", 800, "Cash", nil, nil, nil, 7))
	// pending total is global: no date predicate
	mock.ExpectQuery("SUM\\(trip_amount\\).+payment_status='pending'").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(9999.0))

	svc := ReportsService{
		TripsRepo:       repositories.TripsRepository{DB: db},
		MaintenanceRepo: repositories.MaintenanceRepository{DB: db},
		OutsideRepo:     repositories.OutsideTripsRepository{DB: db},
	}

	report, err := svc.MonthlyReport(ReportFilter{
		Range: DateRangeFilter{Mode: RangeMonthly, Year: 2025, Month: 1},
	})
	if err != nil {
		t.Fatalf("report error: %v", err)
	}

	if report.Range == nil || report.Range.Start != "2025-01-01" || report.Range.End != "2025-01-31" {
		t.Fatalf("range wrong: %+v", report.Range)
	}
	if report.Summary.TripCount != 2 {
		t.Fatalf("trip count: got %d", report.Summary.TripCount)
	}
	if !almostEqual(report.Summary.TotalRevenue, 2700) {
		t.Fatalf("revenue: got %v", report.Summary.TotalRevenue)
	}
	if !almostEqual(report.Summary.MaintenanceCost, 800) {
		t.Fatalf("maintenance cost: got %v", report.Summary.MaintenanceCost)
	}
	// pending comes from the unfiltered query, not the listed rows
	if !almostEqual(report.Summary.PendingTotal, 9999) {
		t.Fatalf("pending must be global: got %v", report.Summary.PendingTotal)
	}
	if len(report.TripGroups) != 1 || report.TripGroups[0].Label != "January 2025" {
		t.Fatalf("trip groups wrong: %+v", report.TripGroups)
	}
	if report.Cards.TripCount != 2 || report.Cards.Revenue == "" {
		t.Fatalf("cards wrong: %+v", report.Cards)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMonthlyReportSearchReaggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM trips WHERE 1=1").
		WillReturnRows(reportTripRows().
			AddRow(1, "2025-01-10", "Ravi", "", "Anita", "", "Airport", "City", "",
				"Petrol", "Cash", "paid", 0, 0, 0, 0, 1500, 7).
			AddRow(2, "2025-01-22", "Suresh", "", "Vikram", "", "Station", "Park", "",
				"Petrol", "Cash", "pending", 0, 0, 0, 0, 1200, 7))
	mock.ExpectQuery("FROM maintenance_records WHERE 1=1").
		WillReturnRows(reportMaintenanceRows())
	mock.ExpectQuery("SUM\\(trip_amount\\).+payment_status='pending'").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1200.0))

	svc := ReportsService{
		TripsRepo:       repositories.TripsRepository{DB: db},
		MaintenanceRepo: repositories.MaintenanceRepository{DB: db},
	}

	report, err := svc.MonthlyReport(ReportFilter{Search: "ravi"})
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if report.Range != nil {
		t.Fatalf("unfiltered report must have no range, got %+v", report.Range)
	}
	if report.Summary.TripCount != 1 || !almostEqual(report.Summary.TotalRevenue, 1500) {
		t.Fatalf("search must re-aggregate over the subset: %+v", report.Summary)
	}
}

func TestMonthlyReportInvalidRangeRejected(t *testing.T) {
	svc := ReportsService{}
	_, err := svc.MonthlyReport(ReportFilter{
		Range: DateRangeFilter{Mode: RangeCustom, StartDate: "2025-02-10", EndDate: "2025-02-01"},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("inverted custom range must fail before any query, got %v", err)
	}
}

func TestExpenseReportGroupsByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM maintenance_records WHERE 1=1").
		WillReturnRows(reportMaintenanceRows().
			AddRow(1, "2025-01-15", "KA01AB1234", "", "Oil Change", 800, "Cash", nil, nil, nil, 7).
			AddRow(2, "2024-12-20", "KA01AB1234", "", "Brake Pads", 2200, "Cash", nil, nil, nil, 7))

	svc := ReportsService{MaintenanceRepo: repositories.MaintenanceRepository{DB: db}}
	report, err := svc.ExpenseReport(ReportFilter{})
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if !almostEqual(report.Total, 3000) {
		t.Fatalf("total: got %v want 3000", report.Total)
	}
	if len(report.Groups) != 2 || report.Groups[0].Label != "January 2025" {
		t.Fatalf("groups wrong: %+v", report.Groups)
	}
}
