package services

import (
	"testing"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

func validTrip() models.Trip {
	return models.Trip{
		Date:         "2025-04-09",
		DriverName:   "Ravi",
		CustomerName: "Anita",
		FromLocation: "Airport",
		ToLocation:   "City",
		TripAmount:   1000,
	}
}

func TestValidateTripAppliesDefaults(t *testing.T) {
	trip := validTrip()
	if err := ValidateTrip(&trip); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trip.FuelType != models.FuelPetrol {
		t.Fatalf("fuel default: got %q want %q", trip.FuelType, models.FuelPetrol)
	}
	if trip.PaymentMode != models.PayCash {
		t.Fatalf("payment mode default: got %q want %q", trip.PaymentMode, models.PayCash)
	}
	if trip.PaymentStatus != models.StatusPending {
		t.Fatalf("payment status default: got %q want %q", trip.PaymentStatus, models.StatusPending)
	}
}

func TestValidateTripNormalizesWhitespaceAndDate(t *testing.T) {
	trip := validTrip()
	trip.DriverName = "  Ravi   Kumar "
	trip.Date = " 2025-04-09 "
	if err := ValidateTrip(&trip); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trip.DriverName != "Ravi Kumar" {
		t.Fatalf("driver name not normalized: %q", trip.DriverName)
	}
	if trip.Date != "2025-04-09" {
		t.Fatalf("date not canonicalized: %q", trip.Date)
	}
}

func TestValidateTripRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Trip)
	}{
		{"bad date", func(tr *models.Trip) { tr.Date = "09/04/2025" }},
		{"missing driver", func(tr *models.Trip) { tr.DriverName = " " }},
		{"missing customer", func(tr *models.Trip) { tr.CustomerName = "" }},
		{"missing route", func(tr *models.Trip) { tr.ToLocation = "" }},
		{"bad fuel", func(tr *models.Trip) { tr.FuelType = "Kerosene" }},
		{"bad payment mode", func(tr *models.Trip) { tr.PaymentMode = "Barter" }},
		{"bad payment status", func(tr *models.Trip) { tr.PaymentStatus = "maybe" }},
		{"negative amount", func(tr *models.Trip) { tr.TripAmount = -1 }},
		{"negative tolls", func(tr *models.Trip) { tr.Tolls = -5 }},
	}
	for _, c := range cases {
		trip := validTrip()
		c.mutate(&trip)
		if err := ValidateTrip(&trip); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
}

func TestValidateMaintenanceRequiredFields(t *testing.T) {
	rec := models.MaintenanceRecord{Date: "2025-04-09", VehicleNumber: "KA01AB1234", MaintenanceType: "Oil Change", Amount: 500}
	if err := ValidateMaintenance(&rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.PaymentMode != models.PayCash {
		t.Fatalf("payment mode default: got %q", rec.PaymentMode)
	}

	rec = models.MaintenanceRecord{Date: "2025-04-09", MaintenanceType: "Oil Change"}
	if err := ValidateMaintenance(&rec); !domain.IsValidation(err) {
		t.Fatalf("missing vehicle number must fail, got %v", err)
	}
}

func TestValidateOutsideTripRequiredFields(t *testing.T) {
	trip := models.OutsideTrip{Date: "2025-04-09", DriverName: "Ravi", TravelsCompany: "Sharma Travels", TripAmount: 700}
	if err := ValidateOutsideTrip(&trip); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trip.PaymentStatus != models.StatusPending {
		t.Fatalf("payment status default: got %q", trip.PaymentStatus)
	}

	trip = models.OutsideTrip{Date: "2025-04-09", DriverName: "Ravi"}
	if err := ValidateOutsideTrip(&trip); !domain.IsValidation(err) {
		t.Fatalf("missing travels company must fail, got %v", err)
	}
}
