package services

import (
	"bytes"
	"testing"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

func TestGenerateInvoicePDF(t *testing.T) {
	trip := models.Trip{
		ID: 42, Date: "2025-01-10",
		DriverName: "Ravi", CustomerName: "Anita", CustomerPhone: "9876543210",
		FromLocation: "Airport", ToLocation: "City Center",
		PaymentMode: models.PayCash, PaymentStatus: models.StatusPaid,
		TripAmount: 1500,
	}

	svc := InvoiceService{
		Loader: func(id int64) (models.Trip, error) {
			if id != 42 {
				t.Fatalf("loader called with id %d", id)
			}
			return trip, nil
		},
	}

	data, filename, err := svc.GenerateInvoice(42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (%d bytes)", len(data))
	}
	if filename != "INVOICE_TRIP_42_20250110.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
}

func TestGenerateInvoiceMissingTrip(t *testing.T) {
	svc := InvoiceService{
		Loader: func(int64) (models.Trip, error) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip"}
		},
	}
	if _, _, err := svc.GenerateInvoice(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
