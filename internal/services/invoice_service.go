package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

// InvoiceService renders a per-trip PDF invoice.
type InvoiceService struct {
	TripsRepo repositories.TripsRepository
	RequestID string
	Loader    func(int64) (models.Trip, error)
}

func (s InvoiceService) GenerateInvoice(tripID int64) ([]byte, string, error) {
	trip, err := s.loadTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate_invoice", fmt.Sprintf("trip_id=%d", tripID))
	return buildTripInvoicePDF(trip)
}

func (s InvoiceService) loadTrip(tripID int64) (models.Trip, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}
	return s.TripsRepo.GetByID(tripID)
}

func buildTripInvoicePDF(t models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%s", t.ID, compactDate(t.Date))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", fallback(t.CustomerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", fallback(t.CustomerPhone, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Taxi trip %s -> %s on %s, driver %s",
		fallback(t.FromLocation, "-"), fallback(t.ToLocation, "-"),
		fallback(t.Date, "-"), fallback(t.DriverName, "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Trip Amount    : "+utils.FormatINR(t.TripAmount))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Payment Mode   : "+fallback(t.PaymentMode, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Payment Status : "+fallback(t.PaymentStatus, "-"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(t.TripAmount))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_TRIP_%d_%s.pdf", t.ID, compactDate(t.Date))
	return buf.Bytes(), filename, nil
}

func fallback(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
