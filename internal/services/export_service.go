package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

// sheetColumn maps a machine field name to its spreadsheet display header.
// Export writes the display header; import accepts either key.
type sheetColumn struct {
	Field  string
	Header string
}

var tripSheetColumns = []sheetColumn{
	{"date", "Date"},
	{"driver_name", "Driver Name"},
	{"driver_phone", "Driver Phone"},
	{"customer_name", "Customer Name"},
	{"customer_phone", "Customer Phone"},
	{"from_location", "From Location"},
	{"to_location", "To Location"},
	{"company", "Company"},
	{"fuel_type", "Fuel Type"},
	{"payment_mode", "Payment Mode"},
	{"payment_status", "Payment Status"},
	{"driver_amount", "Driver Amount (₹)"},
	{"commission", "Commission (₹)"},
	{"fuel_amount", "Fuel Amount (₹)"},
	{"tolls", "Tolls (₹)"},
	{"trip_amount", "Trip Amount"},
	{"profit", "Profit (₹)"}, // always recomputed, ignored on import
}

var maintenanceSheetColumns = []sheetColumn{
	{"date", "Date"},
	{"vehicle_number", "Vehicle Number"},
	{"driver_name", "Driver Name"},
	{"maintenance_type", "Maintenance Type"},
	{"amount", "Amount (₹)"},
	{"payment_mode", "Payment Mode"},
	{"current_km", "Current KM"},
	{"next_service_km", "Next Service KM"},
	{"original_km", "Original KM"},
}

var outsideTripSheetColumns = []sheetColumn{
	{"date", "Date"},
	{"driver_name", "Driver Name"},
	{"travels_company", "Travels Company"},
	{"vehicle_type", "Vehicle Type"},
	{"vehicle_number", "Vehicle Number"},
	{"from_location", "From Location"},
	{"to_location", "To Location"},
	{"assigned_by", "Assigned By"},
	{"payment_mode", "Payment Mode"},
	{"payment_status", "Payment Status"},
	{"trip_amount", "Trip Amount"},
}

type ExportService struct {
	RequestID string
}

// ExportTrips writes a Trips detail sheet plus a Summary sheet. Currency is
// written as plain numbers in the detail sheet and as formatted strings in
// the summary sheet.
func (s ExportService) ExportTrips(trips []models.Trip, summary TripSummary, rng *DateRange) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Trips"
	f.SetSheetName("Sheet1", sheet)
	writeHeaderRow(f, sheet, tripSheetColumns)

	for i, t := range trips {
		row := i + 2
		values := []any{
			t.Date, t.DriverName, t.DriverPhone, t.CustomerName, t.CustomerPhone,
			t.FromLocation, t.ToLocation, t.Company, t.FuelType, t.PaymentMode, t.PaymentStatus,
			t.DriverAmount, t.Commission, t.FuelAmount, t.Tolls, t.TripAmount,
			utils.Round2(t.Profit()),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, "", err
		}
	}

	if err := writeSummarySheet(f, [][2]any{
		{"Trip Count", summary.TripCount},
		{"Total Revenue", utils.FormatINR(summary.TotalRevenue)},
		{"Total Trip Cost", utils.FormatINR(summary.TotalTripCost)},
		{"Maintenance Cost", utils.FormatINR(summary.MaintenanceCost)},
		{"Total Expenses", utils.FormatINR(summary.TotalExpenses)},
		{"Total Profit", utils.FormatINR(summary.TotalProfit)},
		{"Pending Total", utils.FormatINR(summary.PendingTotal)},
	}); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "export_trips", fmt.Sprintf("rows=%d", len(trips)))
	return writeWorkbook(f, exportFilename("TRIPS", rng))
}

// ExportMaintenance writes a Maintenance detail sheet plus a Summary sheet.
func (s ExportService) ExportMaintenance(records []models.MaintenanceRecord, rng *DateRange) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Maintenance"
	f.SetSheetName("Sheet1", sheet)
	writeHeaderRow(f, sheet, maintenanceSheetColumns)

	var total float64
	for i, m := range records {
		total += m.Amount
		row := i + 2
		values := []any{
			m.Date, m.VehicleNumber, m.DriverName, m.MaintenanceType,
			m.Amount, m.PaymentMode,
			optionalKM(m.CurrentKM), optionalKM(m.NextServiceKM), optionalKM(m.OriginalKM),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, "", err
		}
	}

	if err := writeSummarySheet(f, [][2]any{
		{"Record Count", len(records)},
		{"Maintenance Cost", utils.FormatINR(total)},
	}); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "export_maintenance", fmt.Sprintf("rows=%d", len(records)))
	return writeWorkbook(f, exportFilename("MAINTENANCE", rng))
}

// ExportOutsideTrips writes an Outside Trips detail sheet plus a Summary sheet.
func (s ExportService) ExportOutsideTrips(trips []models.OutsideTrip, rng *DateRange) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Outside Trips"
	f.SetSheetName("Sheet1", sheet)
	writeHeaderRow(f, sheet, outsideTripSheetColumns)

	summary := SummarizeOutside(trips)
	for i, t := range trips {
		row := i + 2
		values := []any{
			t.Date, t.DriverName, t.TravelsCompany, t.VehicleType, t.VehicleNumber,
			t.FromLocation, t.ToLocation, t.AssignedBy, t.PaymentMode, t.PaymentStatus,
			t.TripAmount,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return nil, "", err
		}
	}

	if err := writeSummarySheet(f, [][2]any{
		{"Trip Count", summary.TripCount},
		{"Total Revenue", utils.FormatINR(summary.TotalRevenue)},
		{"Pending Total", utils.FormatINR(summary.PendingTotal)},
	}); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "export_outside_trips", fmt.Sprintf("rows=%d", len(trips)))
	return writeWorkbook(f, exportFilename("OUTSIDE_TRIPS", rng))
}

func writeHeaderRow(f *excelize.File, sheet string, cols []sheetColumn) {
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, col.Header)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, rows [][2]any) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, kv := range rows {
		row := i + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeWorkbook(f *excelize.File, filename string) ([]byte, string, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), filename, nil
}

// exportFilename embeds the record type and either the covered range or the
// export date, in YYYYMMDD form.
func exportFilename(recordType string, rng *DateRange) string {
	if rng != nil {
		return fmt.Sprintf("%s_%s_%s.xlsx", recordType, compactDate(rng.Start), compactDate(rng.End))
	}
	return fmt.Sprintf("%s_%s.xlsx", recordType, utils.FormatDateCompact(time.Now()))
}

func compactDate(d string) string {
	return strings.ReplaceAll(d, "-", "")
}

func optionalKM(p *int64) any {
	if p == nil {
		return ""
	}
	return *p
}
