package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

type ImportService struct {
	TripsRepo repositories.TripsRepository
	RequestID string
}

type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

type ImportResult struct {
	Total    int        `json:"total"`
	Inserted int        `json:"inserted"`
	Errors   []RowError `json:"errors,omitempty"`
}

// ImportTrips reads an uploaded workbook and inserts one trip per valid row.
// Invalid rows are reported by row number; valid rows still proceed.
func (s ImportService) ImportTrips(r io.Reader, createdBy int64) (ImportResult, error) {
	trips, rowErrs, err := ParseTripSheet(r)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Total: len(trips) + len(rowErrs), Errors: rowErrs}
	for i := range trips {
		trips[i].CreatedBy = createdBy
		if _, err := s.TripsRepo.Insert(trips[i]); err != nil {
			result.Errors = append(result.Errors, RowError{Row: 0, Err: fmt.Sprintf("insert failed: %v", err)})
			continue
		}
		result.Inserted++
	}

	utils.LogEvent(s.RequestID, "import", "import_trips",
		fmt.Sprintf("total=%d inserted=%d errors=%d", result.Total, result.Inserted, len(result.Errors)))
	return result, nil
}

// ParseTripSheet reads trip rows from the first recognized sheet. The header
// row may use machine field names (driver_name) or human headers
// ("Driver Name"); for each field the machine key wins, then the human
// header, else the field's default.
func ParseTripSheet(r io.Reader) ([]models.Trip, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, domain.ValidationError{Field: "file", Msg: "unreadable spreadsheet", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, domain.ValidationError{Field: "file", Msg: "workbook has no sheets"}
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if name == "Trips" {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, domain.ValidationError{Field: "file", Msg: "unreadable sheet", Err: err}
	}
	if len(rows) < 2 {
		return nil, nil, domain.ValidationError{Field: "file", Msg: "sheet needs a header row and at least one data row"}
	}

	headerIndex := map[string]int{}
	for i, cell := range rows[0] {
		key := strings.ToLower(utils.NormalizeSpace(cell))
		if key != "" {
			headerIndex[key] = i
		}
	}

	lookup := func(col sheetColumn) (int, bool) {
		if i, ok := headerIndex[col.Field]; ok {
			return i, true
		}
		if i, ok := headerIndex[strings.ToLower(col.Header)]; ok {
			return i, true
		}
		return 0, false
	}

	cellValue := func(row []string, col sheetColumn) string {
		i, ok := lookup(col)
		if !ok || i >= len(row) {
			return ""
		}
		return utils.TrimOrEmpty(row[i])
	}

	if _, ok := lookup(sheetColumn{Field: "date", Header: "Date"}); !ok {
		return nil, nil, domain.ValidationError{Field: "file", Msg: "missing required column: date"}
	}

	var (
		trips   []models.Trip
		rowErrs []RowError
	)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowNum := i + 1

		t := models.Trip{
			Date:          cellValue(row, tripSheetColumns[0]),
			DriverName:    cellValue(row, tripSheetColumns[1]),
			DriverPhone:   cellValue(row, tripSheetColumns[2]),
			CustomerName:  cellValue(row, tripSheetColumns[3]),
			CustomerPhone: cellValue(row, tripSheetColumns[4]),
			FromLocation:  cellValue(row, tripSheetColumns[5]),
			ToLocation:    cellValue(row, tripSheetColumns[6]),
			Company:       cellValue(row, tripSheetColumns[7]),
			FuelType:      cellValue(row, tripSheetColumns[8]),
			PaymentMode:   cellValue(row, tripSheetColumns[9]),
			PaymentStatus: strings.ToLower(cellValue(row, tripSheetColumns[10])),
		}

		var amountErr error
		readAmount := func(col sheetColumn) float64 {
			raw := cellValue(row, col)
			v, err := utils.ParseAmount(raw)
			if err != nil && amountErr == nil {
				amountErr = fmt.Errorf("%s: not a number (%q)", col.Field, raw)
			}
			return v
		}
		t.DriverAmount = readAmount(tripSheetColumns[11])
		t.Commission = readAmount(tripSheetColumns[12])
		t.FuelAmount = readAmount(tripSheetColumns[13])
		t.Tolls = readAmount(tripSheetColumns[14])
		t.TripAmount = readAmount(tripSheetColumns[15])
		// profit column, when present, is ignored: it is recomputed from the
		// cost fields and revenue, never trusted from input

		if amountErr != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: amountErr.Error()})
			continue
		}
		if err := ValidateTrip(&t); err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: err.Error()})
			continue
		}
		trips = append(trips, t)
	}

	return trips, rowErrs, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if utils.TrimOrEmpty(cell) != "" {
			return false
		}
	}
	return true
}
