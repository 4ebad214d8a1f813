package services

import (
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

// ValidateTrip normalizes and checks a trip before it reaches the store.
// Empty enum fields take their fallback value; invalid values are rejected.
func ValidateTrip(t *models.Trip) error {
	t.Date = utils.TrimOrEmpty(t.Date)
	t.DriverName = utils.NormalizeSpace(t.DriverName)
	t.DriverPhone = utils.TrimOrEmpty(t.DriverPhone)
	t.CustomerName = utils.NormalizeSpace(t.CustomerName)
	t.CustomerPhone = utils.TrimOrEmpty(t.CustomerPhone)
	t.FromLocation = utils.NormalizeSpace(t.FromLocation)
	t.ToLocation = utils.NormalizeSpace(t.ToLocation)
	t.Company = utils.NormalizeSpace(t.Company)

	parsed, err := utils.ParseDate(t.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	t.Date = utils.FormatDate(parsed)

	if t.DriverName == "" {
		return domain.ValidationError{Field: "driver_name", Msg: "required"}
	}
	if t.CustomerName == "" {
		return domain.ValidationError{Field: "customer_name", Msg: "required"}
	}
	if t.FromLocation == "" || t.ToLocation == "" {
		return domain.ValidationError{Field: "route", Msg: "from and to locations required"}
	}

	if t.FuelType == "" {
		t.FuelType = models.FuelPetrol
	}
	if !models.ValidFuelType(t.FuelType) {
		return domain.ValidationError{Field: "fuel_type", Msg: "must be Petrol, Diesel, CNG or EV"}
	}
	if t.PaymentMode == "" {
		t.PaymentMode = models.PayCash
	}
	if !models.ValidPaymentMode(t.PaymentMode) {
		return domain.ValidationError{Field: "payment_mode", Msg: "must be Cash, UPI, Online, Card or Other"}
	}
	if t.PaymentStatus == "" {
		t.PaymentStatus = models.StatusPending
	}
	if !models.ValidPaymentStatus(t.PaymentStatus) {
		return domain.ValidationError{Field: "payment_status", Msg: "must be pending or paid"}
	}

	for _, amt := range []struct {
		field string
		value float64
	}{
		{"driver_amount", t.DriverAmount},
		{"commission", t.Commission},
		{"fuel_amount", t.FuelAmount},
		{"tolls", t.Tolls},
		{"trip_amount", t.TripAmount},
	} {
		if amt.value < 0 {
			return domain.ValidationError{Field: amt.field, Msg: "must not be negative"}
		}
	}
	return nil
}

func ValidateMaintenance(m *models.MaintenanceRecord) error {
	m.Date = utils.TrimOrEmpty(m.Date)
	m.VehicleNumber = utils.NormalizeSpace(m.VehicleNumber)
	m.DriverName = utils.NormalizeSpace(m.DriverName)
	m.MaintenanceType = utils.NormalizeSpace(m.MaintenanceType)

	parsed, err := utils.ParseDate(m.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	m.Date = utils.FormatDate(parsed)

	if m.VehicleNumber == "" {
		return domain.ValidationError{Field: "vehicle_number", Msg: "required"}
	}
	if m.MaintenanceType == "" {
		return domain.ValidationError{Field: "maintenance_type", Msg: "required"}
	}
	if m.Amount < 0 {
		return domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if m.PaymentMode == "" {
		m.PaymentMode = models.PayCash
	}
	if !models.ValidPaymentMode(m.PaymentMode) {
		return domain.ValidationError{Field: "payment_mode", Msg: "must be Cash, UPI, Online, Card or Other"}
	}
	return nil
}

func ValidateOutsideTrip(t *models.OutsideTrip) error {
	t.Date = utils.TrimOrEmpty(t.Date)
	t.DriverName = utils.NormalizeSpace(t.DriverName)
	t.TravelsCompany = utils.NormalizeSpace(t.TravelsCompany)
	t.VehicleType = utils.NormalizeSpace(t.VehicleType)
	t.VehicleNumber = utils.NormalizeSpace(t.VehicleNumber)
	t.FromLocation = utils.NormalizeSpace(t.FromLocation)
	t.ToLocation = utils.NormalizeSpace(t.ToLocation)
	t.AssignedBy = utils.NormalizeSpace(t.AssignedBy)

	parsed, err := utils.ParseDate(t.Date)
	if err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	t.Date = utils.FormatDate(parsed)

	if t.DriverName == "" {
		return domain.ValidationError{Field: "driver_name", Msg: "required"}
	}
	if t.TravelsCompany == "" {
		return domain.ValidationError{Field: "travels_company", Msg: "required"}
	}
	if t.TripAmount < 0 {
		return domain.ValidationError{Field: "trip_amount", Msg: "must not be negative"}
	}
	if t.PaymentMode == "" {
		t.PaymentMode = models.PayCash
	}
	if !models.ValidPaymentMode(t.PaymentMode) {
		return domain.ValidationError{Field: "payment_mode", Msg: "must be Cash, UPI, Online, Card or Other"}
	}
	if t.PaymentStatus == "" {
		t.PaymentStatus = models.StatusPending
	}
	if !models.ValidPaymentStatus(t.PaymentStatus) {
		return domain.ValidationError{Field: "payment_status", Msg: "must be pending or paid"}
	}
	return nil
}
