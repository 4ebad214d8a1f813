package models

// MaintenanceRecord is a vehicle upkeep expense, unrelated to any specific trip.
// Odometer fields are informational and never enter financial aggregation.
type MaintenanceRecord struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"` // YYYY-MM-DD
	VehicleNumber   string  `json:"vehicle_number"`
	DriverName      string  `json:"driver_name"`
	MaintenanceType string  `json:"maintenance_type"`
	Amount          float64 `json:"amount"`
	PaymentMode     string  `json:"payment_mode"`
	CurrentKM       *int64  `json:"current_km,omitempty"`
	NextServiceKM   *int64  `json:"next_service_km,omitempty"`
	OriginalKM      *int64  `json:"original_km,omitempty"`
	CreatedBy       int64   `json:"created_by,omitempty"`
}
