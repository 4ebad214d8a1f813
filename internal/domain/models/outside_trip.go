package models

// OutsideTrip is a fare fulfilled by a subcontracted vehicle/driver.
// It carries no cost breakdown: pure revenue with a paid/pending status,
// aggregated separately from owned-fleet trips.
type OutsideTrip struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"` // YYYY-MM-DD
	DriverName     string  `json:"driver_name"`
	TravelsCompany string  `json:"travels_company"`
	VehicleType    string  `json:"vehicle_type"`
	VehicleNumber  string  `json:"vehicle_number"`
	FromLocation   string  `json:"from_location"`
	ToLocation     string  `json:"to_location"`
	AssignedBy     string  `json:"assigned_by,omitempty"`
	PaymentMode    string  `json:"payment_mode"`
	PaymentStatus  string  `json:"payment_status"`
	TripAmount     float64 `json:"trip_amount"`
	CreatedBy      int64   `json:"created_by,omitempty"`
}
