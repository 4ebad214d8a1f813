package models

// Fuel types accepted for owned-fleet trips.
const (
	FuelPetrol = "Petrol"
	FuelDiesel = "Diesel"
	FuelCNG    = "CNG"
	FuelEV     = "EV"
)

// Payment modes.
const (
	PayCash   = "Cash"
	PayUPI    = "UPI"
	PayOnline = "Online"
	PayCard   = "Card"
	PayOther  = "Other"
)

// Payment status for receivables follow-up.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Trip is one completed fare by an owned vehicle with full revenue/cost breakdown.
type Trip struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	DriverName    string  `json:"driver_name"`
	DriverPhone   string  `json:"driver_phone"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	Company       string  `json:"company,omitempty"`
	FuelType      string  `json:"fuel_type"`
	PaymentMode   string  `json:"payment_mode"`
	PaymentStatus string  `json:"payment_status"`
	DriverAmount  float64 `json:"driver_amount"`
	Commission    float64 `json:"commission"`
	FuelAmount    float64 `json:"fuel_amount"`
	Tolls         float64 `json:"tolls"`
	TripAmount    float64 `json:"trip_amount"`
	CreatedBy     int64   `json:"created_by,omitempty"`
}

// Cost is the sum of the four cost components.
func (t Trip) Cost() float64 {
	return t.DriverAmount + t.Commission + t.FuelAmount + t.Tolls
}

// Profit is always derived from revenue and costs; a stored profit value is
// never trusted once the underlying fields may have changed.
func (t Trip) Profit() float64 {
	return t.TripAmount - t.Cost()
}

func ValidFuelType(s string) bool {
	switch s {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelEV:
		return true
	}
	return false
}

func ValidPaymentMode(s string) bool {
	switch s {
	case PayCash, PayUPI, PayOnline, PayCard, PayOther:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}
