package repositories

import (
	"database/sql"
	"fmt"

	intconfig "taxiops/internal/config"
	intdb "taxiops/internal/db"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

type TripsRepository struct {
	DB *sql.DB
}

func (r TripsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, DATE_FORMAT(date,'%Y-%m-%d'),
	COALESCE(driver_name,''), COALESCE(driver_phone,''),
	COALESCE(customer_name,''), COALESCE(customer_phone,''),
	COALESCE(from_location,''), COALESCE(to_location,''), COALESCE(company,''),
	COALESCE(fuel_type,'Petrol'), COALESCE(payment_mode,'Cash'), COALESCE(payment_status,'pending'),
	COALESCE(driver_amount,0), COALESCE(commission,0), COALESCE(fuel_amount,0), COALESCE(tolls,0),
	COALESCE(trip_amount,0), COALESCE(created_by,0)`

func scanTrip(rows interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := rows.Scan(
		&t.ID, &t.Date,
		&t.DriverName, &t.DriverPhone,
		&t.CustomerName, &t.CustomerPhone,
		&t.FromLocation, &t.ToLocation, &t.Company,
		&t.FuelType, &t.PaymentMode, &t.PaymentStatus,
		&t.DriverAmount, &t.Commission, &t.FuelAmount, &t.Tolls,
		&t.TripAmount, &t.CreatedBy,
	)
	return t, err
}

// List returns trips constrained by date range and creator, newest first.
func (r TripsRepository) List(f ListFilter) ([]models.Trip, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE %s ORDER BY date DESC, id DESC`, tripColumns, where)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripsRepository) GetByID(id int64) (models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id=?`, tripColumns)
	t, err := scanTrip(r.db().QueryRow(query, id))
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripsRepository) Insert(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (
		  date, driver_name, driver_phone, customer_name, customer_phone,
		  from_location, to_location, company, fuel_type, payment_mode, payment_status,
		  driver_amount, commission, fuel_amount, tolls, trip_amount, created_by, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,NOW())
	`,
		t.Date, t.DriverName, t.DriverPhone, t.CustomerName, t.CustomerPhone,
		t.FromLocation, t.ToLocation, intdb.NullIfEmpty(t.Company),
		t.FuelType, t.PaymentMode, t.PaymentStatus,
		t.DriverAmount, t.Commission, t.FuelAmount, t.Tolls, t.TripAmount, t.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces all editable fields. Identifier and creation metadata stay.
func (r TripsRepository) Update(t models.Trip) error {
	_, err := r.db().Exec(`
		UPDATE trips SET
		  date=?, driver_name=?, driver_phone=?, customer_name=?, customer_phone=?,
		  from_location=?, to_location=?, company=?, fuel_type=?, payment_mode=?, payment_status=?,
		  driver_amount=?, commission=?, fuel_amount=?, tolls=?, trip_amount=?
		WHERE id=?
	`,
		t.Date, t.DriverName, t.DriverPhone, t.CustomerName, t.CustomerPhone,
		t.FromLocation, t.ToLocation, intdb.NullIfEmpty(t.Company),
		t.FuelType, t.PaymentMode, t.PaymentStatus,
		t.DriverAmount, t.Commission, t.FuelAmount, t.Tolls, t.TripAmount,
		t.ID,
	)
	return err
}

func (r TripsRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	return err
}

// PendingTotal sums unpaid trip revenue over the creator scope, independent of
// any date filter applied to the displayed list.
func (r TripsRepository) PendingTotal(createdBy int64) (float64, error) {
	query := `SELECT COALESCE(SUM(trip_amount),0) FROM trips WHERE payment_status='pending'`
	args := []any{}
	if createdBy > 0 {
		query += ` AND created_by=?`
		args = append(args, createdBy)
	}

	var total float64
	err := r.db().QueryRow(query, args...).Scan(&total)
	return total, err
}
