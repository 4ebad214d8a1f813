package repositories

import (
	"database/sql"
	"fmt"

	intconfig "taxiops/internal/config"
	intdb "taxiops/internal/db"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

type OutsideTripsRepository struct {
	DB *sql.DB
}

func (r OutsideTripsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const outsideTripColumns = `id, DATE_FORMAT(date,'%Y-%m-%d'),
	COALESCE(driver_name,''), COALESCE(travels_company,''),
	COALESCE(vehicle_type,''), COALESCE(vehicle_number,''),
	COALESCE(from_location,''), COALESCE(to_location,''), COALESCE(assigned_by,''),
	COALESCE(payment_mode,'Cash'), COALESCE(payment_status,'pending'),
	COALESCE(trip_amount,0), COALESCE(created_by,0)`

func scanOutsideTrip(rows interface{ Scan(...any) error }) (models.OutsideTrip, error) {
	var t models.OutsideTrip
	err := rows.Scan(
		&t.ID, &t.Date,
		&t.DriverName, &t.TravelsCompany,
		&t.VehicleType, &t.VehicleNumber,
		&t.FromLocation, &t.ToLocation, &t.AssignedBy,
		&t.PaymentMode, &t.PaymentStatus,
		&t.TripAmount, &t.CreatedBy,
	)
	return t, err
}

// List returns outside-vehicle trips constrained by date range and creator, newest first.
func (r OutsideTripsRepository) List(f ListFilter) ([]models.OutsideTrip, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(`SELECT %s FROM outside_trips WHERE %s ORDER BY date DESC, id DESC`, outsideTripColumns, where)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.OutsideTrip{}
	for rows.Next() {
		t, err := scanOutsideTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r OutsideTripsRepository) GetByID(id int64) (models.OutsideTrip, error) {
	query := fmt.Sprintf(`SELECT %s FROM outside_trips WHERE id=?`, outsideTripColumns)
	t, err := scanOutsideTrip(r.db().QueryRow(query, id))
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "outside trip"}
	}
	return t, err
}

func (r OutsideTripsRepository) Insert(t models.OutsideTrip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO outside_trips (
		  date, driver_name, travels_company, vehicle_type, vehicle_number,
		  from_location, to_location, assigned_by, payment_mode, payment_status,
		  trip_amount, created_by, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,NOW())
	`,
		t.Date, t.DriverName, t.TravelsCompany, t.VehicleType, t.VehicleNumber,
		t.FromLocation, t.ToLocation, intdb.NullIfEmpty(t.AssignedBy),
		t.PaymentMode, t.PaymentStatus, t.TripAmount, t.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r OutsideTripsRepository) Update(t models.OutsideTrip) error {
	_, err := r.db().Exec(`
		UPDATE outside_trips SET
		  date=?, driver_name=?, travels_company=?, vehicle_type=?, vehicle_number=?,
		  from_location=?, to_location=?, assigned_by=?, payment_mode=?, payment_status=?,
		  trip_amount=?
		WHERE id=?
	`,
		t.Date, t.DriverName, t.TravelsCompany, t.VehicleType, t.VehicleNumber,
		t.FromLocation, t.ToLocation, intdb.NullIfEmpty(t.AssignedBy),
		t.PaymentMode, t.PaymentStatus, t.TripAmount,
		t.ID,
	)
	return err
}

func (r OutsideTripsRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM outside_trips WHERE id=?`, id)
	return err
}

// PendingTotal sums unpaid outside-trip revenue over the creator scope.
func (r OutsideTripsRepository) PendingTotal(createdBy int64) (float64, error) {
	query := `SELECT COALESCE(SUM(trip_amount),0) FROM outside_trips WHERE payment_status='pending'`
	args := []any{}
	if createdBy > 0 {
		query += ` AND created_by=?`
		args = append(args, createdBy)
	}

	var total float64
	err := r.db().QueryRow(query, args...).Scan(&total)
	return total, err
}
