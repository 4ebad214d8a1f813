package repositories

import (
	"database/sql"
	"fmt"

	intconfig "taxiops/internal/config"
	intdb "taxiops/internal/db"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

type MaintenanceRepository struct {
	DB *sql.DB
}

func (r MaintenanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const maintenanceColumns = `id, DATE_FORMAT(date,'%Y-%m-%d'),
	COALESCE(vehicle_number,''), COALESCE(driver_name,''), COALESCE(maintenance_type,''),
	COALESCE(amount,0), COALESCE(payment_mode,'Cash'),
	current_km, next_service_km, original_km, COALESCE(created_by,0)`

func scanMaintenance(rows interface{ Scan(...any) error }) (models.MaintenanceRecord, error) {
	var m models.MaintenanceRecord
	var current, next, original sql.NullInt64
	err := rows.Scan(
		&m.ID, &m.Date,
		&m.VehicleNumber, &m.DriverName, &m.MaintenanceType,
		&m.Amount, &m.PaymentMode,
		&current, &next, &original, &m.CreatedBy,
	)
	if current.Valid {
		v := current.Int64
		m.CurrentKM = &v
	}
	if next.Valid {
		v := next.Int64
		m.NextServiceKM = &v
	}
	if original.Valid {
		v := original.Int64
		m.OriginalKM = &v
	}
	return m, err
}

// List returns maintenance records constrained by date range and creator, newest first.
func (r MaintenanceRepository) List(f ListFilter) ([]models.MaintenanceRecord, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(`SELECT %s FROM maintenance_records WHERE %s ORDER BY date DESC, id DESC`, maintenanceColumns, where)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MaintenanceRecord{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r MaintenanceRepository) GetByID(id int64) (models.MaintenanceRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_records WHERE id=?`, maintenanceColumns)
	m, err := scanMaintenance(r.db().QueryRow(query, id))
	if err == sql.ErrNoRows {
		return m, domain.NotFoundError{Resource: "maintenance record"}
	}
	return m, err
}

func (r MaintenanceRepository) Insert(m models.MaintenanceRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO maintenance_records (
		  date, vehicle_number, driver_name, maintenance_type, amount, payment_mode,
		  current_km, next_service_km, original_km, created_by, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,NOW())
	`,
		m.Date, m.VehicleNumber, m.DriverName, m.MaintenanceType, m.Amount, m.PaymentMode,
		intdb.NullInt64(m.CurrentKM), intdb.NullInt64(m.NextServiceKM), intdb.NullInt64(m.OriginalKM),
		m.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r MaintenanceRepository) Update(m models.MaintenanceRecord) error {
	_, err := r.db().Exec(`
		UPDATE maintenance_records SET
		  date=?, vehicle_number=?, driver_name=?, maintenance_type=?, amount=?, payment_mode=?,
		  current_km=?, next_service_km=?, original_km=?
		WHERE id=?
	`,
		m.Date, m.VehicleNumber, m.DriverName, m.MaintenanceType, m.Amount, m.PaymentMode,
		intdb.NullInt64(m.CurrentKM), intdb.NullInt64(m.NextServiceKM), intdb.NullInt64(m.OriginalKM),
		m.ID,
	)
	return err
}

func (r MaintenanceRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM maintenance_records WHERE id=?`, id)
	return err
}
