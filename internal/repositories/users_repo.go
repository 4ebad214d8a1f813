package repositories

import (
	"database/sql"

	intconfig "taxiops/internal/config"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

type UsersRepository struct {
	DB *sql.DB
}

func (r UsersRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UsersRepository) GetByPhone(phone string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, phone, COALESCE(name,''), COALESCE(role,'staff'), COALESCE(status,'active')
		FROM users
		WHERE phone = ?
	`, phone).Scan(&u.ID, &u.Phone, &u.Name, &u.Role, &u.Status)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UsersRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, phone, COALESCE(name,''), COALESCE(role,'staff'), COALESCE(status,'active')
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Phone, &u.Name, &u.Role, &u.Status)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UsersRepository) Insert(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (phone, name, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, u.Phone, u.Name, u.Role, u.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
