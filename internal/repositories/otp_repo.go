package repositories

import (
	"database/sql"
	"time"

	intconfig "taxiops/internal/config"
	"taxiops/internal/domain"
)

// OTPRepository stores pending one-time codes, one row per phone. A new
// request for the same phone supersedes the prior pending code.
type OTPRepository struct {
	DB *sql.DB
}

func (r OTPRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OTPRepository) Upsert(phone, codeHash string, expiresAt time.Time) error {
	_, err := r.db().Exec(`
		INSERT INTO otp_codes (phone, code_hash, expires_at, created_at)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE code_hash=VALUES(code_hash), expires_at=VALUES(expires_at), created_at=NOW()
	`, phone, codeHash, expiresAt)
	return err
}

func (r OTPRepository) Get(phone string) (codeHash string, expiresAt time.Time, err error) {
	err = r.db().QueryRow(`
		SELECT code_hash, expires_at FROM otp_codes WHERE phone = ?
	`, phone).Scan(&codeHash, &expiresAt)
	if err == sql.ErrNoRows {
		return "", time.Time{}, domain.NotFoundError{Resource: "verification code"}
	}
	return codeHash, expiresAt, err
}

func (r OTPRepository) Delete(phone string) error {
	_, err := r.db().Exec(`DELETE FROM otp_codes WHERE phone = ?`, phone)
	return err
}
