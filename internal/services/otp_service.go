package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"taxiops/internal/config"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

// OTPService drives the two-step phone login: RequestCode issues a pending
// one-time code, VerifyCode exchanges it for a session token. Whether the
// phone belongs to a first-time user is an explicit response field, never
// inferred from error text.
type OTPService struct {
	Users  repositories.UsersRepository
	Codes  repositories.OTPRepository
	Secret []byte
	TTL    time.Duration

	GenerateCode func() string
	Now          func() time.Time
}

type OTPChallenge struct {
	Phone     string    `json:"phone"`
	IsNewUser bool      `json:"is_new_user"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyInput struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Name  string `json:"name"` // required for first-time users
}

type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// RequestCode issues a fresh code for the phone, superseding any pending one.
// The plain code is returned to the caller for delivery; only its hash is
// stored.
func (s OTPService) RequestCode(rawPhone string) (OTPChallenge, string, error) {
	phone := utils.DigitsOnly(rawPhone)
	if len(phone) < 10 {
		return OTPChallenge{}, "", domain.ValidationError{Field: "phone", Msg: "must have at least 10 digits"}
	}

	isNew := false
	if _, err := s.Users.GetByPhone(phone); err != nil {
		if !domain.IsNotFound(err) {
			return OTPChallenge{}, "", err
		}
		isNew = true
	}

	code := s.newCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return OTPChallenge{}, "", err
	}

	expiresAt := s.now().Add(s.ttl())
	if err := s.Codes.Upsert(phone, string(hash), expiresAt); err != nil {
		return OTPChallenge{}, "", err
	}

	return OTPChallenge{Phone: phone, IsNewUser: isNew, ExpiresAt: expiresAt}, code, nil
}

// VerifyCode checks the pending code and returns a session. A failed check
// leaves the pending code in place so the user may retry; it is consumed only
// on success.
func (s OTPService) VerifyCode(in VerifyInput) (Session, error) {
	phone := utils.DigitsOnly(in.Phone)
	if phone == "" || utils.TrimOrEmpty(in.Code) == "" {
		return Session{}, domain.ValidationError{Field: "code", Msg: "phone and code required"}
	}

	hash, expiresAt, err := s.Codes.Get(phone)
	if err != nil {
		if domain.IsNotFound(err) {
			return Session{}, domain.ValidationError{Field: "code", Msg: "no pending code for this phone"}
		}
		return Session{}, err
	}
	if s.now().After(expiresAt) {
		return Session{}, domain.ValidationError{Field: "code", Msg: "code expired, request a new one"}
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(utils.TrimOrEmpty(in.Code))) != nil {
		return Session{}, domain.ValidationError{Field: "code", Msg: "incorrect code"}
	}

	user, err := s.Users.GetByPhone(phone)
	if err != nil {
		if !domain.IsNotFound(err) {
			return Session{}, err
		}
		name := utils.NormalizeSpace(in.Name)
		if name == "" {
			return Session{}, domain.ValidationError{Field: "name", Msg: "required for first-time users"}
		}
		user = models.User{Phone: phone, Name: name, Role: models.RoleStaff, Status: "active"}
		id, err := s.Users.Insert(user)
		if err != nil {
			return Session{}, err
		}
		user.ID = id
	}

	if err := s.Codes.Delete(phone); err != nil {
		return Session{}, err
	}

	expiry := s.now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"phone":   user.Phone,
		"exp":     expiry.Unix(),
	})
	signed, err := token.SignedString(s.secret())
	if err != nil {
		return Session{}, err
	}

	return Session{Token: signed, User: user, ExpiresAt: expiry}, nil
}

func (s OTPService) newCode() string {
	if s.GenerateCode != nil {
		return s.GenerateCode()
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func (s OTPService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s OTPService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return config.OTPTTL()
}

func (s OTPService) secret() []byte {
	if len(s.Secret) > 0 {
		return s.Secret
	}
	return config.JWTSecret()
}
