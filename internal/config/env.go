package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	JWTSecret   string
	OTPTTL      time.Duration
	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/taxi_ops?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     ginMode,
		DBDSN:       dsn,
		JWTSecret:   string(JWTSecret()),
		OTPTTL:      OTPTTL(),
		CORSOrigins: origins,
	}
}

// JWTSecret returns the signing key for session tokens.
func JWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}
	return []byte(secret)
}

// OTPTTL returns how long a one-time code stays valid.
func OTPTTL() time.Duration {
	if raw := strings.TrimSpace(os.Getenv("OTP_TTL_MINUTES")); raw != "" {
		if m, err := strconv.Atoi(raw); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return 5 * time.Minute
}
