package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"
	"taxiops/internal/utils"
)

func otpService() services.OTPService {
	return services.OTPService{
		Users: repositories.UsersRepository{},
		Codes: repositories.OTPRepository{},
	}
}

// POST /api/auth/request-otp
func RequestOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	challenge, code, err := otpService().RequestCode(req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "request_otp", "phone="+challenge.Phone)

	resp := gin.H{
		"phone":       challenge.Phone,
		"is_new_user": challenge.IsNewUser,
		"expires_at":  challenge.ExpiresAt,
	}
	// SMS delivery is handled by an external gateway; outside release mode the
	// code is echoed so local clients can complete the flow.
	if gin.Mode() != gin.ReleaseMode {
		resp["code"] = code
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/auth/verify-otp
func VerifyOTP(c *gin.Context) {
	var req services.VerifyInput
	if !BindJSONOrError(c, &req) {
		return
	}

	session, err := otpService().VerifyCode(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "verify_otp", "phone="+session.User.Phone)
	c.JSON(http.StatusOK, session)
}

// GET /api/auth/me
func Me(c *gin.Context) {
	repo := repositories.UsersRepository{}
	user, err := repo.GetByID(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
