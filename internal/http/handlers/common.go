package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/services"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// parseID reads the :id path parameter; a response is already written on failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

// scopeCreator returns the creator filter for the authenticated user.
// Admins get 0 (all creators), staff are restricted to their own records.
func scopeCreator(c *gin.Context) int64 {
	if middleware.UserRole(c) == models.RoleAdmin {
		return 0
	}
	return middleware.UserID(c)
}

// canAccess reports whether the authenticated user may touch a record owned
// by createdBy.
func canAccess(c *gin.Context, createdBy int64) bool {
	scope := scopeCreator(c)
	return scope == 0 || scope == createdBy
}

// parseRangeFilter reads the date-range query parameters. An empty Mode means
// the listing is unfiltered.
func parseRangeFilter(c *gin.Context) services.DateRangeFilter {
	f := services.DateRangeFilter{
		Mode:      strings.ToLower(strings.TrimSpace(c.Query("mode"))),
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
	}
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		f.Year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		f.Month = m
	}
	// a bare custom range does not need mode=custom spelled out
	if f.Mode == "" && f.StartDate != "" && f.EndDate != "" {
		f.Mode = services.RangeCustom
	}
	return f
}
