package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"
)

// POST /api/imports/trips
func ImportTrips(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file is required", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "could not open uploaded file", err)
		return
	}
	defer f.Close()

	svc := services.ImportService{
		TripsRepo: repositories.TripsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	result, err := svc.ImportTrips(f, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
