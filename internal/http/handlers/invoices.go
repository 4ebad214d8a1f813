package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"
)

// GET /api/trips/:id/invoice
func GetTripInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.TripsRepository{}
	trip, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, trip.CreatedBy) {
		RespondError(c, http.StatusNotFound, "trip not found", nil)
		return
	}

	svc := services.InvoiceService{
		TripsRepo: repo,
		RequestID: middleware.GetRequestID(c),
		Loader:    func(int64) (models.Trip, error) { return trip, nil },
	}
	data, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
