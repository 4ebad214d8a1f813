package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"
	"taxiops/internal/utils"
)

// GET /api/outside-trips
func GetOutsideTrips(c *gin.Context) {
	repo := repositories.OutsideTripsRepository{}
	scope := scopeCreator(c)

	lf := repositories.ListFilter{CreatedBy: scope}
	filter := parseRangeFilter(c)
	if filter.Mode != "" {
		rng, err := services.ResolveDateRange(filter)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		lf.StartDate, lf.EndDate = rng.Start, rng.End
	}

	trips, err := repo.List(lf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trips = services.FilterOutsideTrips(trips, c.Query("q"))

	summary := services.SummarizeOutside(trips)
	pending, err := repo.PendingTotal(scope)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	summary.PendingTotal = pending

	c.JSON(http.StatusOK, gin.H{
		"outside_trips": trips,
		"summary":       summary,
	})
}

// POST /api/outside-trips
func CreateOutsideTrip(c *gin.Context) {
	var trip models.OutsideTrip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if err := services.ValidateOutsideTrip(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.CreatedBy = middleware.UserID(c)

	repo := repositories.OutsideTripsRepository{}
	id, err := repo.Insert(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id

	utils.LogEvent(middleware.GetRequestID(c), "outside_trips", "create", "created outside trip")
	c.JSON(http.StatusCreated, gin.H{"outside_trip": trip})
}

// PUT /api/outside-trips/:id
func UpdateOutsideTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.OutsideTripsRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "outside trip not found", nil)
		return
	}

	var trip models.OutsideTrip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if err := services.ValidateOutsideTrip(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id
	trip.CreatedBy = existing.CreatedBy

	if err := repo.Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "outside_trips", "update", "updated outside trip")
	c.JSON(http.StatusOK, gin.H{"outside_trip": trip})
}

// DELETE /api/outside-trips/:id
func DeleteOutsideTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.OutsideTripsRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "outside trip not found", nil)
		return
	}

	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "outside_trips", "delete", "deleted outside trip")
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
