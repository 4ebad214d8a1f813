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

// GET /api/trips
func GetTrips(c *gin.Context) {
	repo := repositories.TripsRepository{}
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
	trips = services.FilterTrips(trips, c.Query("q"))

	summary := services.Summarize(trips, nil)
	pending, err := repo.PendingTotal(scope)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	summary.PendingTotal = pending

	c.JSON(http.StatusOK, gin.H{
		"trips":   services.NewTripViews(trips),
		"summary": summary,
	})
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"trip": services.NewTripViews([]models.Trip{trip})[0]})
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if err := services.ValidateTrip(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.CreatedBy = middleware.UserID(c)

	repo := repositories.TripsRepository{}
	id, err := repo.Insert(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id

	utils.LogEvent(middleware.GetRequestID(c), "trips", "create", "created trip")
	c.JSON(http.StatusCreated, gin.H{"trip": services.NewTripViews([]models.Trip{trip})[0]})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.TripsRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "trip not found", nil)
		return
	}

	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if err := services.ValidateTrip(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id
	trip.CreatedBy = existing.CreatedBy

	if err := repo.Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trips", "update", "updated trip")
	c.JSON(http.StatusOK, gin.H{"trip": services.NewTripViews([]models.Trip{trip})[0]})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.TripsRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "trip not found", nil)
		return
	}

	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trips", "delete", "deleted trip")
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
