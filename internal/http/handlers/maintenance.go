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

// GET /api/maintenance
func GetMaintenance(c *gin.Context) {
	repo := repositories.MaintenanceRepository{}

	lf := repositories.ListFilter{CreatedBy: scopeCreator(c)}
	filter := parseRangeFilter(c)
	if filter.Mode != "" {
		rng, err := services.ResolveDateRange(filter)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		lf.StartDate, lf.EndDate = rng.Start, rng.End
	}

	records, err := repo.List(lf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	records = services.FilterMaintenance(records, c.Query("q"))

	var total float64
	for _, m := range records {
		total += m.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"maintenance": records,
		"total":       utils.Round2(total),
	})
}

// POST /api/maintenance
func CreateMaintenance(c *gin.Context) {
	var record models.MaintenanceRecord
	if !BindJSONOrError(c, &record) {
		return
	}
	if err := services.ValidateMaintenance(&record); err != nil {
		RespondDomainError(c, err)
		return
	}
	record.CreatedBy = middleware.UserID(c)

	repo := repositories.MaintenanceRepository{}
	id, err := repo.Insert(record)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	record.ID = id

	utils.LogEvent(middleware.GetRequestID(c), "maintenance", "create", "created maintenance record")
	c.JSON(http.StatusCreated, gin.H{"maintenance": record})
}

// PUT /api/maintenance/:id
func UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.MaintenanceRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "maintenance record not found", nil)
		return
	}

	var record models.MaintenanceRecord
	if !BindJSONOrError(c, &record) {
		return
	}
	if err := services.ValidateMaintenance(&record); err != nil {
		RespondDomainError(c, err)
		return
	}
	record.ID = id
	record.CreatedBy = existing.CreatedBy

	if err := repo.Update(record); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "maintenance", "update", "updated maintenance record")
	c.JSON(http.StatusOK, gin.H{"maintenance": record})
}

// DELETE /api/maintenance/:id
func DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	repo := repositories.MaintenanceRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !canAccess(c, existing.CreatedBy) {
		RespondError(c, http.StatusNotFound, "maintenance record not found", nil)
		return
	}

	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "maintenance", "delete", "deleted maintenance record")
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
