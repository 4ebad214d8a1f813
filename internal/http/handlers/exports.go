package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendWorkbook(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GET /api/exports/trips
func ExportTrips(c *gin.Context) {
	repo := repositories.TripsRepository{}
	scope := scopeCreator(c)

	lf := repositories.ListFilter{CreatedBy: scope}
	var rng *services.DateRange
	filter := parseRangeFilter(c)
	if filter.Mode != "" {
		resolved, err := services.ResolveDateRange(filter)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rng = &resolved
		lf.StartDate, lf.EndDate = resolved.Start, resolved.End
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

	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.ExportTrips(trips, summary, rng)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendWorkbook(c, data, filename)
}

// GET /api/exports/maintenance
func ExportMaintenance(c *gin.Context) {
	repo := repositories.MaintenanceRepository{}

	lf := repositories.ListFilter{CreatedBy: scopeCreator(c)}
	var rng *services.DateRange
	filter := parseRangeFilter(c)
	if filter.Mode != "" {
		resolved, err := services.ResolveDateRange(filter)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rng = &resolved
		lf.StartDate, lf.EndDate = resolved.Start, resolved.End
	}

	records, err := repo.List(lf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	records = services.FilterMaintenance(records, c.Query("q"))

	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.ExportMaintenance(records, rng)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendWorkbook(c, data, filename)
}

// GET /api/exports/outside-trips
func ExportOutsideTrips(c *gin.Context) {
	repo := repositories.OutsideTripsRepository{}

	lf := repositories.ListFilter{CreatedBy: scopeCreator(c)}
	var rng *services.DateRange
	filter := parseRangeFilter(c)
	if filter.Mode != "" {
		resolved, err := services.ResolveDateRange(filter)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rng = &resolved
		lf.StartDate, lf.EndDate = resolved.Start, resolved.End
	}

	trips, err := repo.List(lf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trips = services.FilterOutsideTrips(trips, c.Query("q"))

	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.ExportOutsideTrips(trips, rng)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendWorkbook(c, data, filename)
}
