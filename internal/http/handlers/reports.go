package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/repositories"
	"taxiops/internal/services"
)

func reportsService() services.ReportsService {
	return services.ReportsService{
		TripsRepo:       repositories.TripsRepository{},
		MaintenanceRepo: repositories.MaintenanceRepository{},
		OutsideRepo:     repositories.OutsideTripsRepository{},
	}
}

func reportFilter(c *gin.Context) services.ReportFilter {
	return services.ReportFilter{
		Range:     parseRangeFilter(c),
		Search:    c.Query("q"),
		CreatedBy: scopeCreator(c),
	}
}

// GET /api/reports/monthly
func GetMonthlyReport(c *gin.Context) {
	report, err := reportsService().MonthlyReport(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/expenses
func GetExpenseReport(c *gin.Context) {
	report, err := reportsService().ExpenseReport(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/summary
func GetDashboardSummary(c *gin.Context) {
	summary, err := reportsService().DashboardSummary(scopeCreator(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
