package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "taxiops/internal/config"
	intdb "taxiops/internal/db"
	"taxiops/internal/utils"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": utils.NowUTC()})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "database unreachable", err)
		return
	}

	tables := gin.H{}
	for _, t := range []string{"users", "otp_codes", "trips", "maintenance_records", "outside_trips"} {
		tables[t] = intdb.HasTable(intconfig.DB, t)
	}

	// creator scoping depends on these columns being present
	columns := gin.H{}
	for _, t := range []string{"trips", "maintenance_records", "outside_trips"} {
		columns[t+".created_by"] = intdb.HasColumn(intconfig.DB, t, "created_by")
	}

	c.JSON(http.StatusOK, gin.H{"database": "ok", "tables": tables, "columns": columns})
}
