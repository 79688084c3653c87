package audit

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/api"
)

func init() {
	api.RegisterModule(RegisterAuditRoutes)
}

func RegisterAuditRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/audit — recent mutation trail, newest first
	apiGroup.GET("/audit", func(c echo.Context) error {
		if deps.Audit == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "audit trail not configured"})
		}
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		rows, err := deps.Audit.Recent(c.Request().Context(), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"entries": rows, "count": len(rows)})
	})
}
