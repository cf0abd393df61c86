package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/report"
)

type StatsController struct {
	reports *report.Service
}

func NewStatsController(reports *report.Service) *StatsController {
	return &StatsController{reports: reports}
}

// GetDashboardStats serves the admin dashboard KPI snapshot.
func (st *StatsController) GetDashboardStats(c *fiber.Ctx) error {
	window := report.ParseWindow(c.Query("period"))

	snapshot, err := st.reports.Snapshot(c.Context(), window)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

// GetTrend serves month-bucketed counts for one metric.
func (st *StatsController) GetTrend(c *fiber.Ctx) error {
	metric := c.Query("metric", "inquiries")
	months := c.QueryInt("months", 6)

	points, err := st.reports.Trend(c.Context(), metric, months)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(points)
}
