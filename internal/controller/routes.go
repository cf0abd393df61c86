package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/report"
	"valia_backend/pkg/store"
)

// RegisterRoutes wires every controller under /api.
func RegisterRoutes(app *fiber.App, client *dataclient.Client, st *store.Store, reports *report.Service) {
	api := app.Group("/api")

	pc := NewPropertyController(client)
	properties := api.Group("/properties")
	properties.Get("/", pc.List)
	properties.Post("/", pc.Create)
	properties.Get("/slug/:slug", pc.GetBySlug)
	properties.Get("/:id", pc.Get)
	properties.Put("/:id", pc.Update)
	properties.Delete("/:id", pc.Delete)

	ac := NewAgentController(client)
	agents := api.Group("/agents")
	agents.Get("/", ac.List)
	agents.Post("/", ac.Create)
	agents.Get("/slug/:slug", ac.GetBySlug)
	agents.Get("/:id", ac.Get)
	agents.Get("/:id/properties", ac.Properties)
	agents.Put("/:id", ac.Update)
	agents.Delete("/:id", ac.Delete)

	ic := NewInquiryController(client)
	inquiries := api.Group("/inquiries")
	inquiries.Get("/", ic.List)
	inquiries.Post("/", ic.Create)
	inquiries.Get("/:id", ic.Get)
	inquiries.Put("/:id", ic.Update)
	inquiries.Delete("/:id", ic.Delete)

	bc := NewBookingController(client)
	bookings := api.Group("/bookings")
	bookings.Get("/", bc.List)
	bookings.Post("/", bc.Create)
	bookings.Get("/:id", bc.Get)
	bookings.Put("/:id", bc.Update)
	bookings.Delete("/:id", bc.Delete)

	sc := NewSettingsController(st)
	settings := api.Group("/settings")
	settings.Get("/", sc.Get)
	settings.Put("/", sc.Update)

	stc := NewStatsController(reports)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", stc.GetDashboardStats)
	dashboard.Get("/trend", stc.GetTrend)
}
