package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/model"
	"valia_backend/pkg/store"
)

type SettingsController struct {
	store *store.Store
}

func NewSettingsController(st *store.Store) *SettingsController {
	return &SettingsController{store: st}
}

func (sc *SettingsController) Get(c *fiber.Ctx) error {
	return c.JSON(sc.store.Settings())
}

// Update overwrites the settings record as a whole; fields the caller leaves
// out are reset, not merged.
func (sc *SettingsController) Update(c *fiber.Ctx) error {
	input := new(model.Settings)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	sc.store.SetSettings(*input)
	return c.JSON(input)
}
