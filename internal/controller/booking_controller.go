package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
)

type BookingController struct {
	client *dataclient.Client
}

func NewBookingController(client *dataclient.Client) *BookingController {
	return &BookingController{client: client}
}

func (bc *BookingController) List(c *fiber.Ctx) error {
	filters := &model.BookingFilters{
		PropertyID: c.Query("propertyId"),
		Status:     model.BookingStatus(c.Query("status")),
		Page:       c.QueryInt("page"),
		PageSize:   c.QueryInt("pageSize"),
	}

	page, err := bc.client.Bookings.List(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (bc *BookingController) Get(c *fiber.Ctx) error {
	booking, err := bc.client.Bookings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	return c.JSON(booking)
}

func (bc *BookingController) Create(c *fiber.Ctx) error {
	input := new(model.Booking)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	booking, err := bc.client.Bookings.Create(c.Context(), *input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (bc *BookingController) Update(c *fiber.Ctx) error {
	patch := new(model.BookingPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	booking, err := bc.client.Bookings.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func (bc *BookingController) Delete(c *fiber.Ctx) error {
	if err := bc.client.Bookings.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
