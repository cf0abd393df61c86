package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
)

type InquiryController struct {
	client *dataclient.Client
}

func NewInquiryController(client *dataclient.Client) *InquiryController {
	return &InquiryController{client: client}
}

func (ic *InquiryController) List(c *fiber.Ctx) error {
	filters := &model.InquiryFilters{
		PropertyID: c.Query("propertyId"),
		Status:     model.InquiryStatus(c.Query("status")),
		Type:       model.InquiryType(c.Query("type")),
		Page:       c.QueryInt("page"),
		PageSize:   c.QueryInt("pageSize"),
	}

	page, err := ic.client.Inquiries.List(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (ic *InquiryController) Get(c *fiber.Ctx) error {
	inquiry, err := ic.client.Inquiries.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if inquiry == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inquiry not found",
		})
	}
	return c.JSON(inquiry)
}

// Create takes the public contact form submission; forms validate their own
// fields before calling in.
func (ic *InquiryController) Create(c *fiber.Ctx) error {
	input := new(model.Inquiry)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	inquiry, err := ic.client.Inquiries.Create(c.Context(), *input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

func (ic *InquiryController) Update(c *fiber.Ctx) error {
	patch := new(model.InquiryPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	inquiry, err := ic.client.Inquiries.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiry)
}

func (ic *InquiryController) Delete(c *fiber.Ctx) error {
	if err := ic.client.Inquiries.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
