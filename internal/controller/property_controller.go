package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
)

type PropertyController struct {
	client *dataclient.Client
}

func NewPropertyController(client *dataclient.Client) *PropertyController {
	return &PropertyController{client: client}
}

// List serves the property search; all query filters are optional.
func (pc *PropertyController) List(c *fiber.Ctx) error {
	page, err := pc.client.Properties.List(c.Context(), propertyFiltersFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (pc *PropertyController) Get(c *fiber.Ctx) error {
	property, err := pc.client.Properties.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if property == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

func (pc *PropertyController) GetBySlug(c *fiber.Ctx) error {
	property, err := pc.client.Properties.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	if property == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

func (pc *PropertyController) Create(c *fiber.Ctx) error {
	input := new(model.Property)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	property, err := pc.client.Properties.Create(c.Context(), *input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (pc *PropertyController) Update(c *fiber.Ctx) error {
	patch := new(model.PropertyPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	property, err := pc.client.Properties.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func (pc *PropertyController) Delete(c *fiber.Ctx) error {
	if err := pc.client.Properties.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func propertyFiltersFromQuery(c *fiber.Ctx) *model.PropertyFilters {
	filters := &model.PropertyFilters{
		Operation:    model.Operation(c.Query("operation")),
		PropertyType: model.PropertyType(c.Query("propertyType")),
		Status:       model.PropertyStatus(c.Query("status")),
		MinPrice:     c.QueryFloat("minPrice"),
		MaxPrice:     c.QueryFloat("maxPrice"),
		Bedrooms:     c.QueryInt("bedrooms"),
		Bathrooms:    c.QueryInt("bathrooms"),
		MinArea:      c.QueryFloat("minArea"),
		MaxArea:      c.QueryFloat("maxArea"),
		City:         c.Query("city"),
		Zone:         c.Query("zone"),
		Location:     c.Query("location"),
		Sort:         model.PropertySort(c.Query("sort")),
		Page:         c.QueryInt("page"),
		PageSize:     c.QueryInt("pageSize"),
	}
	filters.Furnished = queryBoolPtr(c, "furnished")
	filters.Featured = queryBoolPtr(c, "featured")
	return filters
}

// queryBoolPtr distinguishes an absent flag from an explicit false.
func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
