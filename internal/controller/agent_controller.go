package controller

import (
	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
)

type AgentController struct {
	client *dataclient.Client
}

func NewAgentController(client *dataclient.Client) *AgentController {
	return &AgentController{client: client}
}

func (ac *AgentController) List(c *fiber.Ctx) error {
	agents, err := ac.client.Agents.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(agents)
}

func (ac *AgentController) Get(c *fiber.Ctx) error {
	agent, err := ac.client.Agents.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if agent == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent)
}

func (ac *AgentController) GetBySlug(c *fiber.Ctx) error {
	agent, err := ac.client.Agents.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	if agent == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent)
}

// Properties lists the agent's resolved listing set.
func (ac *AgentController) Properties(c *fiber.Ctx) error {
	properties, err := ac.client.Agents.Properties(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(properties)
}

func (ac *AgentController) Create(c *fiber.Ctx) error {
	input := new(model.Agent)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	agent, err := ac.client.Agents.Create(c.Context(), *input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(agent)
}

func (ac *AgentController) Update(c *fiber.Ctx) error {
	patch := new(model.AgentPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	agent, err := ac.client.Agents.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(agent)
}

func (ac *AgentController) Delete(c *fiber.Ctx) error {
	if err := ac.client.Agents.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
