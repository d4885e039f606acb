package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laciaimperator/Online-store/internal/httpx"
	"github.com/laciaimperator/Online-store/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	customer, err := h.customerService.Add(c.Context(), values)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.CreatedResponse(c, "Customer created successfully", customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	modified, err := h.customerService.Update(c.Context(), c.Params("id"), updates)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Customer update processed", updateResponse{Modified: modified})
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customerService.Find(c.Context(), c.Params("id"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customerService.Delete(c.Context(), c.Params("id")); err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Customer deleted successfully", nil)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.Context())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Customers retrieved successfully", customers)
}
