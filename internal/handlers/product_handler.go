package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laciaimperator/Online-store/internal/httpx"
	"github.com/laciaimperator/Online-store/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	product, err := h.productService.Add(c.Context(), values)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.CreatedResponse(c, "Product created successfully", product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	modified, err := h.productService.Update(c.Context(), c.Params("id"), updates)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Product update processed", updateResponse{Modified: modified})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.productService.Find(c.Context(), c.Params("id"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Product retrieved successfully", product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.productService.Delete(c.Context(), c.Params("id")); err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Product deleted successfully", nil)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.List(c.Context())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Products retrieved successfully", products)
}
