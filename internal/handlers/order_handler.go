package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laciaimperator/Online-store/internal/httpx"
	"github.com/laciaimperator/Online-store/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var request placeOrderRequest
	if err := c.BodyParser(&request); err != nil {
		return httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	order, err := h.orderService.PlaceOrder(c.Context(), request.OrderID, request.CustomerID, request.Items)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.CreatedResponse(c, "Order placed successfully", order)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.orderService.Find(c.Context(), c.Params("id"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Order retrieved successfully", order)
}

func (h *OrderHandler) GetByCustomer(c *fiber.Ctx) error {
	orders, err := h.orderService.FindByCustomer(c.Context(), c.Params("customer_id"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Orders retrieved successfully", fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.orderService.Delete(c.Context(), c.Params("id")); err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Order deleted successfully", nil)
}
