package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laciaimperator/Online-store/internal/httpx"
	"github.com/laciaimperator/Online-store/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) OrdersPerCustomer(c *fiber.Ctx) error {
	counts, err := h.reportService.OrdersPerCustomer(c.Context())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Orders per customer retrieved successfully", counts)
}

func (h *ReportHandler) TotalSpentPerCustomer(c *fiber.Ctx) error {
	totals, err := h.reportService.TotalSpentPerCustomer(c.Context())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.SuccessResponse(c, "Total spent per customer retrieved successfully", mapCustomerSpend(totals))
}

func (h *ReportHandler) HealthCheck(c *fiber.Ctx) error {
	return httpx.SuccessResponse(c, "Store service is healthy", fiber.Map{
		"service": "store-service",
		"status":  "healthy",
	})
}
