// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "xclass_backend/internals/features/finance/reports/service"
	helper "xclass_backend/internals/helpers"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: service.NewReportService(db)}
}

// GET /finance/reports/dashboard
func (h *ReportController) Dashboard(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := h.Service.GetDashboard(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /finance/reports/trends?months=
func (h *ReportController) MonthlyTrends(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	months := c.QueryInt("months", service.DefaultTrendMonths)

	out, err := h.Service.GetMonthlyTrends(c.UserContext(), schoolID, months)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /finance/reports/category-breakdown?start_date=&end_date=
func (h *ReportController) CategoryBreakdown(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	start, err := helper.ParseDateQuery(c, "start_date")
	if err != nil {
		return err
	}
	end, err := helper.ParseDateQuery(c, "end_date")
	if err != nil {
		return err
	}

	out, err := h.Service.GetCategoryBreakdown(c.UserContext(), schoolID, start, end)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /finance/reports/payment-status
func (h *ReportController) PaymentStatus(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := h.Service.GetPaymentStatus(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", out)
}
