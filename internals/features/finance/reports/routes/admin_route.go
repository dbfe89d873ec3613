// file: internals/features/finance/reports/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "xclass_backend/internals/features/finance/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	rep := r.Group("/reports")

	rep.Get("/dashboard", ctl.Dashboard)
	rep.Get("/trends", ctl.MonthlyTrends)
	rep.Get("/category-breakdown", ctl.CategoryBreakdown)
	rep.Get("/payment-status", ctl.PaymentStatus)
}
