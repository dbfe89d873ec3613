// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	budgetRoutes "xclass_backend/internals/features/finance/budgets/routes"
	cashflowRoutes "xclass_backend/internals/features/finance/cashflow/routes"
	reminderRoutes "xclass_backend/internals/features/finance/reminders/routes"
	reportRoutes "xclass_backend/internals/features/finance/reports/routes"
	savingsRoutes "xclass_backend/internals/features/finance/savings/routes"
	scholarshipRoutes "xclass_backend/internals/features/finance/scholarships/routes"
	sppRoutes "xclass_backend/internals/features/finance/spp/routes"
	billRoutes "xclass_backend/internals/features/finance/student_bills/routes"
)

// FinanceAdminRoutes: seluruh ledger + agregator di bawah /finance.
func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	fin := r.Group("/finance")

	sppRoutes.SppPaymentAdminRoutes(fin, db)
	billRoutes.StudentBillAdminRoutes(fin, db)
	savingsRoutes.SavingsAdminRoutes(fin, db)
	cashflowRoutes.CashflowAdminRoutes(fin, db)
	scholarshipRoutes.ScholarshipAdminRoutes(fin, db)
	budgetRoutes.BudgetAdminRoutes(fin, db)
	reminderRoutes.ReminderAdminRoutes(fin, db)
	reportRoutes.ReportAdminRoutes(fin, db)
}

// FinanceUserRoutes: endpoint "milik saya" untuk siswa/wali.
func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	fin := r.Group("/finance")

	sppRoutes.SppPaymentUserRoutes(fin, db)
	billRoutes.StudentBillUserRoutes(fin, db)
	savingsRoutes.SavingsUserRoutes(fin, db)
	scholarshipRoutes.ScholarshipUserRoutes(fin, db)
}
