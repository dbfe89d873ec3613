// file: internals/features/finance/student_bills/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billCtl "xclass_backend/internals/features/finance/student_bills/controller"
)

func StudentBillUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewStudentBillController(db)

	r.Get("/student-bills/me", ctl.ListMine)
}
