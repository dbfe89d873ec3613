// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"xclass_backend/internals/configs"
	auth "xclass_backend/internals/middlewares/auth"
	details "xclass_backend/internals/route/details"
)

// SetupRoutes memasang dua permukaan API:
//   /api/a — admin/bendahara sekolah (kelola semua ledger)
//   /api/u — user login (siswa/wali: tagihan & tabungan miliknya)
// Keduanya di belakang AuthJWT; school_id diambil dari klaim token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	api := app.Group("/api")

	admin := api.Group("/a", jwt)
	details.FinanceAdminRoutes(admin, db)

	user := api.Group("/u", jwt)
	details.FinanceUserRoutes(user, db)
}
