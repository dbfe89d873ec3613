// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// --- util kecil biar gak duplikasi parsing ---
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}

	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
		}
		return id, nil
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return t, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
}

// GetSchoolIDFromToken mengambil tenant aktif (sekolah) dari locals hasil AuthJWT.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "school_id")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "user_id")
}

// GetStudentIDFromToken dipakai endpoint "milik saya" (tagihan/tabungan siswa).
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "student_id")
}
