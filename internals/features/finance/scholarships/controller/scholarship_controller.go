// file: internals/features/finance/scholarships/controller/scholarship_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/scholarships/dto"
	model "xclass_backend/internals/features/finance/scholarships/model"
	service "xclass_backend/internals/features/finance/scholarships/service"
	helper "xclass_backend/internals/helpers"
)

type ScholarshipController struct {
	Service *service.ScholarshipService
}

func NewScholarshipController(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{Service: service.NewScholarshipService(db)}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /finance/scholarships
func (h *ScholarshipController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := h.Service.Create(c.UserContext(), req.ToModel(schoolID))
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Beasiswa disimpan", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /finance/scholarships?student_id=&type=&status=&page=&per_page=
func (h *ScholarshipController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListScholarshipQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	f := service.ListFilter{StudentID: q.StudentID}
	if q.Type != nil {
		t := model.ScholarshipType(*q.Type)
		f.Type = &t
	}
	if q.Status != nil {
		st := model.ScholarshipStatus(*q.Status)
		f.Status = &st
	}

	list, total, err := h.Service.List(c.UserContext(), schoolID, f, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ===================== STATISTICS ===================== */
// GET /finance/scholarships/statistics
func (h *ScholarshipController) Statistics(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	stats, err := h.Service.GetStatistics(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", stats)
}

/* ======================= DETAIL ======================= */
// GET /finance/scholarships/:id
func (h *ScholarshipController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.Service.GetByID(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromModel(*m))
}

/* ======================= UPDATE ======================= */
// PATCH /finance/scholarships/:id
func (h *ScholarshipController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.Service.GetByID(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}

	var req dto.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(m)
	if err := h.Service.Update(c.UserContext(), m); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Beasiswa diperbarui", dto.FromModel(*m))
}

/* ======================= DELETE ======================= */
// DELETE /finance/scholarships/:id
func (h *ScholarshipController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.Service.Delete(c.UserContext(), schoolID, id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Beasiswa dihapus", fiber.Map{"id": id})
}

/* ===================== MINE (user) ===================== */
// GET /finance/scholarships/me
func (h *ScholarshipController) Mine(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	list, total, err := h.Service.List(c.UserContext(), schoolID,
		service.ListFilter{StudentID: &studentID}, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
