// file: internals/features/finance/student_bills/controller/student_bill_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/student_bills/dto"
	model "xclass_backend/internals/features/finance/student_bills/model"
	service "xclass_backend/internals/features/finance/student_bills/service"
	helper "xclass_backend/internals/helpers"
)

type StudentBillController struct {
	Service *service.StudentBillService
}

func NewStudentBillController(db *gorm.DB) *StudentBillController {
	return &StudentBillController{Service: service.NewStudentBillService(db)}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /finance/student-bills
func (h *StudentBillController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentBillRequest
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
	return helper.JsonCreated(c, "Tagihan berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /finance/student-bills?student_id=&category=&status=&page=&per_page=
func (h *StudentBillController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListStudentBillQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	f := service.ListFilter{StudentID: q.StudentID}
	if q.Category != nil {
		cat := model.StudentBillCategory(*q.Category)
		f.Category = &cat
	}
	if q.Status != nil {
		st := model.StudentBillStatus(*q.Status)
		f.Status = &st
	}

	list, total, err := h.Service.List(c.UserContext(), schoolID, f, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ====================== GET BY ID ====================== */
// GET /finance/student-bills/:id
func (h *StudentBillController) GetByID(c *fiber.Ctx) error {
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
// PATCH /finance/student-bills/:id  (hanya saat pending)
func (h *StudentBillController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := service.PendingPatch{
		Title:     req.StudentBillTitle,
		AmountIDR: req.StudentBillAmountIDR,
		DueDate:   req.StudentBillDueDate,
		Notes:     req.StudentBillNotes,
	}
	if req.StudentBillCategory != nil {
		cat := model.StudentBillCategory(*req.StudentBillCategory)
		patch.Category = &cat
	}

	m, err := h.Service.UpdatePending(c.UserContext(), schoolID, id, patch)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tagihan berhasil diperbarui", dto.FromModel(*m))
}

/* ====================== MARK PAID ====================== */
// POST /finance/student-bills/:id/mark-paid
func (h *StudentBillController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MarkPaidStudentBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	det := service.PaymentDetails{
		Method:    req.StudentBillMethod,
		Reference: req.StudentBillReference,
		Notes:     req.StudentBillNotes,
		ReceiptNo: req.StudentBillReceiptNo,
	}
	if verifier, err := helper.GetUserIDFromToken(c); err == nil {
		det.VerifiedBy = &verifier
	}

	m, err := h.Service.MarkPaid(c.UserContext(), schoolID, id, det)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tagihan ditandai lunas", dto.FromModel(*m))
}

/* ======================= OVERDUE ======================= */
// GET /finance/student-bills/overdue
func (h *StudentBillController) Overdue(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	list, err := h.Service.Overdue(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromModels(list))
}

/* ===================== STATISTICS ===================== */
// GET /finance/student-bills/statistics
func (h *StudentBillController) Statistics(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	st, err := h.Service.StatisticsByCategory(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", st)
}

/* ======================= DELETE ======================= */
// DELETE /finance/student-bills/:id
func (h *StudentBillController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Tagihan berhasil dihapus", fiber.Map{"id": id})
}

/* ===================== LIST MINE (user) ===================== */
// GET /finance/student-bills/me
func (h *StudentBillController) ListMine(c *fiber.Ctx) error {
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
