// file: internals/features/finance/spp/controller/spp_payment_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/spp/dto"
	model "xclass_backend/internals/features/finance/spp/model"
	service "xclass_backend/internals/features/finance/spp/service"
	helper "xclass_backend/internals/helpers"
)

type SppPaymentController struct {
	Service *service.SppPaymentService
}

func NewSppPaymentController(db *gorm.DB) *SppPaymentController {
	return &SppPaymentController{Service: service.NewSppPaymentService(db)}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /finance/spp-payments
func (h *SppPaymentController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSppPaymentRequest
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
	return helper.JsonCreated(c, "Tagihan SPP berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /finance/spp-payments?student_id=&year=&month=&status=&page=&per_page=
func (h *SppPaymentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListSppPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	f := service.ListFilter{StudentID: q.StudentID, Year: q.Year, Month: q.Month}
	if q.Status != nil {
		st := model.SppPaymentStatus(*q.Status)
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
// GET /finance/spp-payments/:id
func (h *SppPaymentController) GetByID(c *fiber.Ctx) error {
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
// PATCH /finance/spp-payments/:id  (hanya saat pending)
func (h *SppPaymentController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSppPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := h.Service.UpdatePending(c.UserContext(), schoolID, id, service.PendingPatch{
		AmountIDR: req.SppPaymentAmountIDR,
		DueDate:   req.SppPaymentDueDate,
		Notes:     req.SppPaymentNotes,
	})
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tagihan SPP berhasil diperbarui", dto.FromModel(*m))
}

/* ====================== MARK PAID ====================== */
// POST /finance/spp-payments/:id/mark-paid
func (h *SppPaymentController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MarkPaidSppPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	det := service.PaymentDetails{
		Method:    req.SppPaymentMethod,
		Reference: req.SppPaymentReference,
		Notes:     req.SppPaymentNotes,
		ReceiptNo: req.SppPaymentReceiptNo,
	}
	// verifikator = admin yang sedang login (kalau ada di token)
	if verifier, err := helper.GetUserIDFromToken(c); err == nil {
		det.VerifiedBy = &verifier
	}

	m, err := h.Service.MarkPaid(c.UserContext(), schoolID, id, det)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tagihan SPP ditandai lunas", dto.FromModel(*m))
}

/* ======================= OVERDUE ======================= */
// GET /finance/spp-payments/overdue
func (h *SppPaymentController) Overdue(c *fiber.Ctx) error {
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
// GET /finance/spp-payments/statistics?year=
func (h *SppPaymentController) Statistics(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
		}
		year = &y
	}
	st, err := h.Service.Statistics(c.UserContext(), schoolID, year)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", st)
}

/* ======================= DELETE ======================= */
// DELETE /finance/spp-payments/:id
func (h *SppPaymentController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Tagihan SPP berhasil dihapus", fiber.Map{"id": id})
}

/* ===================== LIST MINE (user) ===================== */
// GET /finance/spp-payments/me — tagihan SPP milik siswa di token
func (h *SppPaymentController) ListMine(c *fiber.Ctx) error {
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
