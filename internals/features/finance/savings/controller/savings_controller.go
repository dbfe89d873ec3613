// file: internals/features/finance/savings/controller/savings_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/savings/dto"
	model "xclass_backend/internals/features/finance/savings/model"
	service "xclass_backend/internals/features/finance/savings/service"
	helper "xclass_backend/internals/helpers"
)

type SavingsController struct {
	Service *service.SavingsService
}

func NewSavingsController(db *gorm.DB) *SavingsController {
	return &SavingsController{Service: service.NewSavingsService(db)}
}

var validate = validator.New()

/* ======================= RECORD ======================= */
// POST /finance/savings-transactions
func (h *SavingsController) Record(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSavingsTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := h.Service.Record(c.UserContext(), req.ToModel(schoolID))
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Transaksi tabungan dicatat", dto.FromModel(*m))
}

/* ======================= BALANCE ======================= */
// GET /finance/savings-transactions/balance/:student_id
func (h *SavingsController) GetBalance(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}

	bal, err := h.Service.GetBalance(c.UserContext(), schoolID, studentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", bal)
}

/* ======================== LIST ======================== */
// GET /finance/savings-transactions?student_id=&type=&start_date=&end_date=&page=&per_page=
func (h *SavingsController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListSavingsTransactionQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	f := service.ListFilter{StudentID: q.StudentID}
	if q.Type != nil {
		t := model.SavingsTransactionType(*q.Type)
		f.Type = &t
	}
	if f.StartDate, err = helper.ParseDateQuery(c, "start_date"); err != nil {
		return err
	}
	if end, err := helper.ParseDateQuery(c, "end_date"); err != nil {
		return err
	} else if end != nil {
		// end_date inklusif di query param → window half-open di service
		e := end.AddDate(0, 0, 1)
		f.EndDate = &e
	}

	list, total, err := h.Service.List(c.UserContext(), schoolID, f, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================= UPDATE ======================= */
// PATCH /finance/savings-transactions/:id
func (h *SavingsController) Update(c *fiber.Ctx) error {
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

	var req dto.UpdateSavingsTransactionRequest
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
	return helper.JsonUpdated(c, "Transaksi tabungan diperbarui", dto.FromModel(*m))
}

/* ======================= DELETE ======================= */
// DELETE /finance/savings-transactions/:id
func (h *SavingsController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Transaksi tabungan dihapus", fiber.Map{"id": id})
}

/* ===================== MINE (user) ===================== */
// GET /finance/savings-transactions/me — riwayat + saldo siswa di token
func (h *SavingsController) Mine(c *fiber.Ctx) error {
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
	bal, err := h.Service.GetBalance(c.UserContext(), schoolID, studentID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", fiber.Map{
		"balance":      bal,
		"transactions": dto.FromModels(list),
	}, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
