// file: internals/features/finance/budgets/controller/budget_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/budgets/dto"
	model "xclass_backend/internals/features/finance/budgets/model"
	service "xclass_backend/internals/features/finance/budgets/service"
	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
	helper "xclass_backend/internals/helpers"
)

type BudgetController struct {
	Service *service.BudgetService
}

func NewBudgetController(db *gorm.DB) *BudgetController {
	return &BudgetController{Service: service.NewBudgetService(db)}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /finance/budgets
func (h *BudgetController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateBudgetRequest
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
	return helper.JsonCreated(c, "Anggaran disimpan", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /finance/budgets?category=&status=&year=&page=&per_page=
func (h *BudgetController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListBudgetQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	f := service.ListFilter{Year: q.Year}
	if q.Category != nil {
		cat := cashflowModel.CashflowCategory(*q.Category)
		f.Category = &cat
	}
	if q.Status != nil {
		st := model.BudgetStatus(*q.Status)
		f.Status = &st
	}

	list, total, err := h.Service.List(c.UserContext(), schoolID, f, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================= SUMMARY ======================= */
// GET /finance/budgets/summary?year=
func (h *BudgetController) Summary(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var year *int16
	if v := c.QueryInt("year", 0); v > 0 {
		y := int16(v)
		year = &y
	}

	sum, err := h.Service.GetSummary(c.UserContext(), schoolID, year)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", sum)
}

/* ======================= DETAIL ======================= */
// GET /finance/budgets/:id
func (h *BudgetController) GetByID(c *fiber.Ctx) error {
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
// PATCH /finance/budgets/:id
func (h *BudgetController) Update(c *fiber.Ctx) error {
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

	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(m)
	if err := h.Service.UpdateDraft(c.UserContext(), m); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Anggaran diperbarui", dto.FromModel(*m))
}

/* ======================= APPROVE ======================= */
// POST /finance/budgets/:id/approve
func (h *BudgetController) Approve(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	approvedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m, err := h.Service.Approve(c.UserContext(), schoolID, id, approvedBy)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Anggaran disetujui", dto.FromModel(*m))
}

/* ======================== CLOSE ======================== */
// POST /finance/budgets/:id/close
func (h *BudgetController) Close(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.Service.Close(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Anggaran ditutup", dto.FromModel(*m))
}

/* ====================== RECOMPUTE ====================== */
// POST /finance/budgets/:id/recompute
func (h *BudgetController) Recompute(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := h.Service.RecomputeActual(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Realisasi anggaran dihitung ulang", dto.FromModel(*m))
}

/* ======================= DELETE ======================= */
// DELETE /finance/budgets/:id
func (h *BudgetController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Anggaran dihapus", fiber.Map{"id": id})
}
