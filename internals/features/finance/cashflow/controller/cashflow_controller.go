// file: internals/features/finance/cashflow/controller/cashflow_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/cashflow/dto"
	model "xclass_backend/internals/features/finance/cashflow/model"
	service "xclass_backend/internals/features/finance/cashflow/service"
	helper "xclass_backend/internals/helpers"
)

type CashflowController struct {
	Service *service.CashflowService
}

func NewCashflowController(db *gorm.DB) *CashflowController {
	return &CashflowController{Service: service.NewCashflowService(db)}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /finance/cashflow-entries
func (h *CashflowController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCashflowEntryRequest
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
	return helper.JsonCreated(c, "Entri kas dicatat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /finance/cashflow-entries?type=&category=&start_date=&end_date=&page=&per_page=
func (h *CashflowController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListCashflowEntryQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	f := service.ListFilter{}
	if q.Type != nil {
		t := model.CashflowEntryType(*q.Type)
		f.Type = &t
	}
	if q.Category != nil {
		cat := model.CashflowCategory(*q.Category)
		f.Category = &cat
	}
	if f.StartDate, err = helper.ParseDateQuery(c, "start_date"); err != nil {
		return err
	}
	if f.EndDate, err = helper.ParseDateQuery(c, "end_date"); err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	list, total, err := h.Service.List(c.UserContext(), schoolID, f, p.Limit, p.Offset)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================= SUMMARY ======================= */
// GET /finance/cashflow-entries/summary?start_date=&end_date=
func (h *CashflowController) Summary(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	start, err := helper.ParseDateQuery(c, "start_date")
	if err != nil {
		return err
	}
	end, err := helper.ParseDateQuery(c, "end_date")
	if err != nil {
		return err
	}

	sum, err := h.Service.GetSummary(c.UserContext(), schoolID, start, end)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", sum)
}

/* ======================= DETAIL ======================= */
// GET /finance/cashflow-entries/:id
func (h *CashflowController) GetByID(c *fiber.Ctx) error {
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
// PATCH /finance/cashflow-entries/:id
func (h *CashflowController) Update(c *fiber.Ctx) error {
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

	var req dto.UpdateCashflowEntryRequest
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
	return helper.JsonUpdated(c, "Entri kas diperbarui", dto.FromModel(*m))
}

/* ======================= DELETE ======================= */
// DELETE /finance/cashflow-entries/:id
func (h *CashflowController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Entri kas dihapus", fiber.Map{"id": id})
}
