// file: internals/features/finance/budgets/dto/budget_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "xclass_backend/internals/features/finance/budgets/model"
	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
)

/* =============== REQUESTS =============== */

type CreateBudgetRequest struct {
	BudgetCategory    string  `json:"budget_category"    validate:"required,oneof=salary utility maintenance supply activity other_expense"`
	BudgetTitle       string  `json:"budget_title"       validate:"required,max=150"`
	BudgetDescription *string `json:"budget_description" validate:"omitempty"`

	BudgetPlannedAmountIDR int64 `json:"budget_planned_amount_idr" validate:"required,gte=0"`

	BudgetPeriod      string `json:"budget_period"       validate:"required,oneof=monthly quarterly yearly"`
	BudgetPeriodValue int16  `json:"budget_period_value" validate:"required,min=1,max=12"`
	BudgetYear        int16  `json:"budget_year"         validate:"required,min=2000,max=2100"`
	BudgetStartDate   string `json:"budget_start_date"   validate:"required,datetime=2006-01-02"`
	BudgetEndDate     string `json:"budget_end_date"     validate:"required,datetime=2006-01-02"`
}

func (r CreateBudgetRequest) ToModel(schoolID uuid.UUID) *m.BudgetModel {
	start, _ := time.Parse("2006-01-02", r.BudgetStartDate)
	end, _ := time.Parse("2006-01-02", r.BudgetEndDate)
	return &m.BudgetModel{
		BudgetSchoolID:         schoolID,
		BudgetCategory:         cashflowModel.CashflowCategory(r.BudgetCategory),
		BudgetTitle:            r.BudgetTitle,
		BudgetDescription:      r.BudgetDescription,
		BudgetPlannedAmountIDR: r.BudgetPlannedAmountIDR,
		BudgetActualAmountIDR:  0,
		BudgetPeriod:           m.BudgetPeriod(r.BudgetPeriod),
		BudgetPeriodValue:      r.BudgetPeriodValue,
		BudgetYear:             r.BudgetYear,
		BudgetStartDate:        start,
		BudgetEndDate:          end,
		BudgetStatus:           m.BudgetDraft,
	}
}

// Update (partial) — hanya untuk anggaran yang masih draft.
type UpdateBudgetRequest struct {
	BudgetCategory    *string `json:"budget_category"    validate:"omitempty,oneof=salary utility maintenance supply activity other_expense"`
	BudgetTitle       *string `json:"budget_title"       validate:"omitempty,max=150"`
	BudgetDescription *string `json:"budget_description" validate:"omitempty"`

	BudgetPlannedAmountIDR *int64 `json:"budget_planned_amount_idr" validate:"omitempty,gte=0"`

	BudgetPeriod      *string `json:"budget_period"       validate:"omitempty,oneof=monthly quarterly yearly"`
	BudgetPeriodValue *int16  `json:"budget_period_value" validate:"omitempty,min=1,max=12"`
	BudgetYear        *int16  `json:"budget_year"         validate:"omitempty,min=2000,max=2100"`
	BudgetStartDate   *string `json:"budget_start_date"   validate:"omitempty,datetime=2006-01-02"`
	BudgetEndDate     *string `json:"budget_end_date"     validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateBudgetRequest) ApplyTo(mo *m.BudgetModel) {
	if r.BudgetCategory != nil {
		mo.BudgetCategory = cashflowModel.CashflowCategory(*r.BudgetCategory)
	}
	if r.BudgetTitle != nil {
		mo.BudgetTitle = *r.BudgetTitle
	}
	if r.BudgetDescription != nil {
		mo.BudgetDescription = r.BudgetDescription
	}
	if r.BudgetPlannedAmountIDR != nil {
		mo.BudgetPlannedAmountIDR = *r.BudgetPlannedAmountIDR
	}
	if r.BudgetPeriod != nil {
		mo.BudgetPeriod = m.BudgetPeriod(*r.BudgetPeriod)
	}
	if r.BudgetPeriodValue != nil {
		mo.BudgetPeriodValue = *r.BudgetPeriodValue
	}
	if r.BudgetYear != nil {
		mo.BudgetYear = *r.BudgetYear
	}
	if r.BudgetStartDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BudgetStartDate); err == nil {
			mo.BudgetStartDate = t
		}
	}
	if r.BudgetEndDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BudgetEndDate); err == nil {
			mo.BudgetEndDate = t
		}
	}
}

type ListBudgetQuery struct {
	Category *string `query:"category" validate:"omitempty,oneof=salary utility maintenance supply activity other_expense"`
	Status   *string `query:"status"   validate:"omitempty,oneof=draft approved closed"`
	Year     *int16  `query:"year"     validate:"omitempty,min=2000,max=2100"`
}

/* =============== RESPONSES =============== */

type BudgetResponse struct {
	BudgetID uuid.UUID `json:"budget_id"`

	BudgetCategory    cashflowModel.CashflowCategory `json:"budget_category"`
	BudgetTitle       string                         `json:"budget_title"`
	BudgetDescription *string                        `json:"budget_description,omitempty"`

	BudgetPlannedAmountIDR int64 `json:"budget_planned_amount_idr"`
	BudgetActualAmountIDR  int64 `json:"budget_actual_amount_idr"`

	BudgetPeriod      m.BudgetPeriod `json:"budget_period"`
	BudgetPeriodValue int16          `json:"budget_period_value"`
	BudgetYear        int16          `json:"budget_year"`
	BudgetStartDate   time.Time      `json:"budget_start_date"`
	BudgetEndDate     time.Time      `json:"budget_end_date"`

	BudgetStatus     m.BudgetStatus `json:"budget_status"`
	BudgetApprovedBy *uuid.UUID     `json:"budget_approved_by,omitempty"`
	BudgetApprovedAt *time.Time     `json:"budget_approved_at,omitempty"`

	BudgetCreatedAt time.Time  `json:"budget_created_at"`
	BudgetUpdatedAt *time.Time `json:"budget_updated_at,omitempty"`
}

func FromModel(x m.BudgetModel) BudgetResponse {
	return BudgetResponse{
		BudgetID:               x.BudgetID,
		BudgetCategory:         x.BudgetCategory,
		BudgetTitle:            x.BudgetTitle,
		BudgetDescription:      x.BudgetDescription,
		BudgetPlannedAmountIDR: x.BudgetPlannedAmountIDR,
		BudgetActualAmountIDR:  x.BudgetActualAmountIDR,
		BudgetPeriod:           x.BudgetPeriod,
		BudgetPeriodValue:      x.BudgetPeriodValue,
		BudgetYear:             x.BudgetYear,
		BudgetStartDate:        x.BudgetStartDate,
		BudgetEndDate:          x.BudgetEndDate,
		BudgetStatus:           x.BudgetStatus,
		BudgetApprovedBy:       x.BudgetApprovedBy,
		BudgetApprovedAt:       x.BudgetApprovedAt,
		BudgetCreatedAt:        x.BudgetCreatedAt,
		BudgetUpdatedAt:        x.BudgetUpdatedAt,
	}
}

func FromModels(list []m.BudgetModel) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
