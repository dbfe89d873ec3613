// file: internals/features/finance/budgets/model/budget_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
)

type BudgetPeriod string

const (
	BudgetMonthly   BudgetPeriod = "monthly"
	BudgetQuarterly BudgetPeriod = "quarterly"
	BudgetYearly    BudgetPeriod = "yearly"
)

type BudgetStatus string

const (
	BudgetDraft    BudgetStatus = "draft"
	BudgetApproved BudgetStatus = "approved"
	BudgetClosed   BudgetStatus = "closed"
)

// BudgetModel merepresentasikan tabel `budgets`. Kolom actual_amount_idr
// adalah agregat CACHE: hanya berubah saat recompute dipanggil eksplisit,
// jadi bisa basi di antara dua recompute (kontrak modul, bukan bug).
// Kategori anggaran memakai kategori pengeluaran buku kas.
type BudgetModel struct {
	// PK
	BudgetID uuid.UUID `json:"budget_id" gorm:"column:budget_id;type:uuid;primaryKey"`

	// Tenant
	BudgetSchoolID uuid.UUID `json:"budget_school_id" gorm:"column:budget_school_id;type:uuid;not null;index:idx_budgets_school_year,priority:1"`

	// Kategori + isi
	BudgetCategory    cashflowModel.CashflowCategory `json:"budget_category"              gorm:"column:budget_category;type:varchar(30);not null;index"`
	BudgetTitle       string                         `json:"budget_title"                 gorm:"column:budget_title;type:varchar(150);not null"`
	BudgetDescription *string                        `json:"budget_description,omitempty" gorm:"column:budget_description;type:text"`

	// Nominal rupiah bulat: rencana vs realisasi (cache)
	BudgetPlannedAmountIDR int64 `json:"budget_planned_amount_idr" gorm:"column:budget_planned_amount_idr;type:bigint;not null;check:budget_planned_amount_idr >= 0"`
	BudgetActualAmountIDR  int64 `json:"budget_actual_amount_idr"  gorm:"column:budget_actual_amount_idr;type:bigint;not null;default:0"`

	// Periode anggaran
	BudgetPeriod      BudgetPeriod `json:"budget_period"       gorm:"column:budget_period;type:varchar(15);not null"`
	BudgetPeriodValue int16        `json:"budget_period_value" gorm:"column:budget_period_value;type:smallint;not null"` // bulan 1..12 / kuartal 1..4 / 1 utk tahunan
	BudgetYear        int16        `json:"budget_year"         gorm:"column:budget_year;type:smallint;not null;index:idx_budgets_school_year,priority:2"`
	BudgetStartDate   time.Time    `json:"budget_start_date"   gorm:"column:budget_start_date;type:date;not null"`
	BudgetEndDate     time.Time    `json:"budget_end_date"     gorm:"column:budget_end_date;type:date;not null"`

	// Lifecycle: draft → approved → closed
	BudgetStatus     BudgetStatus `json:"budget_status" gorm:"column:budget_status;type:varchar(15);not null;default:draft;index"`
	BudgetApprovedBy *uuid.UUID   `json:"budget_approved_by,omitempty" gorm:"column:budget_approved_by;type:uuid"`
	BudgetApprovedAt *time.Time   `json:"budget_approved_at,omitempty" gorm:"column:budget_approved_at"`

	// Timestamps + soft delete
	BudgetCreatedAt time.Time      `json:"budget_created_at" gorm:"column:budget_created_at;not null;autoCreateTime"`
	BudgetUpdatedAt *time.Time     `json:"budget_updated_at,omitempty" gorm:"column:budget_updated_at;autoUpdateTime"`
	BudgetDeletedAt gorm.DeletedAt `json:"-" gorm:"column:budget_deleted_at;index"`
}

func (m *BudgetModel) BeforeCreate(tx *gorm.DB) error {
	if m.BudgetID == uuid.Nil {
		m.BudgetID = uuid.New()
	}
	return nil
}

func (BudgetModel) TableName() string { return "budgets" }
