// file: internals/features/finance/budgets/service/budget_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "xclass_backend/internals/features/finance/budgets/model"
	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
	cashflowService "xclass_backend/internals/features/finance/cashflow/service"
)

type BudgetService struct {
	DB       *gorm.DB
	Cashflow *cashflowService.CashflowService
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{
		DB:       db,
		Cashflow: cashflowService.NewCashflowService(db),
	}
}

type ListFilter struct {
	Category *cashflowModel.CashflowCategory
	Status   *model.BudgetStatus
	Year     *int16
}

type CategorySummary struct {
	Category           cashflowModel.CashflowCategory `json:"category"`
	PlannedAmountIDR   int64                          `json:"planned_amount_idr"`
	ActualAmountIDR    int64                          `json:"actual_amount_idr"`
	RemainingAmountIDR int64                          `json:"remaining_amount_idr"`
}

// Summary: agregat rencana/realisasi/sisa per kategori + utilisasi
// keseluruhan (persen, 2 desimal). planned = 0 dianggap utilisasi 0.
type Summary struct {
	Categories []CategorySummary `json:"categories"`

	TotalPlannedIDR   int64           `json:"total_planned_idr"`
	TotalActualIDR    int64           `json:"total_actual_idr"`
	TotalRemainingIDR int64           `json:"total_remaining_idr"`
	UtilizationPct    decimal.Decimal `json:"utilization_pct"`
}

/* ======================= CREATE ======================= */

func (s *BudgetService) Create(ctx context.Context, m *model.BudgetModel) (*model.BudgetModel, error) {
	if m.BudgetEndDate.Before(m.BudgetStartDate) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tanggal akhir anggaran sebelum tanggal mulai")
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan anggaran")
	}
	return m, nil
}

/* ======================= READS ======================= */

func (s *BudgetService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.BudgetModel, error) {
	var m model.BudgetModel
	err := s.DB.WithContext(ctx).
		Where("budget_id = ? AND budget_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Anggaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func (s *BudgetService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.BudgetModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&model.BudgetModel{}).
		Where("budget_school_id = ?", schoolID)

	if f.Category != nil {
		base = base.Where("budget_category = ?", *f.Category)
	}
	if f.Status != nil {
		base = base.Where("budget_status = ?", *f.Status)
	}
	if f.Year != nil {
		base = base.Where("budget_year = ?", *f.Year)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.BudgetModel
	if err := base.
		Order("budget_year DESC, budget_period_value DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

/* ======================= LIFECYCLE ======================= */

// Approve: draft → approved, stempel penyetuju + waktu. Tidak ada jalur
// penolakan dalam desain ini.
func (s *BudgetService) Approve(ctx context.Context, schoolID, id, approvedBy uuid.UUID) (*model.BudgetModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.BudgetStatus != model.BudgetDraft {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hanya anggaran draft yang bisa disetujui")
	}

	now := time.Now()
	m.BudgetStatus = model.BudgetApproved
	m.BudgetApprovedBy = &approvedBy
	m.BudgetApprovedAt = &now

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyetujui anggaran")
	}
	return m, nil
}

// Close: approved → closed, mengunci anggaran dari perubahan lebih lanjut.
func (s *BudgetService) Close(ctx context.Context, schoolID, id uuid.UUID) (*model.BudgetModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.BudgetStatus != model.BudgetApproved {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hanya anggaran yang sudah disetujui yang bisa ditutup")
	}

	m.BudgetStatus = model.BudgetClosed
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menutup anggaran")
	}
	return m, nil
}

// UpdateDraft: perubahan isi hanya untuk anggaran draft.
func (s *BudgetService) UpdateDraft(ctx context.Context, m *model.BudgetModel) error {
	if m.BudgetStatus != model.BudgetDraft {
		return fiber.NewError(fiber.StatusBadRequest, "Anggaran yang sudah disetujui tidak dapat diubah")
	}
	if m.BudgetEndDate.Before(m.BudgetStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal akhir anggaran sebelum tanggal mulai")
	}
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui anggaran")
	}
	return nil
}

/* ======================= RECOMPUTE ======================= */

// RecomputeActual menjumlah ulang pengeluaran buku kas yang kategorinya sama
// dalam [start_date, end_date] dan menimpa realisasi. Pull-based: tidak ada
// yang memanggil ini otomatis saat pengeluaran baru dicatat, jadi nilai cache
// bisa basi sampai seseorang memanggilnya.
func (s *BudgetService) RecomputeActual(ctx context.Context, schoolID, id uuid.UUID) (*model.BudgetModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	actual, err := s.Cashflow.SumExpense(ctx, schoolID, m.BudgetCategory, m.BudgetStartDate, m.BudgetEndDate)
	if err != nil {
		return nil, err
	}

	m.BudgetActualAmountIDR = actual
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui realisasi anggaran")
	}
	return m, nil
}

/* ======================= SUMMARY ======================= */

func (s *BudgetService) GetSummary(ctx context.Context, schoolID uuid.UUID, year *int16) (*Summary, error) {
	q := s.DB.WithContext(ctx).Model(&model.BudgetModel{}).
		Where("budget_school_id = ?", schoolID)
	if year != nil {
		q = q.Where("budget_year = ?", *year)
	}

	var rows []struct {
		Category cashflowModel.CashflowCategory
		Planned  int64
		Actual   int64
	}
	err := q.
		Select(`
			budget_category AS category,
			COALESCE(SUM(budget_planned_amount_idr), 0) AS planned,
			COALESCE(SUM(budget_actual_amount_idr), 0) AS actual
		`).
		Group("budget_category").
		Order("budget_category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := &Summary{Categories: make([]CategorySummary, 0, len(rows))}
	for _, r := range rows {
		out.Categories = append(out.Categories, CategorySummary{
			Category:           r.Category,
			PlannedAmountIDR:   r.Planned,
			ActualAmountIDR:    r.Actual,
			RemainingAmountIDR: r.Planned - r.Actual,
		})
		out.TotalPlannedIDR += r.Planned
		out.TotalActualIDR += r.Actual
	}
	out.TotalRemainingIDR = out.TotalPlannedIDR - out.TotalActualIDR

	// planned = 0 → utilisasi 0, bukan pembagian nol
	if out.TotalPlannedIDR > 0 {
		out.UtilizationPct = decimal.NewFromInt(out.TotalActualIDR).
			Div(decimal.NewFromInt(out.TotalPlannedIDR)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	} else {
		out.UtilizationPct = decimal.Zero
	}
	return out, nil
}

/* ======================= DELETE ======================= */

func (s *BudgetService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("budget_id = ? AND budget_school_id = ?", id, schoolID).
		Delete(&model.BudgetModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Anggaran tidak ditemukan")
	}
	return nil
}
