// file: internals/features/finance/cashflow/service/cashflow_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "xclass_backend/internals/features/finance/cashflow/model"
)

type CashflowService struct {
	DB *gorm.DB
}

func NewCashflowService(db *gorm.DB) *CashflowService {
	return &CashflowService{DB: db}
}

type ListFilter struct {
	Type      *model.CashflowEntryType
	Category  *model.CashflowCategory
	StartDate *time.Time // inclusive
	EndDate   *time.Time // inclusive (tanggal transaksi bertipe date)
}

// Summary: primitif paling sering dipakai — anggaran, dashboard, dan trend
// bulanan semuanya lewat sini.
type Summary struct {
	TotalIncomeIDR  int64 `json:"total_income_idr"`
	TotalExpenseIDR int64 `json:"total_expense_idr"`
	BalanceIDR      int64 `json:"balance_idr"`
}

type CategoryAmount struct {
	Category  model.CashflowCategory `json:"category"`
	AmountIDR int64                  `json:"amount_idr" gorm:"column:amount_idr"`
}

/* ======================= CREATE ======================= */

func (s *CashflowService) Create(ctx context.Context, m *model.CashflowEntryModel) (*model.CashflowEntryModel, error) {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat entri kas")
	}
	return m, nil
}

/* ======================= READS ======================= */

func (s *CashflowService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.CashflowEntryModel, error) {
	var m model.CashflowEntryModel
	err := s.DB.WithContext(ctx).
		Where("cashflow_entry_id = ? AND cashflow_entry_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Entri kas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func (s *CashflowService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.CashflowEntryModel, int64, error) {
	base := s.scoped(ctx, schoolID, f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.CashflowEntryModel
	if err := base.
		Order("cashflow_entry_transaction_date DESC, cashflow_entry_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

/* ======================= SUMMARY ======================= */

func (s *CashflowService) GetSummary(ctx context.Context, schoolID uuid.UUID, start, end *time.Time) (*Summary, error) {
	var agg struct {
		TotalIncome  int64
		TotalExpense int64
	}
	err := s.scoped(ctx, schoolID, ListFilter{StartDate: start, EndDate: end}).
		Select(`
			COALESCE(SUM(CASE WHEN cashflow_entry_type = 'income'  THEN cashflow_entry_amount_idr ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN cashflow_entry_type = 'expense' THEN cashflow_entry_amount_idr ELSE 0 END), 0) AS total_expense
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &Summary{
		TotalIncomeIDR:  agg.TotalIncome,
		TotalExpenseIDR: agg.TotalExpense,
		BalanceIDR:      agg.TotalIncome - agg.TotalExpense,
	}, nil
}

// BreakdownByCategory: daftar {kategori, jumlah} untuk satu jenis entri
// dalam window opsional.
func (s *CashflowService) BreakdownByCategory(ctx context.Context, schoolID uuid.UUID, typ model.CashflowEntryType, start, end *time.Time) ([]CategoryAmount, error) {
	var rows []CategoryAmount
	err := s.scoped(ctx, schoolID, ListFilter{Type: &typ, StartDate: start, EndDate: end}).
		Select("cashflow_entry_category AS category, COALESCE(SUM(cashflow_entry_amount_idr), 0) AS amount_idr").
		Group("cashflow_entry_category").
		Order("cashflow_entry_category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return rows, nil
}

// SumExpense: total pengeluaran satu kategori dalam [start, end] — dipakai
// recompute realisasi anggaran.
func (s *CashflowService) SumExpense(ctx context.Context, schoolID uuid.UUID, category model.CashflowCategory, start, end time.Time) (int64, error) {
	typ := model.CashflowExpense
	var total int64
	err := s.scoped(ctx, schoolID, ListFilter{Type: &typ, Category: &category, StartDate: &start, EndDate: &end}).
		Select("COALESCE(SUM(cashflow_entry_amount_idr), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return total, nil
}

/* ======================= UPDATE / DELETE ======================= */

func (s *CashflowService) Update(ctx context.Context, m *model.CashflowEntryModel) error {
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui entri kas")
	}
	return nil
}

func (s *CashflowService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("cashflow_entry_id = ? AND cashflow_entry_school_id = ?", id, schoolID).
		Delete(&model.CashflowEntryModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Entri kas tidak ditemukan")
	}
	return nil
}

/* ======================= INTERNAL ======================= */

func (s *CashflowService) scoped(ctx context.Context, schoolID uuid.UUID, f ListFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&model.CashflowEntryModel{}).
		Where("cashflow_entry_school_id = ?", schoolID)
	if f.Type != nil {
		q = q.Where("cashflow_entry_type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("cashflow_entry_category = ?", *f.Category)
	}
	if f.StartDate != nil {
		q = q.Where("cashflow_entry_transaction_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("cashflow_entry_transaction_date <= ?", *f.EndDate)
	}
	return q
}
