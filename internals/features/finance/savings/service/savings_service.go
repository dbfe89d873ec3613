// file: internals/features/finance/savings/service/savings_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "xclass_backend/internals/features/finance/savings/model"
)

type SavingsService struct {
	DB *gorm.DB
}

func NewSavingsService(db *gorm.DB) *SavingsService {
	return &SavingsService{DB: db}
}

type ListFilter struct {
	StudentID *uuid.UUID
	Type      *model.SavingsTransactionType
	StartDate *time.Time // inclusive, terhadap created_at
	EndDate   *time.Time // eksklusif (half-open window)
}

// Balance: saldo turunan — murni fold atas baris transaksi, tidak pernah
// disimpan atau di-cache di mana pun.
type Balance struct {
	StudentID          uuid.UUID `json:"student_id"`
	BalanceIDR         int64     `json:"balance_idr"`
	TotalDepositIDR    int64     `json:"total_deposit_idr"`
	TotalWithdrawalIDR int64     `json:"total_withdrawal_idr"`
}

/* ======================= RECORD ======================= */

// Record selalu insert. Tidak ada pengecekan saldo: penarikan melebihi
// setoran tetap diterima (kontrak modul tabungan).
func (s *SavingsService) Record(ctx context.Context, m *model.SavingsTransactionModel) (*model.SavingsTransactionModel, error) {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat transaksi tabungan")
	}
	return m, nil
}

/* ======================= BALANCE ======================= */

func (s *SavingsService) GetBalance(ctx context.Context, schoolID, studentID uuid.UUID) (*Balance, error) {
	var agg struct {
		TotalDeposit    int64
		TotalWithdrawal int64
	}
	err := s.DB.WithContext(ctx).Model(&model.SavingsTransactionModel{}).
		Where("savings_transaction_school_id = ? AND savings_transaction_student_id = ?", schoolID, studentID).
		Select(`
			COALESCE(SUM(CASE WHEN savings_transaction_type = 'deposit' THEN savings_transaction_amount_idr ELSE 0 END), 0) AS total_deposit,
			COALESCE(SUM(CASE WHEN savings_transaction_type = 'withdrawal' THEN savings_transaction_amount_idr ELSE 0 END), 0) AS total_withdrawal
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &Balance{
		StudentID:          studentID,
		BalanceIDR:         agg.TotalDeposit - agg.TotalWithdrawal,
		TotalDepositIDR:    agg.TotalDeposit,
		TotalWithdrawalIDR: agg.TotalWithdrawal,
	}, nil
}

// NetDeposits: total setoran bersih satu sekolah (dipakai dashboard).
func (s *SavingsService) NetDeposits(ctx context.Context, schoolID uuid.UUID) (int64, error) {
	var agg struct {
		TotalDeposit    int64
		TotalWithdrawal int64
	}
	err := s.DB.WithContext(ctx).Model(&model.SavingsTransactionModel{}).
		Where("savings_transaction_school_id = ?", schoolID).
		Select(`
			COALESCE(SUM(CASE WHEN savings_transaction_type = 'deposit' THEN savings_transaction_amount_idr ELSE 0 END), 0) AS total_deposit,
			COALESCE(SUM(CASE WHEN savings_transaction_type = 'withdrawal' THEN savings_transaction_amount_idr ELSE 0 END), 0) AS total_withdrawal
		`).
		Scan(&agg).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return agg.TotalDeposit - agg.TotalWithdrawal, nil
}

/* ======================= READS ======================= */

func (s *SavingsService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.SavingsTransactionModel, error) {
	var m model.SavingsTransactionModel
	err := s.DB.WithContext(ctx).
		Where("savings_transaction_id = ? AND savings_transaction_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Transaksi tabungan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func (s *SavingsService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.SavingsTransactionModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&model.SavingsTransactionModel{}).
		Where("savings_transaction_school_id = ?", schoolID)

	if f.StudentID != nil {
		base = base.Where("savings_transaction_student_id = ?", *f.StudentID)
	}
	if f.Type != nil {
		base = base.Where("savings_transaction_type = ?", *f.Type)
	}
	if f.StartDate != nil {
		base = base.Where("savings_transaction_created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		base = base.Where("savings_transaction_created_at < ?", *f.EndDate)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SavingsTransactionModel
	if err := base.
		Order("savings_transaction_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

/* ======================= UPDATE / DELETE ======================= */

// Update bekerja pada baris mentah; saldo turunan otomatis bergeser pada
// pembacaan berikutnya.
func (s *SavingsService) Update(ctx context.Context, m *model.SavingsTransactionModel) error {
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui transaksi tabungan")
	}
	return nil
}

func (s *SavingsService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("savings_transaction_id = ? AND savings_transaction_school_id = ?", id, schoolID).
		Delete(&model.SavingsTransactionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Transaksi tabungan tidak ditemukan")
	}
	return nil
}
