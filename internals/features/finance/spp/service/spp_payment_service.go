// file: internals/features/finance/spp/service/spp_payment_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "xclass_backend/internals/helpers"

	model "xclass_backend/internals/features/finance/spp/model"
)

type SppPaymentService struct {
	DB *gorm.DB
}

func NewSppPaymentService(db *gorm.DB) *SppPaymentService {
	return &SppPaymentService{DB: db}
}

/* ======================= INPUT TYPES ======================= */

type ListFilter struct {
	StudentID *uuid.UUID
	Year      *int
	Month     *int
	Status    *model.SppPaymentStatus
}

type PaymentDetails struct {
	Method     *string
	Reference  *string
	Notes      *string
	ReceiptNo  *string
	VerifiedBy *uuid.UUID
}

type PendingPatch struct {
	AmountIDR *int64
	DueDate   *time.Time
	Notes     *string
}

type Statistics struct {
	TotalCount       int64 `json:"total_count"`
	TotalAmountIDR   int64 `json:"total_amount_idr" gorm:"column:total_amount_idr"`
	PaidCount        int64 `json:"paid_count"`
	PaidAmountIDR    int64 `json:"paid_amount_idr" gorm:"column:paid_amount_idr"`
	PendingCount     int64 `json:"pending_count"`
	PendingAmountIDR int64 `json:"pending_amount_idr" gorm:"column:pending_amount_idr"`
	OverdueCount     int64 `json:"overdue_count"`
	OverdueAmountIDR int64 `json:"overdue_amount_idr" gorm:"column:overdue_amount_idr"`
}

/* ======================= CREATE ======================= */

// Create menagihkan satu periode SPP. Duplikat (school, student, year, month)
// ditolak oleh unique index; konflik storage diterjemahkan ke 409.
func (s *SppPaymentService) Create(ctx context.Context, m *model.SppPaymentModel) (*model.SppPaymentModel, error) {
	if m.SppPaymentStatus == "" {
		m.SppPaymentStatus = model.SppPaymentPending
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict,
				"Tagihan SPP untuk siswa & periode tersebut sudah ada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tagihan SPP")
	}
	return m, nil
}

/* ======================= MARK PAID ======================= */

// MarkPaid: transisi satu arah pending → paid. Tidak ada unpaid/refund.
func (s *SppPaymentService) MarkPaid(ctx context.Context, schoolID, id uuid.UUID, det PaymentDetails) (*model.SppPaymentModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.SppPaymentStatus == model.SppPaymentPaid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tagihan SPP sudah berstatus lunas")
	}

	now := time.Now()
	m.SppPaymentStatus = model.SppPaymentPaid
	m.SppPaymentPaidAt = &now
	m.SppPaymentMethod = det.Method
	m.SppPaymentReference = det.Reference
	if det.Notes != nil {
		m.SppPaymentNotes = det.Notes
	}
	m.SppPaymentReceiptNo = det.ReceiptNo
	if det.VerifiedBy != nil {
		m.SppPaymentVerifiedBy = det.VerifiedBy
		m.SppPaymentVerifiedAt = &now
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai SPP lunas")
	}
	return m, nil
}

/* ======================= UPDATE (pending only) ======================= */

// UpdatePending mengizinkan edit nominal/jatuh tempo/catatan selama pending.
func (s *SppPaymentService) UpdatePending(ctx context.Context, schoolID, id uuid.UUID, patch PendingPatch) (*model.SppPaymentModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.SppPaymentStatus == model.SppPaymentPaid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tagihan SPP lunas tidak bisa diubah")
	}

	if patch.AmountIDR != nil {
		m.SppPaymentAmountIDR = *patch.AmountIDR
	}
	if patch.DueDate != nil {
		m.SppPaymentDueDate = *patch.DueDate
	}
	if patch.Notes != nil {
		m.SppPaymentNotes = patch.Notes
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tagihan SPP")
	}
	return m, nil
}

/* ======================= READS ======================= */

func (s *SppPaymentService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.SppPaymentModel, error) {
	var m model.SppPaymentModel
	err := s.DB.WithContext(ctx).
		Where("spp_payment_id = ? AND spp_payment_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tagihan SPP tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// List: tenant-scoped, periode terbaru dulu.
func (s *SppPaymentService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.SppPaymentModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&model.SppPaymentModel{}).
		Where("spp_payment_school_id = ?", schoolID)

	if f.StudentID != nil {
		base = base.Where("spp_payment_student_id = ?", *f.StudentID)
	}
	if f.Year != nil {
		base = base.Where("spp_payment_year = ?", *f.Year)
	}
	if f.Month != nil {
		base = base.Where("spp_payment_month = ?", *f.Month)
	}
	if f.Status != nil {
		base = base.Where("spp_payment_status = ?", *f.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SppPaymentModel
	if err := base.
		Order("spp_payment_year DESC, spp_payment_month DESC, spp_payment_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

// Overdue: semua pending yang jatuh temponya sudah lewat.
func (s *SppPaymentService) Overdue(ctx context.Context, schoolID uuid.UUID) ([]model.SppPaymentModel, error) {
	var list []model.SppPaymentModel
	if err := s.DB.WithContext(ctx).
		Where("spp_payment_school_id = ? AND spp_payment_status = ? AND spp_payment_due_date < ?",
			schoolID, model.SppPaymentPending, helper.Today()).
		Order("spp_payment_due_date ASC").
		Find(&list).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, nil
}

/* ======================= STATISTICS ======================= */

func (s *SppPaymentService) Statistics(ctx context.Context, schoolID uuid.UUID, year *int) (*Statistics, error) {
	base := s.DB.WithContext(ctx).Model(&model.SppPaymentModel{}).
		Where("spp_payment_school_id = ?", schoolID)
	if year != nil {
		base = base.Where("spp_payment_year = ?", *year)
	}

	var st Statistics
	err := base.Select(`
		COUNT(*) AS total_count,
		COALESCE(SUM(spp_payment_amount_idr), 0) AS total_amount_idr,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'paid' THEN 1 ELSE 0 END), 0) AS paid_count,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'paid' THEN spp_payment_amount_idr ELSE 0 END), 0) AS paid_amount_idr,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_count,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' THEN spp_payment_amount_idr ELSE 0 END), 0) AS pending_amount_idr,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' AND spp_payment_due_date < ? THEN 1 ELSE 0 END), 0) AS overdue_count,
		COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' AND spp_payment_due_date < ? THEN spp_payment_amount_idr ELSE 0 END), 0) AS overdue_amount_idr
	`, helper.Today(), helper.Today()).
		Scan(&st).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &st, nil
}

/* ======================= DELETE ======================= */

// Delete menghapus permanen (tabel ini tanpa soft delete, lihat model).
func (s *SppPaymentService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("spp_payment_id = ? AND spp_payment_school_id = ?", id, schoolID).
		Delete(&model.SppPaymentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan SPP tidak ditemukan")
	}
	return nil
}

/* ======================= UTIL ======================= */

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
