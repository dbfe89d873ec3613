// file: internals/features/finance/student_bills/service/student_bill_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "xclass_backend/internals/helpers"

	model "xclass_backend/internals/features/finance/student_bills/model"
)

type StudentBillService struct {
	DB *gorm.DB
}

func NewStudentBillService(db *gorm.DB) *StudentBillService {
	return &StudentBillService{DB: db}
}

type ListFilter struct {
	StudentID *uuid.UUID
	Category  *model.StudentBillCategory
	Status    *model.StudentBillStatus
}

type PaymentDetails struct {
	Method     *string
	Reference  *string
	Notes      *string
	ReceiptNo  *string
	VerifiedBy *uuid.UUID
}

type PendingPatch struct {
	Category  *model.StudentBillCategory
	Title     *string
	AmountIDR *int64
	DueDate   *time.Time
	Notes     *string
}

// CategoryStat: agregat per kategori untuk laporan admin.
type CategoryStat struct {
	Category   model.StudentBillCategory `json:"category"`
	Count      int64                     `json:"count"`
	AmountIDR  int64                     `json:"amount_idr" gorm:"column:amount_idr"`
	PaidAmount int64                     `json:"paid_amount_idr"`
}

/* ======================= CREATE ======================= */

func (s *StudentBillService) Create(ctx context.Context, m *model.StudentBillModel) (*model.StudentBillModel, error) {
	if m.StudentBillStatus == "" {
		m.StudentBillStatus = model.StudentBillPending
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}
	return m, nil
}

/* ======================= MARK PAID ======================= */

// MarkPaid: transisi satu arah pending → paid, taksonomi error sama dengan SPP.
func (s *StudentBillService) MarkPaid(ctx context.Context, schoolID, id uuid.UUID, det PaymentDetails) (*model.StudentBillModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.StudentBillStatus == model.StudentBillPaid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tagihan sudah berstatus lunas")
	}

	now := time.Now()
	m.StudentBillStatus = model.StudentBillPaid
	m.StudentBillPaidAt = &now
	m.StudentBillMethod = det.Method
	m.StudentBillReference = det.Reference
	if det.Notes != nil {
		m.StudentBillNotes = det.Notes
	}
	m.StudentBillReceiptNo = det.ReceiptNo
	if det.VerifiedBy != nil {
		m.StudentBillVerifiedBy = det.VerifiedBy
		m.StudentBillVerifiedAt = &now
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai tagihan lunas")
	}
	return m, nil
}

/* ======================= UPDATE (pending only) ======================= */

func (s *StudentBillService) UpdatePending(ctx context.Context, schoolID, id uuid.UUID, patch PendingPatch) (*model.StudentBillModel, error) {
	m, err := s.GetByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if m.StudentBillStatus == model.StudentBillPaid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tagihan lunas tidak bisa diubah")
	}

	if patch.Category != nil {
		m.StudentBillCategory = *patch.Category
	}
	if patch.Title != nil {
		m.StudentBillTitle = *patch.Title
	}
	if patch.AmountIDR != nil {
		m.StudentBillAmountIDR = *patch.AmountIDR
	}
	if patch.DueDate != nil {
		m.StudentBillDueDate = *patch.DueDate
	}
	if patch.Notes != nil {
		m.StudentBillNotes = patch.Notes
	}

	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}
	return m, nil
}

/* ======================= READS ======================= */

func (s *StudentBillService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.StudentBillModel, error) {
	var m model.StudentBillModel
	err := s.DB.WithContext(ctx).
		Where("student_bill_id = ? AND student_bill_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func (s *StudentBillService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.StudentBillModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&model.StudentBillModel{}).
		Where("student_bill_school_id = ?", schoolID)

	if f.StudentID != nil {
		base = base.Where("student_bill_student_id = ?", *f.StudentID)
	}
	if f.Category != nil {
		base = base.Where("student_bill_category = ?", *f.Category)
	}
	if f.Status != nil {
		base = base.Where("student_bill_status = ?", *f.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentBillModel
	if err := base.
		Order("student_bill_due_date DESC, student_bill_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

func (s *StudentBillService) Overdue(ctx context.Context, schoolID uuid.UUID) ([]model.StudentBillModel, error) {
	var list []model.StudentBillModel
	if err := s.DB.WithContext(ctx).
		Where("student_bill_school_id = ? AND student_bill_status = ? AND student_bill_due_date < ?",
			schoolID, model.StudentBillPending, helper.Today()).
		Order("student_bill_due_date ASC").
		Find(&list).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, nil
}

/* ===================== STATISTICS ===================== */

// StatisticsByCategory: count + nominal per kategori (terbayar dipisah).
func (s *StudentBillService) StatisticsByCategory(ctx context.Context, schoolID uuid.UUID) ([]CategoryStat, error) {
	var out []CategoryStat
	err := s.DB.WithContext(ctx).Model(&model.StudentBillModel{}).
		Where("student_bill_school_id = ?", schoolID).
		Select(`
			student_bill_category AS category,
			COUNT(*) AS count,
			COALESCE(SUM(student_bill_amount_idr), 0) AS amount_idr,
			COALESCE(SUM(CASE WHEN student_bill_status = 'paid' THEN student_bill_amount_idr ELSE 0 END), 0) AS paid_amount
		`).
		Group("student_bill_category").
		Order("student_bill_category ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return out, nil
}

/* ======================= DELETE ======================= */

func (s *StudentBillService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("student_bill_id = ? AND student_bill_school_id = ?", id, schoolID).
		Delete(&model.StudentBillModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return nil
}
