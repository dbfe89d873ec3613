// file: internals/features/finance/scholarships/service/scholarship_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "xclass_backend/internals/features/finance/scholarships/model"
)

type ScholarshipService struct {
	DB *gorm.DB
}

func NewScholarshipService(db *gorm.DB) *ScholarshipService {
	return &ScholarshipService{DB: db}
}

type ListFilter struct {
	StudentID *uuid.UUID
	Type      *model.ScholarshipType
	Status    *model.ScholarshipStatus
}

// Statistics: hitung per status + total nominal beasiswa AKTIF saja.
// Beasiswa berbasis persen tidak punya nilai absolut tanpa nominal acuan,
// jadi hanya amount_idr yang dijumlah.
type Statistics struct {
	TotalCount     int64 `json:"total_count"`
	ActiveCount    int64 `json:"active_count"`
	ExpiredCount   int64 `json:"expired_count"`
	CancelledCount int64 `json:"cancelled_count"`

	ActiveAmountIDR int64 `json:"active_amount_idr"`
}

/* ======================= CREATE ======================= */

func (s *ScholarshipService) Create(ctx context.Context, m *model.ScholarshipModel) (*model.ScholarshipModel, error) {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan beasiswa")
	}
	return m, nil
}

/* ======================= READS ======================= */

func (s *ScholarshipService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.ScholarshipModel, error) {
	var m model.ScholarshipModel
	err := s.DB.WithContext(ctx).
		Where("scholarship_id = ? AND scholarship_school_id = ?", id, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Beasiswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func (s *ScholarshipService) List(ctx context.Context, schoolID uuid.UUID, f ListFilter, limit, offset int) ([]model.ScholarshipModel, int64, error) {
	base := s.DB.WithContext(ctx).Model(&model.ScholarshipModel{}).
		Where("scholarship_school_id = ?", schoolID)

	if f.StudentID != nil {
		base = base.Where("scholarship_student_id = ?", *f.StudentID)
	}
	if f.Type != nil {
		base = base.Where("scholarship_type = ?", *f.Type)
	}
	if f.Status != nil {
		base = base.Where("scholarship_status = ?", *f.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ScholarshipModel
	if err := base.
		Order("scholarship_start_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return list, total, nil
}

/* ======================= STATISTICS ======================= */

func (s *ScholarshipService) GetStatistics(ctx context.Context, schoolID uuid.UUID) (*Statistics, error) {
	var agg struct {
		TotalCount      int64
		ActiveCount     int64
		ExpiredCount    int64
		CancelledCount  int64
		ActiveAmountIDR int64 `gorm:"column:active_amount_idr"`
	}
	err := s.DB.WithContext(ctx).Model(&model.ScholarshipModel{}).
		Where("scholarship_school_id = ?", schoolID).
		Select(`
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN scholarship_status = 'active'    THEN 1 ELSE 0 END), 0) AS active_count,
			COALESCE(SUM(CASE WHEN scholarship_status = 'expired'   THEN 1 ELSE 0 END), 0) AS expired_count,
			COALESCE(SUM(CASE WHEN scholarship_status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_count,
			COALESCE(SUM(CASE WHEN scholarship_status = 'active'    THEN COALESCE(scholarship_amount_idr, 0) ELSE 0 END), 0) AS active_amount_idr
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &Statistics{
		TotalCount:      agg.TotalCount,
		ActiveCount:     agg.ActiveCount,
		ExpiredCount:    agg.ExpiredCount,
		CancelledCount:  agg.CancelledCount,
		ActiveAmountIDR: agg.ActiveAmountIDR,
	}, nil
}

/* ======================= UPDATE / DELETE ======================= */

func (s *ScholarshipService) Update(ctx context.Context, m *model.ScholarshipModel) error {
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui beasiswa")
	}
	return nil
}

func (s *ScholarshipService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("scholarship_id = ? AND scholarship_school_id = ?", id, schoolID).
		Delete(&model.ScholarshipModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Beasiswa tidak ditemukan")
	}
	return nil
}
