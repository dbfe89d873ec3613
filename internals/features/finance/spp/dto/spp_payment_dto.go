// file: internals/features/finance/spp/dto/spp_payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "xclass_backend/internals/features/finance/spp/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateSppPaymentRequest struct {
	SppPaymentStudentID uuid.UUID `json:"spp_payment_student_id" validate:"required"`

	SppPaymentYear  int16 `json:"spp_payment_year"  validate:"required,gte=2000,lte=2100"` // 2000..2100
	SppPaymentMonth int16 `json:"spp_payment_month" validate:"required,min=1,max=12"`      // 1..12

	SppPaymentAmountIDR int64     `json:"spp_payment_amount_idr" validate:"required,gte=0"`
	SppPaymentDueDate   time.Time `json:"spp_payment_due_date"   validate:"required"`

	SppPaymentNotes *string `json:"spp_payment_notes" validate:"omitempty"`
}

func (r CreateSppPaymentRequest) ToModel(schoolID uuid.UUID) *m.SppPaymentModel {
	return &m.SppPaymentModel{
		SppPaymentSchoolID:  schoolID,
		SppPaymentStudentID: r.SppPaymentStudentID,
		SppPaymentYear:      r.SppPaymentYear,
		SppPaymentMonth:     r.SppPaymentMonth,
		SppPaymentAmountIDR: r.SppPaymentAmountIDR,
		SppPaymentDueDate:   r.SppPaymentDueDate,
		SppPaymentStatus:    m.SppPaymentPending,
		SppPaymentNotes:     r.SppPaymentNotes,
	}
}

// Update (partial, hanya saat pending)
type UpdateSppPaymentRequest struct {
	SppPaymentAmountIDR *int64     `json:"spp_payment_amount_idr" validate:"omitempty,gte=0"`
	SppPaymentDueDate   *time.Time `json:"spp_payment_due_date"   validate:"omitempty"`
	SppPaymentNotes     *string    `json:"spp_payment_notes"      validate:"omitempty"`
}

// Mark paid
type MarkPaidSppPaymentRequest struct {
	SppPaymentMethod    *string `json:"spp_payment_method"     validate:"omitempty,max=40"`
	SppPaymentReference *string `json:"spp_payment_reference"  validate:"omitempty,max=100"`
	SppPaymentNotes     *string `json:"spp_payment_notes"      validate:"omitempty"`
	SppPaymentReceiptNo *string `json:"spp_payment_receipt_no" validate:"omitempty,max=60"`
}

// List / Query params
type ListSppPaymentQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	Year      *int       `query:"year"       validate:"omitempty,gte=2000,lte=2100"`
	Month     *int       `query:"month"      validate:"omitempty,min=1,max=12"`
	Status    *string    `query:"status"     validate:"omitempty,oneof=pending paid"`
}

/* =============== RESPONSES =============== */

type SppPaymentResponse struct {
	SppPaymentID        uuid.UUID `json:"spp_payment_id"`
	SppPaymentStudentID uuid.UUID `json:"spp_payment_student_id"`

	SppPaymentYear  int16 `json:"spp_payment_year"`
	SppPaymentMonth int16 `json:"spp_payment_month"`

	SppPaymentAmountIDR int64     `json:"spp_payment_amount_idr"`
	SppPaymentDueDate   time.Time `json:"spp_payment_due_date"`

	SppPaymentStatus m.SppPaymentStatus `json:"spp_payment_status"`
	SppPaymentPaidAt *time.Time         `json:"spp_payment_paid_at,omitempty"`

	SppPaymentMethod    *string `json:"spp_payment_method,omitempty"`
	SppPaymentReference *string `json:"spp_payment_reference,omitempty"`
	SppPaymentNotes     *string `json:"spp_payment_notes,omitempty"`
	SppPaymentReceiptNo *string `json:"spp_payment_receipt_no,omitempty"`

	SppPaymentVerifiedBy *uuid.UUID `json:"spp_payment_verified_by,omitempty"`
	SppPaymentVerifiedAt *time.Time `json:"spp_payment_verified_at,omitempty"`

	SppPaymentCreatedAt time.Time  `json:"spp_payment_created_at"`
	SppPaymentUpdatedAt *time.Time `json:"spp_payment_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.SppPaymentModel) SppPaymentResponse {
	return SppPaymentResponse{
		SppPaymentID:         x.SppPaymentID,
		SppPaymentStudentID:  x.SppPaymentStudentID,
		SppPaymentYear:       x.SppPaymentYear,
		SppPaymentMonth:      x.SppPaymentMonth,
		SppPaymentAmountIDR:  x.SppPaymentAmountIDR,
		SppPaymentDueDate:    x.SppPaymentDueDate,
		SppPaymentStatus:     x.SppPaymentStatus,
		SppPaymentPaidAt:     x.SppPaymentPaidAt,
		SppPaymentMethod:     x.SppPaymentMethod,
		SppPaymentReference:  x.SppPaymentReference,
		SppPaymentNotes:      x.SppPaymentNotes,
		SppPaymentReceiptNo:  x.SppPaymentReceiptNo,
		SppPaymentVerifiedBy: x.SppPaymentVerifiedBy,
		SppPaymentVerifiedAt: x.SppPaymentVerifiedAt,
		SppPaymentCreatedAt:  x.SppPaymentCreatedAt,
		SppPaymentUpdatedAt:  x.SppPaymentUpdatedAt,
	}
}

func FromModels(list []m.SppPaymentModel) []SppPaymentResponse {
	out := make([]SppPaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
