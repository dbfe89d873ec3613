// file: internals/features/finance/student_bills/dto/student_bill_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "xclass_backend/internals/features/finance/student_bills/model"
)

/* =============== REQUESTS =============== */

type CreateStudentBillRequest struct {
	StudentBillStudentID uuid.UUID `json:"student_bill_student_id" validate:"required"`

	StudentBillCategory  string    `json:"student_bill_category"   validate:"required,oneof=registration uniform book activity exam other"`
	StudentBillTitle     string    `json:"student_bill_title"      validate:"required,min=3"`
	StudentBillAmountIDR int64     `json:"student_bill_amount_idr" validate:"required,gte=0"`
	StudentBillDueDate   time.Time `json:"student_bill_due_date"   validate:"required"`

	StudentBillNotes *string `json:"student_bill_notes" validate:"omitempty"`
}

func (r CreateStudentBillRequest) ToModel(schoolID uuid.UUID) *m.StudentBillModel {
	return &m.StudentBillModel{
		StudentBillSchoolID:  schoolID,
		StudentBillStudentID: r.StudentBillStudentID,
		StudentBillCategory:  m.StudentBillCategory(r.StudentBillCategory),
		StudentBillTitle:     r.StudentBillTitle,
		StudentBillAmountIDR: r.StudentBillAmountIDR,
		StudentBillDueDate:   r.StudentBillDueDate,
		StudentBillStatus:    m.StudentBillPending,
		StudentBillNotes:     r.StudentBillNotes,
	}
}

// Update (partial, hanya saat pending)
type UpdateStudentBillRequest struct {
	StudentBillCategory  *string    `json:"student_bill_category"   validate:"omitempty,oneof=registration uniform book activity exam other"`
	StudentBillTitle     *string    `json:"student_bill_title"      validate:"omitempty,min=1"`
	StudentBillAmountIDR *int64     `json:"student_bill_amount_idr" validate:"omitempty,gte=0"`
	StudentBillDueDate   *time.Time `json:"student_bill_due_date"   validate:"omitempty"`
	StudentBillNotes     *string    `json:"student_bill_notes"      validate:"omitempty"`
}

type MarkPaidStudentBillRequest struct {
	StudentBillMethod    *string `json:"student_bill_method"     validate:"omitempty,max=40"`
	StudentBillReference *string `json:"student_bill_reference"  validate:"omitempty,max=100"`
	StudentBillNotes     *string `json:"student_bill_notes"      validate:"omitempty"`
	StudentBillReceiptNo *string `json:"student_bill_receipt_no" validate:"omitempty,max=60"`
}

type ListStudentBillQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	Category  *string    `query:"category"   validate:"omitempty,oneof=registration uniform book activity exam other"`
	Status    *string    `query:"status"     validate:"omitempty,oneof=pending paid"`
}

/* =============== RESPONSES =============== */

type StudentBillResponse struct {
	StudentBillID        uuid.UUID `json:"student_bill_id"`
	StudentBillStudentID uuid.UUID `json:"student_bill_student_id"`

	StudentBillCategory  m.StudentBillCategory `json:"student_bill_category"`
	StudentBillTitle     string                `json:"student_bill_title"`
	StudentBillAmountIDR int64                 `json:"student_bill_amount_idr"`
	StudentBillDueDate   time.Time             `json:"student_bill_due_date"`

	StudentBillStatus m.StudentBillStatus `json:"student_bill_status"`
	StudentBillPaidAt *time.Time          `json:"student_bill_paid_at,omitempty"`

	StudentBillMethod    *string `json:"student_bill_method,omitempty"`
	StudentBillReference *string `json:"student_bill_reference,omitempty"`
	StudentBillNotes     *string `json:"student_bill_notes,omitempty"`
	StudentBillReceiptNo *string `json:"student_bill_receipt_no,omitempty"`

	StudentBillVerifiedBy *uuid.UUID `json:"student_bill_verified_by,omitempty"`
	StudentBillVerifiedAt *time.Time `json:"student_bill_verified_at,omitempty"`

	StudentBillCreatedAt time.Time  `json:"student_bill_created_at"`
	StudentBillUpdatedAt *time.Time `json:"student_bill_updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.StudentBillModel) StudentBillResponse {
	return StudentBillResponse{
		StudentBillID:         x.StudentBillID,
		StudentBillStudentID:  x.StudentBillStudentID,
		StudentBillCategory:   x.StudentBillCategory,
		StudentBillTitle:      x.StudentBillTitle,
		StudentBillAmountIDR:  x.StudentBillAmountIDR,
		StudentBillDueDate:    x.StudentBillDueDate,
		StudentBillStatus:     x.StudentBillStatus,
		StudentBillPaidAt:     x.StudentBillPaidAt,
		StudentBillMethod:     x.StudentBillMethod,
		StudentBillReference:  x.StudentBillReference,
		StudentBillNotes:      x.StudentBillNotes,
		StudentBillReceiptNo:  x.StudentBillReceiptNo,
		StudentBillVerifiedBy: x.StudentBillVerifiedBy,
		StudentBillVerifiedAt: x.StudentBillVerifiedAt,
		StudentBillCreatedAt:  x.StudentBillCreatedAt,
		StudentBillUpdatedAt:  x.StudentBillUpdatedAt,
	}
}

func FromModels(list []m.StudentBillModel) []StudentBillResponse {
	out := make([]StudentBillResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
