// file: internals/features/finance/savings/dto/savings_transaction_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "xclass_backend/internals/features/finance/savings/model"
)

/* =============== REQUESTS =============== */

type CreateSavingsTransactionRequest struct {
	SavingsTransactionStudentID uuid.UUID `json:"savings_transaction_student_id" validate:"required"`

	SavingsTransactionType      string `json:"savings_transaction_type"       validate:"required,oneof=deposit withdrawal"`
	SavingsTransactionAmountIDR int64  `json:"savings_transaction_amount_idr" validate:"required,gt=0"`

	SavingsTransactionDescription *string `json:"savings_transaction_description" validate:"omitempty"`
	SavingsTransactionReceiptNo   *string `json:"savings_transaction_receipt_no"  validate:"omitempty,max=60"`
}

func (r CreateSavingsTransactionRequest) ToModel(schoolID uuid.UUID) *m.SavingsTransactionModel {
	return &m.SavingsTransactionModel{
		SavingsTransactionSchoolID:    schoolID,
		SavingsTransactionStudentID:   r.SavingsTransactionStudentID,
		SavingsTransactionType:        m.SavingsTransactionType(r.SavingsTransactionType),
		SavingsTransactionAmountIDR:   r.SavingsTransactionAmountIDR,
		SavingsTransactionDescription: r.SavingsTransactionDescription,
		SavingsTransactionReceiptNo:   r.SavingsTransactionReceiptNo,
	}
}

// Update (partial) — mengubah baris historis menggeser saldo turunan pada
// pembacaan berikutnya; sah karena saldo tidak pernah di-cache.
type UpdateSavingsTransactionRequest struct {
	SavingsTransactionType        *string `json:"savings_transaction_type"        validate:"omitempty,oneof=deposit withdrawal"`
	SavingsTransactionAmountIDR   *int64  `json:"savings_transaction_amount_idr"  validate:"omitempty,gt=0"`
	SavingsTransactionDescription *string `json:"savings_transaction_description" validate:"omitempty"`
	SavingsTransactionReceiptNo   *string `json:"savings_transaction_receipt_no"  validate:"omitempty,max=60"`
}

func (r UpdateSavingsTransactionRequest) ApplyTo(mo *m.SavingsTransactionModel) {
	if r.SavingsTransactionType != nil {
		mo.SavingsTransactionType = m.SavingsTransactionType(*r.SavingsTransactionType)
	}
	if r.SavingsTransactionAmountIDR != nil {
		mo.SavingsTransactionAmountIDR = *r.SavingsTransactionAmountIDR
	}
	if r.SavingsTransactionDescription != nil {
		mo.SavingsTransactionDescription = r.SavingsTransactionDescription
	}
	if r.SavingsTransactionReceiptNo != nil {
		mo.SavingsTransactionReceiptNo = r.SavingsTransactionReceiptNo
	}
}

type ListSavingsTransactionQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	Type      *string    `query:"type"       validate:"omitempty,oneof=deposit withdrawal"`
}

/* =============== RESPONSES =============== */

type SavingsTransactionResponse struct {
	SavingsTransactionID        uuid.UUID `json:"savings_transaction_id"`
	SavingsTransactionStudentID uuid.UUID `json:"savings_transaction_student_id"`

	SavingsTransactionType        m.SavingsTransactionType `json:"savings_transaction_type"`
	SavingsTransactionAmountIDR   int64                    `json:"savings_transaction_amount_idr"`
	SavingsTransactionDescription *string                  `json:"savings_transaction_description,omitempty"`
	SavingsTransactionReceiptNo   *string                  `json:"savings_transaction_receipt_no,omitempty"`

	SavingsTransactionCreatedAt time.Time  `json:"savings_transaction_created_at"`
	SavingsTransactionUpdatedAt *time.Time `json:"savings_transaction_updated_at,omitempty"`
}

func FromModel(x m.SavingsTransactionModel) SavingsTransactionResponse {
	return SavingsTransactionResponse{
		SavingsTransactionID:          x.SavingsTransactionID,
		SavingsTransactionStudentID:   x.SavingsTransactionStudentID,
		SavingsTransactionType:        x.SavingsTransactionType,
		SavingsTransactionAmountIDR:   x.SavingsTransactionAmountIDR,
		SavingsTransactionDescription: x.SavingsTransactionDescription,
		SavingsTransactionReceiptNo:   x.SavingsTransactionReceiptNo,
		SavingsTransactionCreatedAt:   x.SavingsTransactionCreatedAt,
		SavingsTransactionUpdatedAt:   x.SavingsTransactionUpdatedAt,
	}
}

func FromModels(list []m.SavingsTransactionModel) []SavingsTransactionResponse {
	out := make([]SavingsTransactionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
