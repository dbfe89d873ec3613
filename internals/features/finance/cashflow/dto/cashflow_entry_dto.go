// file: internals/features/finance/cashflow/dto/cashflow_entry_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "xclass_backend/internals/features/finance/cashflow/model"
)

/* =============== REQUESTS =============== */

type CreateCashflowEntryRequest struct {
	CashflowEntryType     string `json:"cashflow_entry_type"     validate:"required,oneof=income expense"`
	CashflowEntryCategory string `json:"cashflow_entry_category" validate:"required,oneof=donation grant event unit_business other_income salary utility maintenance supply activity other_expense"`

	CashflowEntryTitle       string  `json:"cashflow_entry_title"       validate:"required,max=150"`
	CashflowEntryDescription *string `json:"cashflow_entry_description" validate:"omitempty"`

	CashflowEntryAmountIDR       int64  `json:"cashflow_entry_amount_idr"       validate:"required,gt=0"`
	CashflowEntryTransactionDate string `json:"cashflow_entry_transaction_date" validate:"required,datetime=2006-01-02"`

	CashflowEntryReferenceNo *string `json:"cashflow_entry_reference_no" validate:"omitempty,max=60"`
	CashflowEntryVendor      *string `json:"cashflow_entry_vendor"       validate:"omitempty,max=120"`
	CashflowEntryRecipient   *string `json:"cashflow_entry_recipient"    validate:"omitempty,max=120"`
	CashflowEntryNotes       *string `json:"cashflow_entry_notes"        validate:"omitempty"`
}

func (r CreateCashflowEntryRequest) ToModel(schoolID uuid.UUID) *m.CashflowEntryModel {
	txDate, _ := time.Parse("2006-01-02", r.CashflowEntryTransactionDate)
	return &m.CashflowEntryModel{
		CashflowEntrySchoolID:        schoolID,
		CashflowEntryType:            m.CashflowEntryType(r.CashflowEntryType),
		CashflowEntryCategory:        m.CashflowCategory(r.CashflowEntryCategory),
		CashflowEntryTitle:           r.CashflowEntryTitle,
		CashflowEntryDescription:     r.CashflowEntryDescription,
		CashflowEntryAmountIDR:       r.CashflowEntryAmountIDR,
		CashflowEntryTransactionDate: txDate,
		CashflowEntryReferenceNo:     r.CashflowEntryReferenceNo,
		CashflowEntryVendor:          r.CashflowEntryVendor,
		CashflowEntryRecipient:       r.CashflowEntryRecipient,
		CashflowEntryNotes:           r.CashflowEntryNotes,
	}
}

type UpdateCashflowEntryRequest struct {
	CashflowEntryType     *string `json:"cashflow_entry_type"     validate:"omitempty,oneof=income expense"`
	CashflowEntryCategory *string `json:"cashflow_entry_category" validate:"omitempty,oneof=donation grant event unit_business other_income salary utility maintenance supply activity other_expense"`

	CashflowEntryTitle       *string `json:"cashflow_entry_title"       validate:"omitempty,max=150"`
	CashflowEntryDescription *string `json:"cashflow_entry_description" validate:"omitempty"`

	CashflowEntryAmountIDR       *int64  `json:"cashflow_entry_amount_idr"       validate:"omitempty,gt=0"`
	CashflowEntryTransactionDate *string `json:"cashflow_entry_transaction_date" validate:"omitempty,datetime=2006-01-02"`

	CashflowEntryReferenceNo *string `json:"cashflow_entry_reference_no" validate:"omitempty,max=60"`
	CashflowEntryVendor      *string `json:"cashflow_entry_vendor"       validate:"omitempty,max=120"`
	CashflowEntryRecipient   *string `json:"cashflow_entry_recipient"    validate:"omitempty,max=120"`
	CashflowEntryNotes       *string `json:"cashflow_entry_notes"        validate:"omitempty"`
}

func (r UpdateCashflowEntryRequest) ApplyTo(mo *m.CashflowEntryModel) {
	if r.CashflowEntryType != nil {
		mo.CashflowEntryType = m.CashflowEntryType(*r.CashflowEntryType)
	}
	if r.CashflowEntryCategory != nil {
		mo.CashflowEntryCategory = m.CashflowCategory(*r.CashflowEntryCategory)
	}
	if r.CashflowEntryTitle != nil {
		mo.CashflowEntryTitle = *r.CashflowEntryTitle
	}
	if r.CashflowEntryDescription != nil {
		mo.CashflowEntryDescription = r.CashflowEntryDescription
	}
	if r.CashflowEntryAmountIDR != nil {
		mo.CashflowEntryAmountIDR = *r.CashflowEntryAmountIDR
	}
	if r.CashflowEntryTransactionDate != nil {
		if t, err := time.Parse("2006-01-02", *r.CashflowEntryTransactionDate); err == nil {
			mo.CashflowEntryTransactionDate = t
		}
	}
	if r.CashflowEntryReferenceNo != nil {
		mo.CashflowEntryReferenceNo = r.CashflowEntryReferenceNo
	}
	if r.CashflowEntryVendor != nil {
		mo.CashflowEntryVendor = r.CashflowEntryVendor
	}
	if r.CashflowEntryRecipient != nil {
		mo.CashflowEntryRecipient = r.CashflowEntryRecipient
	}
	if r.CashflowEntryNotes != nil {
		mo.CashflowEntryNotes = r.CashflowEntryNotes
	}
}

type ListCashflowEntryQuery struct {
	Type     *string `query:"type"     validate:"omitempty,oneof=income expense"`
	Category *string `query:"category" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type CashflowEntryResponse struct {
	CashflowEntryID uuid.UUID `json:"cashflow_entry_id"`

	CashflowEntryType     m.CashflowEntryType `json:"cashflow_entry_type"`
	CashflowEntryCategory m.CashflowCategory  `json:"cashflow_entry_category"`

	CashflowEntryTitle       string  `json:"cashflow_entry_title"`
	CashflowEntryDescription *string `json:"cashflow_entry_description,omitempty"`

	CashflowEntryAmountIDR       int64     `json:"cashflow_entry_amount_idr"`
	CashflowEntryTransactionDate time.Time `json:"cashflow_entry_transaction_date"`

	CashflowEntryReferenceNo *string `json:"cashflow_entry_reference_no,omitempty"`
	CashflowEntryVendor      *string `json:"cashflow_entry_vendor,omitempty"`
	CashflowEntryRecipient   *string `json:"cashflow_entry_recipient,omitempty"`
	CashflowEntryNotes       *string `json:"cashflow_entry_notes,omitempty"`

	CashflowEntryCreatedAt time.Time  `json:"cashflow_entry_created_at"`
	CashflowEntryUpdatedAt *time.Time `json:"cashflow_entry_updated_at,omitempty"`
}

func FromModel(x m.CashflowEntryModel) CashflowEntryResponse {
	return CashflowEntryResponse{
		CashflowEntryID:              x.CashflowEntryID,
		CashflowEntryType:            x.CashflowEntryType,
		CashflowEntryCategory:        x.CashflowEntryCategory,
		CashflowEntryTitle:           x.CashflowEntryTitle,
		CashflowEntryDescription:     x.CashflowEntryDescription,
		CashflowEntryAmountIDR:       x.CashflowEntryAmountIDR,
		CashflowEntryTransactionDate: x.CashflowEntryTransactionDate,
		CashflowEntryReferenceNo:     x.CashflowEntryReferenceNo,
		CashflowEntryVendor:          x.CashflowEntryVendor,
		CashflowEntryRecipient:       x.CashflowEntryRecipient,
		CashflowEntryNotes:           x.CashflowEntryNotes,
		CashflowEntryCreatedAt:       x.CashflowEntryCreatedAt,
		CashflowEntryUpdatedAt:       x.CashflowEntryUpdatedAt,
	}
}

func FromModels(list []m.CashflowEntryModel) []CashflowEntryResponse {
	out := make([]CashflowEntryResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
