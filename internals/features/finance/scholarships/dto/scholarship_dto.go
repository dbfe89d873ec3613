// file: internals/features/finance/scholarships/dto/scholarship_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "xclass_backend/internals/features/finance/scholarships/model"
	helper "xclass_backend/internals/helpers"
)

/* =============== REQUESTS =============== */

type CreateScholarshipRequest struct {
	ScholarshipStudentID uuid.UUID `json:"scholarship_student_id" validate:"required"`

	ScholarshipType        string  `json:"scholarship_type"        validate:"required,oneof=academic achievement underprivileged orphan partner"`
	ScholarshipTitle       string  `json:"scholarship_title"       validate:"required,max=150"`
	ScholarshipDescription *string `json:"scholarship_description" validate:"omitempty"`

	// Keduanya opsional; boleh diisi dua-duanya (kontrak modul)
	ScholarshipAmountIDR *int64           `json:"scholarship_amount_idr" validate:"omitempty,gte=0"`
	ScholarshipPercent   *decimal.Decimal `json:"scholarship_percent"    validate:"omitempty"`

	ScholarshipStartDate string  `json:"scholarship_start_date" validate:"required,datetime=2006-01-02"`
	ScholarshipEndDate   *string `json:"scholarship_end_date"   validate:"omitempty,datetime=2006-01-02"`

	ScholarshipSponsor      *string        `json:"scholarship_sponsor"      validate:"omitempty,max=120"`
	ScholarshipRequirements datatypes.JSON `json:"scholarship_requirements" validate:"omitempty"`
	ScholarshipNotes        *string        `json:"scholarship_notes"        validate:"omitempty"`
}

func (r CreateScholarshipRequest) ToModel(schoolID uuid.UUID) *m.ScholarshipModel {
	start, _ := time.Parse("2006-01-02", r.ScholarshipStartDate)
	var end *time.Time
	if r.ScholarshipEndDate != nil {
		if t, err := time.Parse("2006-01-02", *r.ScholarshipEndDate); err == nil {
			end = &t
		}
	}
	return &m.ScholarshipModel{
		ScholarshipSchoolID:     schoolID,
		ScholarshipStudentID:    r.ScholarshipStudentID,
		ScholarshipType:         m.ScholarshipType(r.ScholarshipType),
		ScholarshipTitle:        r.ScholarshipTitle,
		ScholarshipDescription:  r.ScholarshipDescription,
		ScholarshipAmountIDR:    r.ScholarshipAmountIDR,
		ScholarshipPercent:      r.ScholarshipPercent,
		ScholarshipStartDate:    start,
		ScholarshipEndDate:      end,
		ScholarshipStatus:       m.ScholarshipActive,
		ScholarshipSponsor:      r.ScholarshipSponsor,
		ScholarshipRequirements: r.ScholarshipRequirements,
		ScholarshipNotes:        r.ScholarshipNotes,
	}
}

type UpdateScholarshipRequest struct {
	ScholarshipType        *string `json:"scholarship_type"        validate:"omitempty,oneof=academic achievement underprivileged orphan partner"`
	ScholarshipTitle       *string `json:"scholarship_title"       validate:"omitempty,max=150"`
	ScholarshipDescription *string `json:"scholarship_description" validate:"omitempty"`

	ScholarshipAmountIDR *int64           `json:"scholarship_amount_idr" validate:"omitempty,gte=0"`
	ScholarshipPercent   *decimal.Decimal `json:"scholarship_percent"    validate:"omitempty"`

	ScholarshipStartDate *string `json:"scholarship_start_date" validate:"omitempty,datetime=2006-01-02"`
	ScholarshipEndDate   *string `json:"scholarship_end_date"   validate:"omitempty,datetime=2006-01-02"`

	// Perpindahan status eksplisit (active → expired saat masa habis, dst.)
	ScholarshipStatus *string `json:"scholarship_status" validate:"omitempty,oneof=active expired cancelled"`

	ScholarshipSponsor      *string        `json:"scholarship_sponsor"      validate:"omitempty,max=120"`
	ScholarshipRequirements datatypes.JSON `json:"scholarship_requirements" validate:"omitempty"`
	ScholarshipNotes        *string        `json:"scholarship_notes"        validate:"omitempty"`
}

func (r UpdateScholarshipRequest) ApplyTo(mo *m.ScholarshipModel) {
	if r.ScholarshipType != nil {
		mo.ScholarshipType = m.ScholarshipType(*r.ScholarshipType)
	}
	if r.ScholarshipTitle != nil {
		mo.ScholarshipTitle = *r.ScholarshipTitle
	}
	if r.ScholarshipDescription != nil {
		mo.ScholarshipDescription = r.ScholarshipDescription
	}
	if r.ScholarshipAmountIDR != nil {
		mo.ScholarshipAmountIDR = r.ScholarshipAmountIDR
	}
	if r.ScholarshipPercent != nil {
		mo.ScholarshipPercent = r.ScholarshipPercent
	}
	if r.ScholarshipStartDate != nil {
		if t, err := time.Parse("2006-01-02", *r.ScholarshipStartDate); err == nil {
			mo.ScholarshipStartDate = t
		}
	}
	if r.ScholarshipEndDate != nil {
		if t, err := time.Parse("2006-01-02", *r.ScholarshipEndDate); err == nil {
			mo.ScholarshipEndDate = &t
		}
	}
	if r.ScholarshipStatus != nil {
		mo.ScholarshipStatus = m.ScholarshipStatus(*r.ScholarshipStatus)
	}
	if r.ScholarshipSponsor != nil {
		mo.ScholarshipSponsor = r.ScholarshipSponsor
	}
	if r.ScholarshipRequirements != nil {
		mo.ScholarshipRequirements = r.ScholarshipRequirements
	}
	if r.ScholarshipNotes != nil {
		mo.ScholarshipNotes = r.ScholarshipNotes
	}
}

type ListScholarshipQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	Type      *string    `query:"type"       validate:"omitempty,oneof=academic achievement underprivileged orphan partner"`
	Status    *string    `query:"status"     validate:"omitempty,oneof=active expired cancelled"`
}

/* =============== RESPONSES =============== */

type ScholarshipResponse struct {
	ScholarshipID        uuid.UUID `json:"scholarship_id"`
	ScholarshipStudentID uuid.UUID `json:"scholarship_student_id"`

	ScholarshipType        m.ScholarshipType `json:"scholarship_type"`
	ScholarshipTitle       string            `json:"scholarship_title"`
	ScholarshipDescription *string           `json:"scholarship_description,omitempty"`

	ScholarshipAmountIDR *int64           `json:"scholarship_amount_idr,omitempty"`
	ScholarshipPercent   *decimal.Decimal `json:"scholarship_percent,omitempty"`

	ScholarshipStartDate time.Time  `json:"scholarship_start_date"`
	ScholarshipEndDate   *time.Time `json:"scholarship_end_date,omitempty"`

	ScholarshipStatus m.ScholarshipStatus `json:"scholarship_status"`

	// Turunan saat baca: status active + hari ini masih dalam masa berlaku
	ScholarshipIsCurrentlyActive bool `json:"scholarship_is_currently_active"`

	ScholarshipSponsor      *string        `json:"scholarship_sponsor,omitempty"`
	ScholarshipRequirements datatypes.JSON `json:"scholarship_requirements,omitempty"`
	ScholarshipNotes        *string        `json:"scholarship_notes,omitempty"`

	ScholarshipCreatedAt time.Time  `json:"scholarship_created_at"`
	ScholarshipUpdatedAt *time.Time `json:"scholarship_updated_at,omitempty"`
}

func FromModel(x m.ScholarshipModel) ScholarshipResponse {
	return ScholarshipResponse{
		ScholarshipID:                x.ScholarshipID,
		ScholarshipStudentID:         x.ScholarshipStudentID,
		ScholarshipType:              x.ScholarshipType,
		ScholarshipTitle:             x.ScholarshipTitle,
		ScholarshipDescription:       x.ScholarshipDescription,
		ScholarshipAmountIDR:         x.ScholarshipAmountIDR,
		ScholarshipPercent:           x.ScholarshipPercent,
		ScholarshipStartDate:         x.ScholarshipStartDate,
		ScholarshipEndDate:           x.ScholarshipEndDate,
		ScholarshipStatus:            x.ScholarshipStatus,
		ScholarshipIsCurrentlyActive: x.IsCurrentlyActive(helper.Today()),
		ScholarshipSponsor:           x.ScholarshipSponsor,
		ScholarshipRequirements:      x.ScholarshipRequirements,
		ScholarshipNotes:             x.ScholarshipNotes,
		ScholarshipCreatedAt:         x.ScholarshipCreatedAt,
		ScholarshipUpdatedAt:         x.ScholarshipUpdatedAt,
	}
}

func FromModels(list []m.ScholarshipModel) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
