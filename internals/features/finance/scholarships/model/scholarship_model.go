// file: internals/features/finance/scholarships/model/scholarship_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScholarshipType string

const (
	ScholarshipAcademic        ScholarshipType = "academic"
	ScholarshipAchievement     ScholarshipType = "achievement"
	ScholarshipUnderprivileged ScholarshipType = "underprivileged"
	ScholarshipOrphan          ScholarshipType = "orphan"
	ScholarshipPartner         ScholarshipType = "partner"
)

type ScholarshipStatus string

const (
	ScholarshipActive    ScholarshipStatus = "active"
	ScholarshipExpired   ScholarshipStatus = "expired"
	ScholarshipCancelled ScholarshipStatus = "cancelled"
)

// ScholarshipModel merepresentasikan tabel `scholarships`. Nominal dan persen
// sama-sama opsional dan TIDAK saling eksklusif (kontrak modul — jangan
// diperketat). Status tidak pernah bergeser otomatis; tidak ada sweep
// background yang memindahkan active → expired saat end_date lewat.
type ScholarshipModel struct {
	// PK
	ScholarshipID uuid.UUID `json:"scholarship_id" gorm:"column:scholarship_id;type:uuid;primaryKey"`

	// Tenant + siswa
	ScholarshipSchoolID  uuid.UUID `json:"scholarship_school_id"  gorm:"column:scholarship_school_id;type:uuid;not null;index:idx_scholarships_school_student,priority:1"`
	ScholarshipStudentID uuid.UUID `json:"scholarship_student_id" gorm:"column:scholarship_student_id;type:uuid;not null;index:idx_scholarships_school_student,priority:2"`

	// Jenis + isi
	ScholarshipType        ScholarshipType `json:"scholarship_type"                  gorm:"column:scholarship_type;type:varchar(30);not null"`
	ScholarshipTitle       string          `json:"scholarship_title"                 gorm:"column:scholarship_title;type:varchar(150);not null"`
	ScholarshipDescription *string         `json:"scholarship_description,omitempty" gorm:"column:scholarship_description;type:text"`

	// Nilai beasiswa: nominal rupiah bulat dan/atau persen potongan
	ScholarshipAmountIDR *int64           `json:"scholarship_amount_idr,omitempty" gorm:"column:scholarship_amount_idr;type:bigint;check:scholarship_amount_idr >= 0"`
	ScholarshipPercent   *decimal.Decimal `json:"scholarship_percent,omitempty"    gorm:"column:scholarship_percent;type:numeric(5,2)"`

	// Masa berlaku
	ScholarshipStartDate time.Time  `json:"scholarship_start_date"         gorm:"column:scholarship_start_date;type:date;not null"`
	ScholarshipEndDate   *time.Time `json:"scholarship_end_date,omitempty" gorm:"column:scholarship_end_date;type:date"`

	// Lifecycle (perpindahan status selalu eksplisit oleh caller)
	ScholarshipStatus ScholarshipStatus `json:"scholarship_status" gorm:"column:scholarship_status;type:varchar(20);not null;default:active;index"`

	// Sponsor & syarat
	ScholarshipSponsor      *string        `json:"scholarship_sponsor,omitempty"      gorm:"column:scholarship_sponsor;type:varchar(120)"`
	ScholarshipRequirements datatypes.JSON `json:"scholarship_requirements,omitempty" gorm:"column:scholarship_requirements;type:jsonb"`
	ScholarshipNotes        *string        `json:"scholarship_notes,omitempty"        gorm:"column:scholarship_notes;type:text"`

	// Timestamps + soft delete
	ScholarshipCreatedAt time.Time      `json:"scholarship_created_at" gorm:"column:scholarship_created_at;not null;autoCreateTime"`
	ScholarshipUpdatedAt *time.Time     `json:"scholarship_updated_at,omitempty" gorm:"column:scholarship_updated_at;autoUpdateTime"`
	ScholarshipDeletedAt gorm.DeletedAt `json:"-" gorm:"column:scholarship_deleted_at;index"`
}

func (m *ScholarshipModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScholarshipID == uuid.Nil {
		m.ScholarshipID = uuid.New()
	}
	return nil
}

func (ScholarshipModel) TableName() string { return "scholarships" }

// IsCurrentlyActive: cek turunan saat baca — status tersimpan tidak diubah.
func (m ScholarshipModel) IsCurrentlyActive(today time.Time) bool {
	if m.ScholarshipStatus != ScholarshipActive {
		return false
	}
	if m.ScholarshipStartDate.After(today) {
		return false
	}
	if m.ScholarshipEndDate != nil && m.ScholarshipEndDate.Before(today) {
		return false
	}
	return true
}
