// file: internals/features/finance/student_bills/model/student_bill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentBillStatus string

const (
	StudentBillPending StudentBillStatus = "pending"
	StudentBillPaid    StudentBillStatus = "paid"
)

type StudentBillCategory string

const (
	BillCategoryRegistration StudentBillCategory = "registration"
	BillCategoryUniform      StudentBillCategory = "uniform"
	BillCategoryBook         StudentBillCategory = "book"
	BillCategoryActivity     StudentBillCategory = "activity"
	BillCategoryExam         StudentBillCategory = "exam"
	BillCategoryOther        StudentBillCategory = "other"
)

// StudentBillModel merepresentasikan tabel `student_bills`: tagihan ad-hoc
// per siswa. Lifecycle pembayaran sama dengan SPP, tanpa keunikan periode —
// siswa boleh punya banyak tagihan berkategori sama.
type StudentBillModel struct {
	// PK
	StudentBillID uuid.UUID `json:"student_bill_id" gorm:"column:student_bill_id;type:uuid;primaryKey"`

	// Tenant + siswa
	StudentBillSchoolID  uuid.UUID `json:"student_bill_school_id"  gorm:"column:student_bill_school_id;type:uuid;not null;index:idx_student_bills_school_student,priority:1"`
	StudentBillStudentID uuid.UUID `json:"student_bill_student_id" gorm:"column:student_bill_student_id;type:uuid;not null;index:idx_student_bills_school_student,priority:2"`

	// Info tagihan
	StudentBillCategory  StudentBillCategory `json:"student_bill_category" gorm:"column:student_bill_category;type:varchar(30);not null"`
	StudentBillTitle     string              `json:"student_bill_title"    gorm:"column:student_bill_title;type:text;not null"`
	StudentBillAmountIDR int64               `json:"student_bill_amount_idr" gorm:"column:student_bill_amount_idr;type:bigint;not null;check:student_bill_amount_idr >= 0"`
	StudentBillDueDate   time.Time           `json:"student_bill_due_date" gorm:"column:student_bill_due_date;type:date;not null"`

	// Lifecycle pembayaran (pending → paid, satu arah)
	StudentBillStatus StudentBillStatus `json:"student_bill_status" gorm:"column:student_bill_status;type:varchar(20);not null;default:pending"`
	StudentBillPaidAt *time.Time        `json:"student_bill_paid_at,omitempty" gorm:"column:student_bill_paid_at"`

	// Detail pembayaran
	StudentBillMethod    *string `json:"student_bill_method,omitempty"     gorm:"column:student_bill_method;type:varchar(40)"`
	StudentBillReference *string `json:"student_bill_reference,omitempty"  gorm:"column:student_bill_reference;type:varchar(100)"`
	StudentBillNotes     *string `json:"student_bill_notes,omitempty"      gorm:"column:student_bill_notes;type:text"`
	StudentBillReceiptNo *string `json:"student_bill_receipt_no,omitempty" gorm:"column:student_bill_receipt_no;type:varchar(60)"`

	// Audit verifikasi
	StudentBillVerifiedBy *uuid.UUID `json:"student_bill_verified_by,omitempty" gorm:"column:student_bill_verified_by;type:uuid"`
	StudentBillVerifiedAt *time.Time `json:"student_bill_verified_at,omitempty" gorm:"column:student_bill_verified_at"`

	// Timestamps
	StudentBillCreatedAt time.Time      `json:"student_bill_created_at" gorm:"column:student_bill_created_at;not null;autoCreateTime"`
	StudentBillUpdatedAt *time.Time     `json:"student_bill_updated_at,omitempty" gorm:"column:student_bill_updated_at;autoUpdateTime"`
	StudentBillDeletedAt gorm.DeletedAt `json:"student_bill_deleted_at,omitempty" gorm:"column:student_bill_deleted_at;index"`
}

func (m *StudentBillModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentBillID == uuid.Nil {
		m.StudentBillID = uuid.New()
	}
	return nil
}

func (StudentBillModel) TableName() string { return "student_bills" }
