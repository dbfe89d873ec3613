// file: internals/features/finance/spp/model/spp_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SppPaymentStatus string

const (
	SppPaymentPending SppPaymentStatus = "pending"
	SppPaymentPaid    SppPaymentStatus = "paid"
)

// SppPaymentModel merepresentasikan tabel `spp_payments`: satu tagihan SPP
// per (sekolah, siswa, tahun, bulan). Uniqueness periode ditegakkan lewat
// unique index — bukan pre-check aplikasi — supaya dua create yang balapan
// tidak bisa sama-sama sukses.
//
// Tabel ini sengaja TANPA soft delete: baris terhapus tidak boleh memblokir
// penagihan ulang periode yang sama lewat unique index.
type SppPaymentModel struct {
	// PK
	SppPaymentID uuid.UUID `json:"spp_payment_id" gorm:"column:spp_payment_id;type:uuid;primaryKey"`

	// Tenant + siswa (student_id FK opaque, lifecycle-nya milik modul siswa)
	SppPaymentSchoolID  uuid.UUID `json:"spp_payment_school_id"  gorm:"column:spp_payment_school_id;type:uuid;not null;index:idx_spp_payments_school_student,priority:1;uniqueIndex:uq_spp_payments_period,priority:1"`
	SppPaymentStudentID uuid.UUID `json:"spp_payment_student_id" gorm:"column:spp_payment_student_id;type:uuid;not null;index:idx_spp_payments_school_student,priority:2;uniqueIndex:uq_spp_payments_period,priority:2"`

	// Periode
	SppPaymentYear  int16 `json:"spp_payment_year"  gorm:"column:spp_payment_year;type:smallint;not null;uniqueIndex:uq_spp_payments_period,priority:3"`  // 2000..2100
	SppPaymentMonth int16 `json:"spp_payment_month" gorm:"column:spp_payment_month;type:smallint;not null;uniqueIndex:uq_spp_payments_period,priority:4"` // 1..12

	// Nominal rupiah bulat (IDR tanpa sen) — penjumlahan bebas drift float
	SppPaymentAmountIDR int64     `json:"spp_payment_amount_idr" gorm:"column:spp_payment_amount_idr;type:bigint;not null;check:spp_payment_amount_idr >= 0"`
	SppPaymentDueDate   time.Time `json:"spp_payment_due_date"   gorm:"column:spp_payment_due_date;type:date;not null"`

	// Lifecycle pembayaran (pending → paid, satu arah)
	SppPaymentStatus SppPaymentStatus `json:"spp_payment_status" gorm:"column:spp_payment_status;type:varchar(20);not null;default:pending"`
	SppPaymentPaidAt *time.Time       `json:"spp_payment_paid_at,omitempty" gorm:"column:spp_payment_paid_at"`

	// Detail pembayaran
	SppPaymentMethod    *string `json:"spp_payment_method,omitempty"     gorm:"column:spp_payment_method;type:varchar(40)"`
	SppPaymentReference *string `json:"spp_payment_reference,omitempty"  gorm:"column:spp_payment_reference;type:varchar(100)"`
	SppPaymentNotes     *string `json:"spp_payment_notes,omitempty"      gorm:"column:spp_payment_notes;type:text"`
	SppPaymentReceiptNo *string `json:"spp_payment_receipt_no,omitempty" gorm:"column:spp_payment_receipt_no;type:varchar(60)"`

	// Audit verifikasi
	SppPaymentVerifiedBy *uuid.UUID `json:"spp_payment_verified_by,omitempty" gorm:"column:spp_payment_verified_by;type:uuid"`
	SppPaymentVerifiedAt *time.Time `json:"spp_payment_verified_at,omitempty" gorm:"column:spp_payment_verified_at"`

	// Timestamps
	SppPaymentCreatedAt time.Time  `json:"spp_payment_created_at" gorm:"column:spp_payment_created_at;not null;autoCreateTime"`
	SppPaymentUpdatedAt *time.Time `json:"spp_payment_updated_at,omitempty" gorm:"column:spp_payment_updated_at;autoUpdateTime"`
}

func (m *SppPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SppPaymentID == uuid.Nil {
		m.SppPaymentID = uuid.New()
	}
	return nil
}

func (SppPaymentModel) TableName() string { return "spp_payments" }
