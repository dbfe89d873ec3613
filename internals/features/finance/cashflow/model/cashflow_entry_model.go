// file: internals/features/finance/cashflow/model/cashflow_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CashflowEntryType string

const (
	CashflowIncome  CashflowEntryType = "income"
	CashflowExpense CashflowEntryType = "expense"
)

type CashflowCategory string

// Kategori pemasukan
const (
	CategoryDonation     CashflowCategory = "donation"
	CategoryGrant        CashflowCategory = "grant"
	CategoryEvent        CashflowCategory = "event"
	CategoryUnitBusiness CashflowCategory = "unit_business"
	CategoryOtherIncome  CashflowCategory = "other_income"
)

// Kategori pengeluaran (dipakai juga oleh modul anggaran)
const (
	CategorySalary       CashflowCategory = "salary"
	CategoryUtility      CashflowCategory = "utility"
	CategoryMaintenance  CashflowCategory = "maintenance"
	CategorySupply       CashflowCategory = "supply"
	CategoryActivity     CashflowCategory = "activity"
	CategoryOtherExpense CashflowCategory = "other_expense"
)

// CashflowEntryModel merepresentasikan tabel `cashflow_entries`: buku kas umum
// sekolah (pemasukan & pengeluaran non-tagihan). Scope-nya institusi, bukan
// per siswa.
type CashflowEntryModel struct {
	// PK
	CashflowEntryID uuid.UUID `json:"cashflow_entry_id" gorm:"column:cashflow_entry_id;type:uuid;primaryKey"`

	// Tenant
	CashflowEntrySchoolID uuid.UUID `json:"cashflow_entry_school_id" gorm:"column:cashflow_entry_school_id;type:uuid;not null;index:idx_cashflow_entries_school_date,priority:1"`

	// Jenis + kategori
	CashflowEntryType     CashflowEntryType `json:"cashflow_entry_type"     gorm:"column:cashflow_entry_type;type:varchar(10);not null;index"`
	CashflowEntryCategory CashflowCategory  `json:"cashflow_entry_category" gorm:"column:cashflow_entry_category;type:varchar(30);not null;index"`

	// Isi
	CashflowEntryTitle       string  `json:"cashflow_entry_title"                 gorm:"column:cashflow_entry_title;type:varchar(150);not null"`
	CashflowEntryDescription *string `json:"cashflow_entry_description,omitempty" gorm:"column:cashflow_entry_description;type:text"`

	// Nominal rupiah bulat
	CashflowEntryAmountIDR int64 `json:"cashflow_entry_amount_idr" gorm:"column:cashflow_entry_amount_idr;type:bigint;not null;check:cashflow_entry_amount_idr > 0"`

	// Tanggal transaksi (bukan tanggal input)
	CashflowEntryTransactionDate time.Time `json:"cashflow_entry_transaction_date" gorm:"column:cashflow_entry_transaction_date;type:date;not null;index:idx_cashflow_entries_school_date,priority:2"`

	// Pihak & referensi
	CashflowEntryReferenceNo *string `json:"cashflow_entry_reference_no,omitempty" gorm:"column:cashflow_entry_reference_no;type:varchar(60)"`
	CashflowEntryVendor      *string `json:"cashflow_entry_vendor,omitempty"       gorm:"column:cashflow_entry_vendor;type:varchar(120)"`
	CashflowEntryRecipient   *string `json:"cashflow_entry_recipient,omitempty"    gorm:"column:cashflow_entry_recipient;type:varchar(120)"`
	CashflowEntryNotes       *string `json:"cashflow_entry_notes,omitempty"        gorm:"column:cashflow_entry_notes;type:text"`

	// Timestamps + soft delete
	CashflowEntryCreatedAt time.Time      `json:"cashflow_entry_created_at" gorm:"column:cashflow_entry_created_at;not null;autoCreateTime"`
	CashflowEntryUpdatedAt *time.Time     `json:"cashflow_entry_updated_at,omitempty" gorm:"column:cashflow_entry_updated_at;autoUpdateTime"`
	CashflowEntryDeletedAt gorm.DeletedAt `json:"-" gorm:"column:cashflow_entry_deleted_at;index"`
}

func (m *CashflowEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CashflowEntryID == uuid.Nil {
		m.CashflowEntryID = uuid.New()
	}
	return nil
}

func (CashflowEntryModel) TableName() string { return "cashflow_entries" }
