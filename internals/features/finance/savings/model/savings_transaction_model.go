// file: internals/features/finance/savings/model/savings_transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavingsTransactionType string

const (
	SavingsDeposit    SavingsTransactionType = "deposit"
	SavingsWithdrawal SavingsTransactionType = "withdrawal"
)

// SavingsTransactionModel merepresentasikan tabel `savings_transactions`.
// Saldo TIDAK pernah disimpan — selalu dihitung ulang dari baris transaksi
// (Σsetoran − Σpenarikan). Penarikan melebihi saldo TIDAK dicegah; itu
// kontrak modul ini, bukan bug.
type SavingsTransactionModel struct {
	// PK
	SavingsTransactionID uuid.UUID `json:"savings_transaction_id" gorm:"column:savings_transaction_id;type:uuid;primaryKey"`

	// Tenant + siswa
	SavingsTransactionSchoolID  uuid.UUID `json:"savings_transaction_school_id"  gorm:"column:savings_transaction_school_id;type:uuid;not null;index:idx_savings_transactions_school_student,priority:1"`
	SavingsTransactionStudentID uuid.UUID `json:"savings_transaction_student_id" gorm:"column:savings_transaction_student_id;type:uuid;not null;index:idx_savings_transactions_school_student,priority:2"`

	// Data transaksi
	SavingsTransactionType        SavingsTransactionType `json:"savings_transaction_type" gorm:"column:savings_transaction_type;type:varchar(20);not null"`
	SavingsTransactionAmountIDR   int64                  `json:"savings_transaction_amount_idr" gorm:"column:savings_transaction_amount_idr;type:bigint;not null;check:savings_transaction_amount_idr > 0"`
	SavingsTransactionDescription *string                `json:"savings_transaction_description,omitempty" gorm:"column:savings_transaction_description;type:text"`
	SavingsTransactionReceiptNo   *string                `json:"savings_transaction_receipt_no,omitempty"  gorm:"column:savings_transaction_receipt_no;type:varchar(60)"`

	// Timestamps
	SavingsTransactionCreatedAt time.Time  `json:"savings_transaction_created_at" gorm:"column:savings_transaction_created_at;not null;autoCreateTime"`
	SavingsTransactionUpdatedAt *time.Time `json:"savings_transaction_updated_at,omitempty" gorm:"column:savings_transaction_updated_at;autoUpdateTime"`
}

func (m *SavingsTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SavingsTransactionID == uuid.Nil {
		m.SavingsTransactionID = uuid.New()
	}
	return nil
}

func (SavingsTransactionModel) TableName() string { return "savings_transactions" }
