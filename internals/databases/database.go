package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"xclass_backend/internals/configs"
	budgetModel "xclass_backend/internals/features/finance/budgets/model"
	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
	savingsModel "xclass_backend/internals/features/finance/savings/model"
	scholarshipModel "xclass_backend/internals/features/finance/scholarships/model"
	sppModel "xclass_backend/internals/features/finance/spp/model"
	billModel "xclass_backend/internals/features/finance/student_bills/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=xclass&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateFinance membuat/menyesuaikan seluruh tabel modul finance.
// Unique index (school, student, year, month) di spp_payments ikut terpasang
// dari tag model — dedup periode ditegakkan di storage, bukan pre-check.
func MigrateFinance(db *gorm.DB) error {
	return db.AutoMigrate(
		&sppModel.SppPaymentModel{},
		&billModel.StudentBillModel{},
		&savingsModel.SavingsTransactionModel{},
		&cashflowModel.CashflowEntryModel{},
		&scholarshipModel.ScholarshipModel{},
		&budgetModel.BudgetModel{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
