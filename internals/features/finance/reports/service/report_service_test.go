// file: internals/features/finance/reports/service/report_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
	savingsModel "xclass_backend/internals/features/finance/savings/model"
	sppModel "xclass_backend/internals/features/finance/spp/model"
	billModel "xclass_backend/internals/features/finance/student_bills/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&sppModel.SppPaymentModel{},
		&billModel.StudentBillModel{},
		&savingsModel.SavingsTransactionModel{},
		&cashflowModel.CashflowEntryModel{},
	))
	return db
}

func seedPaidSpp(t *testing.T, db *gorm.DB, schoolID uuid.UUID, month int16, amount int64, paidAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&sppModel.SppPaymentModel{
		SppPaymentSchoolID:  schoolID,
		SppPaymentStudentID: uuid.New(),
		SppPaymentYear:      int16(paidAt.Year()),
		SppPaymentMonth:     month,
		SppPaymentAmountIDR: amount,
		SppPaymentDueDate:   paidAt,
		SppPaymentStatus:    sppModel.SppPaymentPaid,
		SppPaymentPaidAt:    &paidAt,
	}).Error)
}

func seedPendingSpp(t *testing.T, db *gorm.DB, schoolID uuid.UUID, month int16, amount int64) {
	t.Helper()
	require.NoError(t, db.Create(&sppModel.SppPaymentModel{
		SppPaymentSchoolID:  schoolID,
		SppPaymentStudentID: uuid.New(),
		SppPaymentYear:      2025,
		SppPaymentMonth:     month,
		SppPaymentAmountIDR: amount,
		SppPaymentDueDate:   time.Now(),
		SppPaymentStatus:    sppModel.SppPaymentPending,
	}).Error)
}

func seedBill(t *testing.T, db *gorm.DB, schoolID uuid.UUID, status billModel.StudentBillStatus, amount int64) {
	t.Helper()
	require.NoError(t, db.Create(&billModel.StudentBillModel{
		StudentBillSchoolID:  schoolID,
		StudentBillStudentID: uuid.New(),
		StudentBillCategory:  billModel.BillCategoryOther,
		StudentBillTitle:     "Tagihan",
		StudentBillAmountIDR: amount,
		StudentBillDueDate:   time.Now(),
		StudentBillStatus:    status,
	}).Error)
}

func seedSavings(t *testing.T, db *gorm.DB, schoolID uuid.UUID, typ savingsModel.SavingsTransactionType, amount int64) {
	t.Helper()
	require.NoError(t, db.Create(&savingsModel.SavingsTransactionModel{
		SavingsTransactionSchoolID:  schoolID,
		SavingsTransactionStudentID: uuid.New(),
		SavingsTransactionType:      typ,
		SavingsTransactionAmountIDR: amount,
	}).Error)
}

func seedCashflow(t *testing.T, db *gorm.DB, schoolID uuid.UUID, typ cashflowModel.CashflowEntryType, cat cashflowModel.CashflowCategory, amount int64, date time.Time) {
	t.Helper()
	// Tanggal transaksi polos (00:00) — kolomnya bertipe date
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	require.NoError(t, db.Create(&cashflowModel.CashflowEntryModel{
		CashflowEntrySchoolID:        schoolID,
		CashflowEntryType:            typ,
		CashflowEntryCategory:        cat,
		CashflowEntryTitle:           string(cat),
		CashflowEntryAmountIDR:       amount,
		CashflowEntryTransactionDate: date,
	}).Error)
}

func TestGetDashboard_BlendedRevenue(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	now := time.Now()

	seedPaidSpp(t, db, schoolID, 1, 100_000, now)
	seedPendingSpp(t, db, schoolID, 2, 150_000)

	seedBill(t, db, schoolID, billModel.StudentBillPaid, 50_000)
	seedBill(t, db, schoolID, billModel.StudentBillPending, 80_000)

	seedSavings(t, db, schoolID, savingsModel.SavingsDeposit, 30_000)
	seedSavings(t, db, schoolID, savingsModel.SavingsWithdrawal, 10_000)

	seedCashflow(t, db, schoolID, cashflowModel.CashflowIncome, cashflowModel.CategoryDonation, 200_000, now)
	seedCashflow(t, db, schoolID, cashflowModel.CashflowExpense, cashflowModel.CategoryUtility, 80_000, now)

	out, err := svc.GetDashboard(ctx, schoolID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Spp.PaidCount)
	assert.Equal(t, int64(100_000), out.Spp.PaidAmountIDR)
	assert.Equal(t, int64(1), out.Spp.PendingCount)
	assert.Equal(t, int64(150_000), out.Spp.PendingAmountIDR)

	assert.Equal(t, int64(50_000), out.StudentBills.PaidAmountIDR)
	assert.Equal(t, int64(80_000), out.StudentBills.PendingAmountIDR)

	assert.Equal(t, int64(20_000), out.SavingsNetDepositIDR)
	assert.Equal(t, int64(200_000), out.Cashflow.TotalIncomeIDR)
	assert.Equal(t, int64(80_000), out.Cashflow.TotalExpenseIDR)

	// Pendapatan campuran: SPP lunas + tagihan lunas + pemasukan buku kas
	assert.Equal(t, int64(350_000), out.RevenueIDR)
	assert.Equal(t, int64(80_000), out.ExpenseIDR)
	assert.Equal(t, int64(270_000), out.NetIDR)
}

func TestGetMonthlyTrends_SppPaidCountsInPaidMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	now := time.Now()
	// Pertengahan bulan lalu — aman dari normalisasi tanggal 29-31
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 14)

	// Window trend pakai paid_at, bukan periode tagihan
	seedPaidSpp(t, db, schoolID, 1, 100_000, now)
	seedPaidSpp(t, db, schoolID, 2, 120_000, lastMonth)

	seedCashflow(t, db, schoolID, cashflowModel.CashflowIncome, cashflowModel.CategoryGrant, 500_000, now)
	seedCashflow(t, db, schoolID, cashflowModel.CashflowExpense, cashflowModel.CategorySalary, 200_000, now)

	out, err := svc.GetMonthlyTrends(ctx, schoolID, 3)
	require.NoError(t, err)
	require.Len(t, out.Months, 3)

	cur := out.Months[2]
	assert.Equal(t, fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month())), cur.Month)
	assert.Equal(t, int64(600_000), cur.IncomeIDR) // 500k kas + 100k SPP lunas bulan ini
	assert.Equal(t, int64(200_000), cur.ExpenseIDR)
	assert.Equal(t, int64(400_000), cur.BalanceIDR)

	prev := out.Months[1]
	assert.Equal(t, int64(120_000), prev.IncomeIDR)
	assert.Equal(t, int64(0), prev.ExpenseIDR)

	oldest := out.Months[0]
	assert.Equal(t, int64(0), oldest.IncomeIDR)
}

func TestGetCategoryBreakdown(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	now := time.Now()

	seedCashflow(t, db, schoolID, cashflowModel.CashflowIncome, cashflowModel.CategoryDonation, 300_000, now)
	seedCashflow(t, db, schoolID, cashflowModel.CashflowIncome, cashflowModel.CategoryEvent, 150_000, now)
	seedCashflow(t, db, schoolID, cashflowModel.CashflowExpense, cashflowModel.CategorySupply, 90_000, now)

	out, err := svc.GetCategoryBreakdown(ctx, schoolID, nil, nil)
	require.NoError(t, err)

	assert.Len(t, out.Income, 2)
	require.Len(t, out.Expense, 1)
	assert.Equal(t, cashflowModel.CategorySupply, out.Expense[0].Category)
	assert.Equal(t, int64(90_000), out.Expense[0].AmountIDR)
}

func TestGetPaymentStatus_GroupedWithCountAndAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	now := time.Now()

	seedPaidSpp(t, db, schoolID, 1, 100_000, now)
	seedPaidSpp(t, db, schoolID, 2, 100_000, now)
	seedPendingSpp(t, db, schoolID, 3, 150_000)

	seedBill(t, db, schoolID, billModel.StudentBillPending, 80_000)

	out, err := svc.GetPaymentStatus(ctx, schoolID)
	require.NoError(t, err)

	spp := map[string][2]int64{}
	for _, st := range out.Spp {
		spp[st.Status] = [2]int64{st.Count, st.AmountIDR}
	}
	assert.Equal(t, [2]int64{2, 200_000}, spp["paid"])
	assert.Equal(t, [2]int64{1, 150_000}, spp["pending"])

	require.Len(t, out.StudentBills, 1)
	assert.Equal(t, "pending", out.StudentBills[0].Status)
	assert.Equal(t, int64(1), out.StudentBills[0].Count)
	assert.Equal(t, int64(80_000), out.StudentBills[0].AmountIDR)
}
