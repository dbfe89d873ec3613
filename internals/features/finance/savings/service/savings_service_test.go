// file: internals/features/finance/savings/service/savings_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	model "xclass_backend/internals/features/finance/savings/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SavingsTransactionModel{}))
	return db
}

func tx(schoolID, studentID uuid.UUID, typ model.SavingsTransactionType, amount int64) *model.SavingsTransactionModel {
	return &model.SavingsTransactionModel{
		SavingsTransactionSchoolID:  schoolID,
		SavingsTransactionStudentID: studentID,
		SavingsTransactionType:      typ,
		SavingsTransactionAmountIDR: amount,
	}
}

func TestGetBalance_FoldOverTransactions(t *testing.T) {
	svc := NewSavingsService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()

	_, err := svc.Record(ctx, tx(schoolID, studentID, model.SavingsDeposit, 100_000))
	require.NoError(t, err)
	_, err = svc.Record(ctx, tx(schoolID, studentID, model.SavingsWithdrawal, 30_000))
	require.NoError(t, err)

	bal, err := svc.GetBalance(ctx, schoolID, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(70_000), bal.BalanceIDR)
	assert.Equal(t, int64(100_000), bal.TotalDepositIDR)
	assert.Equal(t, int64(30_000), bal.TotalWithdrawalIDR)
}

func TestRecord_OverdraftAccepted(t *testing.T) {
	svc := NewSavingsService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()

	// Penarikan melebihi setoran tetap diterima — kontrak modul tabungan
	_, err := svc.Record(ctx, tx(schoolID, studentID, model.SavingsWithdrawal, 500_000))
	require.NoError(t, err)

	bal, err := svc.GetBalance(ctx, schoolID, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(-500_000), bal.BalanceIDR)
}

func TestUpdate_ShiftsDerivedBalance(t *testing.T) {
	svc := NewSavingsService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()

	m, err := svc.Record(ctx, tx(schoolID, studentID, model.SavingsDeposit, 100_000))
	require.NoError(t, err)

	// Mengubah baris historis menggeser saldo pada pembacaan berikutnya
	m.SavingsTransactionAmountIDR = 80_000
	require.NoError(t, svc.Update(ctx, m))

	bal, err := svc.GetBalance(ctx, schoolID, studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(80_000), bal.BalanceIDR)
}

func TestNetDeposits_SchoolWide(t *testing.T) {
	svc := NewSavingsService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	_, err := svc.Record(ctx, tx(schoolID, uuid.New(), model.SavingsDeposit, 200_000))
	require.NoError(t, err)
	_, err = svc.Record(ctx, tx(schoolID, uuid.New(), model.SavingsDeposit, 150_000))
	require.NoError(t, err)
	_, err = svc.Record(ctx, tx(schoolID, uuid.New(), model.SavingsWithdrawal, 50_000))
	require.NoError(t, err)

	// Sekolah lain tidak ikut terjumlah
	_, err = svc.Record(ctx, tx(uuid.New(), uuid.New(), model.SavingsDeposit, 999_000))
	require.NoError(t, err)

	net, err := svc.NetDeposits(ctx, schoolID)
	require.NoError(t, err)
	assert.Equal(t, int64(300_000), net)
}

func TestList_FilterByStudentAndType(t *testing.T) {
	svc := NewSavingsService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()
	_, err := svc.Record(ctx, tx(schoolID, studentID, model.SavingsDeposit, 100_000))
	require.NoError(t, err)
	_, err = svc.Record(ctx, tx(schoolID, studentID, model.SavingsWithdrawal, 20_000))
	require.NoError(t, err)
	_, err = svc.Record(ctx, tx(schoolID, uuid.New(), model.SavingsDeposit, 50_000))
	require.NoError(t, err)

	dep := model.SavingsDeposit
	list, total, err := svc.List(ctx, schoolID, ListFilter{StudentID: &studentID, Type: &dep}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, int64(100_000), list[0].SavingsTransactionAmountIDR)
}
