// file: internals/features/finance/budgets/service/budget_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	model "xclass_backend/internals/features/finance/budgets/model"
	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BudgetModel{}, &cashflowModel.CashflowEntryModel{}))
	return db
}

func monthlyBudget(schoolID uuid.UUID, cat cashflowModel.CashflowCategory, planned int64) *model.BudgetModel {
	return &model.BudgetModel{
		BudgetSchoolID:         schoolID,
		BudgetCategory:         cat,
		BudgetTitle:            "Anggaran " + string(cat),
		BudgetPlannedAmountIDR: planned,
		BudgetPeriod:           model.BudgetMonthly,
		BudgetPeriodValue:      4,
		BudgetYear:             2025,
		BudgetStartDate:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local),
		BudgetEndDate:          time.Date(2025, 4, 30, 0, 0, 0, 0, time.Local),
		BudgetStatus:           model.BudgetDraft,
	}
}

func expense(schoolID uuid.UUID, cat cashflowModel.CashflowCategory, amount int64, date time.Time) *cashflowModel.CashflowEntryModel {
	return &cashflowModel.CashflowEntryModel{
		CashflowEntrySchoolID:        schoolID,
		CashflowEntryType:            cashflowModel.CashflowExpense,
		CashflowEntryCategory:        cat,
		CashflowEntryTitle:           string(cat),
		CashflowEntryAmountIDR:       amount,
		CashflowEntryTransactionDate: date,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestCreate_StartsAsDraftWithZeroActual(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))

	m, err := svc.Create(context.Background(), monthlyBudget(uuid.New(), cashflowModel.CategorySupply, 1_000_000))
	require.NoError(t, err)
	assert.Equal(t, model.BudgetDraft, m.BudgetStatus)
	assert.Equal(t, int64(0), m.BudgetActualAmountIDR)
	assert.Nil(t, m.BudgetApprovedBy)
}

func TestApprove_DraftOnly(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, monthlyBudget(schoolID, cashflowModel.CategorySalary, 5_000_000))
	require.NoError(t, err)

	approver := uuid.New()
	approved, err := svc.Approve(ctx, schoolID, m.BudgetID, approver)
	require.NoError(t, err)
	assert.Equal(t, model.BudgetApproved, approved.BudgetStatus)
	require.NotNil(t, approved.BudgetApprovedBy)
	assert.Equal(t, approver, *approved.BudgetApprovedBy)
	assert.NotNil(t, approved.BudgetApprovedAt)

	// Sudah approved → tidak bisa disetujui lagi
	_, err = svc.Approve(ctx, schoolID, m.BudgetID, approver)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestClose_ApprovedOnly(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, monthlyBudget(schoolID, cashflowModel.CategoryUtility, 800_000))
	require.NoError(t, err)

	// Draft langsung ditutup → 400
	_, err = svc.Close(ctx, schoolID, m.BudgetID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = svc.Approve(ctx, schoolID, m.BudgetID, uuid.New())
	require.NoError(t, err)

	closed, err := svc.Close(ctx, schoolID, m.BudgetID)
	require.NoError(t, err)
	assert.Equal(t, model.BudgetClosed, closed.BudgetStatus)
}

func TestUpdateDraft_RejectsApproved(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, monthlyBudget(schoolID, cashflowModel.CategoryActivity, 600_000))
	require.NoError(t, err)

	m.BudgetPlannedAmountIDR = 700_000
	require.NoError(t, svc.UpdateDraft(ctx, m))

	_, err = svc.Approve(ctx, schoolID, m.BudgetID, uuid.New())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, schoolID, m.BudgetID)
	require.NoError(t, err)
	got.BudgetPlannedAmountIDR = 900_000
	err = svc.UpdateDraft(ctx, got)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestRecomputeActual_PullBasedFromCashflow(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, monthlyBudget(schoolID, cashflowModel.CategorySupply, 1_000_000))
	require.NoError(t, err)

	// Pengeluaran dalam window + kategori cocok
	require.NoError(t, db.Create(expense(schoolID, cashflowModel.CategorySupply, 250_000,
		time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local))).Error)
	require.NoError(t, db.Create(expense(schoolID, cashflowModel.CategorySupply, 150_000,
		time.Date(2025, 4, 20, 0, 0, 0, 0, time.Local))).Error)

	// Kategori lain & di luar window — tidak ikut
	require.NoError(t, db.Create(expense(schoolID, cashflowModel.CategorySalary, 5_000_000,
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.Local))).Error)
	require.NoError(t, db.Create(expense(schoolID, cashflowModel.CategorySupply, 90_000,
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.Local))).Error)

	// Realisasi basi sampai recompute dipanggil
	before, err := svc.GetByID(ctx, schoolID, m.BudgetID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.BudgetActualAmountIDR)

	after, err := svc.RecomputeActual(ctx, schoolID, m.BudgetID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), after.BudgetActualAmountIDR)
}

func TestGetSummary_UtilizationAndZeroPlanned(t *testing.T) {
	db := newTestDB(t)
	svc := NewBudgetService(db)
	ctx := context.Background()

	schoolID := uuid.New()

	supply := monthlyBudget(schoolID, cashflowModel.CategorySupply, 1_000_000)
	_, err := svc.Create(ctx, supply)
	require.NoError(t, err)
	supply.BudgetActualAmountIDR = 400_000
	require.NoError(t, db.Save(supply).Error)

	salary := monthlyBudget(schoolID, cashflowModel.CategorySalary, 3_000_000)
	_, err = svc.Create(ctx, salary)
	require.NoError(t, err)
	salary.BudgetActualAmountIDR = 600_000
	require.NoError(t, db.Save(salary).Error)

	sum, err := svc.GetSummary(ctx, schoolID, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(4_000_000), sum.TotalPlannedIDR)
	assert.Equal(t, int64(1_000_000), sum.TotalActualIDR)
	assert.Equal(t, int64(3_000_000), sum.TotalRemainingIDR)
	assert.True(t, sum.UtilizationPct.Equal(decimal.NewFromFloat(25)),
		"utilisasi = %s", sum.UtilizationPct)
	assert.Len(t, sum.Categories, 2)
}

func TestGetSummary_PlannedZeroMeansZeroUtilization(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m := monthlyBudget(schoolID, cashflowModel.CategoryOtherExpense, 0)
	_, err := svc.Create(ctx, m)
	require.NoError(t, err)

	sum, err := svc.GetSummary(ctx, schoolID, nil)
	require.NoError(t, err)
	assert.True(t, sum.UtilizationPct.IsZero())
}

func TestCreate_RejectsInvertedDates(t *testing.T) {
	svc := NewBudgetService(newTestDB(t))

	m := monthlyBudget(uuid.New(), cashflowModel.CategorySupply, 100_000)
	m.BudgetStartDate = time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)
	m.BudgetEndDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	_, err := svc.Create(context.Background(), m)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}
