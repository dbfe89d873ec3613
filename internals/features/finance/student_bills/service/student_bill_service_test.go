// file: internals/features/finance/student_bills/service/student_bill_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	model "xclass_backend/internals/features/finance/student_bills/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.StudentBillModel{}))
	return db
}

func newBill(schoolID, studentID uuid.UUID, cat model.StudentBillCategory, amount int64, due time.Time) *model.StudentBillModel {
	return &model.StudentBillModel{
		StudentBillSchoolID:  schoolID,
		StudentBillStudentID: studentID,
		StudentBillCategory:  cat,
		StudentBillTitle:     "Tagihan " + string(cat),
		StudentBillAmountIDR: amount,
		StudentBillDueDate:   due,
		StudentBillStatus:    model.StudentBillPending,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestCreate_NoPeriodUniqueness(t *testing.T) {
	svc := NewStudentBillService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()

	// Kategori sama berkali-kali untuk siswa sama itu sah — beda dengan SPP
	_, err := svc.Create(ctx, newBill(schoolID, studentID, model.BillCategoryUniform, 250_000, time.Now()))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newBill(schoolID, studentID, model.BillCategoryUniform, 250_000, time.Now()))
	require.NoError(t, err)

	_, total, err := svc.List(ctx, schoolID, ListFilter{StudentID: &studentID}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestMarkPaid_SameTaxonomyAsSpp(t *testing.T) {
	svc := NewStudentBillService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryBook, 120_000, time.Now()))
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, schoolID, m.StudentBillID, PaymentDetails{})
	require.NoError(t, err)
	assert.Equal(t, model.StudentBillPaid, paid.StudentBillStatus)
	assert.NotNil(t, paid.StudentBillPaidAt)

	_, err = svc.MarkPaid(ctx, schoolID, m.StudentBillID, PaymentDetails{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = svc.MarkPaid(ctx, schoolID, uuid.New(), PaymentDetails{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdatePending_RejectsPaid(t *testing.T) {
	svc := NewStudentBillService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryExam, 75_000, time.Now()))
	require.NoError(t, err)

	title := "Ujian semester ganjil"
	upd, err := svc.UpdatePending(ctx, schoolID, m.StudentBillID, PendingPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, upd.StudentBillTitle)

	_, err = svc.MarkPaid(ctx, schoolID, m.StudentBillID, PaymentDetails{})
	require.NoError(t, err)

	_, err = svc.UpdatePending(ctx, schoolID, m.StudentBillID, PendingPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestOverdue_PendingPastDueOnly(t *testing.T) {
	svc := NewStudentBillService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	_, err := svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryActivity, 50_000, time.Now().AddDate(0, 0, -3)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryActivity, 50_000, time.Now().AddDate(0, 0, 3)))
	require.NoError(t, err)

	list, err := svc.Overdue(ctx, schoolID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStatisticsByCategory(t *testing.T) {
	svc := NewStudentBillService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	_, err := svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryUniform, 250_000, time.Now()))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryUniform, 300_000, time.Now()))
	require.NoError(t, err)

	bookBill, err := svc.Create(ctx, newBill(schoolID, uuid.New(), model.BillCategoryBook, 120_000, time.Now()))
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, schoolID, bookBill.StudentBillID, PaymentDetails{})
	require.NoError(t, err)

	stats, err := svc.StatisticsByCategory(ctx, schoolID)
	require.NoError(t, err)

	byCat := map[model.StudentBillCategory]CategoryStat{}
	for _, st := range stats {
		byCat[st.Category] = st
	}

	uniform := byCat[model.BillCategoryUniform]
	assert.Equal(t, int64(2), uniform.Count)
	assert.Equal(t, int64(550_000), uniform.AmountIDR)
	assert.Equal(t, int64(0), uniform.PaidAmount)

	book := byCat[model.BillCategoryBook]
	assert.Equal(t, int64(1), book.Count)
	assert.Equal(t, int64(120_000), book.AmountIDR)
	assert.Equal(t, int64(120_000), book.PaidAmount)
}
