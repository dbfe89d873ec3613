// file: internals/features/finance/spp/service/spp_payment_service_test.go
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

	model "xclass_backend/internals/features/finance/spp/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SppPaymentModel{}))
	return db
}

func pendingSpp(schoolID, studentID uuid.UUID, year, month int16, amount int64, due time.Time) *model.SppPaymentModel {
	return &model.SppPaymentModel{
		SppPaymentSchoolID:  schoolID,
		SppPaymentStudentID: studentID,
		SppPaymentYear:      year,
		SppPaymentMonth:     month,
		SppPaymentAmountIDR: amount,
		SppPaymentDueDate:   due,
		SppPaymentStatus:    model.SppPaymentPending,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestCreate_DuplicatePeriodConflict(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)

	_, err := svc.Create(ctx, pendingSpp(schoolID, studentID, 2025, 1, 150_000, due))
	require.NoError(t, err)

	// Periode sama untuk siswa sama → 409
	_, err = svc.Create(ctx, pendingSpp(schoolID, studentID, 2025, 1, 150_000, due))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// Bulan beda boleh
	_, err = svc.Create(ctx, pendingSpp(schoolID, studentID, 2025, 2, 150_000, due.AddDate(0, 1, 0)))
	assert.NoError(t, err)

	// Siswa beda, periode sama boleh
	_, err = svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 1, 150_000, due))
	assert.NoError(t, err)
}

func TestMarkPaid_OneWayTransition(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 3, 200_000, time.Now()))
	require.NoError(t, err)

	verifier := uuid.New()
	method := "transfer"
	paid, err := svc.MarkPaid(ctx, schoolID, m.SppPaymentID, PaymentDetails{
		Method:     &method,
		VerifiedBy: &verifier,
	})
	require.NoError(t, err)
	assert.Equal(t, model.SppPaymentPaid, paid.SppPaymentStatus)
	require.NotNil(t, paid.SppPaymentPaidAt)
	require.NotNil(t, paid.SppPaymentVerifiedBy)
	assert.Equal(t, verifier, *paid.SppPaymentVerifiedBy)
	assert.NotNil(t, paid.SppPaymentVerifiedAt)

	// Sudah lunas → 400, tidak ada jalur unpaid
	_, err = svc.MarkPaid(ctx, schoolID, m.SppPaymentID, PaymentDetails{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))

	_, err := svc.MarkPaid(context.Background(), uuid.New(), uuid.New(), PaymentDetails{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdatePending_RejectsPaidBill(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	m, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 4, 150_000, time.Now()))
	require.NoError(t, err)

	newAmount := int64(175_000)
	upd, err := svc.UpdatePending(ctx, schoolID, m.SppPaymentID, PendingPatch{AmountIDR: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, newAmount, upd.SppPaymentAmountIDR)

	_, err = svc.MarkPaid(ctx, schoolID, m.SppPaymentID, PaymentDetails{})
	require.NoError(t, err)

	_, err = svc.UpdatePending(ctx, schoolID, m.SppPaymentID, PendingPatch{AmountIDR: &newAmount})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestOverdue_OnlyPendingPastDue(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	past := time.Now().AddDate(0, 0, -10)
	future := time.Now().AddDate(0, 0, 10)

	_, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 1, 100_000, past))
	require.NoError(t, err)
	_, err = svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 2, 100_000, future))
	require.NoError(t, err)

	paidRow, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 3, 100_000, past))
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, schoolID, paidRow.SppPaymentID, PaymentDetails{})
	require.NoError(t, err)

	list, err := svc.Overdue(ctx, schoolID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int16(1), list[0].SppPaymentMonth)
}

func TestStatistics_CountsAndSums(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	past := time.Now().AddDate(0, 0, -5)
	future := time.Now().AddDate(0, 0, 5)

	_, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 1, 100_000, past)) // pending overdue
	require.NoError(t, err)
	_, err = svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 2, 150_000, future)) // pending
	require.NoError(t, err)
	paidRow, err := svc.Create(ctx, pendingSpp(schoolID, uuid.New(), 2025, 3, 200_000, future))
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, schoolID, paidRow.SppPaymentID, PaymentDetails{})
	require.NoError(t, err)

	// Sekolah lain tidak boleh bocor
	_, err = svc.Create(ctx, pendingSpp(uuid.New(), uuid.New(), 2025, 1, 999_000, past))
	require.NoError(t, err)

	st, err := svc.Statistics(ctx, schoolID, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), st.TotalCount)
	assert.Equal(t, int64(450_000), st.TotalAmountIDR)
	assert.Equal(t, int64(1), st.PaidCount)
	assert.Equal(t, int64(200_000), st.PaidAmountIDR)
	assert.Equal(t, int64(2), st.PendingCount)
	assert.Equal(t, int64(250_000), st.PendingAmountIDR)
	assert.Equal(t, int64(1), st.OverdueCount)
	assert.Equal(t, int64(100_000), st.OverdueAmountIDR)
}

func TestList_NewestPeriodFirst(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()
	for _, p := range []struct {
		y, m int16
	}{{2024, 12}, {2025, 2}, {2025, 1}} {
		_, err := svc.Create(ctx, pendingSpp(schoolID, studentID, p.y, p.m, 100_000, time.Now()))
		require.NoError(t, err)
	}

	list, total, err := svc.List(ctx, schoolID, ListFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 3)
	assert.Equal(t, int16(2), list[0].SppPaymentMonth)
	assert.Equal(t, int16(1), list[1].SppPaymentMonth)
	assert.Equal(t, int16(12), list[2].SppPaymentMonth)
}

func TestDelete_AllowsRebilling(t *testing.T) {
	svc := NewSppPaymentService(newTestDB(t))
	ctx := context.Background()

	schoolID := uuid.New()
	studentID := uuid.New()
	m, err := svc.Create(ctx, pendingSpp(schoolID, studentID, 2025, 5, 100_000, time.Now()))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, schoolID, m.SppPaymentID))

	// Hard delete: periode yang sama bisa ditagihkan ulang
	_, err = svc.Create(ctx, pendingSpp(schoolID, studentID, 2025, 5, 100_000, time.Now()))
	assert.NoError(t, err)

	err = svc.Delete(ctx, schoolID, m.SppPaymentID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}
