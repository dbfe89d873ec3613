// file: internals/features/finance/reminders/service/reminder_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	sppModel "xclass_backend/internals/features/finance/spp/model"
	billModel "xclass_backend/internals/features/finance/student_bills/model"
	helper "xclass_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sppModel.SppPaymentModel{}, &billModel.StudentBillModel{}))
	return db
}

func seedSpp(t *testing.T, db *gorm.DB, schoolID uuid.UUID, status sppModel.SppPaymentStatus, month int16, amount int64, due time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&sppModel.SppPaymentModel{
		SppPaymentSchoolID:  schoolID,
		SppPaymentStudentID: uuid.New(),
		SppPaymentYear:      2025,
		SppPaymentMonth:     month,
		SppPaymentAmountIDR: amount,
		SppPaymentDueDate:   due,
		SppPaymentStatus:    status,
	}).Error)
}

func seedBill(t *testing.T, db *gorm.DB, schoolID uuid.UUID, status billModel.StudentBillStatus, title string, amount int64, due time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&billModel.StudentBillModel{
		StudentBillSchoolID:  schoolID,
		StudentBillStudentID: uuid.New(),
		StudentBillCategory:  billModel.BillCategoryOther,
		StudentBillTitle:     title,
		StudentBillAmountIDR: amount,
		StudentBillDueDate:   due,
		StudentBillStatus:    status,
	}).Error)
}

func TestGetReminders_PartitionsUpcomingAndOverdue(t *testing.T) {
	db := newTestDB(t)
	svc := NewReminderService(db)
	ctx := context.Background()

	schoolID := uuid.New()
	today := helper.Today()

	seedSpp(t, db, schoolID, sppModel.SppPaymentPending, 1, 100_000, today.AddDate(0, 0, 3))   // upcoming
	seedSpp(t, db, schoolID, sppModel.SppPaymentPending, 2, 150_000, today.AddDate(0, 0, -2))  // overdue
	seedBill(t, db, schoolID, billModel.StudentBillPending, "Seragam", 250_000, today)         // upcoming (hari ini)
	seedBill(t, db, schoolID, billModel.StudentBillPending, "Buku", 75_000, today.AddDate(0, 0, -5)) // overdue

	// Lunas dan di luar window tidak ikut
	seedSpp(t, db, schoolID, sppModel.SppPaymentPaid, 3, 999_000, today.AddDate(0, 0, -1))
	seedBill(t, db, schoolID, billModel.StudentBillPending, "Study tour", 500_000, today.AddDate(0, 0, 30))

	out, err := svc.GetReminders(ctx, schoolID, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, out.DaysAhead)

	require.Len(t, out.Upcoming, 2)
	assert.Equal(t, 2, out.UpcomingSummary.Count)
	assert.Equal(t, int64(350_000), out.UpcomingSummary.TotalAmountIDR)

	require.Len(t, out.Overdue, 2)
	assert.Equal(t, 2, out.OverdueSummary.Count)
	assert.Equal(t, int64(225_000), out.OverdueSummary.TotalAmountIDR)

	// Terurut due date naik
	assert.True(t, !out.Upcoming[0].DueDate.After(out.Upcoming[1].DueDate))
	assert.True(t, !out.Overdue[0].DueDate.After(out.Overdue[1].DueDate))

	// Anotasi bertanda: negatif untuk overdue
	for _, it := range out.Upcoming {
		assert.False(t, it.IsOverdue)
		assert.GreaterOrEqual(t, it.DaysUntilDue, 0)
	}
	for _, it := range out.Overdue {
		assert.True(t, it.IsOverdue)
		assert.Less(t, it.DaysUntilDue, 0)
	}
}

func TestGetReminders_BoundaryDayIncluded(t *testing.T) {
	db := newTestDB(t)
	svc := NewReminderService(db)

	schoolID := uuid.New()
	today := helper.Today()

	// Tepat di batas window today+N → masih upcoming
	seedBill(t, db, schoolID, billModel.StudentBillPending, "Batas window", 100_000, today.AddDate(0, 0, 7))
	// Sehari lewat batas → tidak ikut
	seedBill(t, db, schoolID, billModel.StudentBillPending, "Lewat window", 100_000, today.AddDate(0, 0, 8))

	out, err := svc.GetReminders(context.Background(), schoolID, 7)
	require.NoError(t, err)

	require.Len(t, out.Upcoming, 1)
	assert.Equal(t, "Batas window", out.Upcoming[0].Title)
	assert.Equal(t, 7, out.Upcoming[0].DaysUntilDue)
	assert.Empty(t, out.Overdue)
}

func TestGetReminders_DefaultWindowAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewReminderService(db)

	schoolID := uuid.New()
	today := helper.Today()
	seedSpp(t, db, schoolID, sppModel.SppPaymentPending, 5, 100_000, today.AddDate(0, 0, 2))

	// days_ahead tidak valid → fallback default
	out1, err := svc.GetReminders(context.Background(), schoolID, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDaysAhead, out1.DaysAhead)

	// Baca murni: dua panggilan tanpa tulisan di antaranya identik
	out2, err := svc.GetReminders(context.Background(), schoolID, 0)
	require.NoError(t, err)
	assert.Equal(t, out1.UpcomingSummary, out2.UpcomingSummary)
	assert.Equal(t, out1.OverdueSummary, out2.OverdueSummary)
	assert.Len(t, out2.Upcoming, len(out1.Upcoming))
}
