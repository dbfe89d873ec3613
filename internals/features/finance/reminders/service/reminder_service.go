// file: internals/features/finance/reminders/service/reminder_service.go
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "xclass_backend/internals/features/finance/reminders/dto"
	sppModel "xclass_backend/internals/features/finance/spp/model"
	billModel "xclass_backend/internals/features/finance/student_bills/model"
	helper "xclass_backend/internals/helpers"
)

const DefaultDaysAhead = 7

// ReminderService menyusun pengingat tagihan lintas ledger: SPP + tagihan
// lain yang masih pending, dipartisi upcoming/overdue. Komposisi baca murni;
// dua panggilan tanpa tulisan di antaranya selalu identik.
type ReminderService struct {
	DB *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{DB: db}
}

func (s *ReminderService) GetReminders(ctx context.Context, schoolID uuid.UUID, daysAhead int) (*dto.ReminderResponse, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	today := helper.Today()
	horizon := today.AddDate(0, 0, daysAhead)

	// Kandidat: semua pending yang due <= horizon (upcoming maupun overdue)
	var spps []sppModel.SppPaymentModel
	if err := s.DB.WithContext(ctx).
		Where("spp_payment_school_id = ? AND spp_payment_status = ? AND spp_payment_due_date <= ?",
			schoolID, sppModel.SppPaymentPending, horizon).
		Find(&spps).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var bills []billModel.StudentBillModel
	if err := s.DB.WithContext(ctx).
		Where("student_bill_school_id = ? AND student_bill_status = ? AND student_bill_due_date <= ?",
			schoolID, billModel.StudentBillPending, horizon).
		Find(&bills).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := &dto.ReminderResponse{
		DaysAhead: daysAhead,
		Upcoming:  []dto.ReminderItem{},
		Overdue:   []dto.ReminderItem{},
	}

	push := func(it dto.ReminderItem) {
		if it.IsOverdue {
			out.Overdue = append(out.Overdue, it)
			out.OverdueSummary.Count++
			out.OverdueSummary.TotalAmountIDR += it.AmountIDR
		} else {
			out.Upcoming = append(out.Upcoming, it)
			out.UpcomingSummary.Count++
			out.UpcomingSummary.TotalAmountIDR += it.AmountIDR
		}
	}

	for _, p := range spps {
		due := helper.StartOfDay(p.SppPaymentDueDate)
		push(dto.ReminderItem{
			Source:       "spp",
			BillID:       p.SppPaymentID,
			StudentID:    p.SppPaymentStudentID,
			Title:        fmt.Sprintf("SPP %02d/%d", p.SppPaymentMonth, p.SppPaymentYear),
			AmountIDR:    p.SppPaymentAmountIDR,
			DueDate:      due,
			IsOverdue:    due.Before(today),
			DaysUntilDue: helper.DaysUntil(due, today),
		})
	}
	for _, b := range bills {
		due := helper.StartOfDay(b.StudentBillDueDate)
		push(dto.ReminderItem{
			Source:       "student_bill",
			BillID:       b.StudentBillID,
			StudentID:    b.StudentBillStudentID,
			Title:        b.StudentBillTitle,
			AmountIDR:    b.StudentBillAmountIDR,
			DueDate:      due,
			IsOverdue:    due.Before(today),
			DaysUntilDue: helper.DaysUntil(due, today),
		})
	}

	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].DueDate.Before(out.Upcoming[j].DueDate)
	})
	sort.SliceStable(out.Overdue, func(i, j int) bool {
		return out.Overdue[i].DueDate.Before(out.Overdue[j].DueDate)
	})

	return out, nil
}
