// file: internals/features/finance/reminders/dto/reminder_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ReminderItem: satu tagihan pending (SPP atau tagihan lain) beranotasi
// status jatuh tempo. DaysUntilDue bertanda: negatif untuk yang terlambat.
type ReminderItem struct {
	Source    string    `json:"source"` // "spp" | "student_bill"
	BillID    uuid.UUID `json:"bill_id"`
	StudentID uuid.UUID `json:"student_id"`

	Title     string    `json:"title"`
	AmountIDR int64     `json:"amount_idr"`
	DueDate   time.Time `json:"due_date"`

	IsOverdue    bool `json:"is_overdue"`
	DaysUntilDue int  `json:"days_until_due"`
}

type BucketSummary struct {
	Count          int   `json:"count"`
	TotalAmountIDR int64 `json:"total_amount_idr"`
}

// ReminderResponse: dua bucket hasil partisi tagihan pending — upcoming
// (jatuh tempo dalam window) dan overdue (sudah lewat) — masing-masing
// terurut due date naik. Murni baca; tidak ada state yang ditulis.
type ReminderResponse struct {
	DaysAhead int `json:"days_ahead"`

	Upcoming        []ReminderItem `json:"upcoming"`
	UpcomingSummary BucketSummary  `json:"upcoming_summary"`

	Overdue        []ReminderItem `json:"overdue"`
	OverdueSummary BucketSummary  `json:"overdue_summary"`
}
