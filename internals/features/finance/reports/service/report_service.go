// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cashflowModel "xclass_backend/internals/features/finance/cashflow/model"
	cashflowService "xclass_backend/internals/features/finance/cashflow/service"
	dto "xclass_backend/internals/features/finance/reports/dto"
	savingsService "xclass_backend/internals/features/finance/savings/service"
	sppModel "xclass_backend/internals/features/finance/spp/model"
	billModel "xclass_backend/internals/features/finance/student_bills/model"
	helper "xclass_backend/internals/helpers"
)

const DefaultTrendMonths = 12

// ReportService mengkomposisi seluruh ledger finance untuk dashboard, trend
// bulanan, breakdown kategori, dan ringkasan status pembayaran. Baca murni.
type ReportService struct {
	DB       *gorm.DB
	Cashflow *cashflowService.CashflowService
	Savings  *savingsService.SavingsService
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		DB:       db,
		Cashflow: cashflowService.NewCashflowService(db),
		Savings:  savingsService.NewSavingsService(db),
	}
}

/* ======================= DASHBOARD ======================= */

func (s *ReportService) GetDashboard(ctx context.Context, schoolID uuid.UUID) (*dto.DashboardResponse, error) {
	spp, err := s.sppTotals(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	bills, err := s.billTotals(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	savingsNet, err := s.Savings.NetDeposits(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	cf, err := s.Cashflow.GetSummary(ctx, schoolID, nil, nil)
	if err != nil {
		return nil, err
	}

	// Pendapatan campuran: SPP lunas + tagihan lunas + pemasukan buku kas
	revenue := spp.PaidAmountIDR + bills.PaidAmountIDR + cf.TotalIncomeIDR
	expense := cf.TotalExpenseIDR

	return &dto.DashboardResponse{
		Spp:                  *spp,
		StudentBills:         *bills,
		SavingsNetDepositIDR: savingsNet,
		Cashflow:             cf,
		RevenueIDR:           revenue,
		ExpenseIDR:           expense,
		NetIDR:               revenue - expense,
	}, nil
}

/* ======================= TRENDS ======================= */

// GetMonthlyTrends menghitung N bulan terakhir (default 12), tiap bulan
// lewat query agregat independen — bukan satu query ter-group.
func (s *ReportService) GetMonthlyTrends(ctx context.Context, schoolID uuid.UUID, months int) (*dto.MonthlyTrendsResponse, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	now := time.Now()
	// Anchor di tanggal 1 supaya mundur per bulan tidak ternormalisasi
	// (31 Mei - 1 bulan ≠ 1 Mei)
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := &dto.MonthlyTrendsResponse{Months: make([]dto.MonthlyTrendPoint, 0, months)}

	for i := months - 1; i >= 0; i-- {
		anchor := base.AddDate(0, -i, 0)
		start, next := helper.MonthRange(anchor.Year(), int(anchor.Month()), now.Location())
		endInclusive := next.AddDate(0, 0, -1)

		cf, err := s.Cashflow.GetSummary(ctx, schoolID, &start, &endInclusive)
		if err != nil {
			return nil, err
		}

		// SPP yang lunas pada bulan ini (window paid_at, bukan periode tagihan)
		var sppPaid int64
		err = s.DB.WithContext(ctx).Model(&sppModel.SppPaymentModel{}).
			Where("spp_payment_school_id = ? AND spp_payment_status = ? AND spp_payment_paid_at >= ? AND spp_payment_paid_at < ?",
				schoolID, sppModel.SppPaymentPaid, start, next).
			Select("COALESCE(SUM(spp_payment_amount_idr), 0)").
			Scan(&sppPaid).Error
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		income := cf.TotalIncomeIDR + sppPaid
		out.Months = append(out.Months, dto.MonthlyTrendPoint{
			Month:      fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month())),
			IncomeIDR:  income,
			ExpenseIDR: cf.TotalExpenseIDR,
			BalanceIDR: income - cf.TotalExpenseIDR,
		})
	}
	return out, nil
}

/* ======================= BREAKDOWN ======================= */

func (s *ReportService) GetCategoryBreakdown(ctx context.Context, schoolID uuid.UUID, start, end *time.Time) (*dto.CategoryBreakdownResponse, error) {
	income, err := s.Cashflow.BreakdownByCategory(ctx, schoolID, cashflowModel.CashflowIncome, start, end)
	if err != nil {
		return nil, err
	}
	expense, err := s.Cashflow.BreakdownByCategory(ctx, schoolID, cashflowModel.CashflowExpense, start, end)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryBreakdownResponse{Income: income, Expense: expense}, nil
}

/* ======================= PAYMENT STATUS ======================= */

func (s *ReportService) GetPaymentStatus(ctx context.Context, schoolID uuid.UUID) (*dto.PaymentStatusResponse, error) {
	var spp []dto.StatusCount
	err := s.DB.WithContext(ctx).Model(&sppModel.SppPaymentModel{}).
		Where("spp_payment_school_id = ?", schoolID).
		Select("spp_payment_status AS status, COUNT(*) AS count, COALESCE(SUM(spp_payment_amount_idr), 0) AS amount_idr").
		Group("spp_payment_status").
		Order("spp_payment_status ASC").
		Scan(&spp).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var bills []dto.StatusCount
	err = s.DB.WithContext(ctx).Model(&billModel.StudentBillModel{}).
		Where("student_bill_school_id = ?", schoolID).
		Select("student_bill_status AS status, COUNT(*) AS count, COALESCE(SUM(student_bill_amount_idr), 0) AS amount_idr").
		Group("student_bill_status").
		Order("student_bill_status ASC").
		Scan(&bills).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return &dto.PaymentStatusResponse{Spp: spp, StudentBills: bills}, nil
}

/* ======================= INTERNAL ======================= */

func (s *ReportService) sppTotals(ctx context.Context, schoolID uuid.UUID) (*dto.LedgerTotals, error) {
	var agg struct {
		PaidCount        int64
		PaidAmountIDR    int64 `gorm:"column:paid_amount_idr"`
		PendingCount     int64
		PendingAmountIDR int64 `gorm:"column:pending_amount_idr"`
	}
	err := s.DB.WithContext(ctx).Model(&sppModel.SppPaymentModel{}).
		Where("spp_payment_school_id = ?", schoolID).
		Select(`
			COALESCE(SUM(CASE WHEN spp_payment_status = 'paid'    THEN 1 ELSE 0 END), 0) AS paid_count,
			COALESCE(SUM(CASE WHEN spp_payment_status = 'paid'    THEN spp_payment_amount_idr ELSE 0 END), 0) AS paid_amount_idr,
			COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN spp_payment_status = 'pending' THEN spp_payment_amount_idr ELSE 0 END), 0) AS pending_amount_idr
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &dto.LedgerTotals{
		PaidCount:        agg.PaidCount,
		PaidAmountIDR:    agg.PaidAmountIDR,
		PendingCount:     agg.PendingCount,
		PendingAmountIDR: agg.PendingAmountIDR,
	}, nil
}

func (s *ReportService) billTotals(ctx context.Context, schoolID uuid.UUID) (*dto.LedgerTotals, error) {
	var agg struct {
		PaidCount        int64
		PaidAmountIDR    int64 `gorm:"column:paid_amount_idr"`
		PendingCount     int64
		PendingAmountIDR int64 `gorm:"column:pending_amount_idr"`
	}
	err := s.DB.WithContext(ctx).Model(&billModel.StudentBillModel{}).
		Where("student_bill_school_id = ?", schoolID).
		Select(`
			COALESCE(SUM(CASE WHEN student_bill_status = 'paid'    THEN 1 ELSE 0 END), 0) AS paid_count,
			COALESCE(SUM(CASE WHEN student_bill_status = 'paid'    THEN student_bill_amount_idr ELSE 0 END), 0) AS paid_amount_idr,
			COALESCE(SUM(CASE WHEN student_bill_status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN student_bill_status = 'pending' THEN student_bill_amount_idr ELSE 0 END), 0) AS pending_amount_idr
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &dto.LedgerTotals{
		PaidCount:        agg.PaidCount,
		PaidAmountIDR:    agg.PaidAmountIDR,
		PendingCount:     agg.PendingCount,
		PendingAmountIDR: agg.PendingAmountIDR,
	}, nil
}
