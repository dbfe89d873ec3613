// file: internals/features/finance/reports/dto/report_dto.go
package dto

import (
	cashflowService "xclass_backend/internals/features/finance/cashflow/service"
)

type LedgerTotals struct {
	PaidCount     int64 `json:"paid_count"`
	PaidAmountIDR int64 `json:"paid_amount_idr"`

	PendingCount     int64 `json:"pending_count"`
	PendingAmountIDR int64 `json:"pending_amount_idr"`
}

// DashboardResponse: total per ledger + satu angka pendapatan campuran.
// Revenue sengaja menggabung SPP lunas + tagihan lunas + pemasukan buku kas
// menjadi satu figur untuk sekolah — bukan pemisahan pendapatan tertagih vs
// pemasukan umum.
type DashboardResponse struct {
	Spp          LedgerTotals `json:"spp"`
	StudentBills LedgerTotals `json:"student_bills"`

	SavingsNetDepositIDR int64                    `json:"savings_net_deposit_idr"`
	Cashflow             *cashflowService.Summary `json:"cashflow"`

	RevenueIDR int64 `json:"revenue_idr"`
	ExpenseIDR int64 `json:"expense_idr"`
	NetIDR     int64 `json:"net_idr"`
}

// MonthlyTrendPoint: satu bulan dalam trend — income memasukkan SPP yang
// LUNAS pada bulan itu (paid_at, bukan periode tagihannya).
type MonthlyTrendPoint struct {
	Month string `json:"month"` // "2025-01"

	IncomeIDR  int64 `json:"income_idr"`
	ExpenseIDR int64 `json:"expense_idr"`
	BalanceIDR int64 `json:"balance_idr"`
}

type MonthlyTrendsResponse struct {
	Months []MonthlyTrendPoint `json:"months"`
}

type CategoryBreakdownResponse struct {
	Income  []cashflowService.CategoryAmount `json:"income"`
	Expense []cashflowService.CategoryAmount `json:"expense"`
}

type StatusCount struct {
	Status    string `json:"status"`
	Count     int64  `json:"count"`
	AmountIDR int64  `json:"amount_idr" gorm:"column:amount_idr"`
}

type PaymentStatusResponse struct {
	Spp          []StatusCount `json:"spp"`
	StudentBills []StatusCount `json:"student_bills"`
}
