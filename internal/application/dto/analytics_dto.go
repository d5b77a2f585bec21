package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse is the year-scoped overview block.
type DashboardStatsResponse struct {
	TotalInvoices   int                `json:"totalInvoices"`
	PaidInvoices    int                `json:"paidInvoices"`
	PendingInvoices int                `json:"pendingInvoices"`
	OverdueInvoices int                `json:"overdueInvoices"`
	TotalRevenue    decimal.Decimal    `json:"totalRevenue"`
	PaidRevenue     decimal.Decimal    `json:"paidRevenue"`
	PendingRevenue  decimal.Decimal    `json:"pendingRevenue"`
	CustomerCount   int                `json:"customerCount"`
	RecentInvoices  []InvoiceListEntry `json:"recentInvoices"`
}

// MonthlyRevenueEntry is one month's bucket, paid vs. pending.
type MonthlyRevenueEntry struct {
	Month     int             `json:"month"` // 1..12
	MonthName string          `json:"monthName"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"`
}

// TopCustomerEntry ranks a customer by paid revenue.
type TopCustomerEntry struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company,omitempty"`
	Email        string          `json:"email,omitempty"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	InvoiceCount int             `json:"invoiceCount"`
}

// StatusBreakdownEntry aggregates one invoice status.
type StatusBreakdownEntry struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
