package dto

import "github.com/shopspring/decimal"

// DailyReportFilter selects the calendar day; empty means today.
type DailyReportFilter struct {
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

// DailyReportResponse aggregates one calendar day of activity.
type DailyReportResponse struct {
	Date          string          `json:"date"`
	Revenue       decimal.Decimal `json:"revenue"`
	OrderCount    int64           `json:"order_count"`
	MovementCount int64           `json:"movement_count"`
}
