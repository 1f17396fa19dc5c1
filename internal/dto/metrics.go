package dto

// CategorySummary is one category's share of the period's expenses.
type CategorySummary struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`      // 2-decimal rounded
	Percentage   float64 `json:"percentage"` // 1-decimal rounded, of total expense
}

type MonthlyTrendPoint struct {
	Month   string  `json:"month"` // "YYYY-MM"
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type DashboardMetrics struct {
	CategorySummary   []CategorySummary   `json:"categorySummary"`
	MonthlyTrend      []MonthlyTrendPoint `json:"monthlyTrend"`
	AvgTransaction    float64             `json:"avgTransaction"`
	TotalTransactions int                 `json:"totalTransactions"`
	MostActiveDay     string              `json:"mostActiveDay"`
}

type Summary struct {
	Balance      float64 `json:"balance"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Currency     string  `json:"currency"`
}
