package service

import (
	"math"
	"sort"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/models"
)

const (
	uncategorizedKey     = "uncategorized"
	labelUncategorized   = "Sin categoría"
	labelUnknownCategory = "Categoría desconocida"
)

// Sunday-first, matching time.Weekday ordinals.
var weekdayLabels = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type categoryBucket struct {
	id    string
	name  string
	total float64
}

// computeDashboardMetrics reduces one user's transactions into the
// dashboard shape. It is a pure function: same input, same output.
// Transfers do not participate in any dashboard figure.
func computeDashboardMetrics(transactions []*models.Transaction) dto.DashboardMetrics {
	metrics := dto.DashboardMetrics{
		CategorySummary: []dto.CategorySummary{},
		MonthlyTrend:    []dto.MonthlyTrendPoint{},
	}

	buckets := make(map[string]*categoryBucket)
	bucketOrder := make([]string, 0)

	type trendPoint struct {
		income  float64
		expense float64
	}
	trend := make(map[string]*trendPoint)
	trendMonths := make([]string, 0)

	var weekdayCounts [7]int
	var grandExpense float64
	expenseCount := 0
	total := 0

	for _, tx := range transactions {
		if tx.Type != models.TypeIncome && tx.Type != models.TypeExpense {
			continue
		}
		total++

		month := tx.TransactionDate.Format("2006-01")
		point, ok := trend[month]
		if !ok {
			point = &trendPoint{}
			trend[month] = point
			trendMonths = append(trendMonths, month)
		}

		weekdayCounts[int(tx.TransactionDate.Weekday())]++

		if tx.Type == models.TypeIncome {
			point.income += tx.Amount
			continue
		}

		// Expense magnitudes tolerate either sign convention.
		amount := math.Abs(tx.Amount)
		point.expense += amount
		grandExpense += amount
		expenseCount++

		key := uncategorizedKey
		if tx.CategoryID != nil {
			key = *tx.CategoryID
		}
		bucket, ok := buckets[key]
		if !ok {
			name := labelUncategorized
			if tx.CategoryName != nil {
				name = *tx.CategoryName
			}
			bucket = &categoryBucket{id: key, name: name}
			buckets[key] = bucket
			bucketOrder = append(bucketOrder, key)
		}
		bucket.total += amount
	}

	if total == 0 {
		return metrics
	}

	rows := make([]dto.CategorySummary, 0, len(bucketOrder))
	for _, key := range bucketOrder {
		bucket := buckets[key]
		var percentage float64
		if grandExpense != 0 {
			percentage = math.Round(bucket.total/grandExpense*1000) / 10
		}
		rows = append(rows, dto.CategorySummary{
			CategoryID:   bucket.id,
			CategoryName: bucket.name,
			Total:        round2(bucket.total),
			Percentage:   percentage,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	metrics.CategorySummary = rows

	sort.Strings(trendMonths)
	for _, month := range trendMonths {
		point := trend[month]
		metrics.MonthlyTrend = append(metrics.MonthlyTrend, dto.MonthlyTrendPoint{
			Month:   month,
			Income:  round2(point.income),
			Expense: round2(point.expense),
		})
	}

	if expenseCount > 0 {
		metrics.AvgTransaction = round2(grandExpense / float64(expenseCount))
	}

	metrics.TotalTransactions = total
	metrics.MostActiveDay = mostActiveWeekday(weekdayCounts)

	return metrics
}

// mostActiveWeekday picks the weekday with the strictly highest count;
// ties resolve to the earliest day in Sunday-first order.
func mostActiveWeekday(counts [7]int) string {
	best := -1
	day := ""
	for i, count := range counts {
		if count > best {
			best = count
			day = weekdayLabels[i]
		}
	}
	if best == 0 {
		return ""
	}
	return day
}
