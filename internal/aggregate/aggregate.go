// Package aggregate derives dashboard figures from one owner's transactions.
//
// Every function is a total reduction: input order never matters and no input
// makes them fail. Records of an unknown type or tag are skipped.
package aggregate

import (
	"time" // Calendar months

	"organizo/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact amounts
)

// BalanceWindow is the length of the trailing daily balance series
const BalanceWindow = 7

// DailyBalance is one point of the balance series
type DailyBalance struct {
	Date    domain.Date     `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// signed is the contribution of t to the balance
func signed(t domain.Transaction) decimal.Decimal {
	switch t.Type {
	case domain.TypeReceive:
		return t.Amount
	case domain.TypeSpend, domain.TypeInvest:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// Balance is received minus spent minus invested
func Balance(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(signed(t))
	}
	return total
}

// BalanceAsOf is the balance over records dated on or before d
func BalanceAsOf(txs []domain.Transaction, d domain.Date) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if !t.Date.After(d) {
			total = total.Add(signed(t))
		}
	}
	return total
}

// BalanceBefore is the balance over records dated strictly before d
func BalanceBefore(txs []domain.Transaction, d domain.Date) decimal.Decimal {
	return BalanceAsOf(txs, d.AddDays(-1))
}

// BalanceSeries returns BalanceWindow points ending on today, oldest first
func BalanceSeries(txs []domain.Transaction, today domain.Date) []DailyBalance {
	series := make([]DailyBalance, BalanceWindow)
	for i := range series {
		day := today.AddDays(i - (BalanceWindow - 1))
		series[i] = DailyBalance{Date: day, Balance: BalanceAsOf(txs, day)}
	}
	return series
}

func sameMonth(d domain.Date, ref time.Time) bool {
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}

// MonthlySpending sums spend records in the calendar month of ref
func MonthlySpending(txs []domain.Transaction, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == domain.TypeSpend && sameMonth(t.Date, ref) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthlyOutflow sums spend and invest records in the calendar month of ref
func MonthlyOutflow(txs []domain.Transaction, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type.Outflow() && sameMonth(t.Date, ref) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// CategoryTotals sums spend and invest amounts per tag over domain.CategoryTags.
// Every tag of the universe is present in the result.
func CategoryTotals(txs []domain.Transaction) map[domain.Tag]decimal.Decimal {
	totals := make(map[domain.Tag]decimal.Decimal, len(domain.CategoryTags))
	for _, tag := range domain.CategoryTags {
		totals[tag] = decimal.Zero
	}
	for _, t := range txs {
		if !t.Type.Outflow() {
			continue
		}
		if sum, ok := totals[t.Tag]; ok {
			totals[t.Tag] = sum.Add(t.Amount)
		}
	}
	return totals
}

// MonthlyTotals buckets spend and invest amounts by month of year, slot 0 being January.
// Records from different years share a slot; use MonthlyTotalsForYear to keep years apart.
func MonthlyTotals(txs []domain.Transaction) [12]decimal.Decimal {
	return monthlyTotals(txs, func(domain.Date) bool { return true })
}

// MonthlyTotalsForYear is MonthlyTotals restricted to records dated in year
func MonthlyTotalsForYear(txs []domain.Transaction, year int) [12]decimal.Decimal {
	return monthlyTotals(txs, func(d domain.Date) bool { return d.Year() == year })
}

func monthlyTotals(txs []domain.Transaction, keep func(domain.Date) bool) [12]decimal.Decimal {
	var slots [12]decimal.Decimal
	for i := range slots {
		slots[i] = decimal.Zero
	}
	for _, t := range txs {
		if !t.Type.Outflow() || t.Date.IsZero() || !keep(t.Date) {
			continue
		}
		i := int(t.Date.Month()) - 1
		slots[i] = slots[i].Add(t.Amount)
	}
	return slots
}

// Savings sums invest records tagged savings
func Savings(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == domain.TypeInvest && t.Tag == domain.TagSavings {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// PercentChange is (current - previous) / |previous| * 100, or zero when previous is zero
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
}

// GoalProgress is balance as a percentage of goal, or zero without a positive goal
func GoalProgress(balance, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	return balance.Div(goal).Mul(decimal.NewFromInt(100)).Round(2)
}
