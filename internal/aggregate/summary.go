package aggregate

import (
	"organizo/internal/board"  // Task ordering
	"organizo/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact amounts
)

// Summary is the dashboard view of one owner's data on a given day
type Summary struct {
	Date            domain.Date                    `json:"date"`
	Balance         decimal.Decimal                `json:"balance"`
	PreviousBalance decimal.Decimal                `json:"previous_balance"`
	BalanceChange   decimal.Decimal                `json:"balance_change"`
	PercentChange   decimal.Decimal                `json:"percent_change"`
	BalanceHistory  []DailyBalance                 `json:"balance_history"`
	MonthlySpending decimal.Decimal                `json:"monthly_spending"`
	MonthlyOutflow  decimal.Decimal                `json:"monthly_outflow"`
	Savings         decimal.Decimal                `json:"savings"`
	MonthlyIncome   decimal.Decimal                `json:"monthly_income"`
	SavingsGoal     decimal.Decimal                `json:"savings_goal"`
	GoalProgress    decimal.Decimal                `json:"goal_progress"`
	CategoryTotals  map[domain.Tag]decimal.Decimal `json:"category_totals"`
	MonthlyTotals   [12]decimal.Decimal            `json:"monthly_totals"`
	TodaysTasks     []domain.Task                  `json:"todays_tasks"`
	PendingTasks    int                            `json:"pending_tasks"`
}

// Summarize folds the owner's collections into a Summary for today
func Summarize(txs []domain.Transaction, tasks []domain.Task, settings domain.UserSettings, today domain.Date) Summary {
	balance := Balance(txs)
	previous := BalanceBefore(txs, today)
	ref := today.Time()
	return Summary{
		Date:            today,
		Balance:         balance,
		PreviousBalance: previous,
		BalanceChange:   balance.Sub(previous),
		PercentChange:   PercentChange(balance, previous),
		BalanceHistory:  BalanceSeries(txs, today),
		MonthlySpending: MonthlySpending(txs, ref),
		MonthlyOutflow:  MonthlyOutflow(txs, ref),
		Savings:         Savings(txs),
		MonthlyIncome:   settings.MonthlyIncome,
		SavingsGoal:     settings.SavingsGoal,
		GoalProgress:    GoalProgress(balance, settings.SavingsGoal),
		CategoryTotals:  CategoryTotals(txs),
		MonthlyTotals:   MonthlyTotalsForYear(txs, today.Year()),
		TodaysTasks:     board.DueOn(tasks, today),
		PendingTasks:    len(board.Pending(tasks)),
	}
}
