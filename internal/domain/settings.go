package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact amounts
)

// UserSettings Model, one row per user
type UserSettings struct {
	UserID        string          `gorm:"primaryKey;size:191" json:"user_id"`                // Owner, unique
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monthly_income"` // Expected monthly income
	SavingsGoal   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"savings_goal"`   // Target balance
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`                  // Insert timestamp
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`                  // Last change
}

// DefaultSettings is the row created on a user's first read
func DefaultSettings(owner string) UserSettings {
	return UserSettings{UserID: owner, MonthlyIncome: decimal.Zero, SavingsGoal: decimal.Zero}
}

// SettingsPatch is a partial replace of the numeric fields
type SettingsPatch struct {
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	SavingsGoal   *decimal.Decimal `json:"savings_goal"`
}

// Empty reports whether the patch changes nothing
func (p SettingsPatch) Empty() bool { return p.MonthlyIncome == nil && p.SavingsGoal == nil }

// Columns lists the columns the patch sets
func (p SettingsPatch) Columns() []string {
	var cols []string
	if p.MonthlyIncome != nil {
		cols = append(cols, "monthly_income")
	}
	if p.SavingsGoal != nil {
		cols = append(cols, "savings_goal")
	}
	return cols
}

// Validate rejects negative amounts and amounts a money column cannot hold exactly
func (p SettingsPatch) Validate() error {
	if p.MonthlyIncome != nil {
		if p.MonthlyIncome.IsNegative() {
			return Invalid("Monthly income cannot be negative")
		}
		if err := ValidateMoney(*p.MonthlyIncome, "Monthly income"); err != nil {
			return err
		}
	}
	if p.SavingsGoal != nil {
		if p.SavingsGoal.IsNegative() {
			return Invalid("Savings goal cannot be negative")
		}
		if err := ValidateMoney(*p.SavingsGoal, "Savings goal"); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the set fields onto s
func (p SettingsPatch) Apply(s *UserSettings) {
	if p.MonthlyIncome != nil {
		s.MonthlyIncome = *p.MonthlyIncome
	}
	if p.SavingsGoal != nil {
		s.SavingsGoal = *p.SavingsGoal
	}
}
