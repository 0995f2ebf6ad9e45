package domain

import (
	"bytes"         // Raw JSON inspection
	"encoding/json" // Quoted amounts
	"slices"        // Membership checks
	"strings"       // Trimming and joining
	"time"          // Clock parsing

	"github.com/shopspring/decimal" // Exact amounts
)

// ParseAmount reads an amount given as a JSON number or a numeric string
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, Invalid("Amount is required")
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, Invalid("Please enter a valid amount greater than 0")
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, Invalid("Please enter a valid amount greater than 0")
	}
	return d, nil
}

// Money columns are decimal(14,2)
const (
	MoneyScale  = 2
	MoneyDigits = 14
)

// maxMoney is the smallest amount that no longer fits a money column
var maxMoney = decimal.New(1, MoneyDigits-MoneyScale)

// ValidateMoney fails when d would not be stored exactly in a money column
func ValidateMoney(d decimal.Decimal, field string) error {
	if !d.Equal(d.Round(MoneyScale)) {
		return Invalid("%s cannot have more than %d decimal places", field, MoneyScale)
	}
	if d.Abs().GreaterThanOrEqual(maxMoney) {
		return Invalid("%s is too large", field)
	}
	return nil
}

// ValidateTransactionType fails unless t is spend, invest or receive
func ValidateTransactionType(t TransactionType) error {
	if !t.Valid() {
		return Invalid("Invalid transaction type. Must be spend, invest, or receive")
	}
	return nil
}

// ValidateTransaction checks the mandatory fields of a transaction payload for the given type
func ValidateTransaction(in TransactionInput, t TransactionType) error {
	if strings.TrimSpace(in.Date) == "" {
		return Invalid("Date is required")
	}
	if _, err := ParseDate(in.Date); err != nil {
		return Invalid("Date must be formatted as YYYY-MM-DD")
	}
	if strings.TrimSpace(in.Description) == "" {
		return Invalid("Description is required")
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil || !amount.IsPositive() {
		return Invalid("Please enter a valid amount greater than 0")
	}
	if err := ValidateMoney(amount, "Amount"); err != nil {
		return err
	}
	// Spend and invest records must be categorised
	switch t {
	case TypeInvest:
		if in.Tag == "" {
			return Invalid("Please select an investment category")
		}
	case TypeSpend:
		if in.Tag == "" {
			return Invalid("Please select a spending category")
		}
	}
	return nil
}

// ValidateTransactionTag fails when a tag is present but outside the type's fixed set
func ValidateTransactionTag(t TransactionType, tag Tag) error {
	if tag == "" {
		return nil // Absence is checked by ValidateTransaction
	}
	valid := TagsFor(t)
	if slices.Contains(valid, tag) {
		return nil
	}
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	return Invalid("Invalid tag for type %s. Valid tags are: %s", t, strings.Join(names, ", "))
}

// ValidateTask checks a task payload
func ValidateTask(in TaskInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return Invalid("Task name is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return Invalid("Task date is required")
	}
	if _, err := ParseDate(in.Date); err != nil {
		return Invalid("Task date must be formatted as YYYY-MM-DD")
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return Invalid("Invalid priority. Must be low, medium, or high")
	}
	if t := strings.TrimSpace(in.Time); t != "" && !validClock(t) {
		return Invalid("Task time must be formatted as HH:MM")
	}
	return nil
}

// validClock accepts HH:MM and HH:MM:SS
func validClock(s string) bool {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
