package domain

import (
	"encoding/json" // Raw amount handling
	"strings"       // Trimming
	"time"          // Timestamps

	"github.com/google/uuid"         // Record identifiers
	"github.com/shopspring/decimal" // Exact amounts
	"gorm.io/gorm"                  // GORM hooks
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true // Amounts go over the wire as JSON numbers
}

// TransactionType is the closed set of money movements
type TransactionType string

const (
	TypeSpend   TransactionType = "spend"
	TypeInvest  TransactionType = "invest"
	TypeReceive TransactionType = "receive"
)

// TransactionTypes lists every valid type
var TransactionTypes = []TransactionType{TypeSpend, TypeInvest, TypeReceive}

// Valid reports whether the type is one of the known types
func (t TransactionType) Valid() bool {
	switch t {
	case TypeSpend, TypeInvest, TypeReceive:
		return true
	}
	return false
}

// Outflow reports whether the type reduces the balance
func (t TransactionType) Outflow() bool { return t == TypeSpend || t == TypeInvest }

// Tag is a transaction category
type Tag string

const (
	TagFood          Tag = "food"
	TagTravel        Tag = "travel"
	TagSubscriptions Tag = "subscriptions"
	TagShopping      Tag = "shopping"
	TagMisc          Tag = "misc"
	TagInvestment    Tag = "investment"
	TagSavings       Tag = "savings"
	TagIncome        Tag = "income"
	TagRefund        Tag = "refund"
	TagOther         Tag = "other"
)

// TagsFor returns the fixed tag set of a transaction type, nil for an unknown type
func TagsFor(t TransactionType) []Tag {
	switch t {
	case TypeSpend:
		return []Tag{TagFood, TagTravel, TagSubscriptions, TagShopping, TagMisc}
	case TypeInvest:
		return []Tag{TagInvestment, TagSavings}
	case TypeReceive:
		return []Tag{TagIncome, TagRefund, TagOther}
	default:
		return nil
	}
}

// CategoryTags is the tag universe of spend and invest records, in display order
var CategoryTags = []Tag{TagFood, TagTravel, TagSubscriptions, TagShopping, TagMisc, TagInvestment, TagSavings}

// Transaction Model
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`              // Server assigned UUID
	UserID      string          `gorm:"size:191;not null;index" json:"user_id"`    // Owner
	Type        TransactionType `gorm:"size:16;not null" json:"type"`              // spend, invest or receive
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"` // Positive amount
	Description string          `gorm:"not null" json:"description"`               // Free text
	Date        Date            `gorm:"type:date;not null;index" json:"date"`      // Calendar date of the movement
	Tag         Tag             `gorm:"size:32" json:"tag,omitempty"`              // Category, depends on type
	CreatedAt   time.Time       `gorm:"autoCreateTime;index" json:"created_at"`    // Insert timestamp
}

// BeforeCreate assigns the record identifier
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Input converts a stored record back to its create payload so the same validation applies to both
func (t Transaction) Input() TransactionInput {
	return TransactionInput{
		Type:        t.Type,
		Amount:      json.RawMessage(t.Amount.String()),
		Description: t.Description,
		Date:        t.Date.String(),
		Tag:         t.Tag,
	}
}

// Validate checks a complete record
func (t Transaction) Validate() error {
	if err := ValidateTransactionType(t.Type); err != nil {
		return err
	}
	in := t.Input()
	if err := ValidateTransaction(in, t.Type); err != nil {
		return err
	}
	return ValidateTransactionTag(t.Type, t.Tag)
}

// TransactionInput is the create payload
type TransactionInput struct {
	Type        TransactionType `json:"type"`        // Required
	Amount      json.RawMessage `json:"amount"`      // Number or numeric string
	Description string          `json:"description"` // Required
	Date        string          `json:"date"`        // YYYY-MM-DD
	Tag         Tag             `json:"tag"`         // Required for spend and invest
}

// NewTransaction validates a create payload and builds the record to insert
func NewTransaction(in TransactionInput) (Transaction, error) {
	if err := ValidateTransactionType(in.Type); err != nil {
		return Transaction{}, err
	}
	if err := ValidateTransaction(in, in.Type); err != nil {
		return Transaction{}, err
	}
	if err := ValidateTransactionTag(in.Type, in.Tag); err != nil {
		return Transaction{}, err
	}
	amount, _ := ParseAmount(in.Amount) // Already validated
	date, _ := ParseDate(in.Date)       // Already validated
	return Transaction{
		Type:        in.Type,
		Amount:      amount,
		Description: in.Description,
		Date:        date,
		Tag:         in.Tag,
	}, nil
}

// TransactionPatch is a partial update; nil fields are left untouched
type TransactionPatch struct {
	Type        *TransactionType `json:"type"`
	Amount      json.RawMessage  `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	Tag         *Tag             `json:"tag"`
}

// Apply merges the patch into t and validates the result
func (p TransactionPatch) Apply(t *Transaction) error {
	next := *t // Work on a copy so a failed patch leaves t untouched
	if p.Type != nil {
		next.Type = *p.Type
	}
	if len(p.Amount) > 0 {
		amount, err := ParseAmount(p.Amount)
		if err != nil {
			return err
		}
		next.Amount = amount
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Date != nil {
		next.Date = Date{} // Cleared dates fail validation below
		if strings.TrimSpace(*p.Date) != "" {
			date, err := ParseDate(*p.Date)
			if err != nil {
				return Invalid("Date must be formatted as YYYY-MM-DD")
			}
			next.Date = date
		}
	}
	if p.Tag != nil {
		next.Tag = *p.Tag
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*t = next
	return nil
}
