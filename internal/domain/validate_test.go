package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpend() TransactionInput {
	return TransactionInput{
		Type:        TypeSpend,
		Amount:      json.RawMessage(`200`),
		Description: "groceries",
		Date:        "2024-01-02",
		Tag:         TagFood,
	}
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *TransactionInput)
		typ     TransactionType
		wantMsg string
	}{
		{name: "valid spend", mutate: func(in *TransactionInput) {}, typ: TypeSpend},
		{name: "quoted amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`"12.50"`) }, typ: TypeSpend},
		{name: "missing date", mutate: func(in *TransactionInput) { in.Date = "" }, typ: TypeSpend, wantMsg: "Date is required"},
		{name: "bad date", mutate: func(in *TransactionInput) { in.Date = "02/01/2024" }, typ: TypeSpend, wantMsg: "Date must be formatted as YYYY-MM-DD"},
		{name: "trailing garbage after date", mutate: func(in *TransactionInput) { in.Date = "2024-01-02garbage" }, typ: TypeSpend, wantMsg: "Date must be formatted as YYYY-MM-DD"},
		{name: "timestamp with bad clock", mutate: func(in *TransactionInput) { in.Date = "2024-01-02T99:99" }, typ: TypeSpend, wantMsg: "Date must be formatted as YYYY-MM-DD"},
		{name: "zero date", mutate: func(in *TransactionInput) { in.Date = "0001-01-01" }, typ: TypeSpend, wantMsg: "Date must be formatted as YYYY-MM-DD"},
		{name: "rfc3339 timestamp", mutate: func(in *TransactionInput) { in.Date = "2024-01-02T10:00:00Z" }, typ: TypeSpend},
		{name: "missing description", mutate: func(in *TransactionInput) { in.Description = "  " }, typ: TypeSpend, wantMsg: "Description is required"},
		{name: "missing amount", mutate: func(in *TransactionInput) { in.Amount = nil }, typ: TypeSpend, wantMsg: "Please enter a valid amount greater than 0"},
		{name: "null amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`null`) }, typ: TypeSpend, wantMsg: "Please enter a valid amount greater than 0"},
		{name: "non numeric amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`"ten"`) }, typ: TypeSpend, wantMsg: "Please enter a valid amount greater than 0"},
		{name: "zero amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`0`) }, typ: TypeSpend, wantMsg: "Please enter a valid amount greater than 0"},
		{name: "negative amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`-5`) }, typ: TypeSpend, wantMsg: "Please enter a valid amount greater than 0"},
		{name: "sub cent amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`0.001`) }, typ: TypeSpend, wantMsg: "Amount cannot have more than 2 decimal places"},
		{name: "three decimals", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`"12.345"`) }, typ: TypeSpend, wantMsg: "Amount cannot have more than 2 decimal places"},
		{name: "trailing zeros", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`1.000`) }, typ: TypeSpend},
		{name: "largest amount", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`999999999999.99`) }, typ: TypeSpend},
		{name: "amount overflows column", mutate: func(in *TransactionInput) { in.Amount = json.RawMessage(`1000000000000`) }, typ: TypeSpend, wantMsg: "Amount is too large"},
		{name: "spend without tag", mutate: func(in *TransactionInput) { in.Tag = "" }, typ: TypeSpend, wantMsg: "Please select a spending category"},
		{name: "invest without tag", mutate: func(in *TransactionInput) { in.Tag = "" }, typ: TypeInvest, wantMsg: "Please select an investment category"},
		{name: "receive without tag", mutate: func(in *TransactionInput) { in.Tag = "" }, typ: TypeReceive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSpend()
			tt.mutate(&in)
			err := ValidateTransaction(in, tt.typ)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestValidateTransactionTag(t *testing.T) {
	for _, typ := range TransactionTypes {
		for _, tag := range TagsFor(typ) {
			assert.NoError(t, ValidateTransactionTag(typ, tag), "%s/%s", typ, tag)
		}
	}

	assert.NoError(t, ValidateTransactionTag(TypeSpend, ""))

	err := ValidateTransactionTag(TypeSpend, TagSavings)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid tag for type spend. Valid tags are: food, travel, subscriptions, shopping, misc", verr.Message)

	assert.Error(t, ValidateTransactionTag(TypeReceive, TagFood))
	assert.Error(t, ValidateTransactionTag(TypeInvest, "crypto"))
}

func TestTagsForUnknownType(t *testing.T) {
	assert.Nil(t, TagsFor("gift"))
	assert.Error(t, ValidateTransactionTag("gift", TagFood))
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(validSpend())
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "2024-01-02", tx.Date.String())
	assert.Empty(t, tx.UserID)

	in := validSpend()
	in.Type = "gift"
	_, err = NewTransaction(in)
	assert.EqualError(t, err, "Invalid transaction type. Must be spend, invest, or receive")
}

func TestTransactionPatchApply(t *testing.T) {
	tx, err := NewTransaction(validSpend())
	require.NoError(t, err)

	amount := json.RawMessage(`75.5`)
	desc := "dinner"
	require.NoError(t, TransactionPatch{Amount: amount, Description: &desc}.Apply(&tx))
	assert.Equal(t, "75.5", tx.Amount.String())
	assert.Equal(t, "dinner", tx.Description)

	// Switching to invest keeps the food tag, which invest does not allow
	invest := TypeInvest
	err = TransactionPatch{Type: &invest}.Apply(&tx)
	assert.Error(t, err)
	assert.Equal(t, TypeSpend, tx.Type, "failed patch must leave the record untouched")

	savings := TagSavings
	require.NoError(t, TransactionPatch{Type: &invest, Tag: &savings}.Apply(&tx))
	assert.Equal(t, TypeInvest, tx.Type)

	empty := ""
	assert.EqualError(t, TransactionPatch{Date: &empty}.Apply(&tx), "Date is required")
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		in      TaskInput
		wantErr bool
	}{
		{name: "minimal", in: TaskInput{Name: "pay rent", Date: "2024-02-01"}},
		{name: "with time and priority", in: TaskInput{Name: "gym", Date: "2024-02-01", Time: "18:30", Priority: PriorityHigh}},
		{name: "seconds in time", in: TaskInput{Name: "gym", Date: "2024-02-01", Time: "18:30:00"}},
		{name: "missing name", in: TaskInput{Date: "2024-02-01"}, wantErr: true},
		{name: "missing date", in: TaskInput{Name: "gym"}, wantErr: true},
		{name: "garbage after date", in: TaskInput{Name: "gym", Date: "2024-01-02garbage"}, wantErr: true},
		{name: "timestamp with bad clock", in: TaskInput{Name: "gym", Date: "2024-01-02T99:99"}, wantErr: true},
		{name: "zero date", in: TaskInput{Name: "gym", Date: "0001-01-01"}, wantErr: true},
		{name: "bad priority", in: TaskInput{Name: "gym", Date: "2024-02-01", Priority: "urgent"}, wantErr: true},
		{name: "bad time", in: TaskInput{Name: "gym", Date: "2024-02-01", Time: "6pm"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.in)
			if tt.wantErr {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTaskDefaults(t *testing.T) {
	task, err := NewTask(TaskInput{Name: " call mum ", Date: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "call mum", task.Name)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.False(t, task.Completed)
}

func TestTaskPatchApply(t *testing.T) {
	task, err := NewTask(TaskInput{Name: "call mum", Date: "2024-03-10", Time: "09:00"})
	require.NoError(t, err)
	task.ID, task.UserID = "t1", "u1"

	done := true
	require.NoError(t, TaskPatch{Completed: &done}.Apply(&task))
	assert.True(t, task.Completed)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "u1", task.UserID)
	assert.Equal(t, "09:00", task.Time)

	empty := ""
	require.NoError(t, TaskPatch{Time: &empty}.Apply(&task))
	assert.Empty(t, task.Time)
	assert.True(t, task.Completed)

	assert.Error(t, TaskPatch{Name: &empty}.Apply(&task))
	assert.Equal(t, "call mum", task.Name)
}

func TestSettingsPatch(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	assert.Error(t, SettingsPatch{SavingsGoal: &neg}.Validate())

	subCent := decimal.RequireFromString("0.005")
	assert.EqualError(t, SettingsPatch{SavingsGoal: &subCent}.Validate(), "Savings goal cannot have more than 2 decimal places")
	huge := decimal.New(1, 12)
	assert.EqualError(t, SettingsPatch{MonthlyIncome: &huge}.Validate(), "Monthly income is too large")

	income := decimal.NewFromInt(4000)
	p := SettingsPatch{MonthlyIncome: &income}
	require.NoError(t, p.Validate())
	assert.Equal(t, []string{"monthly_income"}, p.Columns())
	assert.True(t, SettingsPatch{}.Empty())

	s := DefaultSettings("u1")
	p.Apply(&s)
	assert.True(t, s.MonthlyIncome.Equal(income))
	assert.True(t, s.SavingsGoal.IsZero())
}
