package domain

import (
	"strings" // Trimming
	"time"    // Timestamps

	"github.com/google/uuid" // Record identifiers
	"gorm.io/gorm"           // GORM hooks
)

// Priority of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for display: high first, unknown treated as medium
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Task Model
type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`           // Server assigned UUID
	UserID    string    `gorm:"size:191;not null;index" json:"user_id"` // Owner
	Name      string    `gorm:"not null" json:"name"`                   // Task title
	Date      Date      `gorm:"type:date;not null" json:"date"`         // Due date
	Time      string    `gorm:"size:8" json:"time,omitempty"`           // Optional clock time, HH:MM[:SS]
	Priority  Priority  `gorm:"size:16;not null" json:"priority"`       // low, medium or high
	Completed bool      `gorm:"not null" json:"completed"`              // Done flag
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"` // Insert timestamp
}

// BeforeCreate assigns the record identifier
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Input converts a stored task back to its create payload
func (t Task) Input() TaskInput {
	return TaskInput{Name: t.Name, Date: t.Date.String(), Time: t.Time, Priority: t.Priority}
}

// TaskInput is the create payload
type TaskInput struct {
	Name     string   `json:"name"`     // Required
	Date     string   `json:"date"`     // Required, YYYY-MM-DD
	Time     string   `json:"time"`     // Optional
	Priority Priority `json:"priority"` // Defaults to medium
}

// NewTask validates a create payload and builds the record to insert. New tasks are never completed.
func NewTask(in TaskInput) (Task, error) {
	if err := ValidateTask(in); err != nil {
		return Task{}, err
	}
	date, _ := ParseDate(in.Date) // Already validated
	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium // Default priority
	}
	return Task{
		Name:      strings.TrimSpace(in.Name),
		Date:      date,
		Time:      strings.TrimSpace(in.Time),
		Priority:  priority,
		Completed: false,
	}, nil
}

// TaskPatch is a partial update; nil fields are left untouched
type TaskPatch struct {
	Name      *string   `json:"name"`
	Date      *string   `json:"date"`
	Time      *string   `json:"time"`
	Priority  *Priority `json:"priority"`
	Completed *bool     `json:"completed"`
}

// Apply merges the patch into t and validates the result
func (p TaskPatch) Apply(t *Task) error {
	in := t.Input()
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	if p.Time != nil {
		in.Time = *p.Time // "" clears the time
	}
	if p.Priority != nil {
		in.Priority = *p.Priority
	}
	next, err := NewTask(in)
	if err != nil {
		return err
	}
	next.ID, next.UserID, next.CreatedAt = t.ID, t.UserID, t.CreatedAt
	next.Completed = t.Completed
	if p.Completed != nil {
		next.Completed = *p.Completed
	}
	*t = next
	return nil
}
