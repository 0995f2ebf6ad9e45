package api

import (
	"context" // Request scoped cancellation

	"organizo/internal/domain" // Importing domain models
)

// TaskStore is the task persistence used by the handlers
type TaskStore interface {
	List(ctx context.Context, owner string) ([]domain.Task, error)
	Create(ctx context.Context, owner string, task *domain.Task) error
	Update(ctx context.Context, owner, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, owner, id string) error
}

// TransactionStore is the transaction persistence used by the handlers
type TransactionStore interface {
	List(ctx context.Context, owner string) ([]domain.Transaction, error)
	Create(ctx context.Context, owner string, t *domain.Transaction) error
	Update(ctx context.Context, owner, id string, patch domain.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, owner, id string) error
}

// SettingsStore is the settings persistence used by the handlers
type SettingsStore interface {
	GetOrCreate(ctx context.Context, owner string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, owner string, patch domain.SettingsPatch) (*domain.UserSettings, error)
}
