package repository

import (
	"context" // Request scoped cancellation

	"organizo/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// TaskRepository handles owner scoped CRUD for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a TaskRepository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns the owner's tasks, newest first
func (r *TaskRepository) List(ctx context.Context, owner string) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at desc").
		Find(&tasks).Error; err != nil {
		return nil, classify("list tasks", err)
	}
	return tasks, nil
}

// Create inserts task for owner. The owner key always comes from the caller identity.
func (r *TaskRepository) Create(ctx context.Context, owner string, task *domain.Task) error {
	task.UserID = owner
	task.Completed = false
	err := classify("create task", r.db.WithContext(ctx).Create(task).Error)
	audit("create_task", owner, logrus.Fields{"task_id": task.ID}, err)
	return err
}

// Update applies patch to the owner's task id. A task of another owner is reported as domain.ErrNotFound.
func (r *TaskRepository) Update(ctx context.Context, owner, id string, patch domain.TaskPatch) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Load inside the transaction, scoped by both id and owner
		if err := tx.Where("id = ? AND user_id = ?", id, owner).First(&task).Error; err != nil {
			return classify("find task", err)
		}
		if err := patch.Apply(&task); err != nil {
			return err // Validation error, nothing written
		}
		return saveOwned(tx, &task, "update task", owner)
	})
	audit("update_task", owner, logrus.Fields{"task_id": id}, err)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the owner's task id
func (r *TaskRepository) Delete(ctx context.Context, owner, id string) error {
	err := deleteOwned(ctx, r.db, &domain.Task{}, "delete task", owner, id)
	audit("delete_task", owner, logrus.Fields{"task_id": id}, err)
	return err
}

// saveOwned writes every column of a loaded record, keeping the owner filter on the UPDATE itself
func saveOwned(tx *gorm.DB, model any, op, owner string) error {
	res := tx.Model(model).Where("user_id = ?", owner).Select("*").Updates(model)
	if res.Error != nil {
		return classify(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound // Deleted between the read and the write
	}
	return nil
}

// deleteOwned deletes one row matching id and owner, or reports domain.ErrNotFound
func deleteOwned(ctx context.Context, db *gorm.DB, model any, op, owner, id string) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).Delete(model)
	if res.Error != nil {
		return classify(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound // Wrong owner or no such id
	}
	return nil
}
