package repository

import (
	"context" // Request scoped cancellation

	"organizo/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// TransactionRepository handles owner scoped CRUD for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a TransactionRepository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// List returns the owner's transactions, newest first
func (r *TransactionRepository) List(ctx context.Context, owner string) ([]domain.Transaction, error) {
	txs := []domain.Transaction{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at desc").
		Find(&txs).Error; err != nil {
		return nil, classify("list transactions", err)
	}
	return txs, nil
}

// Create inserts t for owner
func (r *TransactionRepository) Create(ctx context.Context, owner string, t *domain.Transaction) error {
	t.UserID = owner
	err := classify("create transaction", r.db.WithContext(ctx).Create(t).Error)
	audit("create_transaction", owner, logrus.Fields{
		"transaction_id": t.ID,
		"type":           t.Type,
		"amount":         t.Amount.String(),
	}, err)
	return err
}

// Update applies patch to the owner's transaction id
func (r *TransactionRepository) Update(ctx context.Context, owner, id string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, owner).First(&t).Error; err != nil {
			return classify("find transaction", err)
		}
		// The merged record is validated as a whole, so a type change must come with a matching tag
		if err := patch.Apply(&t); err != nil {
			return err
		}
		return saveOwned(tx, &t, "update transaction", owner)
	})
	audit("update_transaction", owner, logrus.Fields{"transaction_id": id}, err)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the owner's transaction id
func (r *TransactionRepository) Delete(ctx context.Context, owner, id string) error {
	err := deleteOwned(ctx, r.db, &domain.Transaction{}, "delete transaction", owner, id)
	audit("delete_transaction", owner, logrus.Fields{"transaction_id": id}, err)
	return err
}
