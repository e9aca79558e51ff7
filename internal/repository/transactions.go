package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plusone/internal/db"

	"github.com/google/uuid"
)

var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrTerminalStatus error = errors.New("transaction status is terminal")
var ErrHashConflict error = errors.New("transaction hash already set")

const transactionListLimit = 50

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

// Create appends a transaction to the ledger, assigning id and creation time.
// Status defaults to pending when the caller leaves it empty.
func (r *TransactionRepository) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	if transaction.Status == "" {
		transaction.Status = StatusPending
	}
	transaction.CreatedAt = time.Now().UTC()

	err := r.db.SaveToTable(ctx, &transaction)
	if err != nil {
		return Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (Transaction, error) {
	var transaction Transaction

	err := r.db.GetOneBy(ctx, "id", id, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	return transaction, nil
}

// ListForProfile returns the profile's transactions newest first, capped at 50.
// A profile with no transactions gets an empty slice, not an error.
func (r *TransactionRepository) ListForProfile(ctx context.Context, profileID string) ([]Transaction, error) {
	transactions := []Transaction{}

	err := r.db.FindWhere(ctx, &transactions, "created_at DESC", transactionListLimit,
		"from_profile_id = ? OR to_profile_id = ?", profileID, profileID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}

// UpdateStatus transitions a pending transaction and optionally attaches the
// chain settlement hash. Terminal statuses are final and the hash is
// write-once. The UPDATE itself is guarded on status, so a transition racing a
// concurrent settlement fails instead of overwriting it.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status string, txHash *string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Status != StatusPending {
		return ErrTerminalStatus
	}
	if txHash != nil && existing.TxHash != nil && *existing.TxHash != *txHash {
		return ErrHashConflict
	}

	updates := map[string]any{"status": status}
	if txHash != nil && existing.TxHash == nil {
		updates["tx_hash"] = *txHash
	}

	rows, err := r.db.UpdateWhere(ctx, &Transaction{}, updates, "id = ? AND status = ?", id, StatusPending)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if rows == 0 {
		// a concurrent settlement won the guarded update
		return ErrTerminalStatus
	}

	return nil
}
