package interfaces

import (
	"context"

	"payment_reconciler/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for TransactionEntry.

type ITransactionRepository interface {
	SaveAll(ctx context.Context, entries []entities.TransactionEntry) error
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.TransactionEntry, error)
}
