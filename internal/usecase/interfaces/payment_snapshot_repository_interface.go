package interfaces

import (
	"context"

	"payment_reconciler/internal/domain/entities"
)

// IPaymentSnapshotRepository abstracts DynamoDB persistence for PaymentSnapshot.
//
// Save is an upsert: the latest reconciliation wins.
type IPaymentSnapshotRepository interface {
	Save(ctx context.Context, s entities.PaymentSnapshot) (entities.PaymentSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSnapshot, error)
}
