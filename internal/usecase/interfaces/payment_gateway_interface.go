package interfaces

import (
	"context"

	"payment_reconciler/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts the remote payment API.
//
// Every call returns the server view of the whole payment: the flat list of
// all its transactions plus, for mutations, the record of the transaction the
// call created (PaymentResponse.Processed). Failures the engine reasons about
// are returned as *entities.GatewayError.
type IPaymentGateway interface {
	Authorize(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error)
	Charge(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error)
	ChargeAuthorization(ctx context.Context, paymentID string, amount decimal.Decimal) (entities.PaymentResponse, error)
	CancelAuthorization(ctx context.Context, paymentID, authorizationID string, amount *decimal.Decimal) (entities.PaymentResponse, error)
	CancelCharge(ctx context.Context, paymentID, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (entities.PaymentResponse, error)
	Ship(ctx context.Context, paymentID string) (entities.PaymentResponse, error)
	FetchPayment(ctx context.Context, paymentID string) (entities.PaymentResponse, error)
}
