package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidChargeID             = errors.New("invalid charge id")
	ErrInvalidCurrency             = errors.New("invalid currency")
	ErrInvalidCancelReason         = errors.New("invalid cancel reason code")
	ErrNilPayment                  = errors.New("payment is nil")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrSnapshotsNotConfigured      = errors.New("payment snapshot repository not configured")
	ErrPaymentSnapshotNotFound     = errors.New("payment snapshot not found")
	ErrMissingProcessedTransaction = errors.New("missing processed transaction")
	// ErrSnapshotNotStored marks an error returned next to a committed result:
	// the remote operation went through and only local persistence failed.
	ErrSnapshotNotStored = errors.New("payment snapshot not stored")
)

// IPaymentUseCase exposes the payment operations backed by the reconciliation engine.
//
// Operations taking a *entities.Payment mutate it in place: the payment is the
// caller's local mirror of the remote resource.
type IPaymentUseCase interface {
	Authorize(ctx context.Context, req entities.TransactionRequest) (*entities.Payment, error)
	Charge(ctx context.Context, req entities.TransactionRequest) (*entities.Payment, error)
	Fetch(ctx context.Context, paymentID string) (*entities.Payment, error)
	ChargeAuthorization(ctx context.Context, p *entities.Payment, amount *decimal.Decimal) (*entities.Charge, error)
	CancelAmount(ctx context.Context, p *entities.Payment, amount *decimal.Decimal, reason entities.CancelReasonCode) ([]*entities.Cancellation, error)
	CancelAuthorizationAmount(ctx context.Context, p *entities.Payment, amount *decimal.Decimal) (*entities.Cancellation, error)
	CancelCharge(ctx context.Context, p *entities.Payment, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (*entities.Cancellation, error)
	Ship(ctx context.Context, p *entities.Payment) (*entities.Shipment, error)
	GetSnapshot(ctx context.Context, paymentID string) (entities.PaymentSnapshot, error)
	ListTransactions(ctx context.Context, paymentID string) ([]entities.TransactionEntry, error)
}

type PaymentUseCase struct {
	gateway      interfaces.IPaymentGateway
	snapshots    interfaces.IPaymentSnapshotRepository
	transactions interfaces.ITransactionRepository
	now          func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the engine. snapshots and transactions may be nil,
// in which case reconciled payments are not persisted.
func NewPaymentUseCase(gateway interfaces.IPaymentGateway, snapshots interfaces.IPaymentSnapshotRepository, transactions interfaces.ITransactionRepository) *PaymentUseCase {
	return &PaymentUseCase{
		gateway:      gateway,
		snapshots:    snapshots,
		transactions: transactions,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) Authorize(ctx context.Context, req entities.TransactionRequest) (*entities.Payment, error) {
	return u.initiate(ctx, "authorize", req, u.gatewayAuthorize)
}

func (u *PaymentUseCase) Charge(ctx context.Context, req entities.TransactionRequest) (*entities.Payment, error) {
	return u.initiate(ctx, "charge", req, u.gatewayCharge)
}

func (u *PaymentUseCase) gatewayAuthorize(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return u.gateway.Authorize(ctx, req)
}

func (u *PaymentUseCase) gatewayCharge(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return u.gateway.Charge(ctx, req)
}

func (u *PaymentUseCase) initiate(
	ctx context.Context,
	op string,
	req entities.TransactionRequest,
	call func(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error),
) (*entities.Payment, error) {
	log.Printf("[payment][usecase] %s start amount=%s currency=%s", op, req.Amount, req.Currency)
	if !req.Amount.IsPositive() {
		return nil, entities.ErrInvalidAmount
	}
	req.Amount = entities.RoundAmount(req.Amount)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(req.Currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured op=%s", op)
		return nil, ErrPaymentGatewayNotConfigured
	}

	resp, err := call(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] %s failed err=%v", op, err)
		return nil, err
	}

	p := entities.NewPayment(resp.ID)
	p.Currency = req.Currency
	if err := applyPaymentResponse(p, resp); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.ID) == "" {
		log.Printf("[payment][usecase] %s response without payment id", op)
		return nil, ErrInvalidPaymentID
	}
	log.Printf("[payment][usecase] %s success payment_id=%s state=%s total=%s", op, p.ID, p.State, p.Amount().Total)

	if err := u.persist(ctx, p); err != nil {
		return p, err
	}
	return p, nil
}

// Fetch rehydrates a payment from the server view.
func (u *PaymentUseCase) Fetch(ctx context.Context, paymentID string) (*entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return nil, ErrPaymentGatewayNotConfigured
	}

	resp, err := u.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] fetch failed payment_id=%s err=%v", paymentID, err)
		return nil, err
	}

	p := entities.NewPayment(paymentID)
	if err := applyPaymentResponse(p, resp); err != nil {
		return nil, err
	}
	log.Printf("[payment][usecase] fetch success payment_id=%s state=%s transactions=%d", p.ID, p.State, len(resp.Transactions))

	if err := u.persist(ctx, p); err != nil {
		return p, err
	}
	return p, nil
}

// Ship records a shipment for the payment.
func (u *PaymentUseCase) Ship(ctx context.Context, p *entities.Payment) (*entities.Shipment, error) {
	if err := u.checkPayment(p); err != nil {
		return nil, err
	}
	log.Printf("[payment][usecase] ship start payment_id=%s", p.ID)

	resp, err := u.gateway.Ship(ctx, p.ID)
	if err != nil {
		log.Printf("[payment][usecase] ship failed payment_id=%s err=%v", p.ID, err)
		return nil, err
	}
	if err := applyPaymentResponse(p, resp); err != nil {
		return nil, err
	}
	ref, err := processedRef(resp, entities.TransactionTypeShipment)
	if err != nil {
		return nil, err
	}
	sh := p.Shipment(ref.ID)
	if sh == nil {
		return nil, fmt.Errorf("%w: shipment %s not merged", ErrMissingProcessedTransaction, ref.ID)
	}
	log.Printf("[payment][usecase] ship success payment_id=%s shipment_id=%s", p.ID, ref.ID)

	return sh, u.persist(ctx, p)
}

func (u *PaymentUseCase) GetSnapshot(ctx context.Context, paymentID string) (entities.PaymentSnapshot, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentSnapshot{}, ErrInvalidPaymentID
	}
	if u.snapshots == nil {
		return entities.PaymentSnapshot{}, ErrSnapshotsNotConfigured
	}

	s, err := u.snapshots.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	if s.ID == "" {
		return entities.PaymentSnapshot{}, ErrPaymentSnapshotNotFound
	}
	return s, nil
}

func (u *PaymentUseCase) ListTransactions(ctx context.Context, paymentID string) ([]entities.TransactionEntry, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	if u.transactions == nil {
		return nil, ErrSnapshotsNotConfigured
	}
	return u.transactions.ListByPaymentID(ctx, paymentID)
}

func (u *PaymentUseCase) checkPayment(p *entities.Payment) error {
	if p == nil {
		return ErrNilPayment
	}
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}
	return nil
}

// persist stores the reconciled snapshot and flattened transactions of p.
func (u *PaymentUseCase) persist(ctx context.Context, p *entities.Payment) error {
	now := u.now()
	if u.snapshots != nil {
		if _, err := u.snapshots.Save(ctx, entities.NewPaymentSnapshot(p, now)); err != nil {
			log.Printf("[payment][usecase] snapshot save failed payment_id=%s err=%v", p.ID, err)
			return fmt.Errorf("%w: %w", ErrSnapshotNotStored, err)
		}
	}
	if u.transactions != nil {
		entries := entities.TransactionEntries(p, now)
		if len(entries) == 0 {
			return nil
		}
		if err := u.transactions.SaveAll(ctx, entries); err != nil {
			log.Printf("[payment][usecase] transactions save failed payment_id=%s err=%v", p.ID, err)
			return fmt.Errorf("%w: %w", ErrSnapshotNotStored, err)
		}
	}
	return nil
}
