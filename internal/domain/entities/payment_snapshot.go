package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSnapshot is the reconciled view of a payment persisted after every operation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Figures are the recomputed Amount, not the server totals.
type PaymentSnapshot struct {
	ID        string          `json:"id"`
	State     PaymentState    `json:"state"`
	Currency  string          `json:"currency"`
	Total     decimal.Decimal `json:"total"`
	Charged   decimal.Decimal `json:"charged"`
	Canceled  decimal.Decimal `json:"canceled"`
	Remaining decimal.Decimal `json:"remaining"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TransactionEntry is one flattened transaction of a payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
type TransactionEntry struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	ParentID  string          `json:"parent_id,omitempty"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewPaymentSnapshot captures the current state and amount of p.
func NewPaymentSnapshot(p *Payment, at time.Time) PaymentSnapshot {
	a := p.Amount()
	return PaymentSnapshot{
		ID:        p.ID,
		State:     p.State,
		Currency:  p.Currency,
		Total:     a.Total,
		Charged:   a.Charged,
		Canceled:  a.Canceled,
		Remaining: a.Remaining,
		UpdatedAt: at.UTC(),
	}
}

// TransactionEntries flattens the registry of p: authorization and its
// reversals, then each charge followed by its refunds, then shipments.
func TransactionEntries(p *Payment, at time.Time) []TransactionEntry {
	at = at.UTC()
	var out []TransactionEntry
	add := func(id, parentID string, t TransactionType, amount decimal.Decimal) {
		out = append(out, TransactionEntry{ID: id, PaymentID: p.ID, ParentID: parentID, Type: t, Amount: amount, UpdatedAt: at})
	}

	if auth := p.Authorization(); auth != nil {
		add(auth.ID, "", TransactionTypeAuthorize, auth.Amount)
		for _, cl := range auth.Cancellations.All() {
			add(cl.ID, auth.ID, TransactionTypeCancelAuthorize, cl.Amount)
		}
	}
	for _, ch := range p.Charges() {
		add(ch.ID, "", TransactionTypeCharge, ch.Amount)
		for _, cl := range ch.Cancellations.All() {
			add(cl.ID, ch.ID, TransactionTypeCancelCharge, cl.Amount)
		}
	}
	for _, sh := range p.Shipments() {
		add(sh.ID, "", TransactionTypeShipment, sh.Amount)
	}
	return out
}
