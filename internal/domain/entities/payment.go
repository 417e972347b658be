package entities

import (
	"github.com/shopspring/decimal"
)

// PaymentState is supplied by the server and stored verbatim.
type PaymentState string

const (
	PaymentStateCreate        PaymentState = "create"
	PaymentStatePending       PaymentState = "pending"
	PaymentStateCompleted     PaymentState = "completed"
	PaymentStateCanceled      PaymentState = "canceled"
	PaymentStatePartly        PaymentState = "partly"
	PaymentStatePaymentReview PaymentState = "payment_review"
	PaymentStateChargeback    PaymentState = "chargeback"
)

// Payment is the in-memory mirror of a remote payment. It exclusively owns its
// authorization, charges and shipments; every registry mutation recomputes Amount.
//
// A Payment is not safe for concurrent use.
type Payment struct {
	ID        string
	State     PaymentState
	Currency  string
	OrderID   string
	Resources PaymentResources

	authorization *Authorization
	charges       []*Charge
	chargeIndex   map[string]*Charge
	shipments     []*Shipment
	shipmentIndex map[string]*Shipment

	amount Amount
}

func NewPayment(id string) *Payment {
	return &Payment{
		ID:            id,
		State:         PaymentStateCreate,
		chargeIndex:   make(map[string]*Charge),
		shipmentIndex: make(map[string]*Shipment),
	}
}

func (p *Payment) Authorization() *Authorization {
	return p.authorization
}

// Charges returns the charges in registry order.
func (p *Payment) Charges() []*Charge {
	out := make([]*Charge, len(p.charges))
	copy(out, p.charges)
	return out
}

func (p *Payment) Charge(id string) *Charge {
	return p.chargeIndex[id]
}

func (p *Payment) ChargeByIndex(i int) *Charge {
	if i < 0 || i >= len(p.charges) {
		return nil
	}
	return p.charges[i]
}

func (p *Payment) Shipments() []*Shipment {
	out := make([]*Shipment, len(p.shipments))
	copy(out, p.shipments)
	return out
}

func (p *Payment) Shipment(id string) *Shipment {
	return p.shipmentIndex[id]
}

// Cancellation looks the id up under the authorization first, then under each charge.
func (p *Payment) Cancellation(id string) *Cancellation {
	if p.authorization != nil {
		if cl := p.authorization.Cancellations.Get(id); cl != nil {
			return cl
		}
	}
	for _, ch := range p.charges {
		if cl := ch.Cancellations.Get(id); cl != nil {
			return cl
		}
	}
	return nil
}

// Cancellations returns every cancellation, authorization reversals first.
func (p *Payment) Cancellations() []*Cancellation {
	var out []*Cancellation
	if p.authorization != nil {
		out = append(out, p.authorization.Cancellations.All()...)
	}
	for _, ch := range p.charges {
		out = append(out, ch.Cancellations.All()...)
	}
	return out
}

// HasTransactions reports whether the payment holds an authorization or any charge.
func (p *Payment) HasTransactions() bool {
	return p.authorization != nil || len(p.charges) > 0
}

func (p *Payment) Amount() Amount {
	return p.amount
}

// UpsertAuthorization creates the authorization or updates the existing one in place.
func (p *Payment) UpsertAuthorization(id string, amount decimal.Decimal) (*Authorization, bool) {
	defer p.Recompute()
	if p.authorization != nil {
		p.authorization.Amount = RoundAmount(amount)
		return p.authorization, true
	}
	p.authorization = &Authorization{ID: id, Amount: RoundAmount(amount)}
	return p.authorization, false
}

// UpsertCharge updates the charge with the given id or appends a new one.
func (p *Payment) UpsertCharge(id string, amount decimal.Decimal) (*Charge, bool) {
	defer p.Recompute()
	p.ensureIndexes()
	if ch, ok := p.chargeIndex[id]; ok {
		ch.Amount = RoundAmount(amount)
		return ch, true
	}
	ch := &Charge{ID: id, Amount: RoundAmount(amount)}
	p.charges = append(p.charges, ch)
	p.chargeIndex[id] = ch
	return ch, false
}

// UpsertShipment updates the shipment with the given id or appends a new one.
func (p *Payment) UpsertShipment(id string, amount decimal.Decimal) (*Shipment, bool) {
	p.ensureIndexes()
	if sh, ok := p.shipmentIndex[id]; ok {
		sh.Amount = RoundAmount(amount)
		return sh, true
	}
	sh := &Shipment{ID: id, Amount: RoundAmount(amount)}
	p.shipments = append(p.shipments, sh)
	p.shipmentIndex[id] = sh
	return sh, false
}

// UpsertAuthorizationCancellation records a reversal under the authorization.
func (p *Payment) UpsertAuthorizationCancellation(id string, amount decimal.Decimal) (*Cancellation, bool, error) {
	if p.authorization == nil {
		return nil, false, &MissingParentResourceError{Parent: TransactionTypeAuthorize}
	}
	defer p.Recompute()
	cl, found := p.authorization.Cancellations.Upsert(id, amount, p.authorization.ID, TransactionTypeAuthorize)
	return cl, found, nil
}

// UpsertChargeCancellation records a refund under the charge with chargeID.
func (p *Payment) UpsertChargeCancellation(chargeID, id string, amount decimal.Decimal) (*Cancellation, bool, error) {
	ch := p.chargeIndex[chargeID]
	if ch == nil {
		return nil, false, &MissingParentResourceError{Parent: TransactionTypeCharge, ParentID: chargeID}
	}
	defer p.Recompute()
	cl, found := ch.Cancellations.Upsert(id, amount, chargeID, TransactionTypeCharge)
	return cl, found, nil
}

// Recompute derives Amount from the registry. Total is the authorized amount,
// or the sum of charges for a charge-only payment.
func (p *Payment) Recompute() Amount {
	charged := decimal.Zero
	canceled := decimal.Zero
	for _, ch := range p.charges {
		charged = charged.Add(ch.Amount)
		canceled = canceled.Add(ch.Cancellations.Total())
	}

	total := charged
	if p.authorization != nil {
		total = p.authorization.Amount
		canceled = canceled.Add(p.authorization.Cancellations.Total())
	}

	p.amount = NewAmount(total, charged, canceled, p.Currency)
	return p.amount
}

// AuthorizationOpenAmount is what can still be charged or reversed on the
// authorization: its amount minus charges and reversals, never negative.
func (p *Payment) AuthorizationOpenAmount() decimal.Decimal {
	if p.authorization == nil {
		return decimal.Zero
	}
	open := MinAmount(p.amount.Remaining, p.authorization.Amount)
	open = open.Sub(p.authorization.Cancellations.Total())
	return ClampZero(RoundAmount(open))
}

func (p *Payment) ensureIndexes() {
	if p.chargeIndex == nil {
		p.chargeIndex = make(map[string]*Charge)
	}
	if p.shipmentIndex == nil {
		p.shipmentIndex = make(map[string]*Shipment)
	}
}
