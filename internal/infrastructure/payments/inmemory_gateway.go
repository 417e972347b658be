package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultInMemoryBaseURL = "https://sandbox.payments.local"

// InMemoryGateway simulates the payment API server: it keeps every payment in
// memory and enforces the same settlement rules, returning the same error
// codes the remote API does. It backs mock mode and scenario tests.
type InMemoryGateway struct {
	mu       sync.Mutex
	baseURL  string
	prefix   string
	payments map[string]*simPayment
}

type simTransaction struct {
	id         string
	parentID   string
	typ        entities.TransactionType
	amount     decimal.Decimal
	url        string
	chargeback bool
}

type simPayment struct {
	id        string
	currency  string
	orderID   string
	resources entities.PaymentResources
	txs       []*simTransaction
}

var _ interfaces.IPaymentGateway = (*InMemoryGateway)(nil)

func NewInMemoryGateway() *InMemoryGateway {
	log.Printf("[payment][gateway] in-memory gateway initialized")
	return &InMemoryGateway{
		baseURL:  defaultInMemoryBaseURL,
		prefix:   "s",
		payments: make(map[string]*simPayment),
	}
}

func (g *InMemoryGateway) Authorize(_ context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return g.initiate(req, entities.TransactionTypeAuthorize, entities.TypeCodeAuthorization, "authorize")
}

func (g *InMemoryGateway) Charge(_ context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return g.initiate(req, entities.TransactionTypeCharge, entities.TypeCodeCharge, "charges")
}

func (g *InMemoryGateway) initiate(req entities.TransactionRequest, t entities.TransactionType, code, segment string) (entities.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAmountIsMissing, "amount is missing", http.StatusBadRequest)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p := &simPayment{
		id:       g.newID(entities.TypeCodePayment),
		currency: req.Currency,
		orderID:  req.OrderID,
		resources: entities.PaymentResources{
			CustomerID:    req.CustomerID,
			PaymentTypeID: req.PaymentTypeID,
		},
	}
	g.payments[p.id] = p

	tx := g.addTransaction(p, t, code, "", g.paymentURL(p.id)+"/"+segment, req.Amount)
	log.Printf("[payment][gateway] in-memory %s payment_id=%s transaction_id=%s amount=%s", t, p.id, tx.id, tx.amount)
	return p.response(tx), nil
}

func (g *InMemoryGateway) ChargeAuthorization(_ context.Context, paymentID string, amount decimal.Decimal) (entities.PaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	auth := p.authorization()
	if auth == nil {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeUnknown, "payment has no authorization", http.StatusBadRequest)
	}

	open := p.authorizationOpen()
	if !open.IsPositive() {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCharged, "authorization already charged", http.StatusConflict)
	}
	amount = entities.RoundAmount(amount)
	if !amount.IsPositive() {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAmountIsMissing, "amount is missing", http.StatusBadRequest)
	}
	if amount.GreaterThan(open) {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeChargedAmountHigherThanExpected, fmt.Sprintf("charged amount %s is higher than expected %s", amount, open), http.StatusBadRequest)
	}

	tx := g.addTransaction(p, entities.TransactionTypeCharge, entities.TypeCodeCharge, "", g.paymentURL(p.id)+"/charges", amount)
	return p.response(tx), nil
}

func (g *InMemoryGateway) CancelAuthorization(_ context.Context, paymentID, authorizationID string, amount *decimal.Decimal) (entities.PaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	auth := p.authorization()
	if auth == nil || auth.id != authorizationID {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeUnknown, "authorization not found", http.StatusNotFound)
	}

	open := p.authorizationOpen()
	if !open.IsPositive() {
		if p.charged().IsPositive() {
			return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCharged, "authorization already charged", http.StatusConflict)
		}
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCancelled, "authorization already cancelled", http.StatusConflict)
	}

	toCancel, err := capAmount(amount, open)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	tx := g.addTransaction(p, entities.TransactionTypeCancelAuthorize, entities.TypeCodeCancellation, auth.id, auth.url+"/cancels", toCancel)
	return p.response(tx), nil
}

func (g *InMemoryGateway) CancelCharge(_ context.Context, paymentID, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (entities.PaymentResponse, error) {
	if reason == "" {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeCancelReasonCodeIsMissing, "cancel reason code is missing", http.StatusBadRequest)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	ch := p.transaction(chargeID, entities.TransactionTypeCharge)
	if ch == nil {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeUnknown, "charge not found", http.StatusNotFound)
	}
	if ch.chargeback {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyChargedBack, "charge already charged back", http.StatusConflict)
	}

	open := p.chargeOpen(ch)
	if !open.IsPositive() {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCancelled, "charge already cancelled", http.StatusConflict)
	}

	toCancel, err := capAmount(amount, open)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	tx := g.addTransaction(p, entities.TransactionTypeCancelCharge, entities.TypeCodeCancellation, ch.id, ch.url+"/cancels", toCancel)
	return p.response(tx), nil
}

func (g *InMemoryGateway) Ship(_ context.Context, paymentID string) (entities.PaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	tx := g.addTransaction(p, entities.TransactionTypeShipment, entities.TypeCodeShipment, "", g.paymentURL(p.id)+"/shipments", p.total())
	return p.response(tx), nil
}

func (g *InMemoryGateway) FetchPayment(_ context.Context, paymentID string) (entities.PaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	return p.response(nil), nil
}

// ChargeBack marks a charge as charged back by the card holder's bank.
func (g *InMemoryGateway) ChargeBack(paymentID, chargeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.payment(paymentID)
	if err != nil {
		return err
	}
	ch := p.transaction(chargeID, entities.TransactionTypeCharge)
	if ch == nil {
		return simError(entities.ErrorCodeUnknown, "charge not found", http.StatusNotFound)
	}
	ch.chargeback = true
	return nil
}

func (g *InMemoryGateway) payment(id string) (*simPayment, error) {
	p, ok := g.payments[strings.TrimSpace(id)]
	if !ok {
		return nil, simError(entities.ErrorCodePaymentNotFound, "payment not found", http.StatusNotFound)
	}
	return p, nil
}

func (g *InMemoryGateway) newID(code string) string {
	return entities.NewResourceID(g.prefix, code, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func (g *InMemoryGateway) paymentURL(paymentID string) string {
	return g.baseURL + "/v1/payments/" + paymentID
}

func (g *InMemoryGateway) addTransaction(p *simPayment, t entities.TransactionType, code, parentID, collectionURL string, amount decimal.Decimal) *simTransaction {
	id := g.newID(code)
	tx := &simTransaction{
		id:       id,
		parentID: parentID,
		typ:      t,
		amount:   entities.RoundAmount(amount),
		url:      collectionURL + "/" + id,
	}
	p.txs = append(p.txs, tx)
	return tx
}

func capAmount(amount *decimal.Decimal, open decimal.Decimal) (decimal.Decimal, error) {
	if amount == nil {
		return open, nil
	}
	a := entities.RoundAmount(*amount)
	if !a.IsPositive() {
		return decimal.Zero, simError(entities.ErrorCodeAmountIsMissing, "amount is missing", http.StatusBadRequest)
	}
	return entities.MinAmount(a, open), nil
}

func simError(code entities.ErrorCode, msg string, status int) *entities.GatewayError {
	return &entities.GatewayError{Code: code, MerchantMessage: msg, ClientMessage: msg, StatusCode: status}
}

func (p *simPayment) authorization() *simTransaction {
	for _, tx := range p.txs {
		if tx.typ == entities.TransactionTypeAuthorize {
			return tx
		}
	}
	return nil
}

func (p *simPayment) transaction(id string, t entities.TransactionType) *simTransaction {
	for _, tx := range p.txs {
		if tx.id == id && tx.typ == t {
			return tx
		}
	}
	return nil
}

func (p *simPayment) sum(t entities.TransactionType, parentID string) decimal.Decimal {
	s := decimal.Zero
	for _, tx := range p.txs {
		if tx.typ == t && (parentID == "" || tx.parentID == parentID) {
			s = s.Add(tx.amount)
		}
	}
	return s
}

func (p *simPayment) charged() decimal.Decimal {
	return p.sum(entities.TransactionTypeCharge, "")
}

func (p *simPayment) total() decimal.Decimal {
	if auth := p.authorization(); auth != nil {
		return auth.amount.Sub(p.sum(entities.TransactionTypeCancelAuthorize, ""))
	}
	return p.charged()
}

func (p *simPayment) authorizationOpen() decimal.Decimal {
	auth := p.authorization()
	if auth == nil {
		return decimal.Zero
	}
	return entities.ClampZero(p.total().Sub(p.charged()))
}

func (p *simPayment) chargeOpen(ch *simTransaction) decimal.Decimal {
	return entities.ClampZero(ch.amount.Sub(p.sum(entities.TransactionTypeCancelCharge, ch.id)))
}

func (p *simPayment) state() entities.PaymentState {
	for _, tx := range p.txs {
		if tx.chargeback {
			return entities.PaymentStateChargeback
		}
	}

	charged := p.charged()
	refunded := p.sum(entities.TransactionTypeCancelCharge, "")
	total := p.total()

	if p.authorization() == nil {
		if refunded.GreaterThanOrEqual(charged) {
			return entities.PaymentStateCanceled
		}
		return entities.PaymentStateCompleted
	}
	switch {
	case charged.IsZero() && !total.IsPositive():
		return entities.PaymentStateCanceled
	case charged.IsZero():
		return entities.PaymentStatePending
	case refunded.GreaterThanOrEqual(charged):
		return entities.PaymentStateCanceled
	case charged.GreaterThanOrEqual(total):
		return entities.PaymentStateCompleted
	default:
		return entities.PaymentStatePartly
	}
}

func (p *simPayment) response(processed *simTransaction) entities.PaymentResponse {
	resp := entities.PaymentResponse{
		ID:           p.id,
		State:        p.state(),
		Currency:     p.currency,
		OrderID:      p.orderID,
		Resources:    p.resources,
		Transactions: make([]entities.TransactionRecord, 0, len(p.txs)),
	}
	for _, tx := range p.txs {
		resp.Transactions = append(resp.Transactions, tx.record())
	}
	if processed != nil {
		rec := processed.record()
		resp.Processed = &rec
	}
	return resp
}

func (tx *simTransaction) record() entities.TransactionRecord {
	return entities.TransactionRecord{URL: tx.url, Amount: tx.amount, Type: tx.typ}
}
