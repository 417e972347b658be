package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	mercadoPagoIDPrefix = "m"
	mercadoPagoBaseURL  = "https://api.mercadopago.com"

	mpFlowAuthorize = "authorize"
	mpFlowCharge    = "charge"
)

// MercadoPagoGateway maps the payment model onto Mercado Pago: an
// authorization is a payment created with capture=false, charging it is a
// capture, reversing it is a cancel and charge cancellations are refunds.
//
// Mercado Pago allows a single capture per authorization and releases the rest
// of the authorized amount; the release is exposed as an authorization reversal.
type MercadoPagoGateway struct {
	client  payment.Client
	refunds refund.Client
	mock    *InMemoryGateway
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		mock := NewInMemoryGateway()
		mock.prefix = mercadoPagoIDPrefix
		mock.baseURL = mercadoPagoBaseURL
		return &MercadoPagoGateway{mock: mock}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), refunds: refund.NewClient(cfg)}, nil
}

// mpPayment holds the fields of a Mercado Pago payment the gateway reads.
// Metadata carries what the payment model needs and Mercado Pago does not keep.
type mpPayment struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	CurrencyID        string          `json:"currency_id"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Captured          bool            `json:"captured"`
	ExternalReference string          `json:"external_reference"`
	PaymentMethodID   string          `json:"payment_method_id"`
	Payer             struct {
		ID any `json:"id"`
	} `json:"payer"`
	Metadata struct {
		Flow             string `json:"flow"`
		AuthorizedAmount string `json:"authorized_amount"`
	} `json:"metadata"`
	Refunds []mpRefund `json:"refunds"`
}

type mpRefund struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.Authorize(ctx, req)
	}
	return g.create(ctx, req, mpFlowAuthorize)
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.Charge(ctx, req)
	}
	return g.create(ctx, req, mpFlowCharge)
}

func (g *MercadoPagoGateway) create(ctx context.Context, req entities.TransactionRequest, flow string) (entities.PaymentResponse, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentResponse{}, ErrMercadoPagoGatewayNotConfigured
	}
	amount := entities.RoundAmount(req.Amount)
	log.Printf("[payment][gateway] create start flow=%s amount=%s currency=%s", flow, amount, req.Currency)

	payload := map[string]any{
		"transaction_amount": amount.InexactFloat64(),
		"payment_method_id":  req.PaymentTypeID,
		"capture":            flow == mpFlowCharge,
		"external_reference": req.OrderID,
		"metadata": map[string]any{
			"flow":              flow,
			"authorized_amount": amount.String(),
		},
	}
	if req.CustomerID != "" {
		payload["payer"] = map[string]any{"id": req.CustomerID}
	}
	if req.ReturnURL != "" {
		payload["callback_url"] = req.ReturnURL
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(b, &sdkReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.PaymentResponse{}, err
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.PaymentResponse{}, sdkError(err)
	}
	p, err := decodeMPPayment(resp)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if p.Metadata.Flow == "" {
		p.Metadata.Flow = flow
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", p.ID, p.Status)

	out := p.toResponse()
	if flow == mpFlowCharge {
		out.Processed = findRecord(out, entities.TransactionTypeCharge, mpChargeID(p.ID))
	} else {
		out.Processed = findRecord(out, entities.TransactionTypeAuthorize, mpAuthorizationID(p.ID))
	}
	return out, nil
}

func (g *MercadoPagoGateway) ChargeAuthorization(ctx context.Context, paymentID string, amount decimal.Decimal) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.ChargeAuthorization(ctx, paymentID, amount)
	}
	p, err := g.get(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if p.Metadata.Flow == mpFlowCharge || p.Captured {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCharged, "payment already captured", http.StatusConflict)
	}
	if p.Status == "cancelled" {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCancelled, "authorization cancelled", http.StatusConflict)
	}
	amount = entities.RoundAmount(amount)
	if amount.GreaterThan(p.authorizedAmount()) {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeChargedAmountHigherThanExpected, fmt.Sprintf("capture %s exceeds authorized %s", amount, p.authorizedAmount()), http.StatusBadRequest)
	}

	log.Printf("[payment][gateway] capture start provider_payment_id=%d amount=%s", p.ID, amount)
	resp, err := g.client.CaptureAmount(ctx, int(p.ID), amount.InexactFloat64())
	if err != nil {
		log.Printf("[payment][gateway] sdk capture failed provider_payment_id=%d err=%v", p.ID, err)
		return entities.PaymentResponse{}, sdkError(err)
	}
	captured, err := decodeMPPayment(resp)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	captured.Metadata = p.Metadata

	out := captured.toResponse()
	out.Processed = findRecord(out, entities.TransactionTypeCharge, mpChargeID(p.ID))
	return out, nil
}

func (g *MercadoPagoGateway) CancelAuthorization(ctx context.Context, paymentID, authorizationID string, amount *decimal.Decimal) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.CancelAuthorization(ctx, paymentID, authorizationID, amount)
	}
	p, err := g.get(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if p.Captured {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCharged, "authorization already captured", http.StatusConflict)
	}
	if p.Status == "cancelled" {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCancelled, "authorization already cancelled", http.StatusConflict)
	}
	if amount != nil && entities.RoundAmount(*amount).LessThan(p.authorizedAmount()) {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeUnsupportedOperation, "partial authorization reversal is not supported", http.StatusBadRequest)
	}

	log.Printf("[payment][gateway] cancel start provider_payment_id=%d", p.ID)
	resp, err := g.client.Cancel(ctx, int(p.ID))
	if err != nil {
		log.Printf("[payment][gateway] sdk cancel failed provider_payment_id=%d err=%v", p.ID, err)
		return entities.PaymentResponse{}, sdkError(err)
	}
	cancelled, err := decodeMPPayment(resp)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	cancelled.Metadata = p.Metadata

	out := cancelled.toResponse()
	out.Processed = findRecord(out, entities.TransactionTypeCancelAuthorize, mpReversalID(p.ID))
	return out, nil
}

func (g *MercadoPagoGateway) CancelCharge(ctx context.Context, paymentID, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.CancelCharge(ctx, paymentID, chargeID, amount, reason)
	}
	if reason == "" {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeCancelReasonCodeIsMissing, "cancel reason code is missing", http.StatusBadRequest)
	}
	p, err := g.get(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if !p.Captured || mpChargeID(p.ID) != chargeID {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeUnknown, "charge not found", http.StatusNotFound)
	}
	if p.Status == "charged_back" {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyChargedBack, "payment charged back", http.StatusConflict)
	}
	open := entities.ClampZero(p.TransactionAmount.Sub(p.refunded()))
	if !open.IsPositive() {
		return entities.PaymentResponse{}, simError(entities.ErrorCodeAlreadyCancelled, "payment already refunded", http.StatusConflict)
	}

	var rf any
	if amount == nil || !entities.RoundAmount(*amount).LessThan(open) {
		log.Printf("[payment][gateway] refund start provider_payment_id=%d amount=all reason=%s", p.ID, reason)
		rf, err = g.refunds.Create(ctx, int(p.ID))
	} else {
		a := entities.RoundAmount(*amount)
		log.Printf("[payment][gateway] refund start provider_payment_id=%d amount=%s reason=%s", p.ID, a, reason)
		rf, err = g.refunds.CreatePartialRefund(ctx, int(p.ID), a.InexactFloat64())
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed provider_payment_id=%d err=%v", p.ID, err)
		return entities.PaymentResponse{}, sdkError(err)
	}

	var created mpRefund
	if err := roundTrip(rf, &created); err != nil {
		return entities.PaymentResponse{}, err
	}
	refunded, err := g.get(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	if !refunded.hasRefund(created.ID) {
		refunded.Refunds = append(refunded.Refunds, created)
	}

	out := refunded.toResponse()
	out.Processed = findRecord(out, entities.TransactionTypeCancelCharge, mpRefundID(created.ID))
	return out, nil
}

func (g *MercadoPagoGateway) Ship(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.Ship(ctx, paymentID)
	}
	return entities.PaymentResponse{}, simError(entities.ErrorCodeUnsupportedOperation, "shipments are not supported by Mercado Pago", http.StatusBadRequest)
}

func (g *MercadoPagoGateway) FetchPayment(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.FetchPayment(ctx, paymentID)
	}
	p, err := g.get(ctx, paymentID)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	return p.toResponse(), nil
}

func (g *MercadoPagoGateway) get(ctx context.Context, paymentID string) (mpPayment, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return mpPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := mpProviderID(paymentID)
	if err != nil {
		return mpPayment{}, err
	}
	resp, err := g.client.Get(ctx, int(id))
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return mpPayment{}, sdkError(err)
	}
	return decodeMPPayment(resp)
}

// toResponse renders the Mercado Pago payment as a flat transaction list.
func (p mpPayment) toResponse() entities.PaymentResponse {
	paymentID := entities.NewResourceID(mercadoPagoIDPrefix, entities.TypeCodePayment, strconv.FormatInt(p.ID, 10))
	base := mercadoPagoBaseURL + "/v1/payments/" + paymentID

	out := entities.PaymentResponse{
		ID:        paymentID,
		State:     p.state(),
		Currency:  strings.ToUpper(p.CurrencyID),
		OrderID:   p.ExternalReference,
		Resources: entities.PaymentResources{CustomerID: p.payerID(), PaymentTypeID: p.PaymentMethodID},
	}
	add := func(t entities.TransactionType, url string, amount decimal.Decimal) {
		out.Transactions = append(out.Transactions, entities.TransactionRecord{URL: url, Amount: entities.RoundAmount(amount), Type: t})
	}

	chargeURL := base + "/charges/" + mpChargeID(p.ID)
	if p.Metadata.Flow == mpFlowCharge {
		add(entities.TransactionTypeCharge, chargeURL, p.TransactionAmount)
	} else {
		authorized := p.authorizedAmount()
		authURL := base + "/authorize/" + mpAuthorizationID(p.ID)
		add(entities.TransactionTypeAuthorize, authURL, authorized)
		switch {
		case p.Captured:
			add(entities.TransactionTypeCharge, chargeURL, p.TransactionAmount)
			if released := authorized.Sub(p.TransactionAmount); released.IsPositive() {
				add(entities.TransactionTypeCancelAuthorize, authURL+"/cancels/"+mpReversalID(p.ID), released)
			}
		case p.Status == "cancelled":
			add(entities.TransactionTypeCancelAuthorize, authURL+"/cancels/"+mpReversalID(p.ID), authorized)
		}
	}
	for _, rf := range p.Refunds {
		add(entities.TransactionTypeCancelCharge, chargeURL+"/cancels/"+mpRefundID(rf.ID), rf.Amount)
	}
	return out
}

func (p mpPayment) state() entities.PaymentState {
	switch p.Status {
	case "approved":
		if p.refunded().IsPositive() {
			return entities.PaymentStatePartly
		}
		return entities.PaymentStateCompleted
	case "authorized", "pending", "in_process":
		return entities.PaymentStatePending
	case "cancelled", "refunded", "rejected":
		return entities.PaymentStateCanceled
	case "charged_back":
		return entities.PaymentStateChargeback
	case "in_mediation":
		return entities.PaymentStatePaymentReview
	default:
		return entities.PaymentStateCreate
	}
}

func (p mpPayment) payerID() string {
	if p.Payer.ID == nil {
		return ""
	}
	return fmt.Sprint(p.Payer.ID)
}

func (p mpPayment) authorizedAmount() decimal.Decimal {
	if d, err := decimal.NewFromString(p.Metadata.AuthorizedAmount); err == nil && d.IsPositive() {
		return entities.RoundAmount(d)
	}
	return entities.RoundAmount(p.TransactionAmount)
}

func (p mpPayment) refunded() decimal.Decimal {
	s := decimal.Zero
	for _, rf := range p.Refunds {
		s = s.Add(rf.Amount)
	}
	return entities.RoundAmount(s)
}

func (p mpPayment) hasRefund(id int64) bool {
	for _, rf := range p.Refunds {
		if rf.ID == id {
			return true
		}
	}
	return false
}

func mpAuthorizationID(id int64) string {
	return entities.NewResourceID(mercadoPagoIDPrefix, entities.TypeCodeAuthorization, strconv.FormatInt(id, 10))
}

func mpChargeID(id int64) string {
	return entities.NewResourceID(mercadoPagoIDPrefix, entities.TypeCodeCharge, strconv.FormatInt(id, 10))
}

// mpReversalID names the synthetic reversal of an authorization; refund ids are numeric.
func mpReversalID(id int64) string {
	return entities.NewResourceID(mercadoPagoIDPrefix, entities.TypeCodeCancellation, "rev"+strconv.FormatInt(id, 10))
}

func mpRefundID(id int64) string {
	return entities.NewResourceID(mercadoPagoIDPrefix, entities.TypeCodeCancellation, strconv.FormatInt(id, 10))
}

// mpProviderID extracts the numeric Mercado Pago id from a payment id.
func mpProviderID(paymentID string) (int64, error) {
	code, ok := entities.ResourceTypeCode(paymentID)
	if !ok || code != entities.TypeCodePayment {
		return 0, simError(entities.ErrorCodePaymentNotFound, "payment not found", http.StatusNotFound)
	}
	suffix := paymentID[strings.LastIndex(paymentID, "-")+1:]
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, simError(entities.ErrorCodePaymentNotFound, "payment not found", http.StatusNotFound)
	}
	return id, nil
}

func decodeMPPayment(resp any) (mpPayment, error) {
	var p mpPayment
	if err := roundTrip(resp, &p); err != nil {
		return mpPayment{}, err
	}
	return p, nil
}

// roundTrip copies an SDK response into a local struct through its JSON form.
func roundTrip(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		log.Printf("[payment][gateway] response unmarshal failed err=%v", err)
		return err
	}
	return nil
}

func findRecord(resp entities.PaymentResponse, t entities.TransactionType, id string) *entities.TransactionRecord {
	for i := len(resp.Transactions) - 1; i >= 0; i-- {
		rec := resp.Transactions[i]
		if rec.Type == t && strings.HasSuffix(rec.URL, "/"+id) {
			return &rec
		}
	}
	return nil
}

func sdkError(err error) *entities.GatewayError {
	return &entities.GatewayError{Code: entities.ErrorCodeUnknown, MerchantMessage: err.Error(), StatusCode: http.StatusBadGateway}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
