package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrMissingPaymentAPIPrivateKey = errors.New("missing PAYMENT_API_PRIVATE_KEY")
var ErrInvalidPaymentAPIURL = errors.New("invalid PAYMENT_API_URL")

const (
	defaultPaymentAPIURL     = "https://api.example-payments.test"
	defaultPaymentAPITimeout = 30 * time.Second
	maxResponseBodyBytes     = 1 << 20
)

// apiErrorCodes maps the remote API error codes to the closed ErrorCode set.
var apiErrorCodes = map[string]entities.ErrorCode{
	"API.340.100.014": entities.ErrorCodeAlreadyCancelled,
	"API.340.100.015": entities.ErrorCodeAlreadyCharged,
	"API.340.100.024": entities.ErrorCodeAlreadyChargedBack,
	"API.330.100.007": entities.ErrorCodeChargedAmountHigherThanExpected,
	"API.320.200.138": entities.ErrorCodeAmountIsMissing,
	"API.340.100.026": entities.ErrorCodeCancelReasonCodeIsMissing,
}

type HTTPGatewayConfig struct {
	BaseURL    string
	PrivateKey string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// HTTPGateway talks to the payment REST API. Every mutation answers with the
// full payment resource, which is returned undigested to the caller.
type HTTPGateway struct {
	baseURL    string
	privateKey string
	client     *http.Client
}

var _ interfaces.IPaymentGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(cfg HTTPGatewayConfig) (*HTTPGateway, error) {
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		log.Printf("[payment][gateway] missing PAYMENT_API_PRIVATE_KEY")
		return nil, ErrMissingPaymentAPIPrivateKey
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultPaymentAPIURL
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		log.Printf("[payment][gateway] invalid api url=%q", cfg.BaseURL)
		return nil, ErrInvalidPaymentAPIURL
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultPaymentAPITimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	log.Printf("[payment][gateway] http client initialized base_url=%s", base)

	return &HTTPGateway{baseURL: base, privateKey: cfg.PrivateKey, client: client}, nil
}

type transactionRequestBody struct {
	Amount    json.Number           `json:"amount"`
	Currency  string                `json:"currency"`
	OrderID   string                `json:"orderId,omitempty"`
	ReturnURL string                `json:"returnUrl,omitempty"`
	Resources *requestResourcesBody `json:"resources,omitempty"`
}

type requestResourcesBody struct {
	CustomerID    string `json:"customerId,omitempty"`
	PaymentTypeID string `json:"typeId,omitempty"`
}

type amountBody struct {
	Amount     *json.Number `json:"amount,omitempty"`
	ReasonCode string       `json:"reasonCode,omitempty"`
}

type apiErrorBody struct {
	IsError bool `json:"isError"`
	Errors  []struct {
		Code            string `json:"code"`
		MerchantMessage string `json:"merchantMessage"`
		CustomerMessage string `json:"customerMessage"`
	} `json:"errors"`
}

func (g *HTTPGateway) Authorize(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodPost, "/v1/payments/authorize", newTransactionRequestBody(req))
}

func (g *HTTPGateway) Charge(ctx context.Context, req entities.TransactionRequest) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodPost, "/v1/payments/charges", newTransactionRequestBody(req))
}

func (g *HTTPGateway) ChargeAuthorization(ctx context.Context, paymentID string, amount decimal.Decimal) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodPost, paymentPath(paymentID, "charges"), amountBody{Amount: wireAmount(&amount)})
}

func (g *HTTPGateway) CancelAuthorization(ctx context.Context, paymentID, authorizationID string, amount *decimal.Decimal) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodPost, paymentPath(paymentID, "authorize", authorizationID, "cancels"), amountBody{Amount: wireAmount(amount)})
}

func (g *HTTPGateway) CancelCharge(ctx context.Context, paymentID, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (entities.PaymentResponse, error) {
	body := amountBody{Amount: wireAmount(amount), ReasonCode: string(reason)}
	return g.do(ctx, http.MethodPost, paymentPath(paymentID, "charges", chargeID, "cancels"), body)
}

func (g *HTTPGateway) Ship(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodPost, paymentPath(paymentID, "shipments"), struct{}{})
}

func (g *HTTPGateway) FetchPayment(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	return g.do(ctx, http.MethodGet, paymentPath(paymentID), nil)
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, payload any) (entities.PaymentResponse, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return entities.PaymentResponse{}, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return entities.PaymentResponse{}, err
	}
	requestID := uuid.NewString()
	req.SetBasicAuth(g.privateKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	log.Printf("[payment][gateway] request start method=%s path=%s request_id=%s", method, path, requestID)

	res, err := g.client.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] request failed method=%s path=%s request_id=%s err=%v", method, path, requestID, err)
		return entities.PaymentResponse{}, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodyBytes))
	if err != nil {
		return entities.PaymentResponse{}, err
	}

	if res.StatusCode >= http.StatusBadRequest {
		gerr := decodeAPIError(res.StatusCode, raw)
		log.Printf("[payment][gateway] request rejected method=%s path=%s request_id=%s status=%d code=%s api_code=%s", method, path, requestID, res.StatusCode, gerr.Code, gerr.APICode)
		return entities.PaymentResponse{}, gerr
	}

	var out entities.PaymentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[payment][gateway] response decode failed method=%s path=%s request_id=%s err=%v", method, path, requestID, err)
		return entities.PaymentResponse{}, fmt.Errorf("decode payment response: %w", err)
	}
	log.Printf("[payment][gateway] request success method=%s path=%s request_id=%s payment_id=%s state=%s transactions=%d", method, path, requestID, out.ID, out.State, len(out.Transactions))
	return out, nil
}

// decodeAPIError turns an error response into a GatewayError. The first
// error entry wins; unknown codes map to UNKNOWN, or PAYMENT_NOT_FOUND on 404.
func decodeAPIError(status int, raw []byte) *entities.GatewayError {
	gerr := &entities.GatewayError{Code: entities.ErrorCodeUnknown, StatusCode: status}

	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		first := body.Errors[0]
		gerr.APICode = first.Code
		gerr.MerchantMessage = first.MerchantMessage
		gerr.ClientMessage = first.CustomerMessage
		if code, ok := apiErrorCodes[first.Code]; ok {
			gerr.Code = code
		}
	} else {
		gerr.MerchantMessage = strings.TrimSpace(string(raw))
	}

	if gerr.Code == entities.ErrorCodeUnknown && status == http.StatusNotFound {
		gerr.Code = entities.ErrorCodePaymentNotFound
	}
	if gerr.MerchantMessage == "" {
		gerr.MerchantMessage = http.StatusText(status)
	}
	return gerr
}

func newTransactionRequestBody(req entities.TransactionRequest) transactionRequestBody {
	body := transactionRequestBody{
		Amount:    json.Number(entities.RoundAmount(req.Amount).String()),
		Currency:  req.Currency,
		OrderID:   req.OrderID,
		ReturnURL: req.ReturnURL,
	}
	if req.CustomerID != "" || req.PaymentTypeID != "" {
		body.Resources = &requestResourcesBody{CustomerID: req.CustomerID, PaymentTypeID: req.PaymentTypeID}
	}
	return body
}

func wireAmount(amount *decimal.Decimal) *json.Number {
	if amount == nil {
		return nil
	}
	n := json.Number(entities.RoundAmount(*amount).String())
	return &n
}

func paymentPath(paymentID string, segments ...string) string {
	parts := append([]string{"/v1/payments", url.PathEscape(paymentID)}, segments...)
	for i := 2; i < len(parts); i++ {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.Join(parts, "/")
}
