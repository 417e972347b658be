package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "payment_reconciler/internal/adapter/http/dto/request"
	response "payment_reconciler/internal/adapter/http/dto/response"
	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase"
	"payment_reconciler/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payments.
//
// Operations on an existing payment fetch it from the gateway first, so they
// always run against the current remote state.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Authorize godoc
// @Summary      Authorize a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TransactionRequest  true  "Authorization"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/authorize [post]
func (h *PaymentHandler) Authorize(c *gin.Context) {
	h.initiate(c, "authorize", h.usecase.Authorize)
}

// Charge godoc
// @Summary      Charge a payment directly
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TransactionRequest  true  "Charge"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/charges [post]
func (h *PaymentHandler) Charge(c *gin.Context) {
	h.initiate(c, "charge", h.usecase.Charge)
}

func (h *PaymentHandler) initiate(
	c *gin.Context,
	op string,
	create func(ctx context.Context, req entities.TransactionRequest) (*entities.Payment, error),
) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] %s invalid payload err=%v", op, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := create(c.Request.Context(), payload.ToEntity())
	if err != nil && p == nil {
		log.Printf("[payment][handler] %s failed err=%v", op, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure(op, p.ID, err)
	log.Printf("[payment][handler] %s success payment_id=%s state=%s", op, p.ID, p.State)

	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// GetPayment godoc
// @Summary      Fetch and reconcile a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ChargeAuthorization godoc
// @Summary      Charge the authorization
// @Description  An omitted amount charges everything still open on the authorization.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                 true   "Payment ID"
// @Param        payload     body      request.ChargeRequest  false  "Charge"
// @Success      201         {object}  response.ChargeResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/charges [post]
func (h *PaymentHandler) ChargeAuthorization(c *gin.Context) {
	var payload request.ChargeRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	p, ok := h.fetch(c)
	if !ok {
		return
	}

	ch, err := h.usecase.ChargeAuthorization(c.Request.Context(), p, payload.Amount)
	if err != nil && ch == nil {
		log.Printf("[payment][handler] charge-authorization failed payment_id=%s err=%v", p.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure("charge-authorization", p.ID, err)

	c.JSON(http.StatusCreated, response.ChargeResultResponse{Charge: response.FromCharge(ch), Payment: response.FromPayment(p)})
}

// CancelAmount godoc
// @Summary      Cancel an amount across the payment
// @Description  The authorization is reversed first, then charges are refunded in order. An omitted amount cancels everything.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                 true   "Payment ID"
// @Param        payload     body      request.CancelRequest  false  "Cancel"
// @Success      200         {object}  response.CancellationResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/cancels [post]
func (h *PaymentHandler) CancelAmount(c *gin.Context) {
	var payload request.CancelRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	p, ok := h.fetch(c)
	if !ok {
		return
	}

	cancellations, err := h.usecase.CancelAmount(c.Request.Context(), p, payload.Amount, payload.Reason())
	if err != nil && !errors.Is(err, usecase.ErrSnapshotNotStored) {
		log.Printf("[payment][handler] cancel-amount failed payment_id=%s completed=%d err=%v", p.ID, len(cancellations), err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure("cancel-amount", p.ID, err)

	c.JSON(http.StatusOK, response.CancellationResultResponse{
		Cancellations: response.FromCancellations(cancellations),
		Payment:       response.FromPayment(p),
	})
}

// CancelAuthorization godoc
// @Summary      Reverse the authorization
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                 true   "Payment ID"
// @Param        payload     body      request.CancelRequest  false  "Cancel"
// @Success      200         {object}  response.CancellationResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/authorize/cancels [post]
func (h *PaymentHandler) CancelAuthorization(c *gin.Context) {
	var payload request.CancelRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	p, ok := h.fetch(c)
	if !ok {
		return
	}

	cl, err := h.usecase.CancelAuthorizationAmount(c.Request.Context(), p, payload.Amount)
	if err != nil && cl == nil {
		log.Printf("[payment][handler] cancel-authorization failed payment_id=%s err=%v", p.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure("cancel-authorization", p.ID, err)

	c.JSON(http.StatusOK, response.CancellationResultResponse{
		Cancellations: response.FromCancellations([]*entities.Cancellation{cl}),
		Payment:       response.FromPayment(p),
	})
}

// CancelCharge godoc
// @Summary      Refund a charge
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                 true   "Payment ID"
// @Param        charge_id   path      string                 true   "Charge ID"
// @Param        payload     body      request.CancelRequest  false  "Cancel"
// @Success      200         {object}  response.CancellationResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/charges/{charge_id}/cancels [post]
func (h *PaymentHandler) CancelCharge(c *gin.Context) {
	var payload request.CancelRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	p, ok := h.fetch(c)
	if !ok {
		return
	}

	chargeID := strings.TrimSpace(c.Param("charge_id"))
	cl, err := h.usecase.CancelCharge(c.Request.Context(), p, chargeID, payload.Amount, payload.Reason())
	if err != nil && cl == nil {
		log.Printf("[payment][handler] cancel-charge failed payment_id=%s charge_id=%s err=%v", p.ID, chargeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure("cancel-charge", p.ID, err)

	c.JSON(http.StatusOK, response.CancellationResultResponse{
		Cancellations: response.FromCancellations([]*entities.Cancellation{cl}),
		Payment:       response.FromPayment(p),
	})
}

// Ship godoc
// @Summary      Record a shipment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      201         {object}  response.ShipmentResultResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      501         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/shipments [post]
func (h *PaymentHandler) Ship(c *gin.Context) {
	p, ok := h.fetch(c)
	if !ok {
		return
	}

	sh, err := h.usecase.Ship(c.Request.Context(), p)
	if err != nil && sh == nil {
		log.Printf("[payment][handler] ship failed payment_id=%s err=%v", p.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logPersistFailure("ship", p.ID, err)

	c.JSON(http.StatusCreated, response.ShipmentResultResponse{Shipment: response.FromShipment(sh), Payment: response.FromPayment(p)})
}

// GetSnapshot godoc
// @Summary      Last stored snapshot of a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.PaymentSnapshotResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/snapshot [get]
func (h *PaymentHandler) GetSnapshot(c *gin.Context) {
	paymentID := c.Param("payment_id")
	s, err := h.usecase.GetSnapshot(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get-snapshot failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSnapshot(s))
}

// ListTransactions godoc
// @Summary      Stored transactions of a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {array}   response.TransactionEntryResponse
// @Failure      503         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	paymentID := c.Param("payment_id")
	entries, err := h.usecase.ListTransactions(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] list-transactions failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionEntries(entries))
}

// fetch loads the payment named by the path and writes the error response on failure.
func (h *PaymentHandler) fetch(c *gin.Context) (*entities.Payment, bool) {
	paymentID := c.Param("payment_id")
	p, err := h.usecase.Fetch(c.Request.Context(), paymentID)
	if err != nil && p == nil {
		log.Printf("[payment][handler] fetch failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	logPersistFailure("fetch", paymentID, err)
	return p, true
}

// logPersistFailure records an error returned next to a result: the remote
// operation went through and only storing the snapshot failed.
func logPersistFailure(op, paymentID string, err error) {
	if err != nil {
		log.Printf("[payment][handler] %s succeeded but snapshot not stored payment_id=%s err=%v", op, paymentID, err)
	}
}

// bindOptionalJSON decodes the body into dst, accepting an empty body.
func bindOptionalJSON(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return errors.New("request body is not valid json")
	}
	return json.Unmarshal(raw, dst)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidChargeID),
		errors.Is(err, usecase.ErrInvalidCurrency), errors.Is(err, usecase.ErrInvalidCancelReason),
		errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingParentResource):
		return pkg.NewDomainErrorSimple("RESOURCE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrNothingToCancel):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CANCEL", "Payment has nothing to cancel", http.StatusConflict)
	case errors.Is(err, entities.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Authorization has nothing left to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "Payment snapshot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSnapshotsNotConfigured):
		return pkg.NewDomainErrorSimple("SNAPSHOTS_NOT_CONFIGURED", "Payment snapshots are disabled", http.StatusServiceUnavailable)
	}

	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) {
		return mapGatewayError(gwErr)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapGatewayError(gwErr *entities.GatewayError) *pkg.AppError {
	code := string(gwErr.Code)
	switch gwErr.Code {
	case entities.ErrorCodePaymentNotFound:
		return pkg.NewDomainErrorSimple(code, "Payment not found", http.StatusNotFound)
	case entities.ErrorCodeAlreadyCancelled, entities.ErrorCodeAlreadyCharged, entities.ErrorCodeAlreadyChargedBack:
		return pkg.NewDomainError(code, gatewayMessage(gwErr), gwErr, http.StatusConflict)
	case entities.ErrorCodeChargedAmountHigherThanExpected:
		return pkg.NewDomainError(code, gatewayMessage(gwErr), gwErr, http.StatusUnprocessableEntity)
	case entities.ErrorCodeAmountIsMissing, entities.ErrorCodeCancelReasonCodeIsMissing:
		return pkg.NewDomainError(code, gatewayMessage(gwErr), gwErr, http.StatusBadRequest)
	case entities.ErrorCodeUnsupportedOperation:
		return pkg.NewDomainError(code, "Operation not supported by the payment provider", gwErr, http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", gwErr, http.StatusBadGateway)
	}
}

// gatewayMessage prefers the message meant for the paying customer.
func gatewayMessage(gwErr *entities.GatewayError) string {
	if gwErr.ClientMessage != "" {
		return gwErr.ClientMessage
	}
	if gwErr.MerchantMessage != "" {
		return gwErr.MerchantMessage
	}
	return string(gwErr.Code)
}
