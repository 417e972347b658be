package request

import (
	"strings"

	"payment_reconciler/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the payload for creating an authorization or a direct charge.
//
// amount accepts both a JSON number and a numeric string.
type TransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Currency      string          `json:"currency" binding:"required" example:"EUR"`
	PaymentTypeID string          `json:"type_id,omitempty"`
	CustomerID    string          `json:"customer_id,omitempty"`
	OrderID       string          `json:"order_id,omitempty"`
	ReturnURL     string          `json:"return_url,omitempty"`
}

func (r TransactionRequest) ToEntity() entities.TransactionRequest {
	return entities.TransactionRequest{
		Amount:        r.Amount,
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
		PaymentTypeID: strings.TrimSpace(r.PaymentTypeID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		OrderID:       strings.TrimSpace(r.OrderID),
		ReturnURL:     strings.TrimSpace(r.ReturnURL),
	}
}

// ChargeRequest charges the authorization; an omitted amount charges all that is open.
type ChargeRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"20.00"`
}

// CancelRequest cancels part of a payment or charge; an omitted amount cancels all
// that is still cancelable. reason_code defaults to CANCEL.
type CancelRequest struct {
	Amount     *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"10.00"`
	ReasonCode string           `json:"reason_code,omitempty" enums:"CANCEL,RETURN,CREDIT"`
}

func (r CancelRequest) Reason() entities.CancelReasonCode {
	return entities.CancelReasonCode(strings.ToUpper(strings.TrimSpace(r.ReasonCode)))
}
