package entities

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the type tag of a transaction record in a payment response.
type TransactionType string

const (
	TransactionTypeAuthorize       TransactionType = "authorize"
	TransactionTypeCharge          TransactionType = "charge"
	TransactionTypeCancelAuthorize TransactionType = "cancel-authorize"
	TransactionTypeCancelCharge    TransactionType = "cancel-charge"
	TransactionTypeShipment        TransactionType = "shipment"
)

// IsValid returns true if the type is one the registry knows how to merge.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeAuthorize, TransactionTypeCharge, TransactionTypeCancelAuthorize,
		TransactionTypeCancelCharge, TransactionTypeShipment:
		return true
	default:
		return false
	}
}

// CancelReasonCode explains a charge refund to the gateway.
type CancelReasonCode string

const (
	CancelReasonCodeCancel CancelReasonCode = "CANCEL"
	CancelReasonCodeReturn CancelReasonCode = "RETURN"
	CancelReasonCodeCredit CancelReasonCode = "CREDIT"
)

func (r CancelReasonCode) IsValid() bool {
	switch r {
	case CancelReasonCodeCancel, CancelReasonCodeReturn, CancelReasonCodeCredit:
		return true
	default:
		return false
	}
}

// TransactionRecord is one item of the flat transaction array of a payment
// response. Amount decodes from either a JSON string or number.
type TransactionRecord struct {
	URL    string          `json:"url"`
	Amount decimal.Decimal `json:"amount"`
	Type   TransactionType `json:"type"`
}

// Cancellation is a reversal (on an Authorization) or a refund (on a Charge).
// It belongs to exactly one parent transaction.
type Cancellation struct {
	ID         string
	Amount     decimal.Decimal
	ParentID   string
	ParentType TransactionType
}

// Cancellations is an ordered list of cancellations indexed by id.
type Cancellations struct {
	items []*Cancellation
	byID  map[string]*Cancellation
}

// Upsert updates the cancellation with the given id or appends a new one.
// found reports whether an existing entry was updated.
func (c *Cancellations) Upsert(id string, amount decimal.Decimal, parentID string, parentType TransactionType) (cancellation *Cancellation, found bool) {
	if c.byID == nil {
		c.byID = make(map[string]*Cancellation)
	}
	if existing, ok := c.byID[id]; ok {
		existing.Amount = RoundAmount(amount)
		return existing, true
	}
	cl := &Cancellation{ID: id, Amount: RoundAmount(amount), ParentID: parentID, ParentType: parentType}
	c.items = append(c.items, cl)
	c.byID[id] = cl
	return cl, false
}

func (c *Cancellations) Get(id string) *Cancellation {
	return c.byID[id]
}

// All returns the cancellations in insertion order.
func (c *Cancellations) All() []*Cancellation {
	out := make([]*Cancellation, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cancellations) Len() int {
	return len(c.items)
}

// Total sums the cancellation amounts.
func (c *Cancellations) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, cl := range c.items {
		sum = sum.Add(cl.Amount)
	}
	return RoundAmount(sum)
}

// Authorization is a hold of funds. A payment holds at most one.
type Authorization struct {
	ID            string
	Amount        decimal.Decimal
	Cancellations Cancellations
}

// Charge is a settlement of some or all of an authorized or directly charged amount.
type Charge struct {
	ID            string
	Amount        decimal.Decimal
	Cancellations Cancellations
}

// OpenAmount is the part of the charge not yet refunded, never negative.
func (c *Charge) OpenAmount() decimal.Decimal {
	return ClampZero(RoundAmount(c.Amount.Sub(c.Cancellations.Total())))
}

// Shipment is a delivery confirmation. It does not move money.
type Shipment struct {
	ID     string
	Amount decimal.Decimal
}

// TransactionRequest carries the parameters of an initial authorize or charge.
type TransactionRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentTypeID string          `json:"typeId,omitempty"`
	CustomerID    string          `json:"customerId,omitempty"`
	OrderID       string          `json:"orderId,omitempty"`
	ReturnURL     string          `json:"returnUrl,omitempty"`
}

// PaymentResources links the opaque resources a payment references.
type PaymentResources struct {
	CustomerID    string `json:"customerId,omitempty"`
	PaymentTypeID string `json:"typeId,omitempty"`
}

// PaymentResponse is the decoded server view of a payment. Processed, when
// present, identifies the transaction created by the call that returned it.
type PaymentResponse struct {
	ID           string              `json:"id"`
	State        PaymentState        `json:"state"`
	Currency     string              `json:"currency"`
	OrderID      string              `json:"orderId,omitempty"`
	Resources    PaymentResources    `json:"resources"`
	Transactions []TransactionRecord `json:"transactions"`
	Processed    *TransactionRecord  `json:"processed,omitempty"`
}
