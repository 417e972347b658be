package response

import (
	"time"

	"payment_reconciler/internal/domain/entities"
)

// Amounts are rendered as fixed 4-decimal strings.
const amountPlaces = 4

type AmountResponse struct {
	Total     string `json:"total"`
	Charged   string `json:"charged"`
	Canceled  string `json:"canceled"`
	Remaining string `json:"remaining"`
	Currency  string `json:"currency,omitempty"`
}

type CancellationResponse struct {
	ID         string `json:"id"`
	Amount     string `json:"amount"`
	ParentID   string `json:"parent_id"`
	ParentType string `json:"parent_type"`
}

type AuthorizationResponse struct {
	ID            string                 `json:"id"`
	Amount        string                 `json:"amount"`
	Cancellations []CancellationResponse `json:"cancellations"`
}

type ChargeResponse struct {
	ID            string                 `json:"id"`
	Amount        string                 `json:"amount"`
	OpenAmount    string                 `json:"open_amount"`
	Cancellations []CancellationResponse `json:"cancellations"`
}

type ShipmentResponse struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

type PaymentResponse struct {
	ID            string                 `json:"id"`
	State         string                 `json:"state"`
	Currency      string                 `json:"currency"`
	OrderID       string                 `json:"order_id,omitempty"`
	Amount        AmountResponse         `json:"amount"`
	Authorization *AuthorizationResponse `json:"authorization,omitempty"`
	Charges       []ChargeResponse       `json:"charges"`
	Shipments     []ShipmentResponse     `json:"shipments"`
}

type ChargeResultResponse struct {
	Charge  ChargeResponse  `json:"charge"`
	Payment PaymentResponse `json:"payment"`
}

type CancellationResultResponse struct {
	Cancellations []CancellationResponse `json:"cancellations"`
	Payment       PaymentResponse        `json:"payment"`
}

type ShipmentResultResponse struct {
	Shipment ShipmentResponse `json:"shipment"`
	Payment  PaymentResponse  `json:"payment"`
}

type PaymentSnapshotResponse struct {
	ID        string         `json:"id"`
	State     string         `json:"state"`
	Amount    AmountResponse `json:"amount"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type TransactionEntryResponse struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"payment_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAmount(a entities.Amount) AmountResponse {
	return AmountResponse{
		Total:     a.Total.StringFixed(amountPlaces),
		Charged:   a.Charged.StringFixed(amountPlaces),
		Canceled:  a.Canceled.StringFixed(amountPlaces),
		Remaining: a.Remaining.StringFixed(amountPlaces),
		Currency:  a.Currency,
	}
}

func FromCancellation(c *entities.Cancellation) CancellationResponse {
	return CancellationResponse{
		ID:         c.ID,
		Amount:     c.Amount.StringFixed(amountPlaces),
		ParentID:   c.ParentID,
		ParentType: string(c.ParentType),
	}
}

func FromCancellations(cs []*entities.Cancellation) []CancellationResponse {
	out := make([]CancellationResponse, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		out = append(out, FromCancellation(c))
	}
	return out
}

func FromCharge(ch *entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:            ch.ID,
		Amount:        ch.Amount.StringFixed(amountPlaces),
		OpenAmount:    ch.OpenAmount().StringFixed(amountPlaces),
		Cancellations: FromCancellations(ch.Cancellations.All()),
	}
}

func FromShipment(sh *entities.Shipment) ShipmentResponse {
	return ShipmentResponse{ID: sh.ID, Amount: sh.Amount.StringFixed(amountPlaces)}
}

func FromPayment(p *entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:        p.ID,
		State:     string(p.State),
		Currency:  p.Currency,
		OrderID:   p.OrderID,
		Amount:    FromAmount(p.Amount()),
		Charges:   make([]ChargeResponse, 0),
		Shipments: make([]ShipmentResponse, 0),
	}
	if auth := p.Authorization(); auth != nil {
		res.Authorization = &AuthorizationResponse{
			ID:            auth.ID,
			Amount:        auth.Amount.StringFixed(amountPlaces),
			Cancellations: FromCancellations(auth.Cancellations.All()),
		}
	}
	for _, ch := range p.Charges() {
		res.Charges = append(res.Charges, FromCharge(ch))
	}
	for _, sh := range p.Shipments() {
		res.Shipments = append(res.Shipments, FromShipment(sh))
	}
	return res
}

func FromPaymentSnapshot(s entities.PaymentSnapshot) PaymentSnapshotResponse {
	return PaymentSnapshotResponse{
		ID:    s.ID,
		State: string(s.State),
		Amount: AmountResponse{
			Total:     s.Total.StringFixed(amountPlaces),
			Charged:   s.Charged.StringFixed(amountPlaces),
			Canceled:  s.Canceled.StringFixed(amountPlaces),
			Remaining: s.Remaining.StringFixed(amountPlaces),
			Currency:  s.Currency,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

func FromTransactionEntries(entries []entities.TransactionEntry) []TransactionEntryResponse {
	out := make([]TransactionEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TransactionEntryResponse{
			ID:        e.ID,
			PaymentID: e.PaymentID,
			ParentID:  e.ParentID,
			Type:      string(e.Type),
			Amount:    e.Amount.StringFixed(amountPlaces),
			UpdatedAt: e.UpdatedAt,
		})
	}
	return out
}
