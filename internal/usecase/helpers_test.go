package usecase

import (
	"testing"

	"payment_reconciler/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testPaymentID = "p-pay-1"

const testPaymentURL = "https://api.test/v1/payments/" + testPaymentID

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func authRecord(id, amount string) entities.TransactionRecord {
	return entities.TransactionRecord{URL: testPaymentURL + "/authorize/" + id, Amount: dec(amount), Type: entities.TransactionTypeAuthorize}
}

func chargeRecord(id, amount string) entities.TransactionRecord {
	return entities.TransactionRecord{URL: testPaymentURL + "/charges/" + id, Amount: dec(amount), Type: entities.TransactionTypeCharge}
}

func authCancelRecord(authID, id, amount string) entities.TransactionRecord {
	return entities.TransactionRecord{URL: testPaymentURL + "/authorize/" + authID + "/cancels/" + id, Amount: dec(amount), Type: entities.TransactionTypeCancelAuthorize}
}

func chargeCancelRecord(chargeID, id, amount string) entities.TransactionRecord {
	return entities.TransactionRecord{URL: testPaymentURL + "/charges/" + chargeID + "/cancels/" + id, Amount: dec(amount), Type: entities.TransactionTypeCancelCharge}
}

func shipmentRecord(id, amount string) entities.TransactionRecord {
	return entities.TransactionRecord{URL: testPaymentURL + "/shipments/" + id, Amount: dec(amount), Type: entities.TransactionTypeShipment}
}

// gatewayResponse builds a server view of the test payment whose Processed
// record is the last of records.
func gatewayResponse(state entities.PaymentState, records ...entities.TransactionRecord) entities.PaymentResponse {
	resp := entities.PaymentResponse{
		ID:           testPaymentID,
		State:        state,
		Currency:     "EUR",
		Transactions: records,
	}
	if len(records) > 0 {
		last := records[len(records)-1]
		resp.Processed = &last
	}
	return resp
}

func gatewayError(code entities.ErrorCode) *entities.GatewayError {
	return &entities.GatewayError{Code: code, MerchantMessage: string(code), StatusCode: 409}
}

// newTestPayment builds a local mirror holding records.
func newTestPayment(t *testing.T, records ...entities.TransactionRecord) *entities.Payment {
	t.Helper()
	p := entities.NewPayment(testPaymentID)
	p.Currency = "EUR"
	if err := MergeTransactions(p, records); err != nil {
		t.Fatalf("unexpected merge error: %v", err)
	}
	return p
}

func assertAmount(t *testing.T, got, want decimal.Decimal, label string) {
	t.Helper()
	if !entities.AmountsEqual(got, want) {
		t.Fatalf("expected %s %s, got %s", label, want, got)
	}
}

// amountMatcher matches a decimal.Decimal or *decimal.Decimal argument by
// value. A nil want matches only a nil pointer.
type amountMatcher struct {
	want *decimal.Decimal
}

func amountIs(s string) gomock.Matcher {
	return amountMatcher{want: decPtr(s)}
}

func wholeAmount() gomock.Matcher {
	return amountMatcher{}
}

func (m amountMatcher) Matches(x any) bool {
	switch v := x.(type) {
	case *decimal.Decimal:
		if m.want == nil {
			return v == nil
		}
		return v != nil && entities.AmountsEqual(*v, *m.want)
	case decimal.Decimal:
		return m.want != nil && entities.AmountsEqual(v, *m.want)
	}
	return false
}

func (m amountMatcher) String() string {
	if m.want == nil {
		return "is the whole open amount"
	}
	return "is amount " + m.want.String()
}
