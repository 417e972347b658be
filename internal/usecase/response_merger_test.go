package usecase

import (
	"errors"
	"testing"

	"payment_reconciler/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeTransactions_BuildsRegistry(t *testing.T) {
	p := newTestPayment(t,
		authRecord("p-aut-1", "100"),
		chargeRecord("p-chg-1", "30"),
		chargeRecord("p-chg-2", "20"),
		chargeCancelRecord("p-chg-1", "p-cnl-1", "5"),
		authCancelRecord("p-aut-1", "p-cnl-2", "10"),
		shipmentRecord("p-shp-1", "50"),
	)

	require.NotNil(t, p.Authorization())
	assert.Equal(t, "p-aut-1", p.Authorization().ID)
	require.Len(t, p.Charges(), 2)
	assert.Equal(t, "p-chg-1", p.ChargeByIndex(0).ID)
	assert.Equal(t, "p-chg-2", p.ChargeByIndex(1).ID)
	require.Len(t, p.Shipments(), 1)

	cl := p.Cancellation("p-cnl-1")
	require.NotNil(t, cl)
	assert.Equal(t, "p-chg-1", cl.ParentID)
	assert.Equal(t, entities.TransactionTypeCharge, cl.ParentType)

	a := p.Amount()
	assertAmount(t, a.Total, dec("100"), "total")
	assertAmount(t, a.Charged, dec("50"), "charged")
	assertAmount(t, a.Remaining, dec("50"), "remaining")
	assertAmount(t, a.Canceled, dec("15"), "canceled")
}

func TestMergeTransactions_Idempotent(t *testing.T) {
	records := []entities.TransactionRecord{
		authRecord("p-aut-1", "100"),
		chargeRecord("p-chg-1", "40"),
		chargeCancelRecord("p-chg-1", "p-cnl-1", "10"),
	}
	p := newTestPayment(t, records...)
	charge := p.Charge("p-chg-1")
	before := p.Amount()

	require.NoError(t, MergeTransactions(p, records))

	require.Len(t, p.Charges(), 1)
	assert.Same(t, charge, p.Charge("p-chg-1"))
	assert.Equal(t, 1, charge.Cancellations.Len())
	after := p.Amount()
	assertAmount(t, after.Charged, before.Charged, "charged")
	assertAmount(t, after.Canceled, before.Canceled, "canceled")
	assertAmount(t, after.Remaining, before.Remaining, "remaining")
}

func TestMergeTransactions_LastWriteWins(t *testing.T) {
	p := newTestPayment(t,
		authRecord("p-aut-1", "100"),
		chargeRecord("p-chg-1", "40"),
		chargeRecord("p-chg-1", "25"),
	)

	require.Len(t, p.Charges(), 1)
	assertAmount(t, p.Charge("p-chg-1").Amount, dec("25"), "charge amount")
	assertAmount(t, p.Amount().Remaining, dec("75"), "remaining")
}

func TestMergeTransactions_Failures(t *testing.T) {
	t.Run("refund for unknown charge", func(t *testing.T) {
		p := entities.NewPayment(testPaymentID)
		err := MergeTransactions(p, []entities.TransactionRecord{
			chargeRecord("p-chg-1", "10"),
			chargeCancelRecord("p-chg-9", "p-cnl-1", "5"),
		})
		if !errors.Is(err, entities.ErrMissingParentResource) {
			t.Fatalf("expected ErrMissingParentResource, got %v", err)
		}
		if p.Charge("p-chg-1") == nil {
			t.Fatalf("expected records before the failure to stay merged")
		}
	})

	t.Run("reversal without authorization", func(t *testing.T) {
		p := entities.NewPayment(testPaymentID)
		err := MergeTransactions(p, []entities.TransactionRecord{authCancelRecord("p-aut-1", "p-cnl-1", "5")})
		var missing *entities.MissingParentResourceError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingParentResourceError, got %v", err)
		}
		if missing.Error() != "The Authorization object can not be found." {
			t.Fatalf("unexpected message %q", missing.Error())
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		p := entities.NewPayment(testPaymentID)
		err := MergeTransactions(p, []entities.TransactionRecord{{URL: testPaymentURL + "/refunds/p-ref-1", Amount: dec("1"), Type: "refund"}})
		if !errors.Is(err, entities.ErrUnknownTransactionType) {
			t.Fatalf("expected ErrUnknownTransactionType, got %v", err)
		}
	})

	t.Run("url without own id", func(t *testing.T) {
		p := entities.NewPayment(testPaymentID)
		err := MergeTransactions(p, []entities.TransactionRecord{{URL: testPaymentURL + "/charges", Amount: dec("1"), Type: entities.TransactionTypeCharge}})
		if !errors.Is(err, entities.ErrInvalidTransactionURL) {
			t.Fatalf("expected ErrInvalidTransactionURL, got %v", err)
		}
	})
}

func TestApplyPaymentResponse_CopiesServerFields(t *testing.T) {
	p := entities.NewPayment("")
	resp := gatewayResponse(entities.PaymentStatePartly, authRecord("p-aut-1", "100"), chargeRecord("p-chg-1", "20"))
	resp.OrderID = "order-1"
	resp.Resources = entities.PaymentResources{CustomerID: "p-cus-1", PaymentTypeID: "p-pty-1"}

	require.NoError(t, applyPaymentResponse(p, resp))

	assert.Equal(t, testPaymentID, p.ID)
	assert.Equal(t, entities.PaymentStatePartly, p.State)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, "order-1", p.OrderID)
	assert.Equal(t, "p-cus-1", p.Resources.CustomerID)
	assertAmount(t, p.Amount().Remaining, dec("80"), "remaining")
}

func TestProcessedRef(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := processedRef(entities.PaymentResponse{}, entities.TransactionTypeCharge)
		if !errors.Is(err, ErrMissingProcessedTransaction) {
			t.Fatalf("expected ErrMissingProcessedTransaction, got %v", err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		resp := gatewayResponse(entities.PaymentStatePending, authRecord("p-aut-1", "10"))
		_, err := processedRef(resp, entities.TransactionTypeCharge)
		if !errors.Is(err, ErrMissingProcessedTransaction) {
			t.Fatalf("expected ErrMissingProcessedTransaction, got %v", err)
		}
	})

	t.Run("cancellation", func(t *testing.T) {
		resp := gatewayResponse(entities.PaymentStateCanceled, chargeCancelRecord("p-chg-1", "p-cnl-7", "3"))
		ref, err := processedRef(resp, entities.TransactionTypeCancelCharge)
		require.NoError(t, err)
		assert.Equal(t, entities.TransactionRef{ParentID: "p-chg-1", ID: "p-cnl-7"}, ref)
	})
}
