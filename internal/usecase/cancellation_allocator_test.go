package usecase

import (
	"context"
	"errors"
	"testing"

	"payment_reconciler/internal/domain/entities"
	mock_interfaces "payment_reconciler/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// partlyChargedPayment holds an authorization of 100 with charges of 30 and
// 20, leaving 50 open on the authorization.
func partlyChargedPayment(t *testing.T) *entities.Payment {
	t.Helper()
	return newTestPayment(t,
		authRecord("p-aut-1", "100"),
		chargeRecord("p-chg-1", "30"),
		chargeRecord("p-chg-2", "20"),
	)
}

func TestCancelAmount_AllocatesAuthorizationThenCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, nil, nil)
	p := partlyChargedPayment(t)

	gomock.InOrder(
		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", amountIs("50")).
			Return(gatewayResponse(entities.PaymentStatePartly, authCancelRecord("p-aut-1", "p-cnl-1", "50")), nil),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", amountIs("10"), entities.CancelReasonCodeCancel).
			Return(gatewayResponse(entities.PaymentStatePartly, chargeCancelRecord("p-chg-1", "p-cnl-2", "10")), nil),
	)

	got, err := uc.CancelAmount(context.Background(), p, decPtr("60"), entities.CancelReasonCodeCancel)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "p-cnl-1", got[0].ID)
	assert.Equal(t, entities.TransactionTypeAuthorize, got[0].ParentType)
	assertAmount(t, got[0].Amount, dec("50"), "reversal")
	assert.Equal(t, "p-cnl-2", got[1].ID)
	assert.Equal(t, "p-chg-1", got[1].ParentID)
	assertAmount(t, got[1].Amount, dec("10"), "refund")

	assertAmount(t, p.Amount().Canceled, dec("60"), "canceled")
	assertAmount(t, p.AuthorizationOpenAmount(), dec("0"), "authorization open")
	assertAmount(t, p.Charge("p-chg-1").OpenAmount(), dec("20"), "charge open")
}

func TestCancelAmount_CancelAllIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, nil, nil)
	p := partlyChargedPayment(t)

	gomock.InOrder(
		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", wholeAmount()).
			Return(gatewayResponse(entities.PaymentStatePartly, authCancelRecord("p-aut-1", "p-cnl-1", "50")), nil),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", wholeAmount(), entities.CancelReasonCodeReturn).
			Return(gatewayResponse(entities.PaymentStatePartly, chargeCancelRecord("p-chg-1", "p-cnl-2", "30")), nil),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-2", wholeAmount(), entities.CancelReasonCodeReturn).
			Return(gatewayResponse(entities.PaymentStateCanceled, chargeCancelRecord("p-chg-2", "p-cnl-3", "20")), nil),
	)

	got, err := uc.CancelAmount(context.Background(), p, nil, entities.CancelReasonCodeReturn)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assertAmount(t, p.Amount().Canceled, dec("100"), "canceled")
	assert.Equal(t, entities.PaymentStateCanceled, p.State)

	again, err := uc.CancelAmount(context.Background(), p, nil, entities.CancelReasonCodeReturn)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestCancelAmount_AbsorbsSettlementRaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, nil, nil)
	p := partlyChargedPayment(t)

	gomock.InOrder(
		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", amountIs("25")).
			Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAlreadyCharged)),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", amountIs("25"), entities.CancelReasonCodeCancel).
			Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAlreadyCancelled)),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-2", amountIs("20"), entities.CancelReasonCodeCancel).
			Return(gatewayResponse(entities.PaymentStatePartly, chargeCancelRecord("p-chg-2", "p-cnl-1", "20")), nil),
	)

	got, err := uc.CancelAmount(context.Background(), p, decPtr("25"), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p-chg-2", got[0].ParentID)
}

func TestCancelAmount_ChargedBackChargeIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, nil, nil)
	p := newTestPayment(t, chargeRecord("p-chg-1", "10"), chargeRecord("p-chg-2", "20"))

	gomock.InOrder(
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", amountIs("10"), entities.CancelReasonCodeCredit).
			Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAlreadyChargedBack)),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-2", amountIs("15"), entities.CancelReasonCodeCredit).
			Return(gatewayResponse(entities.PaymentStateCompleted, chargeCancelRecord("p-chg-2", "p-cnl-1", "15")), nil),
	)

	got, err := uc.CancelAmount(context.Background(), p, decPtr("15"), entities.CancelReasonCodeCredit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assertAmount(t, got[0].Amount, dec("15"), "refund")
}

func TestCancelAmount_HardFailureReturnsPartialResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	snapshots := mock_interfaces.NewMockIPaymentSnapshotRepository(ctrl)
	transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewPaymentUseCase(gateway, snapshots, transactions)
	p := partlyChargedPayment(t)
	boom := errors.New("connection reset")

	gomock.InOrder(
		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", wholeAmount()).
			Return(gatewayResponse(entities.PaymentStatePartly, authCancelRecord("p-aut-1", "p-cnl-1", "50")), nil),
		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", wholeAmount(), entities.CancelReasonCodeCancel).
			Return(entities.PaymentResponse{}, boom),
	)
	snapshots.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
			assertAmount(t, s.Canceled, dec("50"), "persisted canceled")
			return s, nil
		})
	transactions.EXPECT().SaveAll(gomock.Any(), gomock.Len(4)).Return(nil)

	got, err := uc.CancelAmount(context.Background(), p, nil, entities.CancelReasonCodeCancel)
	if !errors.Is(err, boom) {
		t.Fatalf("expected connection error, got %v", err)
	}
	require.Len(t, got, 1)
	assert.Equal(t, "p-cnl-1", got[0].ID)
	assert.NotNil(t, p.Cancellation("p-cnl-1"))
}

func TestCancelAmount_SnapshotFailureAfterCompletedAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	snapshots := mock_interfaces.NewMockIPaymentSnapshotRepository(ctrl)
	uc := NewPaymentUseCase(gateway, snapshots, nil)
	p := newTestPayment(t, authRecord("p-aut-1", "100"))
	dbErr := errors.New("dynamodb unavailable")

	gateway.EXPECT().
		CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", wholeAmount()).
		Return(gatewayResponse(entities.PaymentStateCanceled, authRecord("p-aut-1", "100"), authCancelRecord("p-aut-1", "p-cnl-1", "100")), nil)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.PaymentSnapshot{}, dbErr)

	got, err := uc.CancelAmount(context.Background(), p, nil, "")
	if !errors.Is(err, ErrSnapshotNotStored) {
		t.Fatalf("expected ErrSnapshotNotStored, got %v", err)
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected the storage cause to be kept, got %v", err)
	}
	require.Len(t, got, 1)
	assert.Equal(t, "p-cnl-1", got[0].ID)
	assertAmount(t, p.Amount().Canceled, dec("100"), "canceled")
	assertAmount(t, p.Amount().Remaining, dec("0"), "remaining")
}

func TestCancelAmount_HardFailureIsNotStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	snapshots := mock_interfaces.NewMockIPaymentSnapshotRepository(ctrl)
	uc := NewPaymentUseCase(gateway, snapshots, nil)
	p := newTestPayment(t, authRecord("p-aut-1", "100"))
	boom := errors.New("connection reset")

	gateway.EXPECT().
		CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", wholeAmount()).
		Return(entities.PaymentResponse{}, boom)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.PaymentSnapshot{}, errors.New("db"))

	got, err := uc.CancelAmount(context.Background(), p, nil, "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected connection error, got %v", err)
	}
	if errors.Is(err, ErrSnapshotNotStored) {
		t.Fatalf("a failed allocation must not look like a storage-only failure: %v", err)
	}
	assert.Empty(t, got)
}

func TestCancelAmount_NonToleratedGatewayErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway, nil, nil)
	p := newTestPayment(t, chargeRecord("p-chg-1", "10"), chargeRecord("p-chg-2", "20"))

	gateway.EXPECT().
		CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", wholeAmount(), entities.CancelReasonCodeCancel).
		Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAmountIsMissing))

	got, err := uc.CancelAmount(context.Background(), p, nil, entities.CancelReasonCodeCancel)
	if !errors.Is(err, entities.ErrAmountIsMissing) {
		t.Fatalf("expected ErrAmountIsMissing, got %v", err)
	}
	assert.Empty(t, got)
}

func TestCancelAmount_Validations(t *testing.T) {
	t.Run("nothing to cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)

		_, err := uc.CancelAmount(context.Background(), entities.NewPayment(testPaymentID), nil, entities.CancelReasonCodeCancel)
		if !errors.Is(err, entities.ErrNothingToCancel) {
			t.Fatalf("expected ErrNothingToCancel, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)

		_, err := uc.CancelAmount(context.Background(), partlyChargedPayment(t), decPtr("-1"), entities.CancelReasonCodeCancel)
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("invalid reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)

		_, err := uc.CancelAmount(context.Background(), partlyChargedPayment(t), nil, "REFUND")
		if !errors.Is(err, ErrInvalidCancelReason) {
			t.Fatalf("expected ErrInvalidCancelReason, got %v", err)
		}
	})

	t.Run("zero budget issues no calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)

		got, err := uc.CancelAmount(context.Background(), partlyChargedPayment(t), decPtr("0"), entities.CancelReasonCodeCancel)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("nil payment", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CancelAmount(context.Background(), nil, nil, entities.CancelReasonCodeCancel)
		if !errors.Is(err, ErrNilPayment) {
			t.Fatalf("expected ErrNilPayment, got %v", err)
		}
	})
}

func TestCancelAuthorizationAmount(t *testing.T) {
	t.Run("missing authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)
		p := newTestPayment(t, chargeRecord("p-chg-1", "10"))

		_, err := uc.CancelAuthorizationAmount(context.Background(), p, nil)
		if !errors.Is(err, entities.ErrMissingParentResource) {
			t.Fatalf("expected ErrMissingParentResource, got %v", err)
		}
	})

	t.Run("capped at open amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil, nil)
		p := newTestPayment(t, authRecord("p-aut-1", "100"), chargeRecord("p-chg-1", "30"))

		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", amountIs("70")).
			Return(gatewayResponse(entities.PaymentStateCompleted, authCancelRecord("p-aut-1", "p-cnl-1", "70")), nil)

		cl, err := uc.CancelAuthorizationAmount(context.Background(), p, decPtr("90"))
		require.NoError(t, err)
		require.NotNil(t, cl)
		assertAmount(t, cl.Amount, dec("70"), "reversal")
		assertAmount(t, p.AuthorizationOpenAmount(), dec("0"), "authorization open")
	})

	t.Run("already charged is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil, nil)
		p := newTestPayment(t, authRecord("p-aut-1", "100"))

		gateway.EXPECT().
			CancelAuthorization(gomock.Any(), testPaymentID, "p-aut-1", wholeAmount()).
			Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAlreadyCharged))

		cl, err := uc.CancelAuthorizationAmount(context.Background(), p, nil)
		require.NoError(t, err)
		assert.Nil(t, cl)
	})

	t.Run("nothing open issues no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)
		p := newTestPayment(t, authRecord("p-aut-1", "100"), chargeRecord("p-chg-1", "100"))

		cl, err := uc.CancelAuthorizationAmount(context.Background(), p, nil)
		require.NoError(t, err)
		assert.Nil(t, cl)
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(gomock.NewController(t)), nil, nil)
		_, err := uc.CancelAuthorizationAmount(context.Background(), partlyChargedPayment(t), decPtr("0"))
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestCancelCharge(t *testing.T) {
	t.Run("unknown charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(ctrl), nil, nil)

		_, err := uc.CancelCharge(context.Background(), partlyChargedPayment(t), "p-chg-9", nil, entities.CancelReasonCodeCancel)
		var missing *entities.MissingParentResourceError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingParentResourceError, got %v", err)
		}
		assert.Equal(t, "p-chg-9", missing.ParentID)
		assert.Equal(t, "The Charge object can not be found.", missing.Error())
	})

	t.Run("partial refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil, nil)
		p := partlyChargedPayment(t)

		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-2", amountIs("7.5"), entities.CancelReasonCodeCancel).
			Return(gatewayResponse(entities.PaymentStatePartly, chargeCancelRecord("p-chg-2", "p-cnl-4", "7.5")), nil)

		cl, err := uc.CancelCharge(context.Background(), p, "p-chg-2", decPtr("7.5"), "")
		require.NoError(t, err)
		assert.Equal(t, "p-cnl-4", cl.ID)
		assertAmount(t, p.Charge("p-chg-2").OpenAmount(), dec("12.5"), "charge open")
	})

	t.Run("settlement race is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil, nil)

		gateway.EXPECT().
			CancelCharge(gomock.Any(), testPaymentID, "p-chg-1", wholeAmount(), entities.CancelReasonCodeCancel).
			Return(entities.PaymentResponse{}, gatewayError(entities.ErrorCodeAlreadyCancelled))

		_, err := uc.CancelCharge(context.Background(), partlyChargedPayment(t), "p-chg-1", nil, entities.CancelReasonCodeCancel)
		if !errors.Is(err, entities.ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})

	t.Run("empty charge id", func(t *testing.T) {
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentGateway(gomock.NewController(t)), nil, nil)
		_, err := uc.CancelCharge(context.Background(), partlyChargedPayment(t), "", nil, entities.CancelReasonCodeCancel)
		if !errors.Is(err, ErrInvalidChargeID) {
			t.Fatalf("expected ErrInvalidChargeID, got %v", err)
		}
	})
}
