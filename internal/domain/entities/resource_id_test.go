package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransactionURL(t *testing.T) {
	const base = "https://api.example-payments.test/v1/payments/s-pay-42"

	cases := []struct {
		name   string
		url    string
		typ    TransactionType
		want   TransactionRef
		hasErr bool
	}{
		{name: "authorize", url: base + "/authorize/s-aut-1", typ: TransactionTypeAuthorize, want: TransactionRef{ID: "s-aut-1"}},
		{name: "charge", url: base + "/charges/s-chg-7", typ: TransactionTypeCharge, want: TransactionRef{ID: "s-chg-7"}},
		{name: "shipment", url: base + "/shipments/s-shp-2", typ: TransactionTypeShipment, want: TransactionRef{ID: "s-shp-2"}},
		{name: "cancel authorize", url: base + "/authorize/s-aut-1/cancels/s-cnl-3", typ: TransactionTypeCancelAuthorize, want: TransactionRef{ParentID: "s-aut-1", ID: "s-cnl-3"}},
		{name: "cancel charge", url: base + "/charges/s-chg-2/cancels/s-cnl-5", typ: TransactionTypeCancelCharge, want: TransactionRef{ParentID: "s-chg-2", ID: "s-cnl-5"}},
		{name: "relative path", url: "/v1/payments/p-pay-1/charges/p-chg-abc123", typ: TransactionTypeCharge, want: TransactionRef{ID: "p-chg-abc123"}},
		{name: "multi-letter prefix", url: "https://sandbox.example-payments.test/v1/payments/sbx-pay-9/charges/sbx-chg-2/cancels/sbx-cnl-abc123", typ: TransactionTypeCancelCharge, want: TransactionRef{ParentID: "sbx-chg-2", ID: "sbx-cnl-abc123"}},
		{name: "cancel without parent", url: base + "/cancels/s-cnl-5", typ: TransactionTypeCancelCharge, hasErr: true},
		{name: "wrong code", url: base + "/charges/s-chg-2", typ: TransactionTypeAuthorize, hasErr: true},
		{name: "empty", url: "  ", typ: TransactionTypeCharge, hasErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTransactionURL(tc.url, tc.typ)
			if tc.hasErr {
				require.True(t, errors.Is(err, ErrInvalidTransactionURL), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		_, err := ParseTransactionURL(base+"/charges/s-chg-1", TransactionType("refund"))
		require.True(t, errors.Is(err, ErrUnknownTransactionType))
	})
}

func TestResourceTypeCode(t *testing.T) {
	code, ok := ResourceTypeCode("s-chg-12")
	require.True(t, ok)
	require.Equal(t, TypeCodeCharge, code)

	code, ok = ResourceTypeCode("live-aut-7f3a")
	require.True(t, ok)
	require.Equal(t, TypeCodeAuthorization, code)

	_, ok = ResourceTypeCode("charges")
	require.False(t, ok)
	_, ok = ResourceTypeCode("-chg-12")
	require.False(t, ok)
	require.True(t, IsResourceID(NewResourceID("s", TypeCodeShipment, "9")))
}

func TestTransactionRecord_AmountFormats(t *testing.T) {
	var records []TransactionRecord
	err := json.Unmarshal([]byte(`[
		{"url":"/v1/payments/s-pay-1/charges/s-chg-1","amount":"12.3456","type":"charge"},
		{"url":"/v1/payments/s-pay-1/charges/s-chg-2","amount":7.5,"type":"charge"}
	]`), &records)
	require.NoError(t, err)
	require.True(t, records[0].Amount.Equal(dec("12.3456")))
	require.True(t, records[1].Amount.Equal(dec("7.5")))
}

func TestToleratedErrors(t *testing.T) {
	err := &GatewayError{Code: ErrorCodeAlreadyChargedBack, APICode: "API.340.100.024", StatusCode: 409}

	require.True(t, ChargeCancelTolerated.Tolerates(err))
	require.False(t, AuthorizationCancelTolerated.Tolerates(err))
	require.False(t, ChargeCancelTolerated.Tolerates(errors.New("boom")))
	require.False(t, ChargeCancelTolerated.Tolerates(&GatewayError{Code: ErrorCodeChargedAmountHigherThanExpected}))
	require.True(t, errors.Is(err, ErrAlreadyChargedBack))
	require.False(t, errors.Is(err, ErrAlreadyCancelled))

	code, ok := GatewayErrorCode(err)
	require.True(t, ok)
	require.Equal(t, ErrorCodeAlreadyChargedBack, code)
}
