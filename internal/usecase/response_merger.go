package usecase

import (
	"fmt"
	"log"

	"payment_reconciler/internal/domain/entities"
)

// MergeTransactions folds the flat transaction list of a payment response into
// the registry of p, in response order. Later records for the same id
// overwrite earlier ones, so merging the same list twice is a no-op.
//
// Records before a failing one stay merged. The merger never performs I/O.
func MergeTransactions(p *entities.Payment, records []entities.TransactionRecord) error {
	for i, rec := range records {
		if err := MergeTransaction(p, rec); err != nil {
			log.Printf("[payment][merger] merge failed payment_id=%s index=%d type=%s url=%s err=%v", p.ID, i, rec.Type, rec.URL, err)
			return err
		}
	}
	p.Recompute()
	return nil
}

// MergeTransaction inserts or updates the transaction described by rec.
func MergeTransaction(p *entities.Payment, rec entities.TransactionRecord) error {
	if !rec.Type.IsValid() {
		return fmt.Errorf("%w: %q", entities.ErrUnknownTransactionType, rec.Type)
	}
	ref, err := entities.ParseTransactionURL(rec.URL, rec.Type)
	if err != nil {
		return err
	}

	switch rec.Type {
	case entities.TransactionTypeAuthorize:
		p.UpsertAuthorization(ref.ID, rec.Amount)
	case entities.TransactionTypeCharge:
		p.UpsertCharge(ref.ID, rec.Amount)
	case entities.TransactionTypeShipment:
		p.UpsertShipment(ref.ID, rec.Amount)
	case entities.TransactionTypeCancelAuthorize:
		if _, _, err := p.UpsertAuthorizationCancellation(ref.ID, rec.Amount); err != nil {
			return err
		}
	case entities.TransactionTypeCancelCharge:
		if _, _, err := p.UpsertChargeCancellation(ref.ParentID, ref.ID, rec.Amount); err != nil {
			return err
		}
	}
	return nil
}

// applyPaymentResponse copies the server-owned payment fields and merges its transactions.
func applyPaymentResponse(p *entities.Payment, resp entities.PaymentResponse) error {
	if resp.ID != "" {
		p.ID = resp.ID
	}
	if resp.State != "" {
		p.State = resp.State
	}
	if resp.Currency != "" {
		p.Currency = resp.Currency
	}
	if resp.OrderID != "" {
		p.OrderID = resp.OrderID
	}
	if resp.Resources.CustomerID != "" {
		p.Resources.CustomerID = resp.Resources.CustomerID
	}
	if resp.Resources.PaymentTypeID != "" {
		p.Resources.PaymentTypeID = resp.Resources.PaymentTypeID
	}

	records := resp.Transactions
	if resp.Processed != nil {
		records = append(append([]entities.TransactionRecord(nil), records...), *resp.Processed)
	}
	return MergeTransactions(p, records)
}

// processedRef parses the id of the transaction a mutation created.
func processedRef(resp entities.PaymentResponse, want entities.TransactionType) (entities.TransactionRef, error) {
	if resp.Processed == nil {
		return entities.TransactionRef{}, fmt.Errorf("%w: response carries no processed %s transaction", ErrMissingProcessedTransaction, want)
	}
	if resp.Processed.Type != want {
		return entities.TransactionRef{}, fmt.Errorf("%w: expected %s, got %s", ErrMissingProcessedTransaction, want, resp.Processed.Type)
	}
	return entities.ParseTransactionURL(resp.Processed.URL, want)
}
