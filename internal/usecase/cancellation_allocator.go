package usecase

import (
	"context"
	"fmt"
	"log"

	"payment_reconciler/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CancelAmount cancels up to amount across the payment: the authorization is
// offered the budget first, then each charge in registry order is offered the
// lesser of the remaining budget and its own open amount. A nil amount cancels
// everything still cancelable.
//
// Settlement races (already cancelled, charged or charged back) are absorbed
// and allocation moves on with the same budget. Any other failure stops the
// allocation; the cancellations performed before it are returned alongside
// the error and stay reflected in p.
func (u *PaymentUseCase) CancelAmount(ctx context.Context, p *entities.Payment, amount *decimal.Decimal, reason entities.CancelReasonCode) ([]*entities.Cancellation, error) {
	if err := u.checkPayment(p); err != nil {
		return nil, err
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	if amount != nil && amount.IsNegative() {
		return nil, entities.ErrInvalidAmount
	}
	if !p.HasTransactions() {
		log.Printf("[payment][cancel] nothing to cancel payment_id=%s", p.ID)
		return nil, entities.ErrNothingToCancel
	}

	cancelAll := amount == nil
	budget := decimal.Zero
	if !cancelAll {
		budget = entities.RoundAmount(*amount)
	}
	log.Printf("[payment][cancel] cancel-amount start payment_id=%s all=%t budget=%s charges=%d", p.ID, cancelAll, budget, len(p.Charges()))

	cancellations := make([]*entities.Cancellation, 0)
	spend := func(cl *entities.Cancellation) {
		cancellations = append(cancellations, cl)
		if !cancelAll {
			budget = entities.ClampZero(budget.Sub(cl.Amount))
		}
	}

	if cancelAll || budget.IsPositive() {
		var offer *decimal.Decimal
		if !cancelAll {
			offer = &budget
		}
		cl, err := u.cancelAuthorization(ctx, p, offer)
		if err != nil {
			return cancellations, u.abortAllocation(ctx, p, err)
		}
		if cl != nil {
			spend(cl)
		}
	}

	for _, ch := range p.Charges() {
		if !cancelAll && !budget.IsPositive() {
			break
		}
		open := ch.OpenAmount()
		if !open.IsPositive() {
			log.Printf("[payment][cancel] charge settled locally; skipping payment_id=%s charge_id=%s", p.ID, ch.ID)
			continue
		}

		var offer *decimal.Decimal
		if !cancelAll {
			o := entities.MinAmount(budget, open)
			offer = &o
		}
		cl, err := u.cancelCharge(ctx, p, ch, offer, reason, entities.ChargeCancelTolerated)
		if err != nil {
			return cancellations, u.abortAllocation(ctx, p, err)
		}
		if cl != nil {
			spend(cl)
		}
	}

	log.Printf("[payment][cancel] cancel-amount success payment_id=%s cancellations=%d budget_left=%s canceled=%s", p.ID, len(cancellations), budget, p.Amount().Canceled)
	if err := u.persist(ctx, p); err != nil {
		return cancellations, err
	}
	return cancellations, nil
}

// CancelAuthorizationAmount reverses up to amount of the authorization, capped
// at its open amount; nil reverses all of it. It returns a nil cancellation
// when nothing is reversible or the reversal was already settled.
func (u *PaymentUseCase) CancelAuthorizationAmount(ctx context.Context, p *entities.Payment, amount *decimal.Decimal) (*entities.Cancellation, error) {
	if err := u.checkPayment(p); err != nil {
		return nil, err
	}
	if amount != nil && !amount.IsPositive() {
		return nil, entities.ErrInvalidAmount
	}
	if p.Authorization() == nil {
		return nil, &entities.MissingParentResourceError{Parent: entities.TransactionTypeAuthorize}
	}

	cl, err := u.cancelAuthorization(ctx, p, amount)
	if err != nil {
		return nil, err
	}
	return cl, u.persist(ctx, p)
}

// CancelCharge refunds up to amount of a single charge; nil refunds its whole
// open amount. Gateway failures, settlement races included, are returned as is.
func (u *PaymentUseCase) CancelCharge(ctx context.Context, p *entities.Payment, chargeID string, amount *decimal.Decimal, reason entities.CancelReasonCode) (*entities.Cancellation, error) {
	if err := u.checkPayment(p); err != nil {
		return nil, err
	}
	if chargeID == "" {
		return nil, ErrInvalidChargeID
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return nil, err
	}
	if amount != nil && !amount.IsPositive() {
		return nil, entities.ErrInvalidAmount
	}
	ch := p.Charge(chargeID)
	if ch == nil {
		return nil, &entities.MissingParentResourceError{Parent: entities.TransactionTypeCharge, ParentID: chargeID}
	}

	if amount != nil {
		a := entities.RoundAmount(*amount)
		amount = &a
	}
	cl, err := u.cancelCharge(ctx, p, ch, amount, reason, nil)
	if err != nil {
		return nil, err
	}
	return cl, u.persist(ctx, p)
}

func (u *PaymentUseCase) cancelAuthorization(ctx context.Context, p *entities.Payment, offer *decimal.Decimal) (*entities.Cancellation, error) {
	auth := p.Authorization()
	if auth == nil {
		return nil, nil
	}
	open := p.AuthorizationOpenAmount()
	if !open.IsPositive() {
		log.Printf("[payment][cancel] authorization has no open amount; skipping payment_id=%s authorization_id=%s", p.ID, auth.ID)
		return nil, nil
	}

	var req *decimal.Decimal
	if offer != nil {
		a := entities.MinAmount(entities.RoundAmount(*offer), open)
		req = &a
	}
	log.Printf("[payment][cancel] authorization cancel start payment_id=%s authorization_id=%s amount=%s", p.ID, auth.ID, amountLabel(req))

	resp, err := u.gateway.CancelAuthorization(ctx, p.ID, auth.ID, req)
	if err != nil {
		if entities.AuthorizationCancelTolerated.Tolerates(err) {
			log.Printf("[payment][cancel] authorization already settled payment_id=%s authorization_id=%s err=%v", p.ID, auth.ID, err)
			return nil, nil
		}
		log.Printf("[payment][cancel] authorization cancel failed payment_id=%s authorization_id=%s err=%v", p.ID, auth.ID, err)
		return nil, err
	}
	return u.applyCancellation(p, resp, entities.TransactionTypeCancelAuthorize)
}

// cancelCharge issues one refund. Failures in tolerated are absorbed and
// reported as a nil cancellation.
func (u *PaymentUseCase) cancelCharge(ctx context.Context, p *entities.Payment, ch *entities.Charge, amount *decimal.Decimal, reason entities.CancelReasonCode, tolerated entities.ToleratedErrors) (*entities.Cancellation, error) {
	log.Printf("[payment][cancel] charge cancel start payment_id=%s charge_id=%s amount=%s reason=%s", p.ID, ch.ID, amountLabel(amount), reason)

	resp, err := u.gateway.CancelCharge(ctx, p.ID, ch.ID, amount, reason)
	if err != nil {
		if tolerated.Tolerates(err) {
			log.Printf("[payment][cancel] charge already settled payment_id=%s charge_id=%s err=%v", p.ID, ch.ID, err)
			return nil, nil
		}
		log.Printf("[payment][cancel] charge cancel failed payment_id=%s charge_id=%s err=%v", p.ID, ch.ID, err)
		return nil, err
	}
	return u.applyCancellation(p, resp, entities.TransactionTypeCancelCharge)
}

func (u *PaymentUseCase) applyCancellation(p *entities.Payment, resp entities.PaymentResponse, t entities.TransactionType) (*entities.Cancellation, error) {
	if err := applyPaymentResponse(p, resp); err != nil {
		return nil, err
	}
	ref, err := processedRef(resp, t)
	if err != nil {
		return nil, err
	}
	cl := p.Cancellation(ref.ID)
	if cl == nil {
		return nil, fmt.Errorf("%w: cancellation %s not merged", ErrMissingProcessedTransaction, ref.ID)
	}
	log.Printf("[payment][cancel] cancel success payment_id=%s cancellation_id=%s parent_id=%s amount=%s", p.ID, cl.ID, cl.ParentID, cl.Amount)
	return cl, nil
}

// abortAllocation persists the partial progress of a failed allocation and
// returns the original failure.
func (u *PaymentUseCase) abortAllocation(ctx context.Context, p *entities.Payment, cause error) error {
	if err := u.persist(ctx, p); err != nil {
		log.Printf("[payment][cancel] persisting partial progress failed payment_id=%s err=%v", p.ID, err)
	}
	return cause
}

func normalizeReason(reason entities.CancelReasonCode) (entities.CancelReasonCode, error) {
	if reason == "" {
		return entities.CancelReasonCodeCancel, nil
	}
	if !reason.IsValid() {
		return "", ErrInvalidCancelReason
	}
	return reason, nil
}

func amountLabel(amount *decimal.Decimal) string {
	if amount == nil {
		return "all"
	}
	return amount.String()
}
