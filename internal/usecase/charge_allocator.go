package usecase

import (
	"context"
	"fmt"
	"log"

	"payment_reconciler/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ChargeAuthorization charges amount against the authorization, or its whole
// open amount when amount is nil. The open amount is derived from the
// recomputed Amount, so successive partial charges are cumulative.
func (u *PaymentUseCase) ChargeAuthorization(ctx context.Context, p *entities.Payment, amount *decimal.Decimal) (*entities.Charge, error) {
	if err := u.checkPayment(p); err != nil {
		return nil, err
	}
	auth := p.Authorization()
	if auth == nil {
		log.Printf("[payment][charge] no authorization payment_id=%s", p.ID)
		return nil, &entities.MissingParentResourceError{Parent: entities.TransactionTypeAuthorize}
	}

	toCharge, err := resolveChargeAmount(p, amount)
	if err != nil {
		log.Printf("[payment][charge] rejected locally payment_id=%s authorization_id=%s err=%v", p.ID, auth.ID, err)
		return nil, err
	}
	log.Printf("[payment][charge] charge-authorization start payment_id=%s authorization_id=%s amount=%s", p.ID, auth.ID, toCharge)

	resp, err := u.gateway.ChargeAuthorization(ctx, p.ID, toCharge)
	if err != nil {
		log.Printf("[payment][charge] charge-authorization failed payment_id=%s err=%v", p.ID, err)
		return nil, err
	}
	if err := applyPaymentResponse(p, resp); err != nil {
		return nil, err
	}
	ref, err := processedRef(resp, entities.TransactionTypeCharge)
	if err != nil {
		return nil, err
	}
	ch := p.Charge(ref.ID)
	if ch == nil {
		return nil, fmt.Errorf("%w: charge %s not merged", ErrMissingProcessedTransaction, ref.ID)
	}

	a := p.Amount()
	log.Printf("[payment][charge] charge-authorization success payment_id=%s charge_id=%s amount=%s charged=%s remaining=%s state=%s", p.ID, ch.ID, ch.Amount, a.Charged, a.Remaining, p.State)
	return ch, u.persist(ctx, p)
}

// resolveChargeAmount picks the amount to request. A requested amount above
// the open amount is rejected with the error the gateway would return.
func resolveChargeAmount(p *entities.Payment, amount *decimal.Decimal) (decimal.Decimal, error) {
	open := p.AuthorizationOpenAmount()
	if amount == nil {
		if !open.IsPositive() {
			return decimal.Zero, entities.ErrNothingToCharge
		}
		return open, nil
	}

	requested := entities.RoundAmount(*amount)
	if !requested.IsPositive() {
		return decimal.Zero, entities.ErrInvalidAmount
	}
	if requested.GreaterThan(open) {
		return decimal.Zero, &entities.GatewayError{
			Code:            entities.ErrorCodeChargedAmountHigherThanExpected,
			MerchantMessage: fmt.Sprintf("requested charge %s exceeds open authorized amount %s", requested, open),
		}
	}
	return requested, nil
}
