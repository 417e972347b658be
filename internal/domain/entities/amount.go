package entities

import "github.com/shopspring/decimal"

// AmountPrecision is the number of decimal places every monetary figure is
// rounded to on construction, update and comparison.
const AmountPrecision int32 = 4

// amountTolerance is the largest difference still considered equal (1e-4).
var amountTolerance = decimal.New(1, -AmountPrecision)

// RoundAmount rounds a monetary figure to AmountPrecision places.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPrecision)
}

// AmountsEqual compares two monetary figures after rounding.
func AmountsEqual(a, b decimal.Decimal) bool {
	return RoundAmount(a).Sub(RoundAmount(b)).Abs().LessThan(amountTolerance)
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MinAmount returns the smaller of two monetary figures.
func MinAmount(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Amount is the local view of how much of a payment has been authorized,
// charged, canceled and is still open.
//
// Invariant: Charged + Remaining == Total. Canceled is tracked independently.
type Amount struct {
	Total     decimal.Decimal `json:"total"`
	Charged   decimal.Decimal `json:"charged"`
	Canceled  decimal.Decimal `json:"canceled"`
	Remaining decimal.Decimal `json:"remaining"`
	Currency  string          `json:"currency,omitempty"`
}

// NewAmount builds an Amount deriving Remaining from total and charged.
func NewAmount(total, charged, canceled decimal.Decimal, currency string) Amount {
	total = RoundAmount(total)
	charged = RoundAmount(charged)
	return Amount{
		Total:     total,
		Charged:   charged,
		Canceled:  RoundAmount(canceled),
		Remaining: RoundAmount(total.Sub(charged)),
		Currency:  currency,
	}
}

// IsConsistent reports whether Charged + Remaining equals Total within rounding tolerance.
func (a Amount) IsConsistent() bool {
	return AmountsEqual(a.Charged.Add(a.Remaining), a.Total)
}

// IsFullyCharged reports whether nothing of the total is left to charge.
func (a Amount) IsFullyCharged() bool {
	return a.Total.IsPositive() && !RoundAmount(a.Remaining).IsPositive()
}
