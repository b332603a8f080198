// Package fees computes platform transaction fees. The calculator is pure:
// it reads the static pricing tables in models and holds no state, so a
// single instance is safe for concurrent use.
package fees

import (
	"math"

	"pochi/internal/models"
)

// Breakdown is the itemized result of a fee computation, returned so
// quotes and receipts can show the pricing steps, not just the total.
type Breakdown struct {
	Category     models.TransactionCategory `json:"category"`
	Tier         models.SubscriberTier      `json:"tier"`
	Amount       float64                    `json:"amount"`
	BaseFee      float64                    `json:"base_fee"`
	DiscountRate float64                    `json:"discount_rate"`
	Fee          float64                    `json:"fee"`
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeFee returns the fee to charge for a transaction of the given
// amount, category and subscriber tier. The base fee comes from the
// category's rule (bracketed for peer transfers), the tier discount is
// applied on top, and the result is rounded half-up to cents.
func (c *Calculator) ComputeFee(amount float64, category models.TransactionCategory, tier models.SubscriberTier) (float64, error) {
	bd, err := c.Quote(amount, category, tier)
	if err != nil {
		return 0, err
	}
	return bd.Fee, nil
}

// Quote computes the full fee breakdown for a transaction.
func (c *Calculator) Quote(amount float64, category models.TransactionCategory, tier models.SubscriberTier) (*Breakdown, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	rule, err := resolveRule(amount, category)
	if err != nil {
		return nil, err
	}

	base := roundToCents(applyRule(amount, rule))
	discount := models.Discount(tier, category)
	fee := roundToCents(base * (1 - discount))

	return &Breakdown{
		Category:     category,
		Tier:         tier,
		Amount:       amount,
		BaseFee:      base,
		DiscountRate: discount,
		Fee:          fee,
	}, nil
}

// resolveRule picks the fee rule for the category, selecting the matching
// peer-transfer bracket by amount. Bracket selection is by upper bound
// only: the first bracket whose Max covers the amount wins, and the
// open-ended last bracket catches everything above, so no positive amount
// can fall between brackets.
func resolveRule(amount float64, category models.TransactionCategory) (models.FeeRule, error) {
	if category == models.CategoryPeerTransfer {
		brackets := models.PeerTransferBrackets
		for _, bracket := range brackets[:len(brackets)-1] {
			if amount <= bracket.Max {
				return bracket.Rule, nil
			}
		}
		return brackets[len(brackets)-1].Rule, nil
	}

	rule, ok := models.FlatFeeRules[category]
	if !ok {
		return models.FeeRule{}, ErrUnknownCategory
	}
	return rule, nil
}

// applyRule evaluates fee = amount*percent + fixed, clamped by the cap.
func applyRule(amount float64, rule models.FeeRule) float64 {
	fee := amount*rule.PercentRate + rule.FixedAmount
	if rule.HasCap && fee > rule.Cap {
		fee = rule.Cap
	}
	if fee < 0 {
		fee = 0
	}
	return fee
}

// roundToCents rounds half-up to two decimals. Fees are non-negative, so
// round-half-away-from-zero and round-half-up coincide.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
