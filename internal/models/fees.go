package models

// FeeRule is one pricing formula: fee = amount*PercentRate + FixedAmount,
// capped at Cap when HasCap is set. The computed fee is never negative.
type FeeRule struct {
	PercentRate float64 `json:"percent_rate"`
	FixedAmount float64 `json:"fixed_amount"`
	Cap         float64 `json:"cap"`
	HasCap      bool    `json:"has_cap"`
}

// FeeBracket binds a FeeRule to every amount at or below Max that no
// earlier bracket claimed. Max == 0 marks the final, open-ended bracket.
// Selecting by upper bound alone keeps the table gapless: any positive
// amount matches exactly one bracket.
type FeeBracket struct {
	Max  float64 `json:"max"`
	Rule FeeRule `json:"rule"`
}

// PeerTransferBrackets is the tiered pricing table for peer transfers.
// Transfers up to 100 are free; the breakpoints at 100, 500, 1000, 5000,
// 10000 and 50000 define observable pricing and must not drift.
var PeerTransferBrackets = []FeeBracket{
	{Max: 100, Rule: FeeRule{}},
	{Max: 500, Rule: FeeRule{PercentRate: 0.008, FixedAmount: 3, Cap: 15, HasCap: true}},
	{Max: 1000, Rule: FeeRule{PercentRate: 0.009, FixedAmount: 5, Cap: 40, HasCap: true}},
	{Max: 5000, Rule: FeeRule{PercentRate: 0.010, FixedAmount: 10, Cap: 75, HasCap: true}},
	{Max: 10000, Rule: FeeRule{PercentRate: 0.011, FixedAmount: 15, Cap: 120, HasCap: true}},
	{Max: 50000, Rule: FeeRule{PercentRate: 0.012, FixedAmount: 25, Cap: 300, HasCap: true}},
	{Max: 0, Rule: FeeRule{PercentRate: 0.013, FixedAmount: 50, Cap: 500, HasCap: true}},
}

// FlatFeeRules holds the single-rule categories. Categories missing from
// this map and from the bracket table have no pricing at all; the fee
// calculator treats that as an error, not a free transaction.
var FlatFeeRules = map[TransactionCategory]FeeRule{
	CategoryAirtime:          {},
	CategoryDataBundle:       {},
	CategoryDeposit:          {},
	CategoryWithdrawal:       {PercentRate: 0.015, FixedAmount: 20, Cap: 250, HasCap: true},
	CategoryMerchantScan:     {PercentRate: 0.0075, FixedAmount: 5, Cap: 50, HasCap: true},
	CategoryScheduledPayment: {PercentRate: 0.005},
}

// DiscountMatrix maps (tier, category) to the fraction taken off the base
// fee. Pairs not present discount nothing; basic tier never discounts.
var DiscountMatrix = map[SubscriberTier]map[TransactionCategory]float64{
	TierPlus: {
		CategoryPeerTransfer: 0.25,
		CategoryMerchantScan: 0.25,
		CategoryWithdrawal:   0.30,
	},
	TierVIP: {
		CategoryPeerTransfer:     0.50,
		CategoryMerchantScan:     0.50,
		CategoryWithdrawal:       0.60,
		CategoryScheduledPayment: 1.00,
	},
}

// Discount returns the discount fraction for the tier and category,
// defaulting to zero for any pair not in the matrix.
func Discount(tier SubscriberTier, category TransactionCategory) float64 {
	if byCategory, ok := DiscountMatrix[tier]; ok {
		return byCategory[category]
	}
	return 0
}
