package models

import "fmt"

// SubscriberTier is the subscription level attached to a user account.
// Ordered by benefit magnitude: vip > plus > basic.
type SubscriberTier string

const (
	TierBasic SubscriberTier = "basic"
	TierPlus  SubscriberTier = "plus"
	TierVIP   SubscriberTier = "vip"
)

// TransactionCategory determines which fee rule applies to a transaction.
type TransactionCategory string

const (
	CategoryPeerTransfer     TransactionCategory = "peer_transfer"
	CategoryAirtime          TransactionCategory = "airtime"
	CategoryDataBundle       TransactionCategory = "data_bundle"
	CategoryDeposit          TransactionCategory = "deposit"
	CategoryWithdrawal       TransactionCategory = "withdrawal"
	CategoryMerchantScan     TransactionCategory = "merchant_scan"
	CategoryScheduledPayment TransactionCategory = "scheduled_payment"
)

// Annual savings interest rates fixed per tier at account opening.
var SavingsRates = map[SubscriberTier]float64{
	TierBasic: 0.06,
	TierPlus:  0.12,
	TierVIP:   0.18,
}

// Annual loan rates per tier. Inverted relative to savings rates:
// better tiers borrow cheaper.
var LoanRates = map[SubscriberTier]float64{
	TierBasic: 0.20,
	TierPlus:  0.18,
	TierVIP:   0.15,
}

func (t SubscriberTier) Valid() bool {
	switch t {
	case TierBasic, TierPlus, TierVIP:
		return true
	}
	return false
}

func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryPeerTransfer, CategoryAirtime, CategoryDataBundle, CategoryDeposit,
		CategoryWithdrawal, CategoryMerchantScan, CategoryScheduledPayment:
		return true
	}
	return false
}

// ParseTier converts a raw string into a SubscriberTier, rejecting
// anything outside the closed set.
func ParseTier(s string) (SubscriberTier, error) {
	t := SubscriberTier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown subscriber tier: %q", s)
	}
	return t, nil
}

// ParseCategory converts a raw string into a TransactionCategory,
// rejecting anything outside the closed set.
func ParseCategory(s string) (TransactionCategory, error) {
	c := TransactionCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown transaction category: %q", s)
	}
	return c, nil
}

// SavingsRate returns the annual savings rate for the tier.
func (t SubscriberTier) SavingsRate() float64 {
	return SavingsRates[t]
}

// LoanRate returns the annual loan rate for the tier.
func (t SubscriberTier) LoanRate() float64 {
	return LoanRates[t]
}
