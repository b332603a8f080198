// Package subscription handles paid tier upgrades. Billing goes through
// Stripe; the resulting tier change affects future fee discounts and the
// rate of newly opened savings accounts only — accounts already open keep
// the rate fixed at their creation.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"pochi/internal/models"
	"pochi/internal/repositories"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

var (
	ErrInvalidTier   = errors.New("tier must be plus or vip")
	ErrAlreadyOnTier = errors.New("user is already on this tier")
	ErrPaymentFailed = errors.New("subscription payment failed")
	ErrNotConfigured = errors.New("STRIPE_SECRET_KEY not configured")
)

// MonthlyPrices are the subscription prices per tier, in minor units for
// the Stripe charge.
var MonthlyPrices = map[models.SubscriberTier]int64{
	models.TierPlus: 19900,
	models.TierVIP:  49900,
}

type Service interface {
	Upgrade(ctx context.Context, userID uint, tier models.SubscriberTier, cardToken string) (*models.User, error)
	Downgrade(ctx context.Context, userID uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
	currency string
}

func NewService(userRepo repositories.UserRepository, currency string) Service {
	if currency == "" {
		currency = "kes"
	}
	return &service{
		userRepo: userRepo,
		currency: currency,
	}
}

// Upgrade charges the monthly price for the tier and moves the user onto
// it. Open savings accounts are untouched: their annual rate was fixed at
// opening.
func (s *service) Upgrade(ctx context.Context, userID uint, tier models.SubscriberTier, cardToken string) (*models.User, error) {
	price, ok := MonthlyPrices[tier]
	if !ok {
		return nil, ErrInvalidTier
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Tier == tier {
		return nil, ErrAlreadyOnTier
	}

	if err := s.chargeCard(price, cardToken, fmt.Sprintf("pochi %s subscription for user %d", tier, userID)); err != nil {
		return nil, err
	}

	user.Tier = tier
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("payment succeeded but tier update failed: %w", err)
	}

	return user, nil
}

// Downgrade drops the user back to the basic tier. No refund is issued;
// the paid period simply runs out.
func (s *service) Downgrade(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Tier == models.TierBasic {
		return nil, ErrAlreadyOnTier
	}

	user.Tier = models.TierBasic
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) chargeCard(amount int64, cardToken, description string) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		return ErrNotConfigured
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(description),
	}
	if err := params.SetSource(cardToken); err != nil {
		return fmt.Errorf("invalid card token: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		log.Printf("stripe charge error: %v", err)
		return ErrPaymentFailed
	}
	if !ch.Paid {
		return ErrPaymentFailed
	}
	return nil
}
