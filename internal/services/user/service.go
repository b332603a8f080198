package user

import (
	"context"
	"errors"
	"fmt"

	"pochi/internal/models"
	"pochi/internal/repositories"
	"pochi/internal/services/wallet"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
}

type service struct {
	userRepo      repositories.UserRepository
	walletService wallet.Service
}

func NewService(userRepo repositories.UserRepository, walletService wallet.Service) Service {
	return &service{
		userRepo:      userRepo,
		walletService: walletService,
	}
}

// Register creates a user on the basic tier with a fresh wallet.
func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashed),
		Tier:     models.TierBasic,
		Role:     "user",
		Status:   "active",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	w, err := s.walletService.CreateWallet(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("user created but wallet creation failed: %w", err)
	}
	user.WalletID = &w.ID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
