package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"github.com/contestcorner/contest-corner-api/internal/config"
	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type PaymentService struct {
	repo        PaymentRepository
	contestRepo ContestRepository
}

func NewPaymentService(repo PaymentRepository, contestRepo ContestRepository, conf *config.StripeConfig) *PaymentService {
	stripe.Key = conf.SecretKey

	return &PaymentService{
		repo:        repo,
		contestRepo: contestRepo,
	}
}

// CreatePaymentIntent opens a pending charge with the gateway for the
// price converted to minor currency units and returns the client secret
// the caller needs to confirm it.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(price * 100))),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("paymentintent.New -> %w", err)
	}

	return intent.ClientSecret, nil
}

// RecordPayment persists the client-confirmed payment. The repository
// increments the contest's participation counter in the same
// transaction as the insert.
func (s *PaymentService) RecordPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	contest, err := s.contestRepo.FindByID(ctx, payment.ContestID)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Payment{}, ErrContestNotFound
		}

		return domain.Payment{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	payment.ContestTitle = contest.Title

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Payment{}, ErrContestNotFound
		}

		return domain.Payment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PaymentService) GetByUserEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	payments, err := s.repo.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserEmail -> %w", err)
	}

	return payments, nil
}
