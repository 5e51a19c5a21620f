package repository

import (
	"context"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository/dao"
)

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByUserEmail(ctx context.Context, email string) ([]dao.Payment, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		ContestID:     payment.ContestID,
		ContestTitle:  payment.ContestTitle,
		UserEmail:     payment.UserEmail,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	found, err := r.dao.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserEmail -> %w", err)
	}

	payments := make([]domain.Payment, len(found))
	for i, p := range found {
		payments[i] = r.daoToDomain(p)
	}

	return payments, nil
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:            p.ID,
		ContestID:     p.ContestID,
		ContestTitle:  p.ContestTitle,
		UserEmail:     p.UserEmail,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Result:        p.Result,
		WinnerName:    p.WinnerName,
		WinnerEmail:   p.WinnerEmail,
		WinnerImage:   p.WinnerImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
