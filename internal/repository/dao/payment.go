package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID uint `gorm:"primaryKey"`

	ContestID     uint   `gorm:"index;not null"`
	ContestTitle  string
	UserEmail     string `gorm:"index;not null"`
	Amount        float64
	TransactionID string

	Result      string `gorm:"not null;default:''"`
	WinnerName  string
	WinnerEmail string
	WinnerImage string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

// Insert records the payment and increments the contest's participation
// counter in the same transaction, keeping the counter consistent with
// the number of stored payments.
func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Contest{}).
			Where("id = ?", payment.ContestID).
			UpdateColumn("participation_count", gorm.Expr("participation_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrContestNotFound
		}

		return tx.Create(&payment).Error
	})
	if err != nil {
		return Payment{}, err
	}

	return payment, nil
}

func (d *PaymentDAO) FindByUserEmail(ctx context.Context, email string) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}
