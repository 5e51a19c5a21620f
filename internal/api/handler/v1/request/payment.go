package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

func (req *CreatePaymentIntentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
	)
}

type CreatePaymentRequest struct {
	ContestID     uint    `json:"contest_id"`
	UserEmail     string  `json:"user_email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

func (req *CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContestID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.UserEmail, validation.Required, is.Email),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&req.TransactionID, validation.Required),
	)
}
