package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateContestRequest struct {
	Title        string    `json:"title"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	Tags         string    `json:"tags"`
	Price        float64   `json:"price"`
	PrizeMoney   float64   `json:"prize_money"`
	Deadline     time.Time `json:"deadline"`
	CreatorEmail string    `json:"creator_email"`
}

func (req *CreateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.CreatorEmail, validation.Required, is.Email),
	)
}

// UpdateContestRequest carries a partial update; only non-nil fields
// are applied.
type UpdateContestRequest struct {
	Title       *string    `json:"title"`
	Image       *string    `json:"image"`
	Description *string    `json:"description"`
	Tags        *string    `json:"tags"`
	Price       *float64   `json:"price"`
	PrizeMoney  *float64   `json:"prize_money"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status"`
}

func (req *UpdateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.In("pending", "approved")),
		validation.Field(&req.Price, validation.Min(0.0)),
	)
}

func (req *UpdateContestRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.PrizeMoney != nil {
		fields["prize_money"] = *req.PrizeMoney
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	return fields
}

type DeclareWinRequest struct {
	ContestID   uint   `json:"contest_id"`
	Result      string `json:"result"`
	WinnerName  string `json:"winner_name"`
	WinnerEmail string `json:"winner_email"`
	WinnerImage string `json:"winner_image"`
}

func (req *DeclareWinRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContestID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Result, validation.Required),
		validation.Field(&req.WinnerEmail, validation.Required, is.Email),
	)
}
