package domain

import "time"

type Payment struct {
	ID            uint    `json:"id"`
	ContestID     uint    `json:"contest_id"`
	ContestTitle  string  `json:"contest_title"`
	UserEmail     string  `json:"user_email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`

	// Denormalized copy of the contest's winner fields, written by the
	// win declaration.
	Result      string `json:"result"`
	WinnerName  string `json:"winner_name"`
	WinnerEmail string `json:"winner_email"`
	WinnerImage string `json:"winner_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
