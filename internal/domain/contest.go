package domain

import "time"

const (
	ContestStatusPending  = "pending"
	ContestStatusApproved = "approved"
)

type Contest struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	Image              string    `json:"image"`
	Description        string    `json:"description"`
	Tags               string    `json:"tags"`
	Price              float64   `json:"price"`
	PrizeMoney         float64   `json:"prize_money"`
	Deadline           time.Time `json:"deadline"`
	CreatorEmail       string    `json:"creator_email"`
	Status             string    `json:"status"` // "pending" or "approved"
	ParticipationCount int       `json:"participation_count"`

	// Winner fields, empty until a win is declared.
	Result      string `json:"result"`
	WinnerName  string `json:"winner_name"`
	WinnerEmail string `json:"winner_email"`
	WinnerImage string `json:"winner_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
