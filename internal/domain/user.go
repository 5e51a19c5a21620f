package domain

import "time"

const (
	RoleParticipant = "participant"
	RoleCreator     = "creator"
	RoleAdmin       = "admin"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Address   string    `json:"address"`
	Role      string    `json:"role"` // "participant", "creator" or "admin"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
