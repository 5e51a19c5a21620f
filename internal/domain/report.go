package domain

// WinStats is the per-participant win-rate record. Both counts default
// to zero for a participant with no submissions.
type WinStats struct {
	AttemptedCount int64 `json:"attemptedCount"`
	CompletedCount int64 `json:"completedCount"`
}

type LeaderboardEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WinCount int64  `json:"win_count"`
}

// WinnerDeclaration carries the result fields propagated to a contest
// and its submissions and payments.
type WinnerDeclaration struct {
	ContestID   uint   `json:"contest_id"`
	Result      string `json:"result"`
	WinnerName  string `json:"winner_name"`
	WinnerEmail string `json:"winner_email"`
	WinnerImage string `json:"winner_image"`
}
