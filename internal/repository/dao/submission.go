package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

type Submission struct {
	ID uint `gorm:"primaryKey"`

	ContestID        uint   `gorm:"index;not null"`
	ContestTitle     string
	ParticipantEmail string `gorm:"index;not null"`
	ParticipantName  string
	Task             string

	Result      string `gorm:"not null;default:''"`
	WinnerName  string
	WinnerEmail string
	WinnerImage string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// WinStatsRow and LeaderboardRow receive the aggregation results; GORM
// maps the SELECT aliases onto the fields by name.
type WinStatsRow struct {
	AttemptedCount int64
	CompletedCount int64
}

type LeaderboardRow struct {
	Name     string
	Email    string
	WinCount int64
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

func (d *SubmissionDAO) Insert(ctx context.Context, submission Submission) (Submission, error) {
	result := d.db.WithContext(ctx).Create(&submission)
	if result.Error != nil {
		return Submission{}, result.Error
	}

	return submission, nil
}

func (d *SubmissionDAO) FindAll(ctx context.Context) ([]Submission, error) {
	var submissions []Submission

	result := d.db.WithContext(ctx).Order("id").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

func (d *SubmissionDAO) FindByContestID(ctx context.Context, contestID uint) ([]Submission, error) {
	var submissions []Submission

	result := d.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Order("id").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

// WinStats computes the attempted and completed counts for one
// participant in a single pass over their submissions. A completed
// submission is one whose declared winner is the participant itself.
func (d *SubmissionDAO) WinStats(ctx context.Context, email string) (WinStatsRow, error) {
	var row WinStatsRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS attempted_count,
		       COUNT(*) FILTER (WHERE result <> '' AND winner_email = participant_email) AS completed_count
		FROM submissions
		WHERE participant_email = ?`, email).
		Scan(&row)
	if result.Error != nil {
		return WinStatsRow{}, result.Error
	}

	return row, nil
}

// Leaderboard groups winning submissions by winner, joins the user
// record for the display name and orders by win count. Participants
// without a declared win produce no row.
func (d *SubmissionDAO) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow

	result := d.db.WithContext(ctx).Raw(`
		SELECT u.name AS name,
		       s.winner_email AS email,
		       COUNT(*) AS win_count
		FROM submissions s
		JOIN users u ON u.email = s.winner_email
		WHERE s.result <> '' AND s.winner_email = s.participant_email
		GROUP BY u.name, s.winner_email
		ORDER BY win_count DESC`).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
