package repository

import (
	"context"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository/dao"
)

var (
	ErrSubmissionNotFound = dao.ErrSubmissionNotFound
)

type SubmissionDAO interface {
	Insert(ctx context.Context, submission dao.Submission) (dao.Submission, error)
	FindAll(ctx context.Context) ([]dao.Submission, error)
	FindByContestID(ctx context.Context, contestID uint) ([]dao.Submission, error)
	WinStats(ctx context.Context, email string) (dao.WinStatsRow, error)
	Leaderboard(ctx context.Context) ([]dao.LeaderboardRow, error)
}

type SubmissionRepository struct {
	dao SubmissionDAO
}

func NewSubmissionRepository(dao SubmissionDAO) *SubmissionRepository {
	return &SubmissionRepository{
		dao: dao,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	created, err := r.dao.Insert(ctx, dao.Submission{
		ContestID:        submission.ContestID,
		ContestTitle:     submission.ContestTitle,
		ParticipantEmail: submission.ParticipantEmail,
		ParticipantName:  submission.ParticipantName,
		Task:             submission.Task,
	})
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SubmissionRepository) FindAll(ctx context.Context) ([]domain.Submission, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SubmissionRepository) FindByContestID(ctx context.Context, contestID uint) ([]domain.Submission, error) {
	found, err := r.dao.FindByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByContestID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SubmissionRepository) WinStats(ctx context.Context, email string) (domain.WinStats, error) {
	row, err := r.dao.WinStats(ctx, email)
	if err != nil {
		return domain.WinStats{}, fmt.Errorf("r.dao.WinStats -> %w", err)
	}

	return domain.WinStats{
		AttemptedCount: row.AttemptedCount,
		CompletedCount: row.CompletedCount,
	}, nil
}

func (r *SubmissionRepository) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := r.dao.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Leaderboard -> %w", err)
	}

	entries := make([]domain.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.LeaderboardEntry{
			Name:     row.Name,
			Email:    row.Email,
			WinCount: row.WinCount,
		}
	}

	return entries, nil
}

func (r *SubmissionRepository) daoToDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		ID:               s.ID,
		ContestID:        s.ContestID,
		ContestTitle:     s.ContestTitle,
		ParticipantEmail: s.ParticipantEmail,
		ParticipantName:  s.ParticipantName,
		Task:             s.Task,
		Result:           s.Result,
		WinnerName:       s.WinnerName,
		WinnerEmail:      s.WinnerEmail,
		WinnerImage:      s.WinnerImage,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (r *SubmissionRepository) daosToDomain(daoSubmissions []dao.Submission) []domain.Submission {
	submissions := make([]domain.Submission, len(daoSubmissions))
	for i, s := range daoSubmissions {
		submissions[i] = r.daoToDomain(s)
	}

	return submissions
}
