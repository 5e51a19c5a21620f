package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission domain.Submission) (domain.Submission, error)
	FindAll(ctx context.Context) ([]domain.Submission, error)
	FindByContestID(ctx context.Context, contestID uint) ([]domain.Submission, error)
	WinStats(ctx context.Context, email string) (domain.WinStats, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type SubmissionService struct {
	repo        SubmissionRepository
	contestRepo ContestRepository
}

func NewSubmissionService(repo SubmissionRepository, contestRepo ContestRepository) *SubmissionService {
	return &SubmissionService{
		repo:        repo,
		contestRepo: contestRepo,
	}
}

// Create stores a submission after checking that the referenced contest
// exists, and denormalizes the contest title onto the record.
func (s *SubmissionService) Create(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	contest, err := s.contestRepo.FindByID(ctx, submission.ContestID)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Submission{}, ErrContestNotFound
		}

		return domain.Submission{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	submission.ContestTitle = contest.Title

	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SubmissionService) ListAll(ctx context.Context) ([]domain.Submission, error) {
	submissions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return submissions, nil
}

func (s *SubmissionService) GetByContestID(ctx context.Context, contestID uint) ([]domain.Submission, error) {
	submissions, err := s.repo.FindByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByContestID -> %w", err)
	}

	return submissions, nil
}

func (s *SubmissionService) GetWinStats(ctx context.Context, email string) (domain.WinStats, error) {
	stats, err := s.repo.WinStats(ctx, email)
	if err != nil {
		return domain.WinStats{}, fmt.Errorf("s.repo.WinStats -> %w", err)
	}

	return stats, nil
}

func (s *SubmissionService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Leaderboard -> %w", err)
	}

	return entries, nil
}
