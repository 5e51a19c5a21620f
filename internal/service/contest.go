package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository"
)

var (
	ErrContestNotFound = repository.ErrContestNotFound
)

// Number of contests surfaced by the top-creators report.
const topCreatorsLimit = 5

type ContestRepository interface {
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
	FindPage(ctx context.Context, page, size int) ([]domain.Contest, error)
	CountAll(ctx context.Context) (int64, error)
	SearchByTags(ctx context.Context, value string) ([]domain.Contest, error)
	FindPopular(ctx context.Context) ([]domain.Contest, error)
	FindByCreator(ctx context.Context, email string) ([]domain.Contest, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (domain.Contest, error)
	DeleteByID(ctx context.Context, id uint) error
	DeclareWinner(ctx context.Context, decl domain.WinnerDeclaration) error
	FindLatestWinner(ctx context.Context) (domain.Contest, error)
	FindTopCreators(ctx context.Context, limit int) ([]domain.Contest, error)
	FindWonByEmail(ctx context.Context, email string) ([]domain.Contest, error)
}

type ContestService struct {
	repo ContestRepository
}

func NewContestService(repo ContestRepository) *ContestService {
	return &ContestService{
		repo: repo,
	}
}

func (s *ContestService) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if contest.Status == "" {
		contest.Status = domain.ContestStatusPending
	}

	created, err := s.repo.Create(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ContestService) GetByID(ctx context.Context, id uint) (domain.Contest, error) {
	contest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Contest{}, ErrContestNotFound
		}

		return domain.Contest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return contest, nil
}

func (s *ContestService) GetPage(ctx context.Context, page, size int) ([]domain.Contest, error) {
	contests, err := s.repo.FindPage(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountAll -> %w", err)
	}

	return count, nil
}

func (s *ContestService) SearchByTags(ctx context.Context, value string) ([]domain.Contest, error) {
	contests, err := s.repo.SearchByTags(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByTags -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) GetPopular(ctx context.Context) ([]domain.Contest, error) {
	contests, err := s.repo.FindPopular(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPopular -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) GetByCreator(ctx context.Context, email string) ([]domain.Contest, error) {
	contests, err := s.repo.FindByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCreator -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) Update(ctx context.Context, id uint, fields map[string]interface{}) (domain.Contest, error) {
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Contest{}, ErrContestNotFound
		}

		return domain.Contest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ContestService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return ErrContestNotFound
		}

		return fmt.Errorf("s.repo.DeleteByID -> %w", err)
	}

	return nil
}

// DeclareWin applies the declaration to the contest and its submissions
// and payments. The repository runs the three updates in one
// transaction, and re-declaring the same winner is a no-op rewrite.
func (s *ContestService) DeclareWin(ctx context.Context, decl domain.WinnerDeclaration) error {
	if err := s.repo.DeclareWinner(ctx, decl); err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return ErrContestNotFound
		}

		return fmt.Errorf("s.repo.DeclareWinner -> %w", err)
	}

	return nil
}

func (s *ContestService) GetLatestWinner(ctx context.Context) (domain.Contest, error) {
	contest, err := s.repo.FindLatestWinner(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Contest{}, ErrContestNotFound
		}

		return domain.Contest{}, fmt.Errorf("s.repo.FindLatestWinner -> %w", err)
	}

	return contest, nil
}

func (s *ContestService) GetTopCreators(ctx context.Context) ([]domain.Contest, error) {
	contests, err := s.repo.FindTopCreators(ctx, topCreatorsLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTopCreators -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) GetWonByEmail(ctx context.Context, email string) ([]domain.Contest, error) {
	contests, err := s.repo.FindWonByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindWonByEmail -> %w", err)
	}

	return contests, nil
}
