package repository

import (
	"context"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository/dao"
)

var (
	ErrContestNotFound = dao.ErrContestNotFound
)

type ContestDAO interface {
	Insert(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	FindByID(ctx context.Context, id uint) (dao.Contest, error)
	FindPage(ctx context.Context, offset, limit int) ([]dao.Contest, error)
	CountAll(ctx context.Context) (int64, error)
	SearchByTags(ctx context.Context, value string) ([]dao.Contest, error)
	FindPopular(ctx context.Context) ([]dao.Contest, error)
	FindByCreator(ctx context.Context, email string) ([]dao.Contest, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (dao.Contest, error)
	DeleteByID(ctx context.Context, id uint) error
	DeclareWinner(ctx context.Context, contestID uint, result, winnerName, winnerEmail, winnerImage string) error
	FindLatestWinner(ctx context.Context) (dao.Contest, error)
	FindTopCreators(ctx context.Context, limit int) ([]dao.Contest, error)
	FindWonByEmail(ctx context.Context, email string) ([]dao.Contest, error)
}

type ContestRepository struct {
	dao ContestDAO
}

func NewContestRepository(dao ContestDAO) *ContestRepository {
	return &ContestRepository{
		dao: dao,
	}
}

func (r *ContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ContestRepository) FindByID(ctx context.Context, id uint) (domain.Contest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ContestRepository) FindPage(ctx context.Context, page, size int) ([]domain.Contest, error) {
	found, err := r.dao.FindPage(ctx, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.dao.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountAll -> %w", err)
	}

	return count, nil
}

func (r *ContestRepository) SearchByTags(ctx context.Context, value string) ([]domain.Contest, error) {
	found, err := r.dao.SearchByTags(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByTags -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) FindPopular(ctx context.Context) ([]domain.Contest, error) {
	found, err := r.dao.FindPopular(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPopular -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) FindByCreator(ctx context.Context, email string) ([]domain.Contest, error) {
	found, err := r.dao.FindByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCreator -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (domain.Contest, error) {
	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ContestRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.dao.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteByID -> %w", err)
	}

	return nil
}

func (r *ContestRepository) DeclareWinner(ctx context.Context, decl domain.WinnerDeclaration) error {
	err := r.dao.DeclareWinner(ctx, decl.ContestID, decl.Result, decl.WinnerName, decl.WinnerEmail, decl.WinnerImage)
	if err != nil {
		return fmt.Errorf("r.dao.DeclareWinner -> %w", err)
	}

	return nil
}

func (r *ContestRepository) FindLatestWinner(ctx context.Context) (domain.Contest, error) {
	found, err := r.dao.FindLatestWinner(ctx)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.FindLatestWinner -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ContestRepository) FindTopCreators(ctx context.Context, limit int) ([]domain.Contest, error) {
	found, err := r.dao.FindTopCreators(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTopCreators -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) FindWonByEmail(ctx context.Context, email string) ([]domain.Contest, error) {
	found, err := r.dao.FindWonByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWonByEmail -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) domainToDao(c domain.Contest) dao.Contest {
	return dao.Contest{
		ID:                 c.ID,
		Title:              c.Title,
		Image:              c.Image,
		Description:        c.Description,
		Tags:               c.Tags,
		Price:              c.Price,
		PrizeMoney:         c.PrizeMoney,
		Deadline:           c.Deadline,
		CreatorEmail:       c.CreatorEmail,
		Status:             c.Status,
		ParticipationCount: c.ParticipationCount,
		Result:             c.Result,
		WinnerName:         c.WinnerName,
		WinnerEmail:        c.WinnerEmail,
		WinnerImage:        c.WinnerImage,
	}
}

func (r *ContestRepository) daoToDomain(c dao.Contest) domain.Contest {
	return domain.Contest{
		ID:                 c.ID,
		Title:              c.Title,
		Image:              c.Image,
		Description:        c.Description,
		Tags:               c.Tags,
		Price:              c.Price,
		PrizeMoney:         c.PrizeMoney,
		Deadline:           c.Deadline,
		CreatorEmail:       c.CreatorEmail,
		Status:             c.Status,
		ParticipationCount: c.ParticipationCount,
		Result:             c.Result,
		WinnerName:         c.WinnerName,
		WinnerEmail:        c.WinnerEmail,
		WinnerImage:        c.WinnerImage,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (r *ContestRepository) daosToDomain(daoContests []dao.Contest) []domain.Contest {
	contests := make([]domain.Contest, len(daoContests))
	for i, c := range daoContests {
		contests[i] = r.daoToDomain(c)
	}

	return contests
}
