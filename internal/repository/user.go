package repository

import (
	"context"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (dao.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:   user.Email,
		Name:    user.Name,
		Image:   user.Image,
		Address: user.Address,
		Role:    user.Role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (domain.User, error) {
	updated, err := r.dao.UpdateByEmail(ctx, email, fields)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.UpdateByEmail -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.dao.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteByID -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) daosToDomain(daoUsers []dao.User) []domain.User {
	users := make([]domain.User, len(daoUsers))
	for i, u := range daoUsers {
		users[i] = r.daoToDomain(u)
	}

	return users
}
