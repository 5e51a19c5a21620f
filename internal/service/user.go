package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrUserNotFound    = repository.ErrUserNotFound
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (domain.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Upsert returns the stored record unchanged when the email already
// exists, and inserts a new one otherwise.
func (s *UserService) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if user.Role == "" {
		user.Role = domain.RoleParticipant
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// Two first logins can race on the same email; the loser reads
		// the record the winner inserted.
		if errors.Is(err, repository.ErrUserEmailExists) {
			return s.repo.FindByEmail(ctx, user.Email)
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (domain.User, error) {
	updated, err := s.repo.UpdateByEmail(ctx, email, fields)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.UpdateByEmail -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.DeleteByID -> %w", err)
	}

	return nil
}
