package user

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LoginTaken reports whether a user with login already exists.
func (s *Service) LoginTaken(ctx context.Context, login string) (bool, error) {
	_, err := s.repo.GetByLogin(ctx, login)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) Create(ctx context.Context, u *User) error {
	if u.Role == "" {
		u.Role = RoleBuyer
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByLogin(ctx context.Context, login string) (User, error) {
	return s.repo.GetByLogin(ctx, login)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}
