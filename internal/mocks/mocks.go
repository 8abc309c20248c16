// Package mocks provides hand-written test doubles for the gateway's
// upstream interfaces.
package mocks

import (
	"context"

	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

type MockCatalogRepo struct {
	GetMoviesFunc    func(ctx context.Context) ([]*domain.Movie, error)
	GetMovieByIdFunc func(ctx context.Context, id string) (*domain.Movie, error)
	GetCinemasFunc   func(ctx context.Context) ([]*domain.Cinema, error)
}

func (m *MockCatalogRepo) GetMovies(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetMoviesFunc(ctx)
}

func (m *MockCatalogRepo) GetMovieById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetMovieByIdFunc(ctx, id)
}

func (m *MockCatalogRepo) GetCinemas(ctx context.Context) ([]*domain.Cinema, error) {
	return m.GetCinemasFunc(ctx)
}

type MockAccountService struct {
	RegisterFunc             func(ctx context.Context, reg domain.Registration) (*domain.User, error)
	AuthenticateFunc         func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserFunc              func(ctx context.Context, id int) (*domain.User, error)
	UpdateUserFunc           func(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
}

func (m *MockAccountService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	return m.RegisterFunc(ctx, reg)
}

func (m *MockAccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.AuthenticateFunc(ctx, email, password)
}

func (m *MockAccountService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *MockAccountService) UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error) {
	return m.UpdateUserFunc(ctx, id, upd)
}

func (m *MockAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.RequestPasswordResetFunc(ctx, email)
}
