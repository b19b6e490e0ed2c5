package middleware

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

type mockMedecinRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Medecin, error)
}

func (m *mockMedecinRepo) Create(ctx context.Context, medecin *entity.Medecin) error {
	return nil
}

func (m *mockMedecinRepo) FindAll(ctx context.Context) ([]entity.Medecin, error) {
	return nil, nil
}

func (m *mockMedecinRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medecin, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMedecinRepo) FindByEmail(ctx context.Context, email string) (*entity.Medecin, error) {
	return nil, nil
}

func (m *mockMedecinRepo) Update(ctx context.Context, medecin *entity.Medecin) error {
	return nil
}

func (m *mockMedecinRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type mockDonneurRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Donneur, error)
}

func (m *mockDonneurRepo) Create(ctx context.Context, donneur *entity.Donneur) error {
	return nil
}

func (m *mockDonneurRepo) FindAll(ctx context.Context) ([]entity.Donneur, error) {
	return nil, nil
}

func (m *mockDonneurRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donneur, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDonneurRepo) FindByEmail(ctx context.Context, email string) (*entity.Donneur, error) {
	return nil, nil
}

func (m *mockDonneurRepo) FindByGroupeSanguin(ctx context.Context, groupeSanguin string) ([]entity.Donneur, error) {
	return nil, nil
}

func (m *mockDonneurRepo) Update(ctx context.Context, donneur *entity.Donneur) error {
	return nil
}

func (m *mockDonneurRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}
