package usecase

import (
	"context"
	"io"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockMedecinRepo struct {
	createFn      func(ctx context.Context, medecin *entity.Medecin) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Medecin, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.Medecin, error)
}

func (m *mockMedecinRepo) Create(ctx context.Context, medecin *entity.Medecin) error {
	if m.createFn != nil {
		return m.createFn(ctx, medecin)
	}
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
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockMedecinRepo) Update(ctx context.Context, medecin *entity.Medecin) error {
	return nil
}

func (m *mockMedecinRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type mockDonneurRepo struct {
	createFn              func(ctx context.Context, donneur *entity.Donneur) error
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Donneur, error)
	findByEmailFn         func(ctx context.Context, email string) (*entity.Donneur, error)
	findByGroupeSanguinFn func(ctx context.Context, groupeSanguin string) ([]entity.Donneur, error)
}

func (m *mockDonneurRepo) Create(ctx context.Context, donneur *entity.Donneur) error {
	if m.createFn != nil {
		return m.createFn(ctx, donneur)
	}
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
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockDonneurRepo) FindByGroupeSanguin(ctx context.Context, groupeSanguin string) ([]entity.Donneur, error) {
	if m.findByGroupeSanguinFn != nil {
		return m.findByGroupeSanguinFn(ctx, groupeSanguin)
	}
	return nil, nil
}

func (m *mockDonneurRepo) Update(ctx context.Context, donneur *entity.Donneur) error {
	return nil
}

func (m *mockDonneurRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type mockDemandeRepo struct {
	createFn          func(ctx context.Context, demande *entity.Demande) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Demande, error)
	findByMedecinIDFn func(ctx context.Context, medecinID uuid.UUID) ([]entity.Demande, error)
	updateFn          func(ctx context.Context, demande *entity.Demande) error
	deleteFn          func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockDemandeRepo) Create(ctx context.Context, demande *entity.Demande) error {
	if m.createFn != nil {
		return m.createFn(ctx, demande)
	}
	demande.ID = uuid.New()
	return nil
}

func (m *mockDemandeRepo) FindAll(ctx context.Context) ([]entity.Demande, error) {
	return nil, nil
}

func (m *mockDemandeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Demande, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDemandeRepo) FindByMedecinID(ctx context.Context, medecinID uuid.UUID) ([]entity.Demande, error) {
	if m.findByMedecinIDFn != nil {
		return m.findByMedecinIDFn(ctx, medecinID)
	}
	return nil, nil
}

func (m *mockDemandeRepo) Update(ctx context.Context, demande *entity.Demande) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, demande)
	}
	return nil
}

func (m *mockDemandeRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 1, nil
}

type mockNotificationRepo struct {
	createFn          func(ctx context.Context, notification *entity.Notification) error
	createBatchFn     func(ctx context.Context, notifications []entity.Notification) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	findByDonneurIDFn func(ctx context.Context, donneurID uuid.UUID) ([]entity.Notification, error)
	updateFn          func(ctx context.Context, notification *entity.Notification) error
	deleteFn          func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, notification)
	}
	return nil
}

func (m *mockNotificationRepo) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, notifications)
	}
	return nil
}

func (m *mockNotificationRepo) FindAll(ctx context.Context) ([]entity.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepo) FindByDonneurID(ctx context.Context, donneurID uuid.UUID) ([]entity.Notification, error) {
	if m.findByDonneurIDFn != nil {
		return m.findByDonneurIDFn(ctx, donneurID)
	}
	return nil, nil
}

func (m *mockNotificationRepo) Update(ctx context.Context, notification *entity.Notification) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, notification)
	}
	return nil
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 1, nil
}

type mockStockRepo struct {
	createFn   func(ctx context.Context, stock *entity.StockSang) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.StockSang, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockStockRepo) Create(ctx context.Context, stock *entity.StockSang) error {
	if m.createFn != nil {
		return m.createFn(ctx, stock)
	}
	stock.ID = uuid.New()
	return nil
}

func (m *mockStockRepo) FindAll(ctx context.Context) ([]entity.StockSang, error) {
	return nil, nil
}

func (m *mockStockRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockSang, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockStockRepo) Update(ctx context.Context, stock *entity.StockSang) error {
	return nil
}

func (m *mockStockRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 1, nil
}

type mockBanqueRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.BanqueDeSang, error)
}

func (m *mockBanqueRepo) Create(ctx context.Context, banque *entity.BanqueDeSang) error {
	return nil
}

func (m *mockBanqueRepo) FindAll(ctx context.Context) ([]entity.BanqueDeSang, error) {
	return nil, nil
}

func (m *mockBanqueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BanqueDeSang, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBanqueRepo) Update(ctx context.Context, banque *entity.BanqueDeSang) error {
	return nil
}

func (m *mockBanqueRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}
