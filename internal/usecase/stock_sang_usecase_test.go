package usecase

import (
	"context"
	"testing"

	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCreateStock_UnknownBanqueRejected(t *testing.T) {
	u := NewStockSangUsecase(newTestLogger(), &mockStockRepo{}, &mockBanqueRepo{})

	_, err := u.Create(context.Background(), &dto.CreateStockSangRequest{
		IDBanque:      uuid.New(),
		GroupeSanguin: "O+",
		Quantite:      intPtr(10),
	})
	assert.ErrorIs(t, err, ErrBanqueNotFound)
}

func TestCreateStock_ExistingBanque(t *testing.T) {
	banqueID := uuid.New()
	banqueRepo := &mockBanqueRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.BanqueDeSang, error) {
			return &entity.BanqueDeSang{ID: banqueID, Nom: "Banque Centrale"}, nil
		},
	}
	u := NewStockSangUsecase(newTestLogger(), &mockStockRepo{}, banqueRepo)

	resp, err := u.Create(context.Background(), &dto.CreateStockSangRequest{
		IDBanque:      banqueID,
		GroupeSanguin: "O+",
		Quantite:      intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, banqueID, resp.IDBanque)
	assert.Equal(t, 0, resp.Quantite)
}

func TestUpdateStock_QuantityOnly(t *testing.T) {
	stockID := uuid.New()
	stockRepo := &mockStockRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.StockSang, error) {
			return &entity.StockSang{ID: stockID, GroupeSanguin: "B-", Quantite: 4}, nil
		},
	}
	u := NewStockSangUsecase(newTestLogger(), stockRepo, &mockBanqueRepo{})

	resp, err := u.Update(context.Background(), stockID, &dto.UpdateStockSangRequest{Quantite: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Quantite)
	assert.Equal(t, "B-", resp.GroupeSanguin)
}

func TestDeleteStock_NotFound(t *testing.T) {
	stockRepo := &mockStockRepo{
		deleteFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	u := NewStockSangUsecase(newTestLogger(), stockRepo, &mockBanqueRepo{})

	assert.ErrorIs(t, u.Delete(context.Background(), uuid.New()), ErrStockNotFound)
}
