package usecase

import (
	"context"
	"errors"

	"blood-donation-api/internal/converter"
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrStockNotFound = errors.New("stock entry not found")

type StockSangUsecase interface {
	Create(ctx context.Context, req *dto.CreateStockSangRequest) (*dto.StockSangResponse, error)
	GetAll(ctx context.Context) (*dto.StockSangListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StockSangResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStockSangRequest) (*dto.StockSangResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type stockSangUsecase struct {
	log        *logrus.Logger
	stockRepo  repository.StockSangRepository
	banqueRepo repository.BanqueDeSangRepository
}

func NewStockSangUsecase(
	log *logrus.Logger,
	stockRepo repository.StockSangRepository,
	banqueRepo repository.BanqueDeSangRepository,
) StockSangUsecase {
	return &stockSangUsecase{
		log:        log,
		stockRepo:  stockRepo,
		banqueRepo: banqueRepo,
	}
}

// Create verifies the owning bank exists before inserting; a stock
// entry always belongs to exactly one banque de sang.
func (u *stockSangUsecase) Create(ctx context.Context, req *dto.CreateStockSangRequest) (*dto.StockSangResponse, error) {
	banque, err := u.banqueRepo.FindByID(ctx, req.IDBanque)
	if err != nil {
		u.log.Warnf("Failed to find banque de sang %s: %+v", req.IDBanque, err)
		return nil, err
	}
	if banque == nil {
		return nil, ErrBanqueNotFound
	}

	stock := &entity.StockSang{
		IDBanque:      req.IDBanque,
		GroupeSanguin: req.GroupeSanguin,
		Quantite:      *req.Quantite,
	}

	if err := u.stockRepo.Create(ctx, stock); err != nil {
		u.log.Warnf("Failed to create stock entry: %+v", err)
		return nil, err
	}

	return converter.StockSangToResponse(stock), nil
}

func (u *stockSangUsecase) GetAll(ctx context.Context) (*dto.StockSangListResponse, error) {
	stocks, err := u.stockRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find stock entries: %+v", err)
		return nil, err
	}

	return &dto.StockSangListResponse{
		Stocks: converter.StocksSangToResponses(stocks),
		Total:  len(stocks),
	}, nil
}

func (u *stockSangUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.StockSangResponse, error) {
	stock, err := u.stockRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find stock entry %s: %+v", id, err)
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	return converter.StockSangToResponse(stock), nil
}

func (u *stockSangUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStockSangRequest) (*dto.StockSangResponse, error) {
	stock, err := u.stockRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find stock entry %s: %+v", id, err)
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	if req.GroupeSanguin != "" {
		stock.GroupeSanguin = req.GroupeSanguin
	}
	if req.Quantite != nil {
		stock.Quantite = *req.Quantite
	}

	if err := u.stockRepo.Update(ctx, stock); err != nil {
		u.log.Warnf("Failed to update stock entry %s: %+v", id, err)
		return nil, err
	}

	return converter.StockSangToResponse(stock), nil
}

func (u *stockSangUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.stockRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete stock entry %s: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrStockNotFound
	}
	return nil
}
