package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockSangRepository struct {
	db *gorm.DB
}

func NewStockSangRepository(db *gorm.DB) domainRepo.StockSangRepository {
	return &stockSangRepository{db: db}
}

func (r *stockSangRepository) Create(ctx context.Context, stock *entity.StockSang) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *stockSangRepository) FindAll(ctx context.Context) ([]entity.StockSang, error) {
	var stocks []entity.StockSang
	err := r.db.WithContext(ctx).Preload("Banque").Order("created_at DESC").Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *stockSangRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockSang, error) {
	var stock entity.StockSang
	err := r.db.WithContext(ctx).Preload("Banque").Where("id = ?", id).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

func (r *stockSangRepository) Update(ctx context.Context, stock *entity.StockSang) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

func (r *stockSangRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.StockSang{})
	return result.RowsAffected, result.Error
}
