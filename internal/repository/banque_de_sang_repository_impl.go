package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type banqueDeSangRepository struct {
	db *gorm.DB
}

func NewBanqueDeSangRepository(db *gorm.DB) domainRepo.BanqueDeSangRepository {
	return &banqueDeSangRepository{db: db}
}

func (r *banqueDeSangRepository) Create(ctx context.Context, banque *entity.BanqueDeSang) error {
	return r.db.WithContext(ctx).Create(banque).Error
}

func (r *banqueDeSangRepository) FindAll(ctx context.Context) ([]entity.BanqueDeSang, error) {
	var banques []entity.BanqueDeSang
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&banques).Error
	if err != nil {
		return nil, err
	}
	return banques, nil
}

func (r *banqueDeSangRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BanqueDeSang, error) {
	var banque entity.BanqueDeSang
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&banque).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banque, nil
}

func (r *banqueDeSangRepository) Update(ctx context.Context, banque *entity.BanqueDeSang) error {
	return r.db.WithContext(ctx).Save(banque).Error
}

func (r *banqueDeSangRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BanqueDeSang{})
	return result.RowsAffected, result.Error
}
