package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donneurRepository struct {
	db *gorm.DB
}

func NewDonneurRepository(db *gorm.DB) domainRepo.DonneurRepository {
	return &donneurRepository{db: db}
}

func (r *donneurRepository) Create(ctx context.Context, donneur *entity.Donneur) error {
	return r.db.WithContext(ctx).Create(donneur).Error
}

func (r *donneurRepository) FindAll(ctx context.Context) ([]entity.Donneur, error) {
	var donneurs []entity.Donneur
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&donneurs).Error
	if err != nil {
		return nil, err
	}
	return donneurs, nil
}

func (r *donneurRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donneur, error) {
	var donneur entity.Donneur
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donneur).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donneur, nil
}

func (r *donneurRepository) FindByEmail(ctx context.Context, email string) (*entity.Donneur, error) {
	var donneur entity.Donneur
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&donneur).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donneur, nil
}

// FindByGroupeSanguin matches the blood group exactly, case included.
// "O+" does not match "o+" and no medical compatibility is applied.
func (r *donneurRepository) FindByGroupeSanguin(ctx context.Context, groupeSanguin string) ([]entity.Donneur, error) {
	var donneurs []entity.Donneur
	err := r.db.WithContext(ctx).Where("groupe_sanguin = ?", groupeSanguin).Find(&donneurs).Error
	if err != nil {
		return nil, err
	}
	return donneurs, nil
}

func (r *donneurRepository) Update(ctx context.Context, donneur *entity.Donneur) error {
	return r.db.WithContext(ctx).Save(donneur).Error
}

func (r *donneurRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Donneur{})
	return result.RowsAffected, result.Error
}
