package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medecinRepository struct {
	db *gorm.DB
}

func NewMedecinRepository(db *gorm.DB) domainRepo.MedecinRepository {
	return &medecinRepository{db: db}
}

func (r *medecinRepository) Create(ctx context.Context, medecin *entity.Medecin) error {
	return r.db.WithContext(ctx).Create(medecin).Error
}

func (r *medecinRepository) FindAll(ctx context.Context) ([]entity.Medecin, error) {
	var medecins []entity.Medecin
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&medecins).Error
	if err != nil {
		return nil, err
	}
	return medecins, nil
}

func (r *medecinRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medecin, error) {
	var medecin entity.Medecin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medecin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medecin, nil
}

func (r *medecinRepository) FindByEmail(ctx context.Context, email string) (*entity.Medecin, error) {
	var medecin entity.Medecin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&medecin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medecin, nil
}

func (r *medecinRepository) Update(ctx context.Context, medecin *entity.Medecin) error {
	return r.db.WithContext(ctx).Save(medecin).Error
}

func (r *medecinRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medecin{})
	return result.RowsAffected, result.Error
}
