package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type demandeRepository struct {
	db *gorm.DB
}

func NewDemandeRepository(db *gorm.DB) domainRepo.DemandeRepository {
	return &demandeRepository{db: db}
}

func (r *demandeRepository) Create(ctx context.Context, demande *entity.Demande) error {
	return r.db.WithContext(ctx).Create(demande).Error
}

func (r *demandeRepository) FindAll(ctx context.Context) ([]entity.Demande, error) {
	var demandes []entity.Demande
	err := r.db.WithContext(ctx).Preload("Medecin").Order("created_at DESC").Find(&demandes).Error
	if err != nil {
		return nil, err
	}
	return demandes, nil
}

func (r *demandeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Demande, error) {
	var demande entity.Demande
	err := r.db.WithContext(ctx).Preload("Medecin").Where("id = ?", id).First(&demande).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &demande, nil
}

func (r *demandeRepository) FindByMedecinID(ctx context.Context, medecinID uuid.UUID) ([]entity.Demande, error) {
	var demandes []entity.Demande
	err := r.db.WithContext(ctx).
		Where("id_medecin = ?", medecinID).
		Order("created_at DESC").
		Find(&demandes).Error
	if err != nil {
		return nil, err
	}
	return demandes, nil
}

func (r *demandeRepository) Update(ctx context.Context, demande *entity.Demande) error {
	return r.db.WithContext(ctx).Save(demande).Error
}

func (r *demandeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Demande{})
	return result.RowsAffected, result.Error
}
