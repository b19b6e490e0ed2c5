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

var ErrBanqueNotFound = errors.New("banque de sang not found")

type BanqueDeSangUsecase interface {
	Create(ctx context.Context, req *dto.CreateBanqueDeSangRequest) (*dto.BanqueDeSangResponse, error)
	GetAll(ctx context.Context) (*dto.BanqueDeSangListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BanqueDeSangResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBanqueDeSangRequest) (*dto.BanqueDeSangResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type banqueDeSangUsecase struct {
	log        *logrus.Logger
	banqueRepo repository.BanqueDeSangRepository
}

func NewBanqueDeSangUsecase(log *logrus.Logger, banqueRepo repository.BanqueDeSangRepository) BanqueDeSangUsecase {
	return &banqueDeSangUsecase{
		log:        log,
		banqueRepo: banqueRepo,
	}
}

func (u *banqueDeSangUsecase) Create(ctx context.Context, req *dto.CreateBanqueDeSangRequest) (*dto.BanqueDeSangResponse, error) {
	banque := &entity.BanqueDeSang{
		Nom:          req.Nom,
		Localisation: req.Localisation,
		Contact:      req.Contact,
	}

	if err := u.banqueRepo.Create(ctx, banque); err != nil {
		u.log.Warnf("Failed to create banque de sang: %+v", err)
		return nil, err
	}

	return converter.BanqueDeSangToResponse(banque), nil
}

func (u *banqueDeSangUsecase) GetAll(ctx context.Context) (*dto.BanqueDeSangListResponse, error) {
	banques, err := u.banqueRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find banques de sang: %+v", err)
		return nil, err
	}

	return &dto.BanqueDeSangListResponse{
		Banques: converter.BanquesDeSangToResponses(banques),
		Total:   len(banques),
	}, nil
}

func (u *banqueDeSangUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BanqueDeSangResponse, error) {
	banque, err := u.banqueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find banque de sang %s: %+v", id, err)
		return nil, err
	}
	if banque == nil {
		return nil, ErrBanqueNotFound
	}

	return converter.BanqueDeSangToResponse(banque), nil
}

func (u *banqueDeSangUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBanqueDeSangRequest) (*dto.BanqueDeSangResponse, error) {
	banque, err := u.banqueRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find banque de sang %s: %+v", id, err)
		return nil, err
	}
	if banque == nil {
		return nil, ErrBanqueNotFound
	}

	if req.Nom != "" {
		banque.Nom = req.Nom
	}
	if req.Localisation != "" {
		banque.Localisation = req.Localisation
	}
	if req.Contact != "" {
		banque.Contact = req.Contact
	}

	if err := u.banqueRepo.Update(ctx, banque); err != nil {
		u.log.Warnf("Failed to update banque de sang %s: %+v", id, err)
		return nil, err
	}

	return converter.BanqueDeSangToResponse(banque), nil
}

func (u *banqueDeSangUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.banqueRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete banque de sang %s: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrBanqueNotFound
	}
	return nil
}
