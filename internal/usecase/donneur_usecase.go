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
	"golang.org/x/crypto/bcrypt"
)

var ErrDonneurNotFound = errors.New("donneur not found")

type DonneurUsecase interface {
	Create(ctx context.Context, req *dto.CreateDonneurRequest) (*dto.DonneurResponse, error)
	GetAll(ctx context.Context) (*dto.DonneurListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DonneurResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDonneurRequest) (*dto.DonneurResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type donneurUsecase struct {
	log         *logrus.Logger
	donneurRepo repository.DonneurRepository
}

func NewDonneurUsecase(log *logrus.Logger, donneurRepo repository.DonneurRepository) DonneurUsecase {
	return &donneurUsecase{
		log:         log,
		donneurRepo: donneurRepo,
	}
}

func (u *donneurUsecase) Create(ctx context.Context, req *dto.CreateDonneurRequest) (*dto.DonneurResponse, error) {
	existing, err := u.donneurRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check donneur email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleDonneur
	}

	donneur := &entity.Donneur{
		Nom:           req.Nom,
		Email:         req.Email,
		MotDePasse:    string(hashedPassword),
		GroupeSanguin: req.GroupeSanguin,
		Localisation:  req.Localisation,
		Role:          role,
	}

	if err := u.donneurRepo.Create(ctx, donneur); err != nil {
		u.log.Warnf("Failed to create donneur: %+v", err)
		return nil, err
	}

	return converter.DonneurToResponse(donneur), nil
}

func (u *donneurUsecase) GetAll(ctx context.Context) (*dto.DonneurListResponse, error) {
	donneurs, err := u.donneurRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find donneurs: %+v", err)
		return nil, err
	}

	return &dto.DonneurListResponse{
		Donneurs: converter.DonneursToResponses(donneurs),
		Total:    len(donneurs),
	}, nil
}

func (u *donneurUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DonneurResponse, error) {
	donneur, err := u.donneurRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find donneur %s: %+v", id, err)
		return nil, err
	}
	if donneur == nil {
		return nil, ErrDonneurNotFound
	}

	return converter.DonneurToResponse(donneur), nil
}

func (u *donneurUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDonneurRequest) (*dto.DonneurResponse, error) {
	donneur, err := u.donneurRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find donneur %s: %+v", id, err)
		return nil, err
	}
	if donneur == nil {
		return nil, ErrDonneurNotFound
	}

	if req.Nom != "" {
		donneur.Nom = req.Nom
	}
	if req.Email != "" {
		donneur.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		donneur.MotDePasse = string(hashedPassword)
	}
	if req.GroupeSanguin != "" {
		donneur.GroupeSanguin = req.GroupeSanguin
	}
	if req.Localisation != "" {
		donneur.Localisation = req.Localisation
	}
	if req.Role != "" {
		donneur.Role = req.Role
	}

	if err := u.donneurRepo.Update(ctx, donneur); err != nil {
		u.log.Warnf("Failed to update donneur %s: %+v", id, err)
		return nil, err
	}

	return converter.DonneurToResponse(donneur), nil
}

func (u *donneurUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.donneurRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete donneur %s: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrDonneurNotFound
	}
	return nil
}
