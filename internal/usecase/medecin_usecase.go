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

var ErrMedecinNotFound = errors.New("medecin not found")

type MedecinUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedecinRequest) (*dto.MedecinResponse, error)
	GetAll(ctx context.Context) (*dto.MedecinListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedecinResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medecinUsecase struct {
	log         *logrus.Logger
	medecinRepo repository.MedecinRepository
}

func NewMedecinUsecase(log *logrus.Logger, medecinRepo repository.MedecinRepository) MedecinUsecase {
	return &medecinUsecase{
		log:         log,
		medecinRepo: medecinRepo,
	}
}

func (u *medecinUsecase) Create(ctx context.Context, req *dto.CreateMedecinRequest) (*dto.MedecinResponse, error) {
	existing, err := u.medecinRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check medecin email: %+v", err)
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

	medecin := &entity.Medecin{
		Nom:        req.Nom,
		Email:      req.Email,
		MotDePasse: string(hashedPassword),
	}

	if err := u.medecinRepo.Create(ctx, medecin); err != nil {
		u.log.Warnf("Failed to create medecin: %+v", err)
		return nil, err
	}

	return converter.MedecinToResponse(medecin), nil
}

func (u *medecinUsecase) GetAll(ctx context.Context) (*dto.MedecinListResponse, error) {
	medecins, err := u.medecinRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find medecins: %+v", err)
		return nil, err
	}

	return &dto.MedecinListResponse{
		Medecins: converter.MedecinsToResponses(medecins),
		Total:    len(medecins),
	}, nil
}

func (u *medecinUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedecinResponse, error) {
	medecin, err := u.medecinRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medecin %s: %+v", id, err)
		return nil, err
	}
	if medecin == nil {
		return nil, ErrMedecinNotFound
	}

	return converter.MedecinToResponse(medecin), nil
}

func (u *medecinUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error) {
	medecin, err := u.medecinRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medecin %s: %+v", id, err)
		return nil, err
	}
	if medecin == nil {
		return nil, ErrMedecinNotFound
	}

	if req.Nom != "" {
		medecin.Nom = req.Nom
	}
	if req.Email != "" {
		medecin.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		medecin.MotDePasse = string(hashedPassword)
	}

	if err := u.medecinRepo.Update(ctx, medecin); err != nil {
		u.log.Warnf("Failed to update medecin %s: %+v", id, err)
		return nil, err
	}

	return converter.MedecinToResponse(medecin), nil
}

func (u *medecinUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.medecinRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete medecin %s: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrMedecinNotFound
	}
	return nil
}
