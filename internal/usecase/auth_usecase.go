package usecase

import (
	"context"
	"errors"

	"blood-donation-api/internal/converter"
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/delivery/http/middleware"
	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/internal/domain/repository"
	"blood-donation-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	medecinRepo repository.MedecinRepository
	donneurRepo repository.DonneurRepository
	jwtService  *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	medecinRepo repository.MedecinRepository,
	donneurRepo repository.DonneurRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		medecinRepo: medecinRepo,
		donneurRepo: donneurRepo,
		jwtService:  jwtService,
	}
}

// Signup creates an identity in the table matching the requested role.
// Email uniqueness is checked across both identity tables; "banque"
// signups go through the donneurs table.
func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	medecin, err := u.medecinRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check medecin email: %+v", err)
		return nil, err
	}
	donneur, err := u.donneurRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check donneur email: %+v", err)
		return nil, err
	}
	if medecin != nil || donneur != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	if req.Role == entity.RoleMedecin {
		newMedecin := &entity.Medecin{
			Nom:        req.Name,
			Email:      req.Email,
			MotDePasse: string(hashedPassword),
		}
		if err := u.medecinRepo.Create(ctx, newMedecin); err != nil {
			u.log.Warnf("Failed to create medecin: %+v", err)
			return nil, err
		}
		return &dto.UserResponse{
			ID:    newMedecin.ID,
			Nom:   newMedecin.Nom,
			Email: newMedecin.Email,
			Role:  entity.RoleMedecin,
		}, nil
	}

	newDonneur := &entity.Donneur{
		Nom:           req.Name,
		Email:         req.Email,
		MotDePasse:    string(hashedPassword),
		GroupeSanguin: req.GroupeSanguin,
		Localisation:  req.Localisation,
		Role:          req.Role,
	}
	if err := u.donneurRepo.Create(ctx, newDonneur); err != nil {
		u.log.Warnf("Failed to create donneur: %+v", err)
		return nil, err
	}
	return &dto.UserResponse{
		ID:            newDonneur.ID,
		Nom:           newDonneur.Nom,
		Email:         newDonneur.Email,
		Role:          newDonneur.Role,
		GroupeSanguin: newDonneur.GroupeSanguin,
		Localisation:  newDonneur.Localisation,
	}, nil
}

// Login resolves the email against medecins first, then donneurs. Any
// failure, whichever half was wrong, yields the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	medecin, err := u.medecinRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find medecin by email: %+v", err)
		return nil, err
	}
	if medecin != nil {
		if bcrypt.CompareHashAndPassword([]byte(medecin.MotDePasse), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		token, err := u.jwtService.GenerateToken(medecin.ID, entity.RoleMedecin)
		if err != nil {
			u.log.Warnf("Failed to generate token: %+v", err)
			return nil, err
		}
		return &dto.LoginResponse{
			Token: token,
			User: dto.UserResponse{
				ID:    medecin.ID,
				Nom:   medecin.Nom,
				Email: medecin.Email,
				Role:  entity.RoleMedecin,
			},
		}, nil
	}

	donneur, err := u.donneurRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find donneur by email: %+v", err)
		return nil, err
	}
	if donneur == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(donneur.MotDePasse), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// The role column distinguishes "donneur" from "banque" operators
	role := donneur.Role
	if role == "" {
		role = entity.RoleDonneur
	}

	token, err := u.jwtService.GenerateToken(donneur.ID, role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:            donneur.ID,
			Nom:           donneur.Nom,
			Email:         donneur.Email,
			Role:          role,
			GroupeSanguin: donneur.GroupeSanguin,
			Localisation:  donneur.Localisation,
		},
	}, nil
}

// GetMe returns the full identity of the authenticated caller, hash
// stripped.
func (u *authUsecase) GetMe(ctx context.Context) (*dto.UserResponse, error) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	if user.Role == entity.RoleMedecin {
		medecin, err := u.medecinRepo.FindByID(ctx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to find medecin by ID: %+v", err)
			return nil, err
		}
		if medecin == nil {
			return nil, ErrUserNotFound
		}
		resp := converter.MedecinToResponse(medecin)
		return &dto.UserResponse{
			ID:    resp.ID,
			Nom:   resp.Nom,
			Email: resp.Email,
			Role:  entity.RoleMedecin,
		}, nil
	}

	donneur, err := u.donneurRepo.FindByID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find donneur by ID: %+v", err)
		return nil, err
	}
	if donneur == nil {
		return nil, ErrUserNotFound
	}
	return &dto.UserResponse{
		ID:            donneur.ID,
		Nom:           donneur.Nom,
		Email:         donneur.Email,
		Role:          user.Role,
		GroupeSanguin: donneur.GroupeSanguin,
		Localisation:  donneur.Localisation,
	}, nil
}
