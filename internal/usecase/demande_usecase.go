package usecase

import (
	"context"
	"errors"
	"fmt"

	"blood-donation-api/internal/converter"
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/delivery/http/middleware"
	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDemandeNotFound = errors.New("demande not found")
	// ErrNotificationFanOut means the demande row exists but the
	// notification batch insert failed. The demande is NOT rolled back.
	ErrNotificationFanOut = errors.New("demande created but notifications could not be created")
)

type DemandeUsecase interface {
	Create(ctx context.Context, req *dto.CreateDemandeRequest) (*dto.DemandeResponse, error)
	GetMine(ctx context.Context) (*dto.DemandeListResponse, error)
	GetAll(ctx context.Context) (*dto.DemandeListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DemandeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDemandeRequest) (*dto.DemandeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type demandeUsecase struct {
	log              *logrus.Logger
	demandeRepo      repository.DemandeRepository
	donneurRepo      repository.DonneurRepository
	notificationRepo repository.NotificationRepository
}

func NewDemandeUsecase(
	log *logrus.Logger,
	demandeRepo repository.DemandeRepository,
	donneurRepo repository.DonneurRepository,
	notificationRepo repository.NotificationRepository,
) DemandeUsecase {
	return &demandeUsecase{
		log:              log,
		demandeRepo:      demandeRepo,
		donneurRepo:      donneurRepo,
		notificationRepo: notificationRepo,
	}
}

// Create persists a new demande and fans out one notification per donor
// of the same blood group.
//
// Flow:
// 1. Build the demande: id_medecin is the caller, statut is always
//    "active", urgence falls back to "moyenne"
// 2. Persist the demande
// 3. Find donors whose groupe_sanguin equals the demande's exactly
// 4. Zero matches: done, no batch call
// 5. Otherwise batch-insert one unread notification per donor
//
// The two writes are not wrapped in a transaction. A batch failure
// after step 2 leaves the demande persisted and reports
// ErrNotificationFanOut; notification delivery is best effort.
func (u *demandeUsecase) Create(ctx context.Context, req *dto.CreateDemandeRequest) (*dto.DemandeResponse, error) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	urgence := req.Urgence
	if urgence == "" {
		urgence = entity.UrgenceMoyenne
	}

	demande := &entity.Demande{
		IDMedecin:     user.ID,
		GroupeSanguin: req.GroupeSanguin,
		Quantite:      req.Quantite,
		Urgence:       urgence,
		Statut:        entity.DemandeStatutActive,
	}

	if err := u.demandeRepo.Create(ctx, demande); err != nil {
		u.log.Warnf("Failed to create demande: %+v", err)
		return nil, err
	}

	donneurs, err := u.donneurRepo.FindByGroupeSanguin(ctx, demande.GroupeSanguin)
	if err != nil {
		u.log.Errorf("Demande %s created but donor matching failed: %+v", demande.ID, err)
		return nil, ErrNotificationFanOut
	}

	if len(donneurs) > 0 {
		message := fmt.Sprintf("New %s blood request from %s.", demande.GroupeSanguin, user.Nom)
		notifications := make([]entity.Notification, len(donneurs))
		for i, donneur := range donneurs {
			notifications[i] = entity.Notification{
				IDDonneur: donneur.ID,
				IDDemande: demande.ID,
				Message:   message,
				Statut:    entity.NotificationStatusUnread,
			}
		}
		if err := u.notificationRepo.CreateBatch(ctx, notifications); err != nil {
			u.log.Errorf("Demande %s created but notification batch failed: %+v", demande.ID, err)
			return nil, ErrNotificationFanOut
		}
		u.log.Infof("Demande created: id=%s, groupe=%s, notified=%d", demande.ID, demande.GroupeSanguin, len(donneurs))
	} else {
		u.log.Infof("Demande created: id=%s, groupe=%s, no matching donors", demande.ID, demande.GroupeSanguin)
	}

	return converter.DemandeToResponse(demande), nil
}

// GetMine returns the demandes created by the authenticated medecin
func (u *demandeUsecase) GetMine(ctx context.Context) (*dto.DemandeListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	demandes, err := u.demandeRepo.FindByMedecinID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find demandes for medecin %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DemandeListResponse{
		Demandes: converter.DemandesToResponses(demandes),
		Total:    len(demandes),
	}, nil
}

func (u *demandeUsecase) GetAll(ctx context.Context) (*dto.DemandeListResponse, error) {
	demandes, err := u.demandeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find demandes: %+v", err)
		return nil, err
	}

	return &dto.DemandeListResponse{
		Demandes: converter.DemandesToResponses(demandes),
		Total:    len(demandes),
	}, nil
}

func (u *demandeUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DemandeResponse, error) {
	demande, err := u.demandeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find demande %s: %+v", id, err)
		return nil, err
	}
	if demande == nil {
		return nil, ErrDemandeNotFound
	}

	return converter.DemandeToResponse(demande), nil
}

func (u *demandeUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDemandeRequest) (*dto.DemandeResponse, error) {
	demande, err := u.demandeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find demande %s: %+v", id, err)
		return nil, err
	}
	if demande == nil {
		return nil, ErrDemandeNotFound
	}

	if req.GroupeSanguin != "" {
		demande.GroupeSanguin = req.GroupeSanguin
	}
	if req.Quantite != nil {
		demande.Quantite = *req.Quantite
	}
	if req.Urgence != "" {
		demande.Urgence = req.Urgence
	}
	if req.Statut != "" {
		demande.Statut = req.Statut
	}

	if err := u.demandeRepo.Update(ctx, demande); err != nil {
		u.log.Warnf("Failed to update demande %s: %+v", id, err)
		return nil, err
	}

	return converter.DemandeToResponse(demande), nil
}

func (u *demandeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.demandeRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete demande %s: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrDemandeNotFound
	}
	return nil
}
