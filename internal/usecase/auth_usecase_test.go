package usecase

import (
	"context"
	"testing"
	"time"

	"blood-donation-api/config"
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/delivery/http/middleware"
	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup_Medecin(t *testing.T) {
	var created *entity.Medecin
	medecinRepo := &mockMedecinRepo{
		createFn: func(ctx context.Context, medecin *entity.Medecin) error {
			medecin.ID = uuid.New()
			created = medecin
			return nil
		},
	}
	u := NewAuthUsecase(newTestLogger(), medecinRepo, &mockDonneurRepo{}, newTestJWTService())

	resp, err := u.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Dr. Diallo",
		Email:    "diallo@hospital.test",
		Password: "secret123",
		Role:     entity.RoleMedecin,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.RoleMedecin, resp.Role)
	assert.Equal(t, "diallo@hospital.test", resp.Email)
	// Stored hash verifies against the plaintext and is never returned
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.MotDePasse), []byte("secret123")))
	assert.NotEqual(t, "secret123", created.MotDePasse)
}

func TestSignup_DonneurKeepsBloodGroup(t *testing.T) {
	donneurRepo := &mockDonneurRepo{
		createFn: func(ctx context.Context, donneur *entity.Donneur) error {
			donneur.ID = uuid.New()
			return nil
		},
	}
	u := NewAuthUsecase(newTestLogger(), &mockMedecinRepo{}, donneurRepo, newTestJWTService())

	resp, err := u.Signup(context.Background(), &dto.SignupRequest{
		Name:          "Awa",
		Email:         "awa@donors.test",
		Password:      "secret123",
		Role:          entity.RoleDonneur,
		GroupeSanguin: "O+",
		Localisation:  "Dakar",
	})
	require.NoError(t, err)
	assert.Equal(t, "O+", resp.GroupeSanguin)
	assert.Equal(t, "Dakar", resp.Localisation)
}

func TestSignup_BanqueStoredAsDonneur(t *testing.T) {
	var created *entity.Donneur
	donneurRepo := &mockDonneurRepo{
		createFn: func(ctx context.Context, donneur *entity.Donneur) error {
			donneur.ID = uuid.New()
			created = donneur
			return nil
		},
	}
	u := NewAuthUsecase(newTestLogger(), &mockMedecinRepo{}, donneurRepo, newTestJWTService())

	resp, err := u.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Banque Centrale",
		Email:    "banque@central.test",
		Password: "secret123",
		Role:     entity.RoleBanque,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleBanque, created.Role)
	assert.Equal(t, entity.RoleBanque, resp.Role)
}

func TestSignup_DuplicateEmailInEitherTable(t *testing.T) {
	tests := []struct {
		name        string
		medecinRepo *mockMedecinRepo
		donneurRepo *mockDonneurRepo
	}{
		{
			name: "email taken by a medecin",
			medecinRepo: &mockMedecinRepo{
				findByEmailFn: func(ctx context.Context, email string) (*entity.Medecin, error) {
					return &entity.Medecin{ID: uuid.New(), Email: email}, nil
				},
			},
			donneurRepo: &mockDonneurRepo{},
		},
		{
			name:        "email taken by a donneur",
			medecinRepo: &mockMedecinRepo{},
			donneurRepo: &mockDonneurRepo{
				findByEmailFn: func(ctx context.Context, email string) (*entity.Donneur, error) {
					return &entity.Donneur{ID: uuid.New(), Email: email}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewAuthUsecase(newTestLogger(), tt.medecinRepo, tt.donneurRepo, newTestJWTService())

			_, err := u.Signup(context.Background(), &dto.SignupRequest{
				Name:     "Anyone",
				Email:    "taken@somewhere.test",
				Password: "secret123",
				Role:     entity.RoleDonneur,
			})
			assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		})
	}
}

func TestLogin_MedecinResolvedFirst(t *testing.T) {
	medecinID := uuid.New()
	hash := hashPassword(t, "secret123")

	medecinRepo := &mockMedecinRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.Medecin, error) {
			return &entity.Medecin{ID: medecinID, Nom: "Dr. Diallo", Email: email, MotDePasse: hash}, nil
		},
	}
	donneurRepo := &mockDonneurRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.Donneur, error) {
			t.Fatal("donneur lookup must not run when a medecin matches the email")
			return nil, nil
		},
	}
	jwtService := newTestJWTService()
	u := NewAuthUsecase(newTestLogger(), medecinRepo, donneurRepo, jwtService)

	resp, err := u.Login(context.Background(), &dto.LoginRequest{Email: "diallo@hospital.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMedecin, resp.User.Role)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, medecinID, claims.UserID)
	assert.Equal(t, entity.RoleMedecin, claims.Role)
}

func TestLogin_BanqueRoleFromDonneurRow(t *testing.T) {
	banqueID := uuid.New()
	hash := hashPassword(t, "secret123")

	donneurRepo := &mockDonneurRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.Donneur, error) {
			return &entity.Donneur{ID: banqueID, Nom: "Banque Centrale", Email: email, MotDePasse: hash, Role: entity.RoleBanque}, nil
		},
	}
	jwtService := newTestJWTService()
	u := NewAuthUsecase(newTestLogger(), &mockMedecinRepo{}, donneurRepo, jwtService)

	resp, err := u.Login(context.Background(), &dto.LoginRequest{Email: "banque@central.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBanque, resp.User.Role)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBanque, claims.Role)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	hash := hashPassword(t, "right-password")

	tests := []struct {
		name        string
		medecinRepo *mockMedecinRepo
		donneurRepo *mockDonneurRepo
	}{
		{
			name:        "unknown email",
			medecinRepo: &mockMedecinRepo{},
			donneurRepo: &mockDonneurRepo{},
		},
		{
			name: "wrong password for a medecin",
			medecinRepo: &mockMedecinRepo{
				findByEmailFn: func(ctx context.Context, email string) (*entity.Medecin, error) {
					return &entity.Medecin{ID: uuid.New(), Email: email, MotDePasse: hash}, nil
				},
			},
			donneurRepo: &mockDonneurRepo{},
		},
		{
			name:        "wrong password for a donneur",
			medecinRepo: &mockMedecinRepo{},
			donneurRepo: &mockDonneurRepo{
				findByEmailFn: func(ctx context.Context, email string) (*entity.Donneur, error) {
					return &entity.Donneur{ID: uuid.New(), Email: email, MotDePasse: hash}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewAuthUsecase(newTestLogger(), tt.medecinRepo, tt.donneurRepo, newTestJWTService())

			_, err := u.Login(context.Background(), &dto.LoginRequest{Email: "who@ever.test", Password: "wrong-password"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestGetMe_Donneur(t *testing.T) {
	donneurID := uuid.New()
	donneurRepo := &mockDonneurRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Donneur, error) {
			return &entity.Donneur{
				ID:            donneurID,
				Nom:           "Awa",
				Email:         "awa@donors.test",
				MotDePasse:    "a-hash",
				GroupeSanguin: "A-",
				Role:          entity.RoleDonneur,
			}, nil
		},
	}
	u := NewAuthUsecase(newTestLogger(), &mockMedecinRepo{}, donneurRepo, newTestJWTService())

	ctx := middleware.WithUser(context.Background(), &middleware.AuthUser{ID: donneurID, Role: entity.RoleDonneur})
	resp, err := u.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, donneurID, resp.ID)
	assert.Equal(t, "A-", resp.GroupeSanguin)
}

func TestGetMe_MissingContext(t *testing.T) {
	u := NewAuthUsecase(newTestLogger(), &mockMedecinRepo{}, &mockDonneurRepo{}, newTestJWTService())

	_, err := u.GetMe(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
