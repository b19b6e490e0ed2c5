package http

import (
	"net/http"

	"blood-donation-api/internal/delivery/http/handler"
	"blood-donation-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	medecinHandler      *handler.MedecinHandler
	donneurHandler      *handler.DonneurHandler
	banqueHandler       *handler.BanqueDeSangHandler
	stockHandler        *handler.StockSangHandler
	demandeHandler      *handler.DemandeHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medecinHandler *handler.MedecinHandler,
	donneurHandler *handler.DonneurHandler,
	banqueHandler *handler.BanqueDeSangHandler,
	stockHandler *handler.StockSangHandler,
	demandeHandler *handler.DemandeHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		medecinHandler:      medecinHandler,
		donneurHandler:      donneurHandler,
		banqueHandler:       banqueHandler,
		stockHandler:        stockHandler,
		demandeHandler:      demandeHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetMe).Methods(http.MethodGet)

	// Plain CRUD, open as in the original API
	api.HandleFunc("/medecins", r.medecinHandler.CreateMedecin).Methods(http.MethodPost)
	api.HandleFunc("/medecins", r.medecinHandler.GetAllMedecins).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}", r.medecinHandler.GetMedecin).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}", r.medecinHandler.UpdateMedecin).Methods(http.MethodPut)
	api.HandleFunc("/medecins/{id}", r.medecinHandler.DeleteMedecin).Methods(http.MethodDelete)

	api.HandleFunc("/donneurs", r.donneurHandler.CreateDonneur).Methods(http.MethodPost)
	api.HandleFunc("/donneurs", r.donneurHandler.GetAllDonneurs).Methods(http.MethodGet)
	api.HandleFunc("/donneurs/{id}", r.donneurHandler.GetDonneur).Methods(http.MethodGet)
	api.HandleFunc("/donneurs/{id}", r.donneurHandler.UpdateDonneur).Methods(http.MethodPut)
	api.HandleFunc("/donneurs/{id}", r.donneurHandler.DeleteDonneur).Methods(http.MethodDelete)

	api.HandleFunc("/banquesdesang", r.banqueHandler.CreateBanque).Methods(http.MethodPost)
	api.HandleFunc("/banquesdesang", r.banqueHandler.GetAllBanques).Methods(http.MethodGet)
	api.HandleFunc("/banquesdesang/{id}", r.banqueHandler.GetBanque).Methods(http.MethodGet)
	api.HandleFunc("/banquesdesang/{id}", r.banqueHandler.UpdateBanque).Methods(http.MethodPut)
	api.HandleFunc("/banquesdesang/{id}", r.banqueHandler.DeleteBanque).Methods(http.MethodDelete)

	api.HandleFunc("/stocksang", r.stockHandler.CreateStock).Methods(http.MethodPost)
	api.HandleFunc("/stocksang", r.stockHandler.GetAllStocks).Methods(http.MethodGet)
	api.HandleFunc("/stocksang/{id}", r.stockHandler.GetStock).Methods(http.MethodGet)
	api.HandleFunc("/stocksang/{id}", r.stockHandler.UpdateStock).Methods(http.MethodPut)
	api.HandleFunc("/stocksang/{id}", r.stockHandler.DeleteStock).Methods(http.MethodDelete)

	// Demandes: mutations and /me are staff-only, reads need any
	// authenticated role. /me must be registered before /{id}.
	demandesMedecin := api.PathPrefix("/demandes").Subrouter()
	demandesMedecin.Use(r.authMiddleware.Authenticate)
	demandesMedecin.Use(middleware.RequireMedecin)
	demandesMedecin.HandleFunc("", r.demandeHandler.CreateDemande).Methods(http.MethodPost)
	demandesMedecin.HandleFunc("/me", r.demandeHandler.GetMyDemandes).Methods(http.MethodGet)
	demandesMedecin.HandleFunc("/{id}", r.demandeHandler.UpdateDemande).Methods(http.MethodPut)
	demandesMedecin.HandleFunc("/{id}", r.demandeHandler.DeleteDemande).Methods(http.MethodDelete)

	demandesRead := api.PathPrefix("/demandes").Subrouter()
	demandesRead.Use(r.authMiddleware.Authenticate)
	demandesRead.HandleFunc("", r.demandeHandler.GetAllDemandes).Methods(http.MethodGet)
	demandesRead.HandleFunc("/{id}", r.demandeHandler.GetDemande).Methods(http.MethodGet)

	// Notifications: /me is donor-only, mutations need an
	// authenticated owner (checked in the usecase), the rest is open.
	notificationsMe := api.PathPrefix("/notifications").Subrouter()
	notificationsMe.Use(r.authMiddleware.Authenticate)
	notificationsMe.Use(middleware.RequireDonneur)
	notificationsMe.HandleFunc("/me", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)

	notificationsOwned := api.PathPrefix("/notifications").Subrouter()
	notificationsOwned.Use(r.authMiddleware.Authenticate)
	notificationsOwned.HandleFunc("/{id}", r.notificationHandler.UpdateNotification).Methods(http.MethodPut)
	notificationsOwned.HandleFunc("/{id}", r.notificationHandler.DeleteNotification).Methods(http.MethodDelete)

	api.HandleFunc("/notifications", r.notificationHandler.CreateNotification).Methods(http.MethodPost)
	api.HandleFunc("/notifications", r.notificationHandler.GetAllNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}", r.notificationHandler.GetNotification).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
