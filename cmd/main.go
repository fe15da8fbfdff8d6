package main

import (
	"context"
	"net/http"

	_ "time/tzdata" // Load timezone data

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/osbbhub/complex-service/internal/app"
	"github.com/osbbhub/complex-service/internal/config"
	"github.com/osbbhub/complex-service/internal/controllers"
	"github.com/osbbhub/complex-service/internal/middleware"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/routes"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize the application:", err)
	}
	defer application.Close()

	// Repositories
	complexRepo := repositories.NewComplexRepository(application.DB)
	buildingRepo := repositories.NewBuildingRepository(application.DB)
	entranceRepo := repositories.NewEntranceRepository(application.DB)
	apartmentRepo := repositories.NewApartmentRepository(application.DB)
	ownerRepo := repositories.NewOwnerRepository(application.DB)
	residentRepo := repositories.NewResidentRepository(application.DB)
	staffRepo := repositories.NewStaffRepository(application.DB)
	parkingRepo := repositories.NewParkingRepository(application.DB)
	storageRepo := repositories.NewStorageRepository(application.DB)
	visitorRepo := repositories.NewVisitorRepository(application.DB)
	ticketRepo := repositories.NewMaintenanceRepository(application.DB)
	accountRepo := repositories.NewAccountRepository(application.DB)

	resolver := policy.NewResolver(accountRepo)

	// Services
	complexService := services.NewComplexService(complexRepo, buildingRepo, entranceRepo, apartmentRepo, ownerRepo)
	peopleService := services.NewPeopleService(ownerRepo, residentRepo, staffRepo, apartmentRepo, accountRepo)
	parkingService := services.NewParkingService(parkingRepo, entranceRepo, ownerRepo)
	storageService := services.NewStorageService(storageRepo, apartmentRepo)
	visitorService := services.NewVisitorService(visitorRepo, apartmentRepo, cfg.VisitorRetention)
	maintenanceService := services.NewMaintenanceService(ticketRepo, apartmentRepo)
	accountService := services.NewAccountService(accountRepo, complexRepo, ownerRepo, staffRepo)
	authService := services.NewAuthService(accountRepo, resolver, cfg.RSAPrivateKey, cfg.TokenExpiry)

	// Controllers
	healthController := controllers.NewHealthController(application)
	authController := controllers.NewAuthController(authService)
	complexController := controllers.NewComplexController(complexService, resolver)
	peopleController := controllers.NewPeopleController(peopleService, resolver)
	parkingController := controllers.NewParkingController(parkingService, resolver)
	storageController := controllers.NewStorageController(storageService, resolver)
	visitorController := controllers.NewVisitorController(visitorService, resolver)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService, resolver)
	accountController := controllers.NewAccountController(accountService, resolver)

	// Visitor logbook retention via cron (daily at 03:00)
	c := cron.New()
	if _, schErr := c.AddFunc("0 3 * * *", func() {
		visitorService.PurgeExpired(context.Background())
	}); schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule visitor log purge")
	}
	c.Start()

	// Router
	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Login, authController.LoginHandler).Methods(http.MethodPost)

	// Protected routes (JWT middleware)
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	// Complexes
	secured.HandleFunc(routes.Complexes, complexController.CreateComplexHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Complexes, complexController.ListComplexesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Complex, complexController.GetComplexHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Complex, complexController.UpdateComplexHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Complex, complexController.DeleteComplexHandler).Methods(http.MethodDelete)

	// Buildings
	secured.HandleFunc(routes.Buildings, complexController.CreateBuildingHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.BuildingsByComplex, complexController.ListBuildingsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Building, complexController.GetBuildingHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Building, complexController.UpdateBuildingHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Building, complexController.DeleteBuildingHandler).Methods(http.MethodDelete)

	// Entrances
	secured.HandleFunc(routes.Entrances, complexController.CreateEntranceHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.EntrancesByBuilding, complexController.ListEntrancesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Entrance, complexController.GetEntranceHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Entrance, complexController.UpdateEntranceHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Entrance, complexController.DeleteEntranceHandler).Methods(http.MethodDelete)

	// Apartments
	secured.HandleFunc(routes.Apartments, complexController.CreateApartmentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Apartments, complexController.ListApartmentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ApartmentsByEntrance, complexController.ListApartmentsByEntranceHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Apartment, complexController.GetApartmentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Apartment, complexController.UpdateApartmentHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Apartment, complexController.DeleteApartmentHandler).Methods(http.MethodDelete)

	// Owners
	secured.HandleFunc(routes.Owners, peopleController.CreateOwnerHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Owners, peopleController.ListOwnersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Owner, peopleController.GetOwnerHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OwnerApartments, peopleController.ListOwnerApartmentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Owner, peopleController.UpdateOwnerHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Owner, peopleController.DeleteOwnerHandler).Methods(http.MethodDelete)

	// Residents
	secured.HandleFunc(routes.Residents, peopleController.CreateResidentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Residents, peopleController.ListResidentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Resident, peopleController.GetResidentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Resident, peopleController.UpdateResidentHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.Resident, peopleController.DeleteResidentHandler).Methods(http.MethodDelete)

	// Staff
	secured.HandleFunc(routes.Staff, peopleController.CreateStaffHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Staff, peopleController.ListStaffHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StaffMember, peopleController.GetStaffHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StaffMember, peopleController.UpdateStaffHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.StaffMember, peopleController.DeleteStaffHandler).Methods(http.MethodDelete)

	// Parking
	secured.HandleFunc(routes.ParkingZones, parkingController.CreateZoneHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ParkingZones, parkingController.ListZonesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ParkingZone, parkingController.GetZoneHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ParkingZone, parkingController.UpdateZoneHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.ParkingZone, parkingController.DeleteZoneHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.ParkingSpots, parkingController.CreateSpotHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ParkingSpots, parkingController.ListSpotsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ParkingSpotsByZone, parkingController.ListSpotsByZoneHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ParkingSpot, parkingController.GetSpotHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ParkingSpot, parkingController.UpdateSpotHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.ParkingSpot, parkingController.DeleteSpotHandler).Methods(http.MethodDelete)

	// Storage rooms
	secured.HandleFunc(routes.StorageRooms, storageController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.StorageRooms, storageController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StorageRoom, storageController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StorageRoom, storageController.UpdateHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.StorageRoom, storageController.DeleteHandler).Methods(http.MethodDelete)

	// Visitor logbook
	secured.HandleFunc(routes.Visitors, visitorController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Visitors, visitorController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Visitor, visitorController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Visitor, visitorController.DeleteHandler).Methods(http.MethodDelete)

	// Maintenance requests
	secured.HandleFunc(routes.Tickets, maintenanceController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Tickets, maintenanceController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Ticket, maintenanceController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TicketTake, maintenanceController.TakeHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TicketDone, maintenanceController.DoneHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Ticket, maintenanceController.DeleteHandler).Methods(http.MethodDelete)

	// Accounts. Candidate routes register before the parameterized ones
	// so mux does not swallow "candidates" as an ID.
	secured.HandleFunc(routes.ComplexAdminAccounts, accountController.CreateComplexAdminHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ComplexAdminAccounts, accountController.ListComplexAdminsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ComplexAdminAccount, accountController.DeleteComplexAdminHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.OwnerAccountCandidates, accountController.ListOwnerAccountCandidatesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OwnerAccounts, accountController.CreateOwnerAccountHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.OwnerAccountsByComplex, accountController.ListOwnerAccountsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OwnerAccount, accountController.DeleteOwnerAccountHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.StaffAccountCandidates, accountController.ListStaffAccountCandidatesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StaffAccounts, accountController.CreateStaffAccountHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.StaffAccountsByComplex, accountController.ListStaffAccountsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.StaffAccount, accountController.DeleteStaffAccountHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.MyEmail, accountController.UpdateMyEmailHandler).Methods(http.MethodPut)

	// CORS config
	co := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
