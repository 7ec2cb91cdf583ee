package commands

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	createReservationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/delete_reservation"
	getStoreRoomHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_store_room"
	listReservationsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_reservations"
	reservationRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	storeService "github.com/m04kA/SMC-RoomBooking/internal/service/store"
	createReservationUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

func storeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Run the reservation store HTTP service backed by PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(cmd.Context())
		},
	}
}

func runStore(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Инициализируем метрики (если включены)
	metricsCollector := newMetrics("store")

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db, cfg.Database.MaxTxRetries)

	// Инициализируем сервисы и use cases
	storeSvc := storeService.NewService(reservationRepository, roomRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getRoom := getStoreRoomHandler.NewHandler(storeSvc, log)
	listReservations := listReservationsHandler.NewHandler(storeSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(storeSvc, log)

	// Настраиваем роутер
	r := newRouter(metricsCollector)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rooms/{id}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	return runServer(cfg.Server.StorePort, r, nil)
}
