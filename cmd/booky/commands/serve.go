package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	closeInteractionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/close_interaction"
	confirmCancellationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/confirm_cancellation"
	dismissCancellationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/dismiss_cancellation"
	getAlertHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_alert"
	getRoomPageHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room_page"
	openInteractionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/open_interaction"
	requestCancellationHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/request_cancellation"
	selectDatesHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/select_dates"
	submitBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/interactions"
	"github.com/m04kA/SMC-RoomBooking/internal/service/roompage"
	cancelReservationUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
	submitBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/async"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the booking engine HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEngine()
		},
	}
}

func runEngine() error {
	mode, err := submitBookingUC.ParseMode(cfg.Booking.Mode)
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены)
	metricsCollector := newMetrics("engine")

	// Клиент хранилища бронирований
	storeClient := reservationstore.NewClient(
		cfg.ReservationStore.URL,
		time.Duration(cfg.ReservationStore.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Reservation store client initialized (url=%s timeout=%ds)",
		cfg.ReservationStore.URL, cfg.ReservationStore.Timeout)

	// Фоновые задачи (создание, удаление, обновление снимков)
	tasks := async.NewGroup()
	clk := clock.Real{}

	// Инициализируем сервисы и use cases
	roomPageSvc := roompage.NewService(
		storeClient,
		cfg.ReservationStore.PublicURL,
		cfg.ReservationStore.FallbackImage,
		log,
	)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		storeClient,
		tasks,
		clk,
		metricsCollector,
		submitBookingUC.Config{Mode: mode, AlertTTL: cfg.Booking.AlertTTL()},
		log,
	)

	interactionSvc := interactions.NewService(
		submitBookingUseCase,
		roomPageSvc,
		storeClient,
		clk,
		metricsCollector,
		time.Duration(cfg.Booking.InteractionIdleTTL)*time.Second,
		log,
	)
	// После создания и после отмены обновляются все открытые взаимодействия
	submitBookingUseCase.SetRefresher(interactionSvc)

	cancelReservationUseCase :=cancelReservationUC.NewUseCase(
		storeClient,
		interactionSvc,
		tasks,
		clk,
		metricsCollector,
		time.Duration(cfg.Booking.ConfirmationTTL)*time.Second,
		log,
	)

	// Инициализируем handlers
	getRoomPage := getRoomPageHandler.NewHandler(roomPageSvc, cfg.Booking.LoginURL, log)
	openInteraction := openInteractionHandler.NewHandler(interactionSvc, string(mode), log)
	selectDates := selectDatesHandler.NewHandler(interactionSvc, log)
	submitBooking := submitBookingHandler.NewHandler(interactionSvc, cfg.Booking.LoginURL, log)
	getAlert := getAlertHandler.NewHandler(interactionSvc, log)
	closeInteraction := closeInteractionHandler.NewHandler(interactionSvc, log)
	requestCancellation := requestCancellationHandler.NewHandler(cancelReservationUseCase, log)
	confirmCancellation := confirmCancellationHandler.NewHandler(cancelReservationUseCase, log)
	dismissCancellation := dismissCancellationHandler.NewHandler(cancelReservationUseCase, log)

	// Настраиваем роутер
	r := newRouter(metricsCollector)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session(middleware.SessionHeaders{
		Email:     cfg.Session.EmailHeader,
		FirstName: cfg.Session.FirstNameHeader,
		LastName:  cfg.Session.LastNameHeader,
	}))

	// --- Страница комнаты ---
	api.HandleFunc("/rooms/{roomId}", getRoomPage.Handle).Methods(http.MethodGet)

	// --- Взаимодействия бронирования ---
	api.HandleFunc("/rooms/{roomId}/interactions", openInteraction.Handle).Methods(http.MethodPost)
	api.HandleFunc("/interactions/{interactionId}/dates", selectDates.Handle).Methods(http.MethodPut)
	api.HandleFunc("/interactions/{interactionId}/submit", submitBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/interactions/{interactionId}/alert", getAlert.Handle).Methods(http.MethodGet)
	api.HandleFunc("/interactions/{interactionId}", closeInteraction.Handle).Methods(http.MethodDelete)

	// --- Отмена бронирования ---
	api.HandleFunc("/reservations/{reservationId}/cancellation", requestCancellation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cancellations/{token}/confirm", confirmCancellation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cancellations/{token}", dismissCancellation.Handle).Methods(http.MethodDelete)

	// Закрытие простаивающих взаимодействий
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go interactionSvc.RunSweeper(sweepCtx, time.Duration(cfg.Booking.SweepInterval)*time.Second)

	log.Info("Booking engine configured (mode=%s, alert_ttl=%s)", mode, cfg.Booking.AlertTTL())

	return runServer(cfg.Server.HTTPPort, r, func(ctx context.Context) {
		stopSweeper()
		interactionSvc.CloseAll()
		drain(ctx, tasks)
	})
}

// drain дожидается фоновых задач до истечения ctx, затем отменяет оставшиеся
func drain(ctx context.Context, tasks *async.Group) {
	done := make(chan struct{})
	go func() {
		tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Background tasks finished")
	case <-ctx.Done():
		log.Warn("Background tasks cancelled: %v", fmt.Errorf("shutdown timeout: %w", ctx.Err()))
	}
	tasks.Close()
}
