package submit_booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/alert"
	"github.com/m04kA/SMC-RoomBooking/internal/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
)

// UseCase создает взаимодействия бронирования и хранит их общие зависимости
type UseCase struct {
	store     ReservationStore
	refresher Refresher
	runner    Runner
	clock     clock.Clock
	checker   ConflictChecker
	metrics   Metrics
	cfg       Config
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store ReservationStore,
	runner Runner,
	clk clock.Clock,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Mode == "" {
		cfg.Mode = ModeOptimistic
	}
	return &UseCase{
		store:   store,
		runner:  runner,
		clock:   clk,
		checker: availability.CheckConflict,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// SetRefresher задает общий механизм обновления после создания бронирования.
// Без него взаимодействие перечитывает только свои бронирования.
func (uc *UseCase) SetRefresher(r Refresher) {
	uc.refresher = r
}

// Mode возвращает режим обработки результата создания
func (uc *UseCase) Mode() Mode {
	return uc.cfg.Mode
}

// Start открывает взаимодействие для комнаты со снимком известных бронирований
func (uc *UseCase) Start(roomID int64, snapshot []*domain.Reservation) *Controller {
	c := &Controller{
		uc:       uc,
		roomID:   roomID,
		snapshot: snapshot,
		state:    domain.StateIdle,
	}
	c.alert = alert.NewSlot(uc.clock, uc.cfg.AlertTTL, func(s domain.AlertState) {
		if uc.metrics != nil {
			uc.metrics.ObserveAlert(string(s.Kind))
		}
	})
	return c
}

func (uc *UseCase) observeSubmission(state domain.WorkflowState) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(string(state))
	}
}

// Controller одно взаимодействие гостя с формой бронирования комнаты
type Controller struct {
	uc *UseCase

	mu        sync.Mutex
	roomID    int64
	candidate domain.CandidateRange
	snapshot  []*domain.Reservation
	pending   []*domain.Reservation
	state     domain.WorkflowState
	alert     *alert.Slot
	disposed  bool
}

// RoomID возвращает комнату взаимодействия
func (c *Controller) RoomID() int64 {
	return c.roomID
}

// SelectDates выбирает даты заезда и выезда. Прошедшие дни отклоняются
// с уведомлением, выбранные даты при этом не меняются.
func (c *Controller) SelectDates(req DatesRequest) (domain.CandidateRange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return domain.CandidateRange{}, ErrDisposed
	}

	now := c.uc.clock.Now()
	for _, day := range []*time.Time{req.CheckIn, req.CheckOut} {
		if day == nil {
			continue
		}
		if err := validateDay(*day, now); err != nil {
			c.uc.logger.Warn("SelectDates: room=%d, day=%s rejected: %v", c.roomID, domain.FormatDay(*day), err)
			c.alert.Set(alertMessage(err), domain.AlertError)
			return c.candidateLocked(), err
		}
	}

	if req.CheckIn != nil {
		day := domain.StartOfDay(*req.CheckIn)
		c.candidate.CheckIn = &day
	}
	if req.CheckOut != nil {
		day := domain.StartOfDay(*req.CheckOut)
		c.candidate.CheckOut = &day
	}

	return c.candidateLocked(), nil
}

// SelectCheckIn выбирает дату заезда
func (c *Controller) SelectCheckIn(day time.Time) error {
	_, err := c.SelectDates(DatesRequest{CheckIn: &day})
	return err
}

// SelectCheckOut выбирает дату выезда
func (c *Controller) SelectCheckOut(day time.Time) error {
	_, err := c.SelectDates(DatesRequest{CheckOut: &day})
	return err
}

// Submit выполняет отправку бронирования:
// валидация дат -> проверка доступности -> создание в хранилище.
// Сетевые вызовы выполняются в фоне и не блокируют взаимодействие.
func (c *Controller) Submit(guest domain.Guest) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	uc := c.uc

	if c.disposed {
		return nil, ErrDisposed
	}

	// 1. Отправка доступна только авторизованному гостю
	if !guest.Authenticated {
		uc.logger.Warn("SubmitBooking: room=%d, guest is not authenticated", c.roomID)
		return nil, ErrLoginRequired
	}

	uc.logger.Info("SubmitBooking: room=%d, guest=%s", c.roomID, guest.Email)
	c.state = domain.StateValidating

	// 2. Валидация формы дат, без проверки доступности
	if err := validateCandidate(c.candidate); err != nil {
		uc.logger.Warn("SubmitBooking: room=%d, validation failed: %v", c.roomID, err)
		return c.finish(domain.StateInputError, alertMessage(err), domain.AlertError), nil
	}

	checkIn, checkOut := *c.candidate.CheckIn, *c.candidate.CheckOut

	// 3. Проверка доступности по снимку и еще не завершенным созданиям
	if uc.checker(c.knownLocked(), c.roomID, checkIn, checkOut) {
		uc.logger.Warn("SubmitBooking: room=%d, range %s..%s conflicts with existing reservations",
			c.roomID, domain.FormatDay(checkIn), domain.FormatDay(checkOut))
		return c.finish(domain.StateConflict, domain.MsgAlreadyBooked, domain.AlertError), nil
	}

	// 4. Создание бронирования
	payload := &domain.NewReservation{
		RoomID:    c.roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Email:     guest.Email,
	}

	// Диапазон занят до ответа хранилища, повторная отправка увидит конфликт
	pending := payload.Reservation()
	c.pending = append(c.pending, pending)

	if uc.cfg.Mode == ModeOptimistic {
		result := c.finish(domain.StateSuccess, domain.MsgBookingConfirmed, domain.AlertSuccess)
		uc.runner.Go(func(ctx context.Context) {
			c.create(ctx, payload, pending, false)
		})
		return result, nil
	}

	c.state = domain.StateSubmitting
	uc.observeSubmission(domain.StateSubmitting)
	uc.runner.Go(func(ctx context.Context) {
		c.create(ctx, payload, pending, true)
	})

	return &Result{State: domain.StateSubmitting}, nil
}

// Refresh перечитывает снимок бронирований из хранилища
func (c *Controller) Refresh(ctx context.Context) error {
	reservations, err := c.uc.store.ListReservations(ctx)
	if err != nil {
		c.uc.logger.Error("Refresh: room=%d, failed to list reservations: %v", c.roomID, err)
		return err
	}

	c.SetSnapshot(reservations)
	return nil
}

// SetSnapshot заменяет снимок бронирований, загруженный извне
func (c *Controller) SetSnapshot(reservations []*domain.Reservation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.disposed {
		c.snapshot = reservations
	}
}

// Result возвращает текущее состояние взаимодействия.
// Когда уведомление очищено, взаимодействие возвращается в Idle.
func (c *Controller) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.alert.Current()
	state := c.state
	if current.IsEmpty() && state != domain.StateSubmitting {
		state = domain.StateIdle
	}
	return Result{State: state, Alert: current}
}

// Alert возвращает текущее уведомление
func (c *Controller) Alert() domain.AlertState {
	return c.alert.Current()
}

// Candidate возвращает выбранный диапазон дат
func (c *Controller) Candidate() domain.CandidateRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidateLocked()
}

// Snapshot возвращает копию снимка бронирований
func (c *Controller) Snapshot() []*domain.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*domain.Reservation, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

// Dispose закрывает взаимодействие и отменяет отложенную очистку уведомления
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	c.alert.Dispose()
}

// create выполняет создание в фоне. При report результат определяет уведомление.
func (c *Controller) create(ctx context.Context, payload *domain.NewReservation, pending *domain.Reservation, report bool) {
	uc := c.uc

	created, err := uc.store.CreateReservation(ctx, payload)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create reservation room=%d, %s..%s: %v",
			payload.RoomID, domain.FormatDay(payload.CheckIn), domain.FormatDay(payload.CheckOut), err)
	} else {
		uc.logger.Info("SubmitBooking: successfully created reservation id=%d, room=%d", created.ID, created.RoomID)
	}

	c.complete(pending, created, err, report)

	if uc.refresher != nil {
		uc.refresher.Refresh(ctx)
		return
	}
	_ = c.Refresh(ctx)
}

// complete снимает диапазон из ожидающих. Созданное бронирование остается
// в снимке до обновления.
func (c *Controller) complete(pending, created *domain.Reservation, err error, report bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.pending {
		if p == pending {
			c.pending = append(c.pending[:i:i], c.pending[i+1:]...)
			break
		}
	}

	if c.disposed {
		return
	}

	if err == nil && created != nil {
		snapshot := make([]*domain.Reservation, 0, len(c.snapshot)+1)
		snapshot = append(snapshot, c.snapshot...)
		c.snapshot = append(snapshot, created)
	}

	if !report {
		return
	}

	switch {
	case err == nil:
		c.finish(domain.StateSuccess, domain.MsgBookingConfirmed, domain.AlertSuccess)
	case errors.Is(err, reservationstore.ErrOverlap):
		c.finish(domain.StateConflict, domain.MsgAlreadyBooked, domain.AlertError)
	default:
		c.finish(domain.StateNetworkError, domain.MsgBookingFailed, domain.AlertNetworkError)
	}
}

// finish фиксирует итог отправки и выставляет уведомление. Вызывается под c.mu.
func (c *Controller) finish(state domain.WorkflowState, message string, kind domain.AlertKind) *Result {
	c.state = state
	c.alert.Set(message, kind)
	c.uc.observeSubmission(state)
	return &Result{State: state, Alert: domain.AlertState{Message: message, Kind: kind}}
}

func (c *Controller) knownLocked() []*domain.Reservation {
	if len(c.pending) == 0 {
		return c.snapshot
	}
	known := make([]*domain.Reservation, 0, len(c.snapshot)+len(c.pending))
	known = append(known, c.snapshot...)
	return append(known, c.pending...)
}

func (c *Controller) candidateLocked() domain.CandidateRange {
	out := domain.CandidateRange{RoomID: c.roomID}
	if c.candidate.CheckIn != nil {
		day := *c.candidate.CheckIn
		out.CheckIn = &day
	}
	if c.candidate.CheckOut != nil {
		day := *c.candidate.CheckOut
		out.CheckOut = &day
	}
	return out
}
