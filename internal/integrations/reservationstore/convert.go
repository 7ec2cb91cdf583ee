package reservationstore

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var validate = validator.New()

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ToDomainRoom конвертирует запись комнаты в domain модель
func ToDomainRoom(d *RoomData) (*domain.Room, error) {
	if d == nil {
		return nil, ErrRoomNotFound
	}
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("%w: room shape: %v", ErrInvalidResponse, err)
	}

	room := &domain.Room{
		ID:          d.ID,
		Title:       d.Attributes.Title,
		Price:       d.Attributes.Price,
		Size:        d.Attributes.Size,
		Capacity:    d.Attributes.Capacity,
		Description: d.Attributes.Description,
	}

	if img := d.Attributes.Image; img != nil && img.Data != nil && img.Data.Attributes.URL != "" {
		room.Image = &domain.Image{URL: img.Data.Attributes.URL}
	}

	return room, nil
}

// FromDomainRoom конвертирует domain модель комнаты в запись API
func FromDomainRoom(r *domain.Room) *RoomData {
	data := &RoomData{
		ID: r.ID,
		Attributes: RoomAttributes{
			Title:       r.Title,
			Price:       r.Price,
			Size:        r.Size,
			Capacity:    r.Capacity,
			Description: r.Description,
			Image:       &ImageRelation{},
		},
	}
	if r.HasImage() {
		data.Attributes.Image.Data = &ImageData{ID: r.ID, Attributes: ImageAttributes{URL: r.Image.URL}}
	}
	return data
}

// ToDomainReservation конвертирует запись бронирования в domain модель.
// Вложенная связь с комнатой и даты проверяются до использования.
func ToDomainReservation(d ReservationData) (*domain.Reservation, error) {
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("%w: reservation id=%d shape: %v", ErrInvalidResponse, d.ID, err)
	}

	checkIn, err := domain.ParseDay(d.Attributes.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id=%d checkIn: %v", ErrInvalidResponse, d.ID, err)
	}
	checkOut, err := domain.ParseDay(d.Attributes.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id=%d checkOut: %v", ErrInvalidResponse, d.ID, err)
	}

	return &domain.Reservation{
		ID:        d.ID,
		RoomID:    d.Attributes.Room.Data.ID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		FirstName: d.Attributes.Firstname,
		LastName:  d.Attributes.Lastname,
		Email:     d.Attributes.Email,
	}, nil
}

// FromDomainReservation конвертирует domain модель бронирования в запись API.
// room может быть nil, тогда в связь попадает только ID.
func FromDomainReservation(r *domain.Reservation, room *domain.Room) ReservationData {
	roomData := &RoomData{ID: r.RoomID}
	if room != nil {
		roomData = FromDomainRoom(room)
	}

	return ReservationData{
		ID: r.ID,
		Attributes: ReservationAttributes{
			Firstname: r.FirstName,
			Lastname:  r.LastName,
			Email:     r.Email,
			CheckIn:   domain.FormatDay(r.CheckIn),
			CheckOut:  domain.FormatDay(r.CheckOut),
			Room:      &RoomRelation{Data: roomData},
		},
	}
}

// NewCreateRequest собирает тело POST /reservations и проверяет его
func NewCreateRequest(r *domain.NewReservation) (*CreateReservationRequest, error) {
	req := &CreateReservationRequest{
		Data: CreateReservationData{
			Firstname: r.FirstName,
			Lastname:  r.LastName,
			Email:     r.Email,
			CheckIn:   domain.FormatDay(r.CheckIn),
			CheckOut:  domain.FormatDay(r.CheckOut),
			Room:      r.RoomID,
		},
	}

	if err := Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return req, nil
}

// ToDomainNewReservation конвертирует тело запроса в domain модель (сторона хранилища)
func ToDomainNewReservation(req *CreateReservationRequest) (*domain.NewReservation, error) {
	if err := Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	checkIn, err := domain.ParseDay(req.Data.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: checkIn: %v", ErrInvalidPayload, err)
	}
	checkOut, err := domain.ParseDay(req.Data.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: checkOut: %v", ErrInvalidPayload, err)
	}

	return &domain.NewReservation{
		RoomID:    req.Data.Room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		FirstName: req.Data.Firstname,
		LastName:  req.Data.Lastname,
		Email:     req.Data.Email,
	}, nil
}
