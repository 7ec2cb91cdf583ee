package reservationstore

// Модели соответствуют REST API хранилища (Strapi v4, populate=*):
// каждая запись завернута в {id, attributes}, связи - в {data: ...}.

// RoomResponse ответ GET /rooms/{id}
type RoomResponse struct {
	Data  *RoomData  `json:"data"`
	Error *ErrorBody `json:"error,omitempty"`
}

// RoomData запись комнаты
type RoomData struct {
	ID         int64          `json:"id" validate:"gt=0"`
	Attributes RoomAttributes `json:"attributes"`
}

// RoomAttributes атрибуты комнаты
type RoomAttributes struct {
	Title       string         `json:"title"`
	Price       float64        `json:"price" validate:"gte=0"`
	Size        float64        `json:"size" validate:"gte=0"`
	Capacity    int            `json:"capacity" validate:"gte=0"`
	Description string         `json:"description"`
	Image       *ImageRelation `json:"image,omitempty"`
}

// ImageRelation связь комнаты с изображением (data = null, если изображения нет)
type ImageRelation struct {
	Data *ImageData `json:"data"`
}

// ImageData запись изображения
type ImageData struct {
	ID         int64           `json:"id"`
	Attributes ImageAttributes `json:"attributes"`
}

// ImageAttributes атрибуты изображения
type ImageAttributes struct {
	URL string `json:"url"`
}

// ReservationListResponse ответ GET /reservations
type ReservationListResponse struct {
	Data []ReservationData `json:"data"`
}

// ReservationResponse ответ POST /reservations и DELETE /reservations/{id}
type ReservationResponse struct {
	Data  *ReservationData `json:"data"`
	Error *ErrorBody       `json:"error,omitempty"`
}

// ReservationData запись бронирования
type ReservationData struct {
	ID         int64                 `json:"id" validate:"gt=0"`
	Attributes ReservationAttributes `json:"attributes"`
}

// ReservationAttributes атрибуты бронирования
type ReservationAttributes struct {
	Firstname string        `json:"firstname"`
	Lastname  string        `json:"lastname"`
	Email     string        `json:"email"`
	CheckIn   string        `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut  string        `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Room      *RoomRelation `json:"room,omitempty" validate:"required"`
}

// RoomRelation связь бронирования с комнатой
type RoomRelation struct {
	Data *RoomData `json:"data" validate:"required"`
}

// CreateReservationRequest тело POST /reservations
type CreateReservationRequest struct {
	Data CreateReservationData `json:"data"`
}

// CreateReservationData данные нового бронирования
type CreateReservationData struct {
	Firstname string `json:"firstname" validate:"required,max=100"`
	Lastname  string `json:"lastname" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	CheckIn   string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Room      int64  `json:"room" validate:"gt=0"`
}

// ErrorResponse ответ с ошибкой
type ErrorResponse struct {
	Data  interface{} `json:"data"`
	Error ErrorBody   `json:"error"`
}

// ErrorBody описание ошибки
type ErrorBody struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}
