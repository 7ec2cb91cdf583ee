package select_dates

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
)

// SelectDatesRequest HTTP request model. Пропущенная дата не меняется.
type SelectDatesRequest struct {
	CheckIn  *string `json:"checkIn,omitempty"`  // "2024-06-10"
	CheckOut *string `json:"checkOut,omitempty"` // "2024-06-15"
}

// AlertResponse уведомление для гостя
type AlertResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// CandidateResponse HTTP response model выбранного диапазона
type CandidateResponse struct {
	RoomID   int64          `json:"roomId"`
	CheckIn  *string        `json:"checkIn"`
	CheckOut *string        `json:"checkOut"`
	Alert    *AlertResponse `json:"alert,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *SelectDatesRequest) ToUseCaseRequest() (submit_booking.DatesRequest, error) {
	var req submit_booking.DatesRequest

	parse := func(s *string) (*time.Time, error) {
		if ptr.Deref(s) == "" {
			return nil, nil
		}
		day, err := domain.ParseDay(*s)
		if err != nil {
			return nil, err
		}
		return &day, nil
	}

	var err error
	if req.CheckIn, err = parse(r.CheckIn); err != nil {
		return req, err
	}
	if req.CheckOut, err = parse(r.CheckOut); err != nil {
		return req, err
	}
	return req, nil
}

// FromCandidate конвертирует диапазон use case в HTTP response
func FromCandidate(c domain.CandidateRange, alert domain.AlertState) *CandidateResponse {
	resp := &CandidateResponse{RoomID: c.RoomID}
	if c.CheckIn != nil {
		s := domain.FormatDay(*c.CheckIn)
		resp.CheckIn = &s
	}
	if c.CheckOut != nil {
		s := domain.FormatDay(*c.CheckOut)
		resp.CheckOut = &s
	}
	if !alert.IsEmpty() {
		resp.Alert = &AlertResponse{Message: alert.Message, Kind: string(alert.Kind)}
	}
	return resp
}
