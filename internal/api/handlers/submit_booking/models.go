package submit_booking

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

// AlertResponse уведомление для гостя
type AlertResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// SubmitResponse HTTP response model результата отправки
type SubmitResponse struct {
	State string         `json:"state"`
	Alert *AlertResponse `json:"alert"`
}

// LoginRequiredResponse ответ для неавторизованного гостя
type LoginRequiredResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	LoginURL string `json:"loginUrl"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(res *submitBooking.Result) *SubmitResponse {
	resp := &SubmitResponse{State: string(res.State)}
	if !res.Alert.IsEmpty() {
		resp.Alert = fromAlert(res.Alert)
	}
	return resp
}

func fromAlert(a domain.AlertState) *AlertResponse {
	return &AlertResponse{Message: a.Message, Kind: string(a.Kind)}
}
