package get_alert

import (
	submitBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

// AlertResponse уведомление для гостя
type AlertResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// StateResponse HTTP response model текущего состояния взаимодействия
type StateResponse struct {
	State string         `json:"state"`
	Alert *AlertResponse `json:"alert"`
}

// FromUseCaseResult конвертирует состояние use case в HTTP response
func FromUseCaseResult(res submitBooking.Result) *StateResponse {
	resp := &StateResponse{State: string(res.State)}
	if !res.Alert.IsEmpty() {
		resp.Alert = &AlertResponse{Message: res.Alert.Message, Kind: string(res.Alert.Kind)}
	}
	return resp
}
