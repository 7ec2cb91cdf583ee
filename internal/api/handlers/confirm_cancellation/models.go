package confirm_cancellation

// AcceptedResponse ответ на подтвержденную отмену. Удаление выполняется в фоне.
type AcceptedResponse struct {
	Status string `json:"status"`
}
