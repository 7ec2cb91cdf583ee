package open_interaction

// InteractionResponse HTTP response model открытого взаимодействия
type InteractionResponse struct {
	InteractionID string `json:"interactionId"`
	RoomID        int64  `json:"roomId"`
	Mode          string `json:"mode,omitempty"`
}
