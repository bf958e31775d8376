package dto

type StatusResponse struct {
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
}

type ScanResponse struct {
	Token   int `json:"token"`
	Matched int `json:"matched"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
