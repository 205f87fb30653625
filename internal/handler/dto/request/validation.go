package request

type ValidateTicketRequest struct {
	QRData   string  `json:"qr_data" binding:"required"`
	Location *string `json:"location,omitempty"`
	DeviceID *string `json:"device_id,omitempty"`
}
