package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NotificationResponse aviso sin documento (ej. ninguna línea elegible).
type NotificationResponse struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // success | warning | danger
}
