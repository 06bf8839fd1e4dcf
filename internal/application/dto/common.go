package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse respuesta mínima de operaciones sin cuerpo.
type StatusResponse struct {
	Status string `json:"status"`
}
