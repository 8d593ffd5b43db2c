package dto

// ErrorResponse cuerpo de error HTTP común a todas las rutas.
// Title proviene de una taxonomía fija (NOT FOUND, Validation Failed, ...).
type ErrorResponse struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace"`
}
