package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada uno corresponde a una categoría de la taxonomía de errores HTTP.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidPayload = errors.New("cuerpo de la petición vacío o inválido")
	ErrValidation     = errors.New("validación fallida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)

// Error asocia un mensaje público a una categoría de dominio (Kind) y,
// opcionalmente, a la causa técnica que lo originó.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// NewError construye un error de dominio sin causa.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap construye un error de dominio conservando la causa.
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "error desconocido"
}

// Unwrap permite errors.Is/As tanto contra Kind como contra Cause.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}
