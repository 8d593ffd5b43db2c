package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// Títulos de la taxonomía de errores.
const (
	TitleNotFound     = "NOT FOUND"
	TitleValidation   = "Validation Failed"
	TitleUnauthorized = "UNAUTHORIZED"
	TitleForbidden    = "FORBIDDEN"
	TitleInternal     = "INTERNAL_SERVER_ERROR"
)

// ErrorHandler traduce cualquier error devuelto por un handler al cuerpo uniforme
// {title, message, stackTrace}. Con exposeStack=false stackTrace va vacío.
func ErrorHandler(exposeStack bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusFor(err)
		body := dto.ErrorResponse{
			Title:   titleFor(status),
			Message: err.Error(),
		}
		if exposeStack {
			body.StackTrace = errorChain(err)
		}
		return c.Status(status).JSON(body)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func titleFor(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return TitleNotFound
	case fiber.StatusBadRequest:
		return TitleValidation
	case fiber.StatusUnauthorized:
		return TitleUnauthorized
	case fiber.StatusForbidden:
		return TitleForbidden
	default:
		return TitleInternal
	}
}

// errorChain recorre el árbol de errores envueltos, una línea por nivel.
func errorChain(err error) string {
	var lines []string
	var walk func(e error, depth int)
	walk = func(e error, depth int) {
		if e == nil {
			return
		}
		lines = append(lines, strings.Repeat("  ", depth)+e.Error())
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner, depth+1)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap(), depth+1)
		}
	}
	walk(err, 0)
	return strings.Join(lines, "\n")
}
