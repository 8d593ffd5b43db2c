package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// ClientHandler maneja las peticiones HTTP del recurso clients.
type ClientHandler struct {
	uc      *usecase.ClientUseCase
	metrics *Metrics
}

// NewClientHandler construye el handler. metrics puede ser nil.
func NewClientHandler(uc *usecase.ClientUseCase, metrics *Metrics) *ClientHandler {
	return &ClientHandler{uc: uc, metrics: metrics}
}

// Create godoc
// @Summary      Crear uno o varios clientes
// @Description  Acepta un objeto o un arreglo. Un elemento: alta individual; varios: inserción masiva atómica.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreateClientRequest  true  "Cliente o lista de clientes"
// @Success      200   {object}  dto.CreateClientsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	in, err := decodeClientsPayload(c.Body())
	if err != nil {
		return err
	}
	out, err := h.uc.CreateBatch(c.UserContext(), in)
	if err != nil {
		return err
	}
	h.metrics.ObserveCreated(len(out))

	var created any = out
	if len(out) == 1 {
		created = out[0]
	}
	return c.JSON(dto.CreateClientsResponse{Message: usecase.MsgClientsCreated, CreatedClients: created})
}

// List godoc
// @Summary      Listar clientes
// @Description  Devuelve todos los registros; el filtro por estado lo aplica el consumidor.
// @Tags         clients
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar clientes
// @Description  Subcadena sin distinguir mayúsculas sobre client_name, industry o location.
// @Tags         clients
// @Produce      json
// @Param        search  path  string  true  "Texto a buscar"
// @Success      200  {array}   dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/temp/{search} [get]
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	query, err := url.PathUnescape(c.Params("search"))
	if err != nil {
		return domain.Wrap(domain.ErrInvalidPayload, usecase.MsgSearchRequired, err)
	}
	out, err := h.uc.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Solo cambian los campos presentes en el cuerpo.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return payloadError(err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ClientMessageResponse{Message: usecase.MsgClientDeleted, Client: out})
}

// Template godoc
// @Summary      Plantilla CSV de importación
// @Tags         clients
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/clients/template [get]
func (h *ClientHandler) Template(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(csvimport.TemplateFileName)
	return c.SendString(csvimport.Template())
}

// decodeClientsPayload normaliza el cuerpo de POST a una lista: objeto -> [objeto].
func decodeClientsPayload(body []byte) ([]dto.CreateClientRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domain.NewError(domain.ErrInvalidPayload, usecase.MsgEmptyPayload)
	}
	switch trimmed[0] {
	case '[':
		var list []dto.CreateClientRequest
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, payloadError(err)
		}
		if len(list) == 0 {
			return nil, domain.NewError(domain.ErrInvalidPayload, usecase.MsgEmptyPayload)
		}
		return list, nil
	case '{':
		var one dto.CreateClientRequest
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, payloadError(err)
		}
		return []dto.CreateClientRequest{one}, nil
	default:
		return nil, domain.NewError(domain.ErrInvalidPayload, usecase.MsgEmptyPayload)
	}
}

// payloadError conserva los errores de validación de tipos y trata el resto como JSON inválido.
func payloadError(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	return domain.Wrap(domain.ErrInvalidPayload, usecase.MsgEmptyPayload, err)
}
