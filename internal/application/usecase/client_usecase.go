package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Mensajes públicos de la API de clientes.
const (
	MsgClientNotFound  = "Client not found"
	MsgNoClientsFound  = "No clients found"
	MsgEmptyPayload    = "Request body is empty or invalid."
	MsgSearchRequired  = "Search query is required"
	MsgDuplicateClient = "client_name and contact_email must be unique"
	MsgClientsCreated  = "Client(s) added successfully."
	MsgClientDeleted   = "Client deleted successfully"
)

// ClientUseCase casos de uso para registros de clientes.
type ClientUseCase struct {
	repo     repository.ClientRepository
	tx       ClientTxRunner
	validate *validator.Validate
	now      func() time.Time
}

// NewClientUseCase construye el caso de uso. tx se usa para las altas en lote.
func NewClientUseCase(repo repository.ClientRepository, tx ClientTxRunner) *ClientUseCase {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &ClientUseCase{repo: repo, tx: tx, validate: v, now: time.Now}
}

// CreateBatch da de alta uno o varios clientes. Con un solo elemento usa Create;
// con más de uno una única inserción masiva transaccional (todo o nada).
// Es solo inserción: un duplicado de client_name o contact_email hace fallar el lote completo.
func (uc *ClientUseCase) CreateBatch(ctx context.Context, in []dto.CreateClientRequest) ([]*dto.ClientResponse, error) {
	if len(in) == 0 {
		return nil, domain.NewError(domain.ErrInvalidPayload, MsgEmptyPayload)
	}
	now := uc.now()
	clients := make([]*entity.Client, 0, len(in))
	for i := range in {
		if err := uc.validateCreate(in[i], i, len(in)); err != nil {
			return nil, err
		}
		clients = append(clients, newClientFromRequest(in[i], now))
	}

	var err error
	if len(clients) > 1 {
		err = uc.tx.Run(ctx, func(repo repository.ClientRepository) error {
			return repo.CreateMany(ctx, clients)
		})
	} else {
		err = uc.repo.Create(ctx, clients[0])
	}
	if err != nil {
		return nil, translateWriteError(err)
	}

	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Search busca por subcadena (sin distinguir mayúsculas) en client_name, industry y location.
func (uc *ClientUseCase) Search(ctx context.Context, query string) ([]*dto.ClientResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewError(domain.ErrInvalidPayload, MsgSearchRequired)
	}
	list, err := uc.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NewError(domain.ErrNotFound, MsgNoClientsFound)
	}
	return toClientResponses(list), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update aplica los campos presentes en in sobre el registro existente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUpdate(client, in)
	if err := uc.validateCreate(requestFromClient(client), 0, 1); err != nil {
		return nil, err
	}
	client.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, translateWriteError(err)
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente y devuelve el registro borrado.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) find(ctx context.Context, id string) (*entity.Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewError(domain.ErrNotFound, MsgClientNotFound)
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewError(domain.ErrNotFound, MsgClientNotFound)
	}
	return client, nil
}

func (uc *ClientUseCase) validateCreate(in dto.CreateClientRequest, index, total int) error {
	err := uc.validate.Struct(in)
	if err == nil {
		err = in.ComplianceSettings.Validate()
		if err != nil {
			return withRow(err, index, total)
		}
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Wrap(domain.ErrValidation, err.Error(), err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return withRow(domain.Wrap(domain.ErrValidation, strings.Join(msgs, "; "), err), index, total)
}

func withRow(err error, index, total int) error {
	if total <= 1 {
		return err
	}
	var derr *domain.Error
	if errors.As(err, &derr) {
		return domain.Wrap(derr.Kind, fmt.Sprintf("row %d: %s", index+1, derr.Message), derr.Cause)
	}
	return domain.Wrap(domain.ErrValidation, fmt.Sprintf("row %d: %s", index+1, err.Error()), err)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// jsonFieldName hace que los errores de validación usen el nombre JSON del campo.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// translateWriteError convierte un duplicado del almacén en error de validación.
func translateWriteError(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Wrap(domain.ErrValidation, MsgDuplicateClient, err)
	}
	return err
}

func newClientFromRequest(in dto.CreateClientRequest, now time.Time) *entity.Client {
	status := entity.ClientStatusActive
	if in.Status != nil {
		status = *in.Status
	}
	settings := in.ComplianceSettings
	if settings == nil {
		settings = entity.ComplianceSettings{}
	}
	return &entity.Client{
		ID:                 uuid.New().String(),
		ClientName:         in.ClientName,
		Industry:           in.Industry,
		Location:           in.Location,
		ContactPerson:      in.ContactPerson,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
		Status:             status,
		ComplianceSettings: settings,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func applyUpdate(c *entity.Client, in dto.UpdateClientRequest) {
	if in.ClientName != nil {
		c.ClientName = *in.ClientName
	}
	if in.Industry != nil {
		c.Industry = *in.Industry
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.ContactPerson != nil {
		c.ContactPerson = *in.ContactPerson
	}
	if in.ContactEmail != nil {
		c.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		c.ContactPhone = *in.ContactPhone
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.ComplianceSettings != nil {
		c.ComplianceSettings = *in.ComplianceSettings
	}
}

func requestFromClient(c *entity.Client) dto.CreateClientRequest {
	status := c.Status
	return dto.CreateClientRequest{
		ClientName:         c.ClientName,
		Industry:           c.Industry,
		Location:           c.Location,
		ContactPerson:      c.ContactPerson,
		ContactEmail:       c.ContactEmail,
		ContactPhone:       c.ContactPhone,
		Status:             &status,
		ComplianceSettings: c.ComplianceSettings,
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	settings := c.ComplianceSettings
	if settings == nil {
		settings = entity.ComplianceSettings{}
	}
	return &dto.ClientResponse{
		ID:                 c.ID,
		ClientName:         c.ClientName,
		Industry:           c.Industry,
		Location:           c.Location,
		ContactPerson:      c.ContactPerson,
		ContactEmail:       c.ContactEmail,
		ContactPhone:       c.ContactPhone,
		Status:             c.Status,
		ComplianceSettings: settings,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toClientResponses(list []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out
}
