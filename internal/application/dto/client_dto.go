package dto

import (
	"time"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// CreateClientRequest entrada para crear un cliente (un elemento del lote).
// Status ausente equivale a "active".
type CreateClientRequest struct {
	ClientName         string                    `json:"client_name" validate:"required,max=255"`
	Industry           string                    `json:"industry" validate:"max=255"`
	Location           string                    `json:"location" validate:"max=255"`
	ContactPerson      string                    `json:"contact_person" validate:"required,max=255"`
	ContactEmail       string                    `json:"contact_email" validate:"required,email,max=255"`
	ContactPhone       string                    `json:"contact_phone" validate:"required,max=255"`
	Status             *entity.ClientStatus      `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	ComplianceSettings entity.ComplianceSettings `json:"compliance_settings"`
}

// UpdateClientRequest entrada para PATCH: solo cambian los campos presentes.
type UpdateClientRequest struct {
	ClientName         *string                    `json:"client_name"`
	Industry           *string                    `json:"industry"`
	Location           *string                    `json:"location"`
	ContactPerson      *string                    `json:"contact_person"`
	ContactEmail       *string                    `json:"contact_email"`
	ContactPhone       *string                    `json:"contact_phone"`
	Status             *entity.ClientStatus       `json:"status"`
	ComplianceSettings *entity.ComplianceSettings `json:"compliance_settings"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID                 string                    `json:"id"`
	ClientName         string                    `json:"client_name"`
	Industry           string                    `json:"industry"`
	Location           string                    `json:"location"`
	ContactPerson      string                    `json:"contact_person"`
	ContactEmail       string                    `json:"contact_email"`
	ContactPhone       string                    `json:"contact_phone"`
	Status             entity.ClientStatus       `json:"status"`
	ComplianceSettings entity.ComplianceSettings `json:"compliance_settings"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// CreateClientsResponse respuesta de POST /api/clients.
// CreatedClients es un objeto para altas individuales y un arreglo para lotes.
type CreateClientsResponse struct {
	Message        string `json:"message"`
	CreatedClients any    `json:"createdClients"`
}

// ClientMessageResponse respuesta de DELETE.
type ClientMessageResponse struct {
	Message string          `json:"message"`
	Client  *ClientResponse `json:"client"`
}
