package entity

import "time"

// ClientStatus estado comercial de un cliente.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Valid indica si el estado pertenece al enumerado.
func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// Client representa un registro de cliente (empresa, contacto y ajustes de cumplimiento).
// ClientName y ContactEmail son únicos en todo el almacén.
type Client struct {
	ID                 string
	ClientName         string
	Industry           string
	Location           string
	ContactPerson      string
	ContactEmail       string
	ContactPhone       string
	Status             ClientStatus
	ComplianceSettings ComplianceSettings
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
