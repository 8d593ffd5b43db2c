package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, client_name, industry, location, contact_person, contact_email,
	contact_phone, status, compliance_settings, created_at, updated_at`

var clientCopyColumns = []string{
	"id", "client_name", "industry", "location", "contact_person", "contact_email",
	"contact_phone", "status", "compliance_settings", "created_at", "updated_at",
}

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	settings, err := json.Marshal(c.ComplianceSettings)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.ClientName, c.Industry, c.Location, c.ContactPerson, c.ContactEmail,
		c.ContactPhone, string(c.Status), settings, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicate, "insert client", err)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// CreateMany inserta el lote con COPY. Debe ejecutarse dentro de una tx para que
// una violación de unicidad no deje filas parciales.
func (r *ClientRepo) CreateMany(ctx context.Context, clients []*entity.Client) error {
	rows := make([][]any, 0, len(clients))
	for _, c := range clients {
		settings, err := json.Marshal(c.ComplianceSettings)
		if err != nil {
			return err
		}
		rows = append(rows, []any{
			c.ID, c.ClientName, c.Industry, c.Location, c.ContactPerson, c.ContactEmail,
			c.ContactPhone, string(c.Status), settings, c.CreatedAt, c.UpdatedAt,
		})
	}
	_, err := r.q.CopyFrom(ctx, pgx.Identifier{"clients"}, clientCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicate, "bulk insert clients", err)
		}
		return fmt.Errorf("bulk insert clients: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes por fecha de creación.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at, client_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return collectClients(rows)
}

// Search busca la subcadena (ILIKE) en client_name, industry o location.
func (r *ClientRepo) Search(ctx context.Context, term string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE client_name ILIKE $1 ESCAPE '\' OR industry ILIKE $1 ESCAPE '\' OR location ILIKE $1 ESCAPE '\'
		ORDER BY created_at, client_name`
	rows, err := r.q.Query(ctx, query, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return collectClients(rows)
}

// Update sobrescribe todas las columnas editables del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	settings, err := json.Marshal(c.ComplianceSettings)
	if err != nil {
		return err
	}
	query := `
		UPDATE clients SET client_name = $2, industry = $3, location = $4, contact_person = $5,
			contact_email = $6, contact_phone = $7, status = $8, compliance_settings = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.ClientName, c.Industry, c.Location, c.ContactPerson, c.ContactEmail,
		c.ContactPhone, string(c.Status), settings, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicate, "update client", err)
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var (
		c        entity.Client
		status   string
		settings []byte
	)
	err := row.Scan(&c.ID, &c.ClientName, &c.Industry, &c.Location, &c.ContactPerson, &c.ContactEmail,
		&c.ContactPhone, &status, &settings, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = entity.ClientStatus(status)
	if err := json.Unmarshal(settings, &c.ComplianceSettings); err != nil {
		return nil, fmt.Errorf("decode compliance_settings: %w", err)
	}
	return &c, nil
}

func collectClients(rows pgx.Rows) ([]*entity.Client, error) {
	defer rows.Close()
	list := make([]*entity.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike hace que % y _ del término se busquen literalmente.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
