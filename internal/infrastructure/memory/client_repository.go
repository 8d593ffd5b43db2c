// Package memory implementa el puerto de clientes en memoria para pruebas y ejecución local.
// Respeta las mismas reglas que PostgreSQL: unicidad de client_name y contact_email,
// búsqueda sin distinguir mayúsculas y orden por fecha de creación.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Store almacén compartido por el repositorio y el TxRunner.
type Store struct {
	mu      sync.Mutex
	clients []*entity.Client
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// ClientRepo implementación en memoria de repository.ClientRepository.
type ClientRepo struct {
	store *Store
	// en transacción el lock lo mantiene el TxRunner
	locked bool
	data   *[]*entity.Client
}

var _ repository.ClientRepository = (*ClientRepo)(nil)

// NewClientRepository repositorio fuera de transacción.
func NewClientRepository(s *Store) *ClientRepo {
	return &ClientRepo{store: s, data: &s.clients}
}

func (r *ClientRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

// Create inserta un cliente; falla con ErrDuplicate si choca id, nombre o email.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	defer r.lock()()
	return r.insert(client)
}

// CreateMany inserta el lote completo o ninguno.
func (r *ClientRepo) CreateMany(ctx context.Context, clients []*entity.Client) error {
	defer r.lock()()
	before := len(*r.data)
	for _, c := range clients {
		if err := r.insert(c); err != nil {
			*r.data = (*r.data)[:before]
			return err
		}
	}
	return nil
}

func (r *ClientRepo) insert(c *entity.Client) error {
	if err := checkStatus(c); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	for _, existing := range *r.data {
		if existing.ID == c.ID || existing.ClientName == c.ClientName || existing.ContactEmail == c.ContactEmail {
			return domain.Wrap(domain.ErrDuplicate, "insert client", fmt.Errorf("cliente duplicado: %s", c.ClientName))
		}
	}
	*r.data = append(*r.data, clone(c))
	return nil
}

// GetByID devuelve nil, nil cuando el cliente no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	defer r.lock()()
	for _, c := range *r.data {
		if c.ID == id {
			return clone(c), nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes por fecha de creación.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	defer r.lock()()
	return r.sorted(func(*entity.Client) bool { return true }), nil
}

// Search filtra por nombre, industria o ubicación sin distinguir mayúsculas.
func (r *ClientRepo) Search(ctx context.Context, query string) ([]*entity.Client, error) {
	defer r.lock()()
	q := strings.ToLower(query)
	return r.sorted(func(c *entity.Client) bool {
		return strings.Contains(strings.ToLower(c.ClientName), q) ||
			strings.Contains(strings.ToLower(c.Industry), q) ||
			strings.Contains(strings.ToLower(c.Location), q)
	}), nil
}

// Update reemplaza el registro con el mismo ID.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	defer r.lock()()
	if err := checkStatus(client); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	idx := -1
	for i, c := range *r.data {
		if c.ID == client.ID {
			idx = i
			continue
		}
		if c.ClientName == client.ClientName || c.ContactEmail == client.ContactEmail {
			return domain.Wrap(domain.ErrDuplicate, "update client", fmt.Errorf("cliente duplicado: %s", client.ClientName))
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	(*r.data)[idx] = clone(client)
	return nil
}

// Delete elimina por ID o devuelve ErrNotFound.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	defer r.lock()()
	for i, c := range *r.data {
		if c.ID == id {
			*r.data = append((*r.data)[:i], (*r.data)[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ClientRepo) sorted(keep func(*entity.Client) bool) []*entity.Client {
	out := make([]*entity.Client, 0, len(*r.data))
	for _, c := range *r.data {
		if keep(c) {
			out = append(out, clone(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ClientName < out[j].ClientName
	})
	return out
}

// TxRunner ejecuta fn sobre una copia del almacén y la publica solo si fn no falla.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el runner sobre s.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{store: s}
}

// Run ejecuta fn con un repositorio ligado a la transacción.
func (t *TxRunner) Run(ctx context.Context, fn func(repo repository.ClientRepository) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	work := make([]*entity.Client, len(t.store.clients))
	copy(work, t.store.clients)
	txRepo := &ClientRepo{store: t.store, locked: true, data: &work}
	if err := fn(txRepo); err != nil {
		return err
	}
	t.store.clients = work
	return nil
}

// checkStatus equivale a clients_status_check.
func checkStatus(c *entity.Client) error {
	if !c.Status.Valid() {
		return fmt.Errorf("status %q viola clients_status_check", c.Status)
	}
	return nil
}

func clone(c *entity.Client) *entity.Client {
	cp := *c
	if c.ComplianceSettings != nil {
		cp.ComplianceSettings = make(entity.ComplianceSettings, len(c.ComplianceSettings))
		for k, v := range c.ComplianceSettings {
			cp.ComplianceSettings[k] = v
		}
	}
	return &cp
}
