// Package apiclient es el cliente HTTP de la API de clientes que usa clientctl:
// envío de lotes importados, recarga del listado y búsqueda.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var (
	// ErrNothingToSubmit el lote está vacío; no se hace ninguna petición.
	ErrNothingToSubmit = errors.New("no hay clientes para enviar")
	// ErrUploadFailed la API respondió con un status no exitoso al importar.
	ErrUploadFailed = errors.New("Failed to upload clients")
	// ErrNotFound la API respondió 404.
	ErrNotFound = errors.New("no se encontraron clientes")
)

// StatusAll valor de filtro que no restringe el listado.
const StatusAll = "all"

// APIError error devuelto por la API con el cuerpo {title, message, stackTrace}.
type APIError struct {
	StatusCode int
	Body       dto.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Body.Title, e.Body.Message)
	}
	return fmt.Sprintf("status HTTP %d", e.StatusCode)
}

// SubmitResult respuesta de un envío exitoso.
type SubmitResult struct {
	Message string
	Created []dto.ClientResponse
}

// Client adaptador HTTP de /api/clients.
// Usa net/http de la librería estándar, igual que el resto de adaptadores salientes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithToken añade Authorization: Bearer a cada petición (API con AUTH_ENABLED).
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient reemplaza el *http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New construye el cliente contra baseURL (ej. http://localhost:5001).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit envía las filas como un único arreglo JSON a POST /api/clients.
// Cualquier status no 2xx se informa como ErrUploadFailed (envuelve el APIError).
func (c *Client) Submit(ctx context.Context, rows []csvimport.Row) (*SubmitResult, error) {
	if len(rows) == 0 {
		return nil, ErrNothingToSubmit
	}
	body, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("serializar clientes: %w", err)
	}

	var raw struct {
		Message        string          `json:"message"`
		CreatedClients json.RawMessage `json:"createdClients"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/clients", body, &raw); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %w", ErrUploadFailed, apiErr)
		}
		return nil, err
	}

	created, err := decodeCreated(raw.CreatedClients)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Message: raw.Message, Created: created}, nil
}

// List descarga el listado completo (GET /api/clients).
func (c *Client) List(ctx context.Context) ([]dto.ClientResponse, error) {
	var out []dto.ClientResponse
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search consulta GET /api/clients/temp/:search. 404 -> ErrNotFound.
func (c *Client) Search(ctx context.Context, query string) ([]dto.ClientResponse, error) {
	var out []dto.ClientResponse
	err := c.do(ctx, http.MethodGet, "/api/clients/temp/"+url.PathEscape(query), nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, apiErr)
		}
		return nil, err
	}
	return out, nil
}

// Template descarga la plantilla CSV de importación.
func (c *Client) Template(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := c.do(ctx, http.MethodGet, "/api/clients/template", nil, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FilterByStatus aplica en el consumidor el filtro de estado: "all" o vacío no filtra.
func FilterByStatus(list []dto.ClientResponse, status string) []dto.ClientResponse {
	if status == "" || status == StatusAll {
		return list
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		if c.Status == entity.ClientStatus(status) {
			out = append(out, c)
		}
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, &apiErr.Body)
		return apiErr
	}
	if buf, ok := out.(*bytes.Buffer); ok {
		buf.Write(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// decodeCreated acepta createdClients como objeto (alta individual) o arreglo (lote).
func decodeCreated(raw json.RawMessage) ([]dto.ClientResponse, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []dto.ClientResponse
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decodificar createdClients: %w", err)
		}
		return list, nil
	}
	var one dto.ClientResponse
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("decodificar createdClients: %w", err)
	}
	return []dto.ClientResponse{one}, nil
}
