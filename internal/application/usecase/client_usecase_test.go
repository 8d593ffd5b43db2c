package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase() (*usecase.ClientUseCase, *memory.ClientRepo) {
	store := memory.NewStore()
	repo := memory.NewClientRepository(store)
	return usecase.NewClientUseCase(repo, memory.NewTxRunner(store)), repo
}

func req(name, email string) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		ClientName:    name,
		Industry:      "Technology",
		Location:      "San Francisco",
		ContactPerson: "John Doe",
		ContactEmail:  email,
		ContactPhone:  "+1-555-1234",
	}
}

func statusPtr(s entity.ClientStatus) *entity.ClientStatus { return &s }

func strPtr(s string) *string { return &s }

// countingTx cuenta las transacciones abiertas y delega en el runner real.
type countingTx struct {
	inner usecase.ClientTxRunner
	calls int
}

func (c *countingTx) Run(ctx context.Context, fn func(repo repository.ClientRepository) error) error {
	c.calls++
	return c.inner.Run(ctx, fn)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBatch
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBatch_VacioRetornaInvalidPayload(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.CreateBatch(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Equal(t, usecase.MsgEmptyPayload, err.Error())
}

func TestCreateBatch_UnoUsaCreateSinTransaccion(t *testing.T) {
	store := memory.NewStore()
	tx := &countingTx{inner: memory.NewTxRunner(store)}
	uc := usecase.NewClientUseCase(memory.NewClientRepository(store), tx)

	out, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{req("Acme", "a@acme.com")})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, tx.calls)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, entity.ClientStatusActive, out[0].Status, "status por defecto")
	assert.Equal(t, entity.ComplianceSettings{}, out[0].ComplianceSettings)
	assert.False(t, out[0].CreatedAt.IsZero())
}

func TestCreateBatch_VariosUsaUnaTransaccion(t *testing.T) {
	store := memory.NewStore()
	tx := &countingTx{inner: memory.NewTxRunner(store)}
	repo := memory.NewClientRepository(store)
	uc := usecase.NewClientUseCase(repo, tx)

	in := []dto.CreateClientRequest{req("Acme", "a@acme.com"), req("Globex", "g@globex.com"), req("Initech", "i@initech.com")}
	in[1].Status = statusPtr(entity.ClientStatusInactive)

	out, err := uc.CreateBatch(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	require.Len(t, out, 3)
	assert.Equal(t, entity.ClientStatusInactive, out[1].Status)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateBatch_DuplicadoFallaElLoteCompleto(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	_, err := uc.CreateBatch(ctx, []dto.CreateClientRequest{req("Acme", "a@acme.com")})
	require.NoError(t, err)

	_, err = uc.CreateBatch(ctx, []dto.CreateClientRequest{
		req("Globex", "g@globex.com"),
		req("Acme", "otro@acme.com"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgDuplicateClient, err.Error())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "ninguna fila del lote fallido debe persistir")
}

func TestCreateBatch_DuplicadoDentroDelMismoLote(t *testing.T) {
	uc, repo := newUseCase()
	_, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{
		req("Acme", "a@acme.com"),
		req("Acme 2", "a@acme.com"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}

func TestCreateBatch_ValidacionIndicaFilaYCampo(t *testing.T) {
	uc, _ := newUseCase()
	bad := req("Globex", "no-es-email")
	_, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{req("Acme", "a@acme.com"), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "row 2: contact_email must be a valid email", err.Error())
}

func TestCreateBatch_CamposObligatorios(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{{ContactEmail: "a@acme.com"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "client_name is required")
	assert.Contains(t, err.Error(), "contact_person is required")
	assert.Contains(t, err.Error(), "contact_phone is required")
}

func TestCreateBatch_StatusFueraDelEnumerado(t *testing.T) {
	uc, _ := newUseCase()
	in := req("Acme", "a@acme.com")
	in.Status = statusPtr("archived")
	_, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{in})
	require.Error(t, err)
	assert.Equal(t, "status must be one of: active, inactive", err.Error())
}

func TestCreateBatch_ComplianceConValorNoSoportado(t *testing.T) {
	uc, _ := newUseCase()
	in := req("Acme", "a@acme.com")
	in.ComplianceSettings = entity.ComplianceSettings{"gdpr": []string{"x"}}
	_, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{in})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura, búsqueda, actualización y borrado
// ──────────────────────────────────────────────────────────────────────────────

func seed(t *testing.T, uc *usecase.ClientUseCase) []*dto.ClientResponse {
	t.Helper()
	a := req("Acme Corp", "a@acme.com")
	b := req("Globex", "g@globex.com")
	b.Industry = "Energy"
	b.Location = "Springfield"
	out, err := uc.CreateBatch(context.Background(), []dto.CreateClientRequest{a, b})
	require.NoError(t, err)
	return out
}

func TestSearch_SinDistinguirMayusculas(t *testing.T) {
	uc, _ := newUseCase()
	seed(t, uc)

	out, err := uc.Search(context.Background(), "ACME")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Acme Corp", out[0].ClientName)

	out, err = uc.Search(context.Background(), "spring")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Globex", out[0].ClientName)
}

func TestSearch_SinResultadosRetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()
	seed(t, uc)

	_, err := uc.Search(context.Background(), "zzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgNoClientsFound, err.Error())
}

func TestGetByID_NoExisteOIDInvalido(t *testing.T) {
	uc, _ := newUseCase()
	for _, id := range []string{"00000000-0000-0000-0000-000000000099", "no-uuid"} {
		_, err := uc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
	}
}

func TestUpdate_SoloCambiaCamposPresentes(t *testing.T) {
	uc, _ := newUseCase()
	created := seed(t, uc)[0]

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateClientRequest{
		Location: strPtr("Boston"),
		ComplianceSettings: &entity.ComplianceSettings{
			"gdpr":        true,
			"retention":   decimal.RequireFromString("30.50"),
			"data_region": "eu-west",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Boston", out.Location)
	assert.Equal(t, created.ClientName, out.ClientName)
	assert.Equal(t, created.ContactEmail, out.ContactEmail)
	assert.Equal(t, created.Status, out.Status)
	assert.Len(t, out.ComplianceSettings, 3)
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt))

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boston", got.Location)
}

func TestUpdate_EmailInvalidoNoPersiste(t *testing.T) {
	uc, _ := newUseCase()
	created := seed(t, uc)[0]

	_, err := uc.Update(context.Background(), created.ID, dto.UpdateClientRequest{ContactEmail: strPtr("roto")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ContactEmail, got.ContactEmail)
}

func TestUpdate_NombreDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	list := seed(t, uc)

	_, err := uc.Update(context.Background(), list[1].ID, dto.UpdateClientRequest{ClientName: strPtr(list[0].ClientName)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, usecase.MsgDuplicateClient, err.Error())
}

func TestUpdate_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Update(context.Background(), "00000000-0000-0000-0000-000000000099", dto.UpdateClientRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RetornaRegistroBorrado(t *testing.T) {
	uc, _ := newUseCase()
	created := seed(t, uc)[0]

	out, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrdenDeCreacion(t *testing.T) {
	uc, _ := newUseCase()
	seed(t, uc)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Acme Corp", out[0].ClientName)
	assert.Equal(t, "Globex", out[1].ClientName)
}
