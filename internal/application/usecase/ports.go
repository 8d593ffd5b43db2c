package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ClientTxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
// Si fn devuelve error no se persiste ningún cambio.
type ClientTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ClientRepository) error) error
}
