// seed carga un CSV de clientes directamente en PostgreSQL, sin pasar por la API HTTP.
// Aplica el esquema embebido antes de insertar y usa el mismo caso de uso que POST /api/clients,
// así que el lote es atómico y respeta las mismas validaciones.
//
// Uso: go run ./cmd/seed [ruta/clients.csv] [codificación]
// Por defecto busca clients.csv en el directorio actual y lo lee como UTF-8.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
)

func main() {
	csvPath := "clients.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	encoding := ""
	if len(os.Args) > 2 {
		encoding = os.Args[2]
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	content, err := csvimport.Decode(data, encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := csvimport.Parse(content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analizar CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Println("El CSV no tiene filas; nada que insertar.")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if err := postgres.ApplyMigrations(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "Esquema: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := usecase.NewClientUseCase(postgres.NewClientRepository(pool), postgres.NewTxRunner(pool))
	in := make([]dto.CreateClientRequest, 0, len(rows))
	for _, r := range rows {
		in = append(in, r.Request())
	}
	created, err := uc.CreateBatch(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Insertar clientes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Insertados %d clientes desde %s\n", len(created), csvPath)
}
