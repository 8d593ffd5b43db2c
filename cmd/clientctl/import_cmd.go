package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
	"github.com/jhoicas/clientes-api/internal/infrastructure/apiclient"
)

type importOptions struct {
	dryRun bool
	quiet  bool
}

func newImportCmd(root *rootOptions) *cobra.Command {
	var opts importOptions
	cmd := &cobra.Command{
		Use:   "import <archivo|->",
		Short: "Envía todas las filas del CSV en un único lote a POST /api/clients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Solo mostrar la vista previa")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "No mostrar la vista previa antes de enviar")
	return cmd
}

func runImport(cmd *cobra.Command, root *rootOptions, opts importOptions, path string) error {
	out := cmd.OutOrStdout()
	s, err := loadSession(cmd, path, root.encoding)
	if err != nil {
		return err
	}
	if !opts.quiet || opts.dryRun {
		if err := csvimport.RenderPreview(out, s.Preview()); err != nil {
			return err
		}
	}
	if opts.dryRun {
		return nil
	}
	if !s.CanSubmit() {
		return withCode(exitValidation, apiclient.ErrNothingToSubmit)
	}

	api := root.client()
	res, err := api.Submit(cmd.Context(), s.Preview())
	if err != nil {
		s.Fail(err)
		if errors.Is(err, apiclient.ErrUploadFailed) {
			return withCode(exitAPI, err)
		}
		return err
	}
	fmt.Fprintf(out, "%s (%d)\n", res.Message, len(res.Created))
	s.Reset()

	list, err := api.List(cmd.Context())
	if err != nil {
		return withCode(exitAPI, fmt.Errorf("recargar listado: %w", err))
	}
	fmt.Fprintf(out, "Total de clientes: %d\n", len(list))
	return nil
}
