package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

func newTemplateCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		remote bool
	)
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Escribe la plantilla CSV de importación",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := csvimport.Template()
			if remote {
				var err error
				if content, err = root.client().Template(cmd.Context()); err != nil {
					return withCode(exitAPI, err)
				}
			}
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plantilla escrita en %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Archivo destino (por defecto stdout; sugerido "+csvimport.TemplateFileName+")")
	cmd.Flags().BoolVar(&remote, "remote", false, "Descargar la plantilla desde la API")
	return cmd
}
