package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <archivo|->",
		Short: "Analiza un CSV y muestra las primeras filas sin enviarlas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, args[0], root.encoding)
			if err != nil {
				return err
			}
			return csvimport.RenderPreview(cmd.OutOrStdout(), s.Preview())
		},
	}
}
