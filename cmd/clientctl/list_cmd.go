package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/infrastructure/apiclient"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los clientes, opcionalmente filtrados por estado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch status {
			case apiclient.StatusAll, "active", "inactive":
			default:
				return withCode(exitValidation, fmt.Errorf("--status debe ser all, active o inactive"))
			}
			list, err := root.client().List(cmd.Context())
			if err != nil {
				return withCode(exitAPI, err)
			}
			return renderClients(cmd.OutOrStdout(), apiclient.FilterByStatus(list, status))
		},
	}
	cmd.Flags().StringVar(&status, "status", apiclient.StatusAll, "Filtro: all, active, inactive")
	return cmd
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <texto>",
		Short: "Busca por nombre, industria o ubicación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := root.client().Search(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, apiclient.ErrNotFound) {
					return withCode(exitNotFound, err)
				}
				return withCode(exitAPI, err)
			}
			return renderClients(cmd.OutOrStdout(), list)
		},
	}
}

func renderClients(w io.Writer, list []dto.ClientResponse) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CLIENT", "INDUSTRY", "LOCATION", "CONTACT", "EMAIL", "STATUS")
	for _, c := range list {
		t.Row(c.ID, c.ClientName, c.Industry, c.Location, c.ContactPerson, c.ContactEmail, string(c.Status))
	}
	_, err := fmt.Fprintf(w, "%s\n%d clients\n", t.String(), len(list))
	return err
}
