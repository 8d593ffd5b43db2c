package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/infrastructure/apiclient"
	"github.com/jhoicas/clientes-api/pkg/config"
)

const (
	exitOK         = 0
	exitValidation = 2
	exitAPI        = 3
	exitNotFound   = 4
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return 1
}

type rootOptions struct {
	baseURL  string
	token    string
	encoding string
}

// client construye el cliente HTTP. Sin --base-url usa CLIENTCTL_BASE_URL.
func (o *rootOptions) client() *apiclient.Client {
	base := strings.TrimSpace(o.baseURL)
	if base == "" {
		base = "http://localhost:5001"
		if cfg, err := config.Load(); err == nil {
			base = cfg.Client.BaseURL
		}
	}
	var opts []apiclient.Option
	if o.token != "" {
		opts = append(opts, apiclient.WithToken(o.token))
	}
	return apiclient.New(base, opts...)
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "clientctl",
		Short:         "Importación masiva y consulta de clientes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "URL base de la API (por defecto CLIENTCTL_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "Token Bearer si la API tiene AUTH_ENABLED")
	cmd.PersistentFlags().StringVar(&opts.encoding, "encoding", "utf8", "Codificación del CSV: utf8, latin1, windows1252")

	cmd.AddCommand(newPreviewCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newTemplateCmd(opts))
	cmd.AddCommand(newTokenCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}
}
