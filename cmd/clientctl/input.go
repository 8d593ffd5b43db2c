package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

// loadSession lee el archivo (o stdin con "-"), lo decodifica y lo analiza.
func loadSession(cmd *cobra.Command, path, encoding string) (*csvimport.Session, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	content, err := csvimport.Decode(data, encoding)
	if err != nil {
		return nil, withCode(exitValidation, err)
	}

	s := csvimport.NewSession()
	s.SetContent(content)
	if s.Err() != nil {
		return s, withCode(exitValidation, s.Err())
	}
	return s, nil
}
