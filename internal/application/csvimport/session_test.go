package csvimport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

func TestSession_Ciclo(t *testing.T) {
	s := csvimport.NewSession()
	assert.False(t, s.CanSubmit(), "sesión vacía")
	assert.Empty(t, s.Preview())

	s.SetContent(header + "\nAcme,John,j@a.com,555,Tech,SF")
	assert.NoError(t, s.Err())
	assert.Len(t, s.Preview(), 1)
	assert.True(t, s.CanSubmit())

	s.SetContent("client_name\nAcme")
	assert.Error(t, s.Err())
	assert.Empty(t, s.Preview())
	assert.False(t, s.CanSubmit())

	s.SetContent("")
	assert.NoError(t, s.Err(), "vaciar el texto limpia el error")
	assert.Empty(t, s.Preview())
	assert.False(t, s.CanSubmit())
}

func TestSession_SoloCabeceraNoPermiteEnviar(t *testing.T) {
	s := csvimport.NewSession()
	s.SetContent(header)
	assert.NoError(t, s.Err())
	assert.False(t, s.CanSubmit())
}

func TestSession_FailBloqueaHastaNuevoContenido(t *testing.T) {
	s := csvimport.NewSession()
	content := header + "\nAcme,John,j@a.com,555,Tech,SF"
	s.SetContent(content)

	s.Fail(errors.New("Failed to upload clients"))
	assert.False(t, s.CanSubmit())
	assert.Len(t, s.Preview(), 1, "la vista previa se conserva")
	assert.Equal(t, content, s.Content())

	s.SetContent(content)
	assert.True(t, s.CanSubmit())
}

func TestSession_Reset(t *testing.T) {
	s := csvimport.NewSession()
	s.SetContent(header + "\nAcme,John,j@a.com,555,Tech,SF")
	s.Reset()
	assert.Equal(t, "", s.Content())
	assert.Empty(t, s.Preview())
	assert.NoError(t, s.Err())
	assert.False(t, s.CanSubmit())
}
