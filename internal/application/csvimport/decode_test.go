package csvimport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

func TestDecode_UTF8ConBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(header+"\nCafé,José,j@a.com,555,Food,Bogotá")...)
	out, err := csvimport.Decode(data, "")
	require.NoError(t, err)

	rows, err := csvimport.Parse(out)
	require.NoError(t, err, "el BOM no debe romper la primera columna")
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0].ClientName)
}

func TestDecode_Latin1(t *testing.T) {
	// "Bogotá" en ISO-8859-1: á = 0xE1
	data := []byte("Bogot\xe1")
	_, err := csvimport.Decode(data, "utf8")
	assert.Error(t, err, "latin1 no es UTF-8 válido")

	out, err := csvimport.Decode(data, "latin1")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", out)

	out, err = csvimport.Decode(data, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", out)
}

func TestDecode_Windows1252(t *testing.T) {
	// 0x80 es el euro en windows-1252
	out, err := csvimport.Decode([]byte("\x80 100"), "windows1252")
	require.NoError(t, err)
	assert.Equal(t, "€ 100", out)
}

func TestDecode_CodificacionDesconocida(t *testing.T) {
	_, err := csvimport.Decode([]byte("x"), "ebcdic")
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	assert.Equal(t,
		"client_name,contact_person,contact_email,contact_phone,industry,location,status\n"+
			"Acme Inc,John Doe,john@acme.com,+1-555-1234,Technology,San Francisco,active\n",
		csvimport.Template())
}
