package csvimport_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/csvimport"
)

func rowsN(n int) []csvimport.Row {
	out := make([]csvimport.Row, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, csvimport.Row{
			ClientName:    fmt.Sprintf("Client %02d", i),
			ContactPerson: "John",
			ContactEmail:  fmt.Sprintf("c%02d@x.com", i),
			ContactPhone:  "555",
		})
	}
	return out
}

func TestPreviewRows(t *testing.T) {
	shown, remaining := csvimport.PreviewRows(rowsN(3))
	assert.Len(t, shown, 3)
	assert.Equal(t, 0, remaining)

	shown, remaining = csvimport.PreviewRows(rowsN(12))
	assert.Len(t, shown, csvimport.PreviewLimit)
	assert.Equal(t, 7, remaining)
}

func TestRenderPreview_MasDeCinco(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvimport.RenderPreview(&buf, rowsN(7)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Preview (7 clients)\n"))
	assert.Contains(t, out, "CONTACT PERSON")
	assert.Contains(t, out, "Client 05")
	assert.NotContains(t, out, "Client 06")
	assert.Contains(t, out, "Showing 5 of 7 clients")
}

func TestRenderPreview_PocasFilasSinResumen(t *testing.T) {
	rows := rowsN(2)
	rows[0].Status = status("inactive")

	var buf bytes.Buffer
	require.NoError(t, csvimport.RenderPreview(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "Preview (2 clients)")
	assert.Contains(t, out, "inactive")
	assert.NotContains(t, out, "Showing")
}
