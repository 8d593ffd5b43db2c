package csvimport

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PreviewLimit filas que se muestran antes de confirmar la importación.
const PreviewLimit = 5

// PreviewRows devuelve las filas visibles y cuántas quedan ocultas.
func PreviewRows(rows []Row) (shown []Row, remaining int) {
	n := min(len(rows), PreviewLimit)
	return rows[:n], len(rows) - n
}

// RenderPreview escribe la tabla de vista previa (cliente, contacto, email, teléfono, estado).
func RenderPreview(w io.Writer, rows []Row) error {
	shown, remaining := PreviewRows(rows)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CLIENT", "CONTACT PERSON", "EMAIL", "PHONE", "STATUS")
	for _, r := range shown {
		status := ""
		if r.Status != nil {
			status = string(*r.Status)
		}
		t.Row(r.ClientName, r.ContactPerson, r.ContactEmail, r.ContactPhone, status)
	}

	if _, err := fmt.Fprintf(w, "Preview (%d clients)\n%s\n", len(rows), t.String()); err != nil {
		return err
	}
	if remaining > 0 {
		if _, err := fmt.Fprintf(w, "Showing %d of %d clients\n", len(shown), len(rows)); err != nil {
			return err
		}
	}
	return nil
}
