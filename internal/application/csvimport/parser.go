// Package csvimport convierte texto CSV en candidatos a cliente para la importación masiva.
//
// El formato es deliberadamente simple: una línea por registro, separador coma literal y
// sin soporte de comillas ni comas embebidas. Las columnas se localizan por nombre, así que
// el orden en la cabecera es libre.
package csvimport

import (
	"strings"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Nombres de columna reconocidos.
const (
	ColClientName    = "client_name"
	ColContactPerson = "contact_person"
	ColContactEmail  = "contact_email"
	ColContactPhone  = "contact_phone"
	ColIndustry      = "industry"
	ColLocation      = "location"
	ColStatus        = "status"
)

// RequiredColumns columnas obligatorias, en el orden en que se informan si faltan.
var RequiredColumns = []string{
	ColClientName, ColContactPerson, ColContactEmail, ColContactPhone, ColIndustry, ColLocation,
}

// Row candidato a cliente aún no persistido. Status es nil si el CSV no trae esa columna.
// Se serializa tal cual como elemento del lote de POST /api/clients.
type Row struct {
	ClientName         string                    `json:"client_name"`
	ContactPerson      string                    `json:"contact_person"`
	ContactEmail       string                    `json:"contact_email"`
	ContactPhone       string                    `json:"contact_phone"`
	Industry           string                    `json:"industry"`
	Location           string                    `json:"location"`
	Status             *entity.ClientStatus      `json:"status,omitempty"`
	ComplianceSettings entity.ComplianceSettings `json:"compliance_settings"`
}

// MissingColumnsError la cabecera no contiene todas las columnas obligatorias.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Columns, ", ")
}

// Parse convierte content en filas candidatas. Es pura: mismo texto, mismo resultado.
// Texto vacío (tras recortar) devuelve una lista vacía sin error.
func Parse(content string) ([]Row, error) {
	if strings.TrimSpace(content) == "" {
		return []Row{}, nil
	}

	lines := nonEmptyLines(content)
	headers := splitFields(strings.ToLower(lines[0]))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return []Row{}, &MissingColumnsError{Columns: missing}
	}

	statusIdx, hasStatus := index[ColStatus]
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)
		row := Row{
			ClientName:         cell(values, index[ColClientName]),
			ContactPerson:      cell(values, index[ColContactPerson]),
			ContactEmail:       cell(values, index[ColContactEmail]),
			ContactPhone:       cell(values, index[ColContactPhone]),
			Industry:           cell(values, index[ColIndustry]),
			Location:           cell(values, index[ColLocation]),
			ComplianceSettings: entity.ComplianceSettings{},
		}
		if hasStatus && statusIdx < len(values) {
			status := entity.ClientStatus(values[statusIdx])
			row.Status = &status
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func nonEmptyLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// cell devuelve "" cuando la línea tiene menos campos que la cabecera.
func cell(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// Request convierte la fila en la entrada del caso de uso de alta.
func (r Row) Request() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		ClientName:         r.ClientName,
		Industry:           r.Industry,
		Location:           r.Location,
		ContactPerson:      r.ContactPerson,
		ContactEmail:       r.ContactEmail,
		ContactPhone:       r.ContactPhone,
		Status:             r.Status,
		ComplianceSettings: r.ComplianceSettings,
	}
}
