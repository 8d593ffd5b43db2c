package csvimport

import "strings"

// TemplateFileName nombre sugerido para la descarga de la plantilla.
const TemplateFileName = "client-upload-template.csv"

const templateSample = "Acme Inc,John Doe,john@acme.com,+1-555-1234,Technology,San Francisco,active"

// Template devuelve una plantilla CSV con las columnas que exige Parse más status.
func Template() string {
	header := strings.Join(append(append([]string{}, RequiredColumns...), ColStatus), ",")
	return header + "\n" + templateSample + "\n"
}
