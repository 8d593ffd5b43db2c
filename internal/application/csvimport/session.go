package csvimport

// Session estado de una importación en curso: texto actual, vista previa y error.
// Cada cambio de contenido vuelve a analizar el texto completo.
type Session struct {
	content string
	preview []Row
	err     error
}

// NewSession crea una sesión vacía.
func NewSession() *Session {
	return &Session{preview: []Row{}}
}

// SetContent reemplaza el texto y recalcula vista previa y error.
func (s *Session) SetContent(content string) {
	s.content = content
	rows, err := Parse(content)
	s.preview = rows
	s.err = err
}

// Fail registra un error ajeno al análisis (lectura de archivo, envío fallido).
// La vista previa se conserva pero el envío queda bloqueado hasta el próximo SetContent.
func (s *Session) Fail(err error) {
	s.err = err
}

// Reset descarta texto, vista previa y error.
func (s *Session) Reset() {
	s.content = ""
	s.preview = []Row{}
	s.err = nil
}

// Content texto actual.
func (s *Session) Content() string { return s.content }

// Preview filas candidatas actuales.
func (s *Session) Preview() []Row { return s.preview }

// Err error actual, nil si no hay.
func (s *Session) Err() error { return s.err }

// CanSubmit solo con vista previa no vacía y sin error.
func (s *Session) CanSubmit() bool {
	return len(s.preview) > 0 && s.err == nil
}
