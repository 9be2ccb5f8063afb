// Package jsonl decodifica datasets JSON-lines: un objeto JSON por línea.
package jsonl

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// maxLineBytes acota el tamaño de una línea; los registros con muchos productos
// superan el búfer por defecto de bufio.Scanner.
const maxLineBytes = 1 << 20

// Reader recorre un dataset JSON-lines en una sola pasada, sin reinicio.
// Cada Read devuelve el siguiente registro validado o el error que aborta el
// lote: *domain.ParsingError si la línea no es JSON, *domain.MissingFieldError
// si falta un campo obligatorio, io.EOF al agotar la fuente.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader construye el lector sobre cualquier fuente de texto UTF-8.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{scanner: scanner}
}

// Read devuelve el siguiente registro del dataset. Las líneas en blanco se
// ignoran; cualquier otra línea debe ser un objeto JSON completo.
func (r *Reader) Read() (*dto.OrderRecord, error) {
	for r.scanner.Scan() {
		r.line++
		raw := r.scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		var record dto.OrderRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, &domain.ParsingError{Line: r.line, Raw: raw, Err: err}
		}
		if err := record.Validate(r.line); err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Line devuelve el número de la última línea leída (base 1).
func (r *Reader) Line() int { return r.line }
