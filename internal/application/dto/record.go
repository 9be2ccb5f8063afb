package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// Timestamp acepta los dos formatos de `created` presentes en los datasets:
// un número epoch en segundos (con fracción opcional) o una fecha de calendario
// como texto. Internamente siempre se reduce a epoch en segundos enteros.
type Timestamp int64

// Formatos de fecha textual aceptados, en orden de prueba.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodifica epoch numérico o fecha textual.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				*t = Timestamp(parsed.Unix())
				return nil
			}
		}
		return fmt.Errorf("fecha no reconocida: %q", s)
	}
	// Epoch numérico; el dataset de referencia trae fracciones de segundo.
	seconds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("epoch inválido: %q", string(data))
	}
	*t = Timestamp(int64(seconds))
	return nil
}

// Unix devuelve el epoch en segundos.
func (t Timestamp) Unix() int64 { return int64(t) }

// UserRecord es el usuario embebido en un registro del dataset.
// Los campos son punteros para poder distinguir "ausente" de "valor cero".
type UserRecord struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

// ProductRecord es un producto embebido en un registro del dataset. Un mismo
// producto puede repetirse dentro del registro: cada aparición cuenta una unidad.
type ProductRecord struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// OrderRecord es un registro decodificado del dataset JSON-lines:
//
//	{"id": 1, "created": 1538444639.0, "user": {...}, "products": [{...}, ...]}
type OrderRecord struct {
	ID       *int64          `json:"id"`
	Created  *Timestamp      `json:"created"`
	User     *UserRecord     `json:"user"`
	Products []ProductRecord `json:"products"`
}

// Validate verifica una sola vez, en la frontera del parser, que el registro
// traiga todos los campos obligatorios. `line` es el número de línea (base 1)
// que acompaña al error.
func (r *OrderRecord) Validate(line int) error {
	switch {
	case r.ID == nil:
		return &domain.MissingFieldError{Line: line, Field: "id"}
	case r.Created == nil:
		return &domain.MissingFieldError{Line: line, Field: "created"}
	case r.User == nil:
		return &domain.MissingFieldError{Line: line, Field: "user"}
	case r.User.ID == nil:
		return &domain.MissingFieldError{Line: line, Field: "user.id"}
	case r.User.Name == nil:
		return &domain.MissingFieldError{Line: line, Field: "user.name"}
	case r.User.City == nil:
		return &domain.MissingFieldError{Line: line, Field: "user.city"}
	case r.Products == nil:
		return &domain.MissingFieldError{Line: line, Field: "products"}
	}
	for i, p := range r.Products {
		switch {
		case p.ID == nil:
			return &domain.MissingFieldError{Line: line, Field: fmt.Sprintf("products[%d].id", i)}
		case p.Name == nil:
			return &domain.MissingFieldError{Line: line, Field: fmt.Sprintf("products[%d].name", i)}
		case p.Price == nil:
			return &domain.MissingFieldError{Line: line, Field: fmt.Sprintf("products[%d].price", i)}
		}
	}
	return nil
}
