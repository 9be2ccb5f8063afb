package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// DateTimeRange es un objeto de valor para acotar consultas por fecha de
// creación. El invariante Since < Till se verifica en la construcción.
type DateTimeRange struct {
	Since time.Time
	Till  time.Time
}

// NewDateTimeRange construye el rango validando que el inicio preceda al fin.
func NewDateTimeRange(since, till time.Time) (DateTimeRange, error) {
	if !since.Before(till) {
		return DateTimeRange{}, domain.ErrInvalidDateRange
	}
	return DateTimeRange{Since: since, Till: till}, nil
}

// SinceUnix devuelve la cota inferior como epoch en segundos (para la consulta).
func (r DateTimeRange) SinceUnix() int64 { return r.Since.Unix() }

// TillUnix devuelve la cota superior como epoch en segundos (para la consulta).
func (r DateTimeRange) TillUnix() int64 { return r.Till.Unix() }

// Duration devuelve la longitud del rango.
func (r DateTimeRange) Duration() time.Duration { return r.Till.Sub(r.Since) }

func (r DateTimeRange) String() string {
	return fmt.Sprintf("DateTimeRange(Since=%s,Till=%s)", r.Since.Format(time.RFC3339), r.Till.Format(time.RFC3339))
}
