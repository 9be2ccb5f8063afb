package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// OrderLine es un objeto de valor: la pareja (producto, cantidad) dentro de un
// pedido. Se compara por valor, no tiene identidad propia.
type OrderLine struct {
	ProductID ProductID
	Quantity  int64
}

// NewOrderLine construye una línea validando que la cantidad sea positiva.
func NewOrderLine(productID ProductID, quantity int64) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, domain.ErrNonPositiveQuantity
	}
	return OrderLine{ProductID: productID, Quantity: quantity}, nil
}

// Order representa un pedido: 1 usuario y 1..N líneas, deduplicadas por
// producto. La igualdad y el hash dependen solo del identificador, nunca de las
// líneas, el usuario ni la fecha: es la ley de identidad del agregado.
type Order struct {
	ID      OrderID
	UserID  UserID
	Created int64 // epoch en segundos
	Lines   []OrderLine
}

// NewOrder es la fábrica segura del agregado: valida el identificador y cada
// línea, colapsa líneas repetidas del mismo producto sumando cantidades y deja
// las líneas ordenadas por producto. Devuelve un valor de error de dominio,
// nunca entra en pánico.
func NewOrder(id OrderID, userID UserID, created int64, lines []OrderLine) (*Order, error) {
	if id < 0 {
		return nil, domain.ErrNegativeIdentifier
	}
	byProduct := make(map[ProductID]int64, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrNonPositiveQuantity
		}
		byProduct[line.ProductID] += line.Quantity
	}
	collapsed := make([]OrderLine, 0, len(byProduct))
	for productID, quantity := range byProduct {
		collapsed = append(collapsed, OrderLine{ProductID: productID, Quantity: quantity})
	}
	sort.Slice(collapsed, func(i, j int) bool { return collapsed[i].ProductID < collapsed[j].ProductID })
	return &Order{ID: id, UserID: userID, Created: created, Lines: collapsed}, nil
}

// NewOrderAt es NewOrder aceptando una fecha de calendario en lugar del epoch crudo.
func NewOrderAt(id OrderID, userID UserID, created time.Time, lines []OrderLine) (*Order, error) {
	return NewOrder(id, userID, created.Unix(), lines)
}

// Identifier devuelve el identificador único del pedido.
func (o *Order) Identifier() OrderID { return o.ID }

// Equal compara por identidad: dos pedidos con el mismo identificador son el
// mismo pedido aunque difieran en líneas, usuario o fecha.
func (o *Order) Equal(other *Order) bool {
	return other != nil && o.ID == other.ID
}

// Hash devuelve el hash de identidad (tipo, identificador).
func (o *Order) Hash() uint64 { return identityHash("Order", int64(o.ID)) }

// CreatedTime devuelve la fecha de creación como time.Time en UTC.
func (o *Order) CreatedTime() time.Time { return time.Unix(o.Created, 0).UTC() }

// String enumera los campos declarados como pares Nombre=valor, para diagnóstico.
func (o *Order) String() string {
	lines := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = fmt.Sprintf("(%d,%d)", l.ProductID, l.Quantity)
	}
	return fmt.Sprintf("Order(ID=%d,UserID=%d,Created=%d,Lines=[%s])",
		o.ID, o.UserID, o.Created, strings.Join(lines, ","))
}
