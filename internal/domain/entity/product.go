package entity

import (
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// Product representa un producto del catálogo. Price es un monto exacto en
// unidades menores (centavos): nunca un tipo de punto flotante.
type Product struct {
	ID    ProductID
	Name  string
	Price int64
}

// NewProduct construye un producto validando el identificador.
func NewProduct(id ProductID, name string, price int64) (*Product, error) {
	if id < 0 {
		return nil, domain.ErrNegativeIdentifier
	}
	return &Product{ID: id, Name: name, Price: price}, nil
}

// Identifier devuelve el identificador único del producto.
func (p *Product) Identifier() ProductID { return p.ID }

// Equal compara por identidad: mismo tipo y mismo identificador.
func (p *Product) Equal(other *Product) bool {
	return other != nil && p.ID == other.ID
}

// Hash devuelve el hash de identidad (tipo, identificador).
func (p *Product) Hash() uint64 { return identityHash("Product", int64(p.ID)) }

// String enumera los campos declarados como pares Nombre=valor, para diagnóstico.
func (p *Product) String() string {
	return fmt.Sprintf("Product(ID=%d,Name=%s,Price=%d)", p.ID, p.Name, p.Price)
}
