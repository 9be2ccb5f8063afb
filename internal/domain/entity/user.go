package entity

import (
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// User representa un cliente que realiza pedidos. Inmutable: los métodos de
// "cambio" devuelven una copia nueva que comparte el identificador.
type User struct {
	ID   UserID
	Name string
	City string
}

// NewUser construye un usuario validando el identificador.
func NewUser(id UserID, name, city string) (*User, error) {
	if id < 0 {
		return nil, domain.ErrNegativeIdentifier
	}
	return &User{ID: id, Name: name, City: city}, nil
}

// Identifier devuelve el identificador único del usuario.
func (u *User) Identifier() UserID { return u.ID }

// Equal compara por identidad: mismo tipo y mismo identificador.
// Los demás campos no participan.
func (u *User) Equal(other *User) bool {
	return other != nil && u.ID == other.ID
}

// Hash devuelve el hash de identidad (tipo, identificador).
func (u *User) Hash() uint64 { return identityHash("User", int64(u.ID)) }

// ChangeName devuelve una copia con el nombre cambiado y la misma identidad.
func (u *User) ChangeName(name string) *User {
	return &User{ID: u.ID, Name: name, City: u.City}
}

// ChangeCity devuelve una copia con la ciudad cambiada y la misma identidad.
func (u *User) ChangeCity(city string) *User {
	return &User{ID: u.ID, Name: u.Name, City: city}
}

// String enumera los campos declarados como pares Nombre=valor, para diagnóstico.
func (u *User) String() string {
	return fmt.Sprintf("User(ID=%d,Name=%s,City=%s)", u.ID, u.Name, u.City)
}
