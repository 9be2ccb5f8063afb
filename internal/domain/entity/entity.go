package entity

import (
	"encoding/binary"
	"hash/fnv"
)

// Identificadores de los agregados. Son enteros no negativos provistos por el
// dataset de origen, no UUIDs generados: la identidad viene del mundo exterior.
type (
	UserID    int64
	ProductID int64
	OrderID   int64
)

// Entity es el contrato de identidad común a todos los agregados: dos entidades
// del mismo tipo concreto son iguales si y solo si sus identificadores coinciden,
// sin importar el resto de sus campos. Cada agregado lo implementa directamente
// (sin estado compartido heredado) y expone además Equal, Hash y String.
type Entity[ID comparable] interface {
	Identifier() ID
}

// identityHash calcula un hash estable a partir de (tipo, identificador).
// La ley de identidad exige que entidades iguales tengan el mismo hash.
func identityHash(kind string, id int64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(kind))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}
