package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Save es solo-inserción: persistir un id ya existente es una violación de
// integridad del almacenamiento; el llamador debe verificar Exists antes.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Exists(ctx context.Context, id entity.UserID) (bool, error)
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
}
