package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (staff).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
