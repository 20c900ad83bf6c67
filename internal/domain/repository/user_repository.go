package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// List ordenado por fecha de creación descendente.
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
