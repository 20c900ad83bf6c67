package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	// List ordenado por nombre ascendente.
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id int64) error
}
