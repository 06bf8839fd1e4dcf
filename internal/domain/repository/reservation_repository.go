package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// ReservationRepository define el puerto de persistencia para Reservation.
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	List() ([]entity.Reservation, error)
	Update(reservation *entity.Reservation) error
	Delete(id string) error
	DeleteAll() error
}
