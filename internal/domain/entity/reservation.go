package entity

import "time"

// ReservationStatus estado de una reserva de mesa.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationDone      ReservationStatus = "done"
)

// Reservation reserva de mesa. Fuera del cálculo financiero; se limpia en el
// reset junto con pedidos y transacciones.
type Reservation struct {
	ID           string
	CustomerName string
	Phone        string
	Table        string
	Date         time.Time
	PartySize    int
	Status       ReservationStatus
	Notes        string
	CreatedAt    time.Time
}
