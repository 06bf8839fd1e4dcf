package dto

import "time"

// CreateReservationRequest alta de reserva de mesa.
type CreateReservationRequest struct {
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Table        string    `json:"table"`
	Date         time.Time `json:"date"`
	PartySize    int       `json:"party_size"`
	Notes        string    `json:"notes,omitempty"`
}

// UpdateReservationRequest cambio de estado o datos de la reserva.
type UpdateReservationRequest struct {
	Status string `json:"status,omitempty"` // pending | confirmed | cancelled | done
	Table  string `json:"table,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ReservationResponse reserva para la API.
type ReservationResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Table        string    `json:"table"`
	Date         time.Time `json:"date"`
	PartySize    int       `json:"party_size"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
