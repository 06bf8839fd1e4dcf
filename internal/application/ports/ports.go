// Package ports declara los contratos transaccionales que la capa de
// aplicación exige a la infraestructura.
package ports

import "github.com/tu-usuario/resto-caja/internal/domain/repository"

// TxRepos repositorios ligados a una misma transacción de base de datos.
type TxRepos struct {
	Products     repository.ProductRepository
	Orders       repository.OrderRepository
	Transactions repository.TransactionRepository
	Customers    repository.CustomerRepository
	Reservations repository.ReservationRepository
	AppState     repository.AppStateRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si devuelve nil,
// rollback en caso de error. Checkout, pago, reset e importación mutan
// varias colecciones y necesitan atomicidad entre ellas.
type TxRunner interface {
	Run(fn func(r TxRepos) error) error
}
