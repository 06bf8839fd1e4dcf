package repository

// AppStateRepository flags persistidos de la aplicación (ej: "seeded").
// Reemplaza los booleanos en memoria de inicialización: el flag sobrevive
// reinicios y vale para múltiples instancias.
type AppStateRepository interface {
	Get(key string) (string, error) // "" si no existe
	Set(key, value string) error
}
