package repository

import "github.com/jhoicas/labstock-api/internal/domain/entity"

// ComponentFilter filtros de listado del catálogo.
type ComponentFilter struct {
	Query    string // texto libre contra nombre, part number, categoría y ubicación
	Category string // igualdad exacta de categoría; vacío = todas
}

// ComponentRepository define el puerto de persistencia para Component (DIP).
//
// La cantidad y las fechas de último movimiento solo se escriben por
// UpdateStock, desde la transacción del motor de movimientos; Update cubre
// únicamente los campos descriptivos del camino de catálogo.
type ComponentRepository interface {
	Create(c *entity.Component) error
	GetByID(id string) (*entity.Component, error)
	// GetForUpdate obtiene el componente bloqueando su fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Component, error)
	Update(c *entity.Component) error
	// UpdateStock escribe current_quantity y fechas de último movimiento.
	UpdateStock(c *entity.Component) error
	List(filter ComponentFilter, limit, offset int) ([]*entity.Component, error)
}
