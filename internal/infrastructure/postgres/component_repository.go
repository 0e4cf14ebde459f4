package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

const componentColumns = `id, name, part_number, manufacturer, description, category,
	initial_quantity, current_quantity, location_bin, unit_price, low_stock_threshold,
	datasheet_link, last_inward_date, last_outward_date, created_by, created_at, updated_at`

// ComponentRepo implementación de ComponentRepository sobre PostgreSQL
// (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

// Create persiste un componente nuevo con su saldo de apertura.
func (r *ComponentRepo) Create(c *entity.Component) error {
	query := `
		INSERT INTO components (` + componentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.PartNumber, c.Manufacturer, c.Description, c.Category,
		c.InitialQuantity, c.CurrentQuantity, c.LocationBin, c.UnitPrice, c.LowStockThreshold,
		c.DatasheetLink, c.LastInwardDate, c.LastOutwardDate, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapStoreErr("insert component", err)
	}
	return nil
}

// GetByID obtiene un componente por ID. Devuelve (nil, nil) si no existe.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component")
}

// GetForUpdate obtiene el componente bloqueando su fila (SELECT FOR UPDATE).
// Serializa los movimientos concurrentes sobre el mismo componente.
func (r *ComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component for update")
}

// Update actualiza los campos descriptivos, el precio y el umbral.
// No toca current_quantity ni las fechas de movimiento.
func (r *ComponentRepo) Update(c *entity.Component) error {
	query := `
		UPDATE components
		SET name = $2, part_number = $3, manufacturer = $4, description = $5,
		    category = $6, location_bin = $7, unit_price = $8,
		    low_stock_threshold = $9, datasheet_link = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.PartNumber, c.Manufacturer, c.Description,
		c.Category, c.LocationBin, c.UnitPrice,
		c.LowStockThreshold, c.DatasheetLink, c.UpdatedAt,
	)
	if err != nil {
		return wrapStoreErr("update component", err)
	}
	return nil
}

// UpdateStock escribe la cantidad cacheada y las fechas de último movimiento.
// Solo lo invoca el motor de stock dentro de su transacción.
func (r *ComponentRepo) UpdateStock(c *entity.Component) error {
	query := `
		UPDATE components
		SET current_quantity = $2, last_inward_date = $3, last_outward_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CurrentQuantity, c.LastInwardDate, c.LastOutwardDate, c.UpdatedAt,
	)
	if err != nil {
		return wrapStoreErr("update component stock", err)
	}
	return nil
}

// List lista componentes ordenados por nombre, con filtro de texto libre
// (nombre, part number, categoría o ubicación) y de categoría.
func (r *ComponentRepo) List(filter repository.ComponentFilter, limit, offset int) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components`
	args := []any{}
	where := ""
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where = ` WHERE (name ILIKE $1 OR part_number ILIKE $1 OR category ILIKE $1 OR location_bin ILIKE $1)`
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		if where == "" {
			where = fmt.Sprintf(` WHERE category = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND category = $%d`, len(args))
		}
	}
	args = append(args, limit, offset)
	query += where + fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, wrapStoreErr("list components", err)
	}
	defer rows.Close()

	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, wrapStoreErr("scan component", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("list components", err)
	}
	return list, nil
}

func (r *ComponentRepo) scanOne(row pgx.Row, op string) (*entity.Component, error) {
	c, err := scanComponent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr(op, err)
	}
	return c, nil
}

func scanComponent(row pgx.Row) (*entity.Component, error) {
	var c entity.Component
	err := row.Scan(
		&c.ID, &c.Name, &c.PartNumber, &c.Manufacturer, &c.Description, &c.Category,
		&c.InitialQuantity, &c.CurrentQuantity, &c.LocationBin, &c.UnitPrice, &c.LowStockThreshold,
		&c.DatasheetLink, &c.LastInwardDate, &c.LastOutwardDate, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
