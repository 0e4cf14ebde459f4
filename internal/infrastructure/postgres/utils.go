package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/labstock-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// wrapStoreErr marca un fallo del almacenamiento como domain.ErrStoreUnavailable
// conservando la operación y la causa original en el mensaje. El core no
// reintenta: la política de reintentos pertenece al colaborador de persistencia.
func wrapStoreErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
