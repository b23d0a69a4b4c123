package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// lockClause agrega FOR UPDATE a las lecturas de una sola fila hechas dentro de una tx,
// para que el read-modify-write del stock no pierda actualizaciones concurrentes.
func lockClause(forUpdate bool) string {
	if forUpdate {
		return " FOR UPDATE"
	}
	return ""
}

// isUUID evita enviar a columnas UUID identificadores mal formados, que PostgreSQL
// rechazaría con un error de sintaxis en vez de "no encontrado".
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
