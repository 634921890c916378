package errors

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// mysqlDuplicateEntry is the MySQL error number for duplicate entries.
const mysqlDuplicateEntry = 1062

// ParseDBError translates database driver errors into APIErrors so handlers
// can surface duplicates and missing rows without inspecting driver types.
// Unknown errors map to ErrDatabase.
func ParseDBError(err error) *APIError {
	if err == nil {
		return nil
	}

	if apiErr := asAPIError(err); apiErr != nil {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResourceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateResource
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicateResource
	}

	// SQLite (pure Go driver) reports constraint violations by message only.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateResource
	}

	return NewAPIError(ErrDatabase, err.Error())
}

// asAPIError unwraps err to an *APIError if one is in the chain.
func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
