package storage

import (
	"errors"
	"fmt"

	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrAlreadyExists error = fmt.Errorf("collection %w", app.ErrAlreadyExists)
var ErrNotExist error = fmt.Errorf("feature or collection %w", app.ErrNotFound)
var ErrPersistence error = fmt.Errorf("storage: %w", app.ErrPersistence)

const (
	uniqueViolation     string = "23505"
	foreignKeyViolation string = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify maps driver errors onto the storage sentinels. Anything that is
// not a missing row or a constraint violation is a persistence failure.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotExist
	}

	switch pgErrorCode(err) {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, err.Error())
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", ErrNotExist, err.Error())
	}

	return fmt.Errorf("%w: %s", ErrPersistence, err.Error())
}
