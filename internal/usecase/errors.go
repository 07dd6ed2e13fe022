package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

func isNotFound(err error) bool {
	return crerr.Is(err, ErrNotFound)
}

func isInvalidInput(err error) bool {
	return crerr.Is(err, ErrInvalidInput)
}
