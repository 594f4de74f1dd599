package http

import (
	"errors"

	"usernotes-srv/internal/user"
	pkgErrors "usernotes-srv/pkg/errors"
)

var (
	errCatalogueFetch = pkgErrors.NewHTTPError(
		502, "Failed to reach the library platform",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrCatalogueFetch):
		return errCatalogueFetch
	default:
		return err
	}
}
