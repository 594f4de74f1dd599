package http

import (
	"errors"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/user"
	pkgErrors "usernotes-srv/pkg/errors"
)

var (
	errMissingAction = pkgErrors.NewHTTPError(
		400, "No action selected",
	)
	errNoUsersLoaded = pkgErrors.NewHTTPError(
		400, "No user records loaded",
	)
	errTextSearchEmpty = pkgErrors.NewHTTPError(
		400, "Text search is selected but empty",
	)
	errDateRangeIncomplete = pkgErrors.NewHTTPError(
		400, "Date range needs both start and end dates",
	)
	errNoSearchSelection = pkgErrors.NewHTTPError(
		400, "No search criteria selected",
	)
	errCreatorSelectionEmpty = pkgErrors.NewHTTPError(
		400, "Creator search is selected but no creator is chosen",
	)
	errNoModificationSelection = pkgErrors.NewHTTPError(
		400, "Modify action needs at least one concrete modification",
	)
	errUnknownParameter = pkgErrors.NewHTTPError(
		400, "Unknown parameter id",
	)
	errInvalidAction = pkgErrors.NewHTTPError(
		400, "Action must be modify or delete",
	)
	errUnknownNoteType = pkgErrors.NewHTTPError(
		400, "Requested note type is not in the catalog",
	)
	errRunNotFound = pkgErrors.NewHTTPError(
		404, "Job run not found",
	)
	errSetNotFound = pkgErrors.NewHTTPError(
		404, "Set not found",
	)
	errNotUserSet = pkgErrors.NewHTTPError(
		400, "Set does not contain user records",
	)
	errSetIDRequired = pkgErrors.NewHTTPError(
		400, "Set id is required",
	)
	errNoUserIDs = pkgErrors.NewHTTPError(
		400, "At least one user id is required",
	)
	errCatalogueFetch = pkgErrors.NewHTTPError(
		502, "Failed to reach the library platform",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, job.ErrMissingAction):
		return errMissingAction
	case errors.Is(err, job.ErrNoUsersLoaded):
		return errNoUsersLoaded
	case errors.Is(err, job.ErrTextSearchEmpty):
		return errTextSearchEmpty
	case errors.Is(err, job.ErrDateRangeIncomplete):
		return errDateRangeIncomplete
	case errors.Is(err, job.ErrNoSearchSelection):
		return errNoSearchSelection
	case errors.Is(err, job.ErrCreatorSelectionEmpty):
		return errCreatorSelectionEmpty
	case errors.Is(err, job.ErrNoModificationSelection):
		return errNoModificationSelection
	case errors.Is(err, job.ErrUnknownParameter):
		return errUnknownParameter
	case errors.Is(err, job.ErrInvalidAction):
		return errInvalidAction
	case errors.Is(err, job.ErrUnknownNoteType):
		return errUnknownNoteType
	case errors.Is(err, job.ErrRunNotFound):
		return errRunNotFound
	case errors.Is(err, user.ErrSetNotFound):
		return errSetNotFound
	case errors.Is(err, user.ErrNotUserSet):
		return errNotUserSet
	case errors.Is(err, user.ErrSetIDRequired):
		return errSetIDRequired
	case errors.Is(err, user.ErrNoUserIDs):
		return errNoUserIDs
	case errors.Is(err, user.ErrCatalogueFetch):
		return errCatalogueFetch
	default:
		return err
	}
}
