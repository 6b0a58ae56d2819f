package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/repository"
)

// errJSON writes the uniform error envelope every endpoint uses:
// {"error": {"code": "...", "message": "..."}}.
func errJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, echo.Map{
		"error": echo.Map{"code": code, "message": message},
	})
}

// domainError maps the repository sentinels onto HTTP responses.  Every
// handler funnels unknown errors through here so clients always see the
// envelope shape.
func domainError(c echo.Context, err error) error {
	var limitErr *repository.SelectionLimitError
	if errors.As(err, &limitErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": echo.Map{
				"code":     repository.CodeSelectionLimit,
				"message":  limitErr.Error(),
				"category": limitErr.Category,
				"limit":    limitErr.Limit,
			},
		})
	}
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return errJSON(c, http.StatusNotFound, repository.CodeSessionNotFound, "session not found")
	case errors.Is(err, repository.ErrSessionNotActive):
		return errJSON(c, http.StatusConflict, repository.CodeGalleryNotAvailable, "gallery is no longer accepting changes")
	case errors.Is(err, repository.ErrInvalidCategory):
		return errJSON(c, http.StatusBadRequest, repository.CodeInvalidCategory, "category must be album, editing or general")
	case errors.Is(err, repository.ErrPhotoNotFound):
		return errJSON(c, http.StatusNotFound, repository.CodePhotoNotFound, "photo not found")
	case errors.Is(err, repository.ErrOrderNotFound):
		return errJSON(c, http.StatusNotFound, repository.CodeOrderNotFound, "order not found")
	case errors.Is(err, repository.ErrPackageNotFound):
		return errJSON(c, http.StatusNotFound, repository.CodePackageNotFound, "package not found or inactive")
	case errors.Is(err, repository.ErrNoSelection):
		return errJSON(c, http.StatusBadRequest, repository.CodeNoPhotosSelected, "no photos selected")
	case errors.Is(err, repository.ErrAlreadyPaid):
		return errJSON(c, http.StatusConflict, repository.CodeAlreadyPaid, "order is already paid")
	case errors.Is(err, repository.ErrInvalidTransition):
		return errJSON(c, http.StatusConflict, repository.CodeInvalidTransition, "status transition not allowed")
	case errors.Is(err, repository.ErrForbidden):
		return errJSON(c, http.StatusForbidden, repository.CodeAccessDenied, "resource belongs to another photographer")
	}
	return errJSON(c, http.StatusInternalServerError, repository.CodeInternalError, "internal error")
}

// getUserID extracts the photographer id stored by the JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the named numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
