package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loantrust/internal/domain/amortization"
	"loantrust/internal/domain/client"
	"loantrust/internal/domain/loan"
	"loantrust/internal/usecase/ledger"
)

// ---- helpers ----

// writeError maps the ledger's error taxonomy onto status codes: unknown
// ids → 404, bad arguments → 400, a gated-out client → 422.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrIneligible):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrInvalidArgument), errors.Is(err, amortization.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
