package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"credwise-backend/internal/domain/loan"
	"credwise-backend/internal/domain/schedule"
)

// writeDomainError maps engine errors onto HTTP codes. Anything unknown is
// a 500 with a generic body; the cause stays in the server log via echo.
func writeDomainError(c echo.Context, err error) error {
	var over *loan.OverpaymentError
	switch {
	case errors.As(err, &over):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":                 err.Error(),
			"max_acceptable_amount": over.Max,
		})
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, loan.ErrInvalidPaymentAmount),
		errors.Is(err, schedule.ErrInvalidScheduleInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrAlreadyApproved),
		errors.Is(err, loan.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrInvalidTransition):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
