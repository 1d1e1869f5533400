package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"credwise-backend/internal/usecase/sweep"
)

type SweepHandler struct{ uc *sweep.Usecase }

func NewSweepHandler(uc *sweep.Usecase) *SweepHandler { return &SweepHandler{uc: uc} }

type runSweepReq struct {
	// Evaluation date `YYYY-MM-DD`; empty means today. Safe to re-run.
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

func (h *SweepHandler) RunSweep(c echo.Context) error {
	var req runSweepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var asOf time.Time
	if req.AsOf != "" {
		asOf, _ = time.Parse("2006-01-02", req.AsOf)
	}
	res, err := h.uc.Run(c.Request().Context(), asOf)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
