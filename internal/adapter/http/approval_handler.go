package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"credwise-backend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type approveLoanReq struct {
	// Canonical date `YYYY-MM-DD`; empty means today.
	ApprovalDate string `json:"approval_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ApprovalHandler) ApproveLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req approveLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var approvedAt time.Time
	if req.ApprovalDate != "" {
		approvedAt, _ = time.Parse("2006-01-02", req.ApprovalDate)
	}
	dto, err := h.uc.Approve(c.Request().Context(), approval.ApproveInput{
		LoanID:       loanID,
		ApprovalDate: approvedAt,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
