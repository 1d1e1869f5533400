package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credwise-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type submitPaymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Method string  `json:"method" validate:"required,max=32"`
	// Gateway timestamp, RFC3339; empty means now.
	PaidAt string `json:"paid_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req submitPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var paidAt time.Time
	if req.PaidAt != "" {
		paidAt, _ = time.Parse(time.RFC3339, req.PaidAt)
	}
	dto, err := h.uc.Submit(c.Request().Context(), payment.SubmitInput{
		LoanID: loanID,
		Amount: decimal.NewFromFloat(req.Amount),
		Method: req.Method,
		PaidAt: paidAt,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
