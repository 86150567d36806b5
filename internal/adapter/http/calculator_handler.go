package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loantrust/internal/usecase/ledger"
)

type CalculatorHandler struct{ uc *ledger.Usecase }

func NewCalculatorHandler(uc *ledger.Usecase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

type quoteReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Term   int     `json:"term" validate:"required,gte=1,lte=360"`
}

// Quote recomputes the rate from the term tier on every call, so the
// figures a client sees while adjusting the form are the figures that get
// recorded at submission.
func (h *CalculatorHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Quote(decimal.NewFromFloat(req.Amount), req.Term)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
