package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loantrust/internal/domain/rating"
	"loantrust/internal/usecase/ledger"
)

type ClientHandler struct{ uc *ledger.Usecase }

func NewClientHandler(uc *ledger.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

func (h *ClientHandler) ListClients(c echo.Context) error {
	out, err := h.uc.ListClients(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.GetClient(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) SelectClient(c echo.Context) error {
	dto, err := h.uc.SelectClient(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) GetClientLoans(c echo.Context) error {
	out, err := h.uc.GetClientLoans(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type eligibilityResp struct {
	ClientID    string `json:"client_id"`
	TrustRating int    `json:"trust_rating"`
	Threshold   int    `json:"threshold"`
	Eligible    bool   `json:"eligible"`
}

func (h *ClientHandler) GetEligibility(c echo.Context) error {
	clientID := c.Param("client_id")
	score, err := h.uc.TrustRating(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, eligibilityResp{
		ClientID:    clientID,
		TrustRating: score,
		Threshold:   rating.Threshold,
		Eligible:    rating.Eligible(score),
	})
}
