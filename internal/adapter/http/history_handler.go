package http

import (
	"net/http"

	historyUC "studentloan-backend/internal/usecase/history"

	"github.com/labstack/echo/v4"
)

type HistoryHandler struct{ uc *historyUC.Usecase }

func NewHistoryHandler(uc *historyUC.Usecase) *HistoryHandler { return &HistoryHandler{uc: uc} }

func (h *HistoryHandler) Get(c echo.Context) error {
	hist, err := h.uc.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, hist)
}
