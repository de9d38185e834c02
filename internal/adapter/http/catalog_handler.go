package http

import (
	"net/http"

	"studentloan-backend/internal/domain/document"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ cat *document.Catalog }

func NewCatalogHandler(cat *document.Catalog) *CatalogHandler {
	if cat == nil {
		cat = document.DefaultCatalog()
	}
	return &CatalogHandler{cat: cat}
}

func (h *CatalogHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]document.Entry{
		string(document.PhaseInitialApplication): h.cat.Documents(document.PhaseInitialApplication),
		string(document.PhaseDisbursement):       h.cat.Documents(document.PhaseDisbursement),
	})
}

type detectPhaseReq struct {
	Kinds []string `json:"kinds"`
}

type detectPhaseResp struct {
	Phase      *document.Phase `json:"phase"` // null when undetermined
	Determined bool            `json:"determined"`
}

func (h *CatalogHandler) DetectPhase(c echo.Context) error {
	var req detectPhaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p := document.DetectPhase(req.Kinds)
	if p == document.PhaseUndetermined {
		return c.JSON(http.StatusOK, detectPhaseResp{})
	}
	return c.JSON(http.StatusOK, detectPhaseResp{Phase: &p, Determined: true})
}
