package http

import (
	"net/http"

	"studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc       *review.Usecase
	settings period.Settings
}

func NewReviewHandler(uc *review.Usecase, s period.Settings) *ReviewHandler {
	return &ReviewHandler{uc: uc, settings: s}
}

type reviewReq struct {
	Status   string `json:"status"   validate:"required,reviewstatus"`
	Comments string `json:"comments" validate:"max=1000"`
}

type bulkReviewItem struct {
	Kind     string `json:"kind"     validate:"required,dockind"`
	Status   string `json:"status"   validate:"required,reviewstatus"`
	Comments string `json:"comments" validate:"max=1000"`
}

type bulkReviewReq struct {
	Updates []bulkReviewItem `json:"updates" validate:"required,min=1,dive"`
}

func (h *ReviewHandler) ReviewDocument(c echo.Context) error {
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.ReviewDocument(c.Request().Context(), studentKey(c, h.settings), review.DocumentUpdate{
		Kind:     c.Param("kind"),
		Status:   document.ReviewStatus(req.Status),
		Comments: req.Comments,
	}, middleware.OfficerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) ReviewDocuments(c echo.Context) error {
	var req bulkReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	updates := make([]review.DocumentUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, review.DocumentUpdate{
			Kind:     u.Kind,
			Status:   document.ReviewStatus(u.Status),
			Comments: u.Comments,
		})
	}
	dto, err := h.uc.ReviewDocuments(c.Request().Context(), review.ReviewInput{
		Key:        studentKey(c, h.settings),
		Updates:    updates,
		ReviewerID: middleware.OfficerID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) Evaluate(c echo.Context) error {
	dto, err := h.uc.EvaluateTransition(c.Request().Context(), studentKey(c, h.settings))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
