package http

import (
	"net/http"

	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	processUC "studentloan-backend/internal/usecase/process"

	"github.com/labstack/echo/v4"
)

type ProcessHandler struct {
	tracker  *processUC.Tracker
	settings period.Settings
}

func NewProcessHandler(t *processUC.Tracker, s period.Settings) *ProcessHandler {
	return &ProcessHandler{tracker: t, settings: s}
}

type updateStepReq struct {
	Status string `json:"status" validate:"required,stepstatus"`
	Note   string `json:"note"   validate:"max=500"`
}

type bulkStepReq struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,required"`
	Status  string   `json:"status"   validate:"required,stepstatus"`
	Note    string   `json:"note"     validate:"max=500"`
}

type initReq struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,required"`
}

func keysFor(userIDs []string, p period.Period) []period.StudentKey {
	keys := make([]period.StudentKey, 0, len(userIDs))
	for _, u := range userIDs {
		keys = append(keys, period.StudentKey{UserID: u, Period: p})
	}
	return keys
}

func (h *ProcessHandler) List(c echo.Context) error {
	items, err := h.tracker.List(c.Request().Context(), queryPeriod(c, h.settings))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *ProcessHandler) Get(c echo.Context) error {
	s, err := h.tracker.Get(c.Request().Context(), studentKey(c, h.settings))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ProcessHandler) Init(c echo.Context) error {
	var req initReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res := h.tracker.EnsureMany(c.Request().Context(), keysFor(req.UserIDs, queryPeriod(c, h.settings)))
	return c.JSON(http.StatusOK, res)
}

func (h *ProcessHandler) UpdateStep(c echo.Context) error {
	var req updateStepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	s, err := h.tracker.UpdateStep(c.Request().Context(), processUC.UpdateStepInput{
		Key:    studentKey(c, h.settings),
		Step:   process.StepID(c.Param("step")),
		Status: process.StepStatus(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ProcessHandler) UpdateStepForMany(c echo.Context) error {
	var req bulkStepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	step := process.StepID(c.Param("step"))
	if !step.Valid() {
		return writeError(c, process.ErrInvalidStep)
	}
	res := h.tracker.UpdateStepForMany(c.Request().Context(),
		keysFor(req.UserIDs, queryPeriod(c, h.settings)), step, process.StepStatus(req.Status), req.Note)
	return c.JSON(http.StatusOK, res)
}
