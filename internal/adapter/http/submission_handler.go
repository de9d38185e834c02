package http

import (
	"net/http"

	"studentloan-backend/internal/domain/period"
	submissionUC "studentloan-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes caps a single document file.
const maxUploadBytes = 10 << 20

type SubmissionHandler struct {
	uc       *submissionUC.Usecase
	settings period.Settings
}

func NewSubmissionHandler(uc *submissionUC.Usecase, s period.Settings) *SubmissionHandler {
	return &SubmissionHandler{uc: uc, settings: s}
}

type submitReq struct {
	UserID       string   `json:"user_id"       validate:"required"`
	StudentID    string   `json:"student_id"    validate:"omitempty,max=32"`
	CitizenID    string   `json:"citizen_id"    validate:"omitempty,len=13,numeric"`
	AcademicYear string   `json:"academic_year"`
	Term         string   `json:"term"`
	Kinds        []string `json:"kinds"         validate:"required,min=1,dive,dockind"`
}

func (h *SubmissionHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	p := h.settings.Resolve(period.Period{AcademicYear: req.AcademicYear, Term: req.Term})
	dto, err := h.uc.Submit(c.Request().Context(), submissionUC.SubmitInput{
		Key:       period.StudentKey{UserID: req.UserID, Period: p},
		StudentID: req.StudentID,
		CitizenID: req.CitizenID,
		Kinds:     req.Kinds,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type listSubmissionsResp struct {
	AcademicYear string                       `json:"academic_year"`
	Term         string                       `json:"term"`
	Items        []submissionUC.SubmissionDTO `json:"items"`
}

func (h *SubmissionHandler) List(c echo.Context) error {
	p := queryPeriod(c, h.settings)
	items, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, listSubmissionsResp{AcademicYear: p.AcademicYear, Term: p.Term, Items: items})
}

func (h *SubmissionHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), studentKey(c, h.settings))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) Attach(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing multipart file field \"file\""})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file too large"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer f.Close()

	dto, err := h.uc.Attach(c.Request().Context(), submissionUC.AttachInput{
		Key:         studentKey(c, h.settings),
		Kind:        c.Param("kind"),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SubmissionHandler) DocumentURL(c echo.Context) error {
	dto, err := h.uc.DocumentURL(c.Request().Context(), studentKey(c, h.settings), c.Param("kind"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
