package http

import (
	"errors"
	"net/http"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"
	"studentloan-backend/internal/logging"
	"studentloan-backend/internal/usecase/review"
	submissionUC "studentloan-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, period.ErrMissingPeriod),
		errors.Is(err, period.ErrMissingUser),
		errors.Is(err, submission.ErrNoDocuments),
		errors.Is(err, review.ErrNoUpdates):
		return http.StatusBadRequest
	case errors.Is(err, document.ErrUnknownKind),
		errors.Is(err, document.ErrInvalidStatus),
		errors.Is(err, process.ErrInvalidStep),
		errors.Is(err, process.ErrInvalidStepStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, submission.ErrNotFound),
		errors.Is(err, history.ErrNotFound),
		errors.Is(err, process.ErrNotFound),
		errors.Is(err, submissionUC.ErrNoFile):
		return http.StatusNotFound
	case errors.Is(err, submission.ErrSubmissionsClosed):
		return http.StatusConflict
	case errors.Is(err, submissionUC.ErrBlobDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError maps domain errors to HTTP codes. Unexpected errors are logged
// and answered with a generic message.
func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logging.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "err", err)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
