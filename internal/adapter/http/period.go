package http

import (
	"strings"

	"studentloan-backend/internal/domain/period"

	"github.com/labstack/echo/v4"
)

// queryPeriod reads academic_year/term, defaulting to the current period.
func queryPeriod(c echo.Context, s period.Settings) period.Period {
	return s.Resolve(period.Period{
		AcademicYear: strings.TrimSpace(c.QueryParam("academic_year")),
		Term:         strings.TrimSpace(c.QueryParam("term")),
	})
}

func studentKey(c echo.Context, s period.Settings) period.StudentKey {
	return period.StudentKey{UserID: c.Param("user_id"), Period: queryPeriod(c, s)}
}
