package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trashgo/delivery-api/internal/api/middleware"
	"github.com/trashgo/delivery-api/internal/core/domain"
)

// ctxPrincipal extracts the Principal injected by the Auth middleware.
// A missing or empty principal means the middleware did not run or the token
// carried no identity; both are authentication failures.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || p.UserID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// pageParams reads skip/limit query parameters. Limit is capped at 100.
func pageParams(c echo.Context) (skip, limit int) {
	skip, limit = 0, 100
	if n, err := strconv.Atoi(c.QueryParam("skip")); err == nil && n >= 0 {
		skip = n
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 && n <= 100 {
		limit = n
	}
	return skip, limit
}
