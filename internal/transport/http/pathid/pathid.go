// Package pathid reads the numeric :id route parameter shared by the entity
// endpoints.
package pathid

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/storehouse/pkg/errorbank"
)

// Param is the route parameter holding the record id.
const Param = "id"

// Parse returns the :id parameter or a bad_request error when it is not an integer.
func Parse(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param(Param), 10, 64)
	if err != nil {
		return 0, errorbank.BadRequest("Invalid ID", errorbank.WithCause(err))
	}
	return id, nil
}
