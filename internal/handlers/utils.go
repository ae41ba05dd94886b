package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// defaultTopN is how many rows the top-N tables return when the client
	// does not ask for a specific count.
	defaultTopN = 10

	// defaultClaimsPageSize bounds claim listings when no limit is given.
	// The validation tags cap explicit limits at 500.
	defaultClaimsPageSize = 50
)

// parseDatasetID parses the :id path parameter as a dataset UUID.
func parseDatasetID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// getIntQueryParam reads an integer query parameter, falling back to the
// default on missing or unparseable values.
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
