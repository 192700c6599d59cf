package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter. ok is false when the value is malformed.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// bodyID parses an optional UUID from a request body. Empty yields uuid.Nil.
func bodyID(raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
