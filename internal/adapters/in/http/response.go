package http

import (
	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON body the API returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message, detail string) error {
	return c.JSON(status, Response{Success: false, Message: message, Error: detail})
}
