package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"igclean/internal/service"
	"igclean/pkg/igclean"
)

type errorResponse struct {
	Error string `json:"error"`
}

func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	status, message := errorStatus(err)
	return Error(c, status, message)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, igclean.ErrInvalidDomain):
		return http.StatusUnprocessableEntity, igclean.ErrInvalidDomain.Error()
	case errors.Is(err, igclean.ErrMalformedURL), errors.Is(err, igclean.ErrParse):
		return http.StatusUnprocessableEntity, igclean.ErrMalformedURL.Error()
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
