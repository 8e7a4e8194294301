package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// Envelope is the uniform response body shape.
type Envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Paged extends Envelope with pagination metadata.
type Paged struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a 200 with pagination metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, Paged{Data: items, Total: total, Page: page, Limit: limit})
}

// BadRequest writes a 400 with the message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Error: msg})
}

// Error maps an application error kind to an HTTP status. Overlap and
// self-booking conflicts share one status; the body keeps the message.
func Error(c *gin.Context, err error) {
	var ae *apperr.AppError
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, Envelope{Error: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindUnavailable:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindInvalidTransition:
		status = http.StatusConflict
	}
	c.JSON(status, Envelope{Error: ae.Error()})
}
